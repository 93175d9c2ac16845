//go:build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// Run with: TEST_DATABASE_DSN=postgres://... go test -tags=integration ./internal/repository/
func integrationDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	migrDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.Up(migrDB, "../../migrations"))
	require.NoError(t, migrDB.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 10})
	require.NoError(t, err)
	t.Cleanup(func() { db.Master.Close() })

	return db
}

func seedUser(t *testing.T, db *dbpg.DB) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Master.ExecContext(context.Background(),
		`INSERT INTO users (id, name, gender, birthday, phone_number, email, username, password_hash, role)
		 VALUES ($1, 'Race Tester', 'Female', '1990-01-01', '0123456789', $2, $3, 'x', 'Normal')`,
		id, id+"@example.com", "u_"+id[:8],
	)
	require.NoError(t, err)
	return id
}

func seedCheckup(t *testing.T, db *dbpg.DB, maxSlots int) string {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Master.ExecContext(context.Background(),
		`INSERT INTO checkup_types (id, name, price, max_slots_per_time)
		 VALUES ($1, $2, 88.50, $3)`,
		id, "Checkup "+id[:8], maxSlots,
	)
	require.NoError(t, err)
	return id
}

var slotDate = time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)

func TestAppointmentRepository_Reserve_CapacityUnderContention(t *testing.T) {
	db := integrationDB(t)
	repo := NewAppointmentRepo(db)
	userID := seedUser(t, db)
	checkupID := seedCheckup(t, db, 1)

	const attempts = 8
	start := make(chan struct{})
	errs := make(chan error, attempts)
	var booked int64

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.Reserve(context.Background(), domain.BookInput{
				UserID:    userID,
				CheckupID: checkupID,
				Date:      slotDate,
				Time:      "10:00:00",
				Status:    domain.StatusConfirmed,
			})
			if err == nil {
				atomic.AddInt64(&booked, 1)
				return
			}
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	assert.EqualValues(t, 1, booked)
	for err := range errs {
		require.ErrorIs(t, err, domain.ErrSlotFull)
	}
}

func TestAppointmentRepository_Reserve_SecondPrecisionSlots(t *testing.T) {
	db := integrationDB(t)
	repo := NewAppointmentRepo(db)
	userID := seedUser(t, db)
	checkupID := seedCheckup(t, db, 1)

	book := func(timeOfDay string) error {
		_, err := repo.Reserve(context.Background(), domain.BookInput{
			UserID:    userID,
			CheckupID: checkupID,
			Date:      slotDate,
			Time:      timeOfDay,
			Status:    domain.StatusConfirmed,
		})
		return err
	}

	require.NoError(t, book("10:00:00"))
	// One second later is a different slot.
	require.NoError(t, book("10:00:01"))

	require.ErrorIs(t, book("10:00:00"), domain.ErrSlotFull)
}

func TestAppointmentRepository_Reserve_CancelledFreesTheSlot(t *testing.T) {
	db := integrationDB(t)
	repo := NewAppointmentRepo(db)
	userID := seedUser(t, db)
	checkupID := seedCheckup(t, db, 1)

	appt, err := repo.Reserve(context.Background(), domain.BookInput{
		UserID:    userID,
		CheckupID: checkupID,
		Date:      slotDate,
		Time:      "11:00:00",
		Status:    domain.StatusConfirmed,
	})
	require.NoError(t, err)

	cancelled := domain.StatusCancelled
	_, err = repo.Reschedule(context.Background(), appt.ID, domain.RescheduleInput{NewStatus: &cancelled})
	require.NoError(t, err)

	_, err = repo.Reserve(context.Background(), domain.BookInput{
		UserID:    userID,
		CheckupID: checkupID,
		Date:      slotDate,
		Time:      "11:00:00",
		Status:    domain.StatusConfirmed,
	})
	assert.NoError(t, err)
}

func TestAppointmentRepository_Reschedule_ExcludesOwnRow(t *testing.T) {
	db := integrationDB(t)
	repo := NewAppointmentRepo(db)
	userID := seedUser(t, db)
	checkupID := seedCheckup(t, db, 1)

	appt, err := repo.Reserve(context.Background(), domain.BookInput{
		UserID:    userID,
		CheckupID: checkupID,
		Date:      slotDate,
		Time:      "12:00:00",
		Status:    domain.StatusConfirmed,
	})
	require.NoError(t, err)

	// Re-stating the appointment's own slot must not count it against
	// itself.
	sameTime := "12:00:00"
	sameDate := slotDate
	_, err = repo.Reschedule(context.Background(), appt.ID, domain.RescheduleInput{
		NewDate: &sameDate,
		NewTime: &sameTime,
	})
	require.NoError(t, err)

	_, err = repo.Reserve(context.Background(), domain.BookInput{
		UserID:    userID,
		CheckupID: checkupID,
		Date:      slotDate,
		Time:      "13:00:00",
		Status:    domain.StatusConfirmed,
	})
	require.NoError(t, err)

	// The target slot is genuinely full; moving there still fails.
	otherTime := "13:00:00"
	_, err = repo.Reschedule(context.Background(), appt.ID, domain.RescheduleInput{NewTime: &otherTime})
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

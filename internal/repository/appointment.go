package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	// Bound on the advisory-lock wait so contending reservations fail
	// fast instead of queueing behind a slow transaction.
	slotLockTimeout = "3s"

	pgLockNotAvailable  = "55P03"
	pgForeignKeyViolate = "23503"
)

type AppointmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAppointmentRepo(db *dbpg.DB) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// lockSlot serializes reservation attempts sharing one (checkup, date, time)
// key. The lock is transaction-scoped, so commit or rollback releases it;
// attempts against different slots never contend.
func lockSlot(ctx context.Context, tx *sql.Tx, slot domain.Slot) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`SET LOCAL lock_timeout = '%s'`, slotLockTimeout)); err != nil {
		return fmt.Errorf("set lock timeout: %w", storeErr(err))
	}

	query := `SELECT pg_advisory_xact_lock(hashtextextended($1 || '|' || $2::text || '|' || $3::text, 0))`
	if _, err := tx.ExecContext(ctx, query, slot.CheckupID, slot.Date.Format(domain.DateLayout), slot.Time); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return domain.ErrLockTimeout
		}
		return fmt.Errorf("acquire slot lock: %w", storeErr(err))
	}

	return nil
}

// countSlot counts non-cancelled appointments occupying the slot,
// optionally excluding one appointment id (for reschedules).
func countSlot(ctx context.Context, tx *sql.Tx, slot domain.Slot, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM appointments
			  WHERE checkup_id = $1
			    AND appointment_date = $2
			    AND appointment_time = $3
			    AND status <> $4
			    AND ($5 = '' OR id::text <> $5)`

	var n int
	err := tx.QueryRowContext(
		ctx, query,
		slot.CheckupID, slot.Date, slot.Time,
		domain.StatusCancelled, excludeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count slot: %w", storeErr(err))
	}

	return n, nil
}

// Reserve checks capacity and inserts the appointment as one atomic unit.
// The checkup name and effective price are snapshotted onto the row.
func (r *AppointmentRepository) Reserve(ctx context.Context, in domain.BookInput) (*domain.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	slot := domain.Slot{CheckupID: in.CheckupID, Date: in.Date, Time: in.Time}
	if err = lockSlot(ctx, tx, slot); err != nil {
		return nil, err
	}

	var (
		checkupName string
		price       float64
		maxSlots    int
	)
	checkupQuery := `SELECT name, price, max_slots_per_time FROM checkup_types WHERE id = $1`
	if err = tx.QueryRowContext(ctx, checkupQuery, in.CheckupID).Scan(&checkupName, &price, &maxSlots); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCheckupNotFound
		}
		return nil, fmt.Errorf("get checkup: %w", storeErr(err))
	}

	booked, err := countSlot(ctx, tx, slot, "")
	if err != nil {
		return nil, err
	}
	if booked >= maxSlots {
		return nil, domain.ErrSlotFull
	}

	if in.PriceOverride != nil {
		price = *in.PriceOverride
	}

	appt := &domain.Appointment{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		CheckupID:   in.CheckupID,
		CheckupName: checkupName,
		Date:        in.Date,
		Time:        in.Time,
		Status:      in.Status,
		PricePaid:   price,
		CreatedAt:   time.Now().UTC(),
	}

	insertQuery := `INSERT INTO appointments
			(id, user_id, checkup_id, checkup_name, appointment_date, appointment_time, status, price_paid, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		appt.ID, appt.UserID, appt.CheckupID, appt.CheckupName,
		appt.Date, appt.Time, appt.Status, appt.PricePaid, appt.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolate {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert appointment: %w", storeErr(err))
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reservation: %w", storeErr(err))
	}

	return appt, nil
}

// Reschedule applies the requested changes, re-running the capacity check
// against the target slot with the appointment's own row excluded from the
// count.
func (r *AppointmentRepository) Reschedule(ctx context.Context, id string, upd domain.RescheduleInput) (*domain.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	appt, err := getForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	target := appt.Slot()
	if upd.NewDate != nil {
		target.Date = *upd.NewDate
	}
	if upd.NewTime != nil {
		target.Time = *upd.NewTime
	}
	if upd.NewCheckupID != nil {
		target.CheckupID = *upd.NewCheckupID
	}

	moved := !target.Date.Equal(appt.Date) || target.Time != appt.Time || target.CheckupID != appt.CheckupID
	if moved {
		if err = lockSlot(ctx, tx, target); err != nil {
			return nil, err
		}

		var maxSlots int
		var checkupName string
		checkupQuery := `SELECT name, max_slots_per_time FROM checkup_types WHERE id = $1`
		if err = tx.QueryRowContext(ctx, checkupQuery, target.CheckupID).Scan(&checkupName, &maxSlots); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.ErrCheckupNotFound
			}
			return nil, fmt.Errorf("get checkup: %w", storeErr(err))
		}

		booked, err := countSlot(ctx, tx, target, appt.ID)
		if err != nil {
			return nil, err
		}
		if booked >= maxSlots {
			return nil, domain.ErrSlotFull
		}

		appt.Date = target.Date
		appt.Time = target.Time
		if target.CheckupID != appt.CheckupID {
			appt.CheckupID = target.CheckupID
			appt.CheckupName = checkupName
		}
	}

	if upd.NewStatus != nil {
		appt.Status = *upd.NewStatus
	}
	if upd.NewPrice != nil {
		appt.PricePaid = *upd.NewPrice
	}

	updateQuery := `UPDATE appointments
			SET checkup_id = $2, checkup_name = $3, appointment_date = $4,
			    appointment_time = $5, status = $6, price_paid = $7
			WHERE id = $1`
	_, err = tx.ExecContext(
		ctx, updateQuery,
		appt.ID, appt.CheckupID, appt.CheckupName,
		appt.Date, appt.Time, appt.Status, appt.PricePaid,
	)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", storeErr(err))
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reschedule: %w", storeErr(err))
	}

	return appt, nil
}

func getForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Appointment, error) {
	query := `SELECT id, user_id, checkup_id, checkup_name, appointment_date,
			 to_char(appointment_time, 'HH24:MI:SS'), status, price_paid, created_at
			  FROM appointments
			  WHERE id = $1
			  FOR UPDATE`

	var a domain.Appointment
	err := tx.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.CheckupID, &a.CheckupName,
		&a.Date, &a.Time, &a.Status, &a.PricePaid, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", storeErr(err))
	}

	return &a, nil
}

// Availability reports how much room a slot has left. Advisory only: the
// reservation transaction repeats the check under the slot lock.
func (r *AppointmentRepository) Availability(ctx context.Context, slot domain.Slot) (*domain.Availability, error) {
	query := `SELECT c.max_slots_per_time,
			 (SELECT COUNT(*) FROM appointments a
			  WHERE a.checkup_id = c.id
			    AND a.appointment_date = $2
			    AND a.appointment_time = $3
			    AND a.status <> $4)
			  FROM checkup_types c
			  WHERE c.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slot.CheckupID, slot.Date, slot.Time, domain.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("slot availability: %w", storeErr(err))
	}

	var maxSlots, booked int
	if err = row.Scan(&maxSlots, &booked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCheckupNotFound
		}
		return nil, fmt.Errorf("scan availability: %w", storeErr(err))
	}

	remaining := maxSlots - booked
	if remaining < 0 {
		remaining = 0
	}

	return &domain.Availability{
		Available: remaining > 0,
		Remaining: remaining,
		Max:       maxSlots,
	}, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT id, user_id, checkup_id, checkup_name, appointment_date,
			 to_char(appointment_time, 'HH24:MI:SS'), status, price_paid, created_at
			  FROM appointments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", storeErr(err))
	}

	var a domain.Appointment
	if err = row.Scan(
		&a.ID, &a.UserID, &a.CheckupID, &a.CheckupName,
		&a.Date, &a.Time, &a.Status, &a.PricePaid, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", storeErr(err))
	}

	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query := `SELECT id, user_id, checkup_id, checkup_name, appointment_date,
			 to_char(appointment_time, 'HH24:MI:SS'), status, price_paid, created_at
			  FROM appointments
			  ORDER BY appointment_date DESC, appointment_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", storeErr(err))
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Appointment, error) {
	query := `SELECT id, user_id, checkup_id, checkup_name, appointment_date,
			 to_char(appointment_time, 'HH24:MI:SS'), status, price_paid, created_at
			  FROM appointments
			  WHERE user_id = $1
			  ORDER BY appointment_date DESC, appointment_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by user: %w", storeErr(err))
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	var res []*domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.CheckupID, &a.CheckupName,
			&a.Date, &a.Time, &a.Status, &a.PricePaid, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", storeErr(err))
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("appointment rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return domain.ErrAppointmentNotFound
	}

	return nil
}

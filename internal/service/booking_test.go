package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func tomorrow() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockAppointmentRepo, *mocks.MockUserRepo, *mocks.MockConfirmationNotifier) {
	t.Helper()
	apptRepo := mocks.NewMockAppointmentRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockConfirmationNotifier(t)
	svc := NewBookingService(apptRepo, userRepo, notifier, newTestLogger(t))
	return svc, apptRepo, userRepo, notifier
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, apptRepo, userRepo, notifier := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	date := tomorrow()
	user := &domain.User{ID: "u1", Name: "Alice Tan", Email: "alice@example.com"}
	appt := &domain.Appointment{
		ID:          "a1",
		UserID:      "u1",
		CheckupID:   "c1",
		CheckupName: "Full Body Checkup",
		Date:        date,
		Time:        "09:00:00",
		Status:      domain.StatusConfirmed,
		PricePaid:   150,
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	apptRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(appt, nil)
	notifier.EXPECT().NotifyConfirmation(mock.Anything, "alice@example.com", "Alice Tan", "Full Body Checkup", date, "09:00:00").Return()

	got, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "u1",
		CheckupID: "c1",
		Date:      date,
		Time:      "09:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_ForAnotherUserDenied(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "u2",
		CheckupID: "c1",
		Date:      tomorrow(),
		Time:      "09:00:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_Book_StripsNonAdminOverrides(t *testing.T) {
	svc, apptRepo, userRepo, notifier := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	date := tomorrow()
	price := 5.0

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	apptRepo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(in domain.BookInput) bool {
		return in.Status == domain.StatusConfirmed && in.PriceOverride == nil
	})).Return(&domain.Appointment{ID: "a1", UserID: "u1", Date: date, Time: "09:00:00"}, nil)
	notifier.EXPECT().NotifyConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:        "u1",
		CheckupID:     "c1",
		Date:          date,
		Time:          "09:00:00",
		Status:        domain.StatusPending,
		PriceOverride: &price,
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_PastDate(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	yesterday := time.Now().UTC().Truncate(24 * time.Hour).Add(-24 * time.Hour)

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "u1",
		CheckupID: "c1",
		Date:      yesterday,
		Time:      "09:00:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_AdminBackfillsPastDate(t *testing.T) {
	svc, apptRepo, userRepo, notifier := newBookingService(t)

	actor := domain.Actor{ID: "admin", Role: domain.RoleAdmin}
	yesterday := time.Now().UTC().Truncate(24 * time.Hour).Add(-24 * time.Hour)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	apptRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(&domain.Appointment{ID: "a1", UserID: "u1", Date: yesterday, Time: "09:00:00"}, nil)
	notifier.EXPECT().NotifyConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "u1",
		CheckupID: "c1",
		Date:      yesterday,
		Time:      "09:00:00",
		Status:    domain.StatusCompleted,
	})

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_InvalidTime(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "u1",
		CheckupID: "c1",
		Date:      tomorrow(),
		Time:      "9am",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_SlotFull(t *testing.T) {
	svc, apptRepo, userRepo, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	apptRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotFull)

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "u1",
		CheckupID: "c1",
		Date:      tomorrow(),
		Time:      "09:00:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, _, userRepo, _ := newBookingService(t)

	actor := domain.Actor{ID: "missing", Role: domain.RoleNormal}

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), actor, domain.BookInput{
		UserID:    "missing",
		CheckupID: "c1",
		Date:      tomorrow(),
		Time:      "09:00:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_CreateViaPayment_UsesPaidPrice(t *testing.T) {
	svc, apptRepo, userRepo, notifier := newBookingService(t)

	date := tomorrow()
	intent := &domain.ReservationIntent{
		SessionID: "cs_1",
		UserID:    "u1",
		CheckupID: "c1",
		Date:      date,
		Time:      "10:00:00",
		Price:     120,
	}

	apptRepo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(in domain.BookInput) bool {
		return in.Status == domain.StatusConfirmed &&
			in.PriceOverride != nil && *in.PriceOverride == 120
	})).Return(&domain.Appointment{ID: "a1", UserID: "u1", Date: date, Time: "10:00:00", PricePaid: 120}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "a@b.co"}, nil)
	notifier.EXPECT().NotifyConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	appt, err := svc.CreateViaPayment(context.Background(), intent)

	require.NoError(t, err)
	assert.Equal(t, 120.0, appt.PricePaid)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reschedule_Success(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	newDate := tomorrow().Add(48 * time.Hour)
	newTime := "11:00:00"

	existing := &domain.Appointment{ID: "a1", UserID: "u1", CheckupID: "c1", Date: tomorrow(), Time: "09:00:00"}
	moved := &domain.Appointment{ID: "a1", UserID: "u1", CheckupID: "c1", Date: newDate, Time: newTime}

	apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(existing, nil)
	apptRepo.EXPECT().Reschedule(mock.Anything, "a1", mock.Anything).Return(moved, nil)

	got, err := svc.Reschedule(context.Background(), actor, "a1", domain.RescheduleInput{
		NewDate: &newDate,
		NewTime: &newTime,
	})

	require.NoError(t, err)
	assert.Equal(t, newTime, got.Time)
}

func TestBookingService_Reschedule_NotOwner(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u2", Role: domain.RoleNormal}

	apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Appointment{ID: "a1", UserID: "u1"}, nil)

	newTime := "11:00:00"
	_, err := svc.Reschedule(context.Background(), actor, "a1", domain.RescheduleInput{NewTime: &newTime})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_Reschedule_NonAdminCannotChangeStatus(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Appointment{ID: "a1", UserID: "u1"}, nil)

	status := domain.StatusCompleted
	_, err := svc.Reschedule(context.Background(), actor, "a1", domain.RescheduleInput{NewStatus: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_Reschedule_TargetSlotFull(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	newTime := "11:00:00"

	apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Appointment{ID: "a1", UserID: "u1"}, nil)
	apptRepo.EXPECT().Reschedule(mock.Anything, "a1", mock.Anything).Return(nil, domain.ErrSlotFull)

	_, err := svc.Reschedule(context.Background(), actor, "a1", domain.RescheduleInput{NewTime: &newTime})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	slot := domain.Slot{CheckupID: "c1", Date: tomorrow(), Time: "09:00:00"}
	apptRepo.EXPECT().Availability(mock.Anything, slot).Return(&domain.Availability{Available: true, Remaining: 3, Max: 10}, nil)

	avail, err := svc.CheckAvailability(context.Background(), slot)

	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Equal(t, 3, avail.Remaining)
}

func TestBookingService_List_NonAdminDenied(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	_, err := svc.List(context.Background(), domain.Actor{ID: "u1", Role: domain.RoleNormal})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_ListByUser_SelfAllowed(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	apptRepo.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.Appointment{{ID: "a1", UserID: "u1"}}, nil)

	appts, err := svc.ListByUser(context.Background(), actor, "u1")

	require.NoError(t, err)
	assert.Len(t, appts, 1)
}

func TestBookingService_ListByUser_OtherDenied(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	_, err := svc.ListByUser(context.Background(), actor, "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_Delete_Owner(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Appointment{ID: "a1", UserID: "u1"}, nil)
	apptRepo.EXPECT().Delete(mock.Anything, "a1").Return(nil)

	err := svc.Delete(context.Background(), actor, "a1")

	require.NoError(t, err)
}

func TestBookingService_Delete_NotOwner(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	actor := domain.Actor{ID: "u2", Role: domain.RoleNormal}

	apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Appointment{ID: "a1", UserID: "u1"}, nil)

	err := svc.Delete(context.Background(), actor, "a1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

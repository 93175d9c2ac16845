package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
	"github.com/umyrahbh/healthassist/internal/service/ports/mocks"
)

type paymentFixture struct {
	svc        *PaymentService
	intentRepo *mocks.MockIntentRepo
	checkRepo  *mocks.MockCheckupRepo
	apptRepo   *mocks.MockAppointmentRepo
	userRepo   *mocks.MockUserRepo
	notifier   *mocks.MockConfirmationNotifier
	provider   *mocks.MockPaymentProvider
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		intentRepo: mocks.NewMockIntentRepo(t),
		checkRepo:  mocks.NewMockCheckupRepo(t),
		apptRepo:   mocks.NewMockAppointmentRepo(t),
		userRepo:   mocks.NewMockUserRepo(t),
		notifier:   mocks.NewMockConfirmationNotifier(t),
		provider:   mocks.NewMockPaymentProvider(t),
	}
	log := newTestLogger(t)
	booking := NewBookingService(f.apptRepo, f.userRepo, f.notifier, log)
	f.svc = NewPaymentService(f.intentRepo, f.checkRepo, booking, f.provider, log)
	return f
}

func TestPaymentService_CreateCheckout_Success(t *testing.T) {
	f := newPaymentFixture(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	slot := domain.Slot{CheckupID: "c1", Date: tomorrow(), Time: "09:00:00"}

	f.checkRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.CheckupType{
		ID: "c1", Name: "Dental Checkup", Price: 88.50, IsActive: true, MaxSlotsPerTime: 10,
	}, nil)
	f.apptRepo.EXPECT().Availability(mock.Anything, slot).Return(&domain.Availability{Available: true, Remaining: 2, Max: 10}, nil)
	f.provider.EXPECT().CreateCheckout(mock.Anything, mock.MatchedBy(func(p ports.CheckoutParams) bool {
		return p.CheckupName == "Dental Checkup" && p.AmountCents == 8850
	})).Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)
	f.intentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *domain.ReservationIntent) bool {
		return in.SessionID == "cs_1" && in.UserID == "u1" && in.Price == 88.50
	})).Return(nil)

	session, err := f.svc.CreateCheckout(context.Background(), actor, slot)

	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)
	assert.NotEmpty(t, session.URL)
}

func TestPaymentService_CreateCheckout_InactiveCheckup(t *testing.T) {
	f := newPaymentFixture(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	slot := domain.Slot{CheckupID: "c1", Date: tomorrow(), Time: "09:00:00"}

	f.checkRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.CheckupType{ID: "c1", IsActive: false}, nil)

	_, err := f.svc.CreateCheckout(context.Background(), actor, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_CreateCheckout_SlotFull(t *testing.T) {
	f := newPaymentFixture(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	slot := domain.Slot{CheckupID: "c1", Date: tomorrow(), Time: "09:00:00"}

	f.checkRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.CheckupType{ID: "c1", Price: 50, IsActive: true}, nil)
	f.apptRepo.EXPECT().Availability(mock.Anything, slot).Return(&domain.Availability{Available: false, Remaining: 0, Max: 10}, nil)

	_, err := f.svc.CreateCheckout(context.Background(), actor, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

func TestPaymentService_CreateCheckout_CheckupNotFound(t *testing.T) {
	f := newPaymentFixture(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	slot := domain.Slot{CheckupID: "missing", Date: tomorrow(), Time: "09:00:00"}

	f.checkRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCheckupNotFound)

	_, err := f.svc.CreateCheckout(context.Background(), actor, slot)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCheckupNotFound)
}

func TestPaymentService_HandlePaymentSuccess_CreatesAppointment(t *testing.T) {
	f := newPaymentFixture(t)

	date := tomorrow()
	intent := &domain.ReservationIntent{
		SessionID: "cs_1",
		UserID:    "u1",
		CheckupID: "c1",
		Date:      date,
		Time:      "10:00:00",
		Price:     120,
	}

	f.intentRepo.EXPECT().GetBySessionID(mock.Anything, "cs_1").Return(intent, nil)
	f.provider.EXPECT().GetPaymentStatus(mock.Anything, "cs_1").Return(domain.PaymentStatusPaid, nil)
	f.intentRepo.EXPECT().Consume(mock.Anything, "cs_1").Return(intent, nil)
	f.apptRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(&domain.Appointment{ID: "a1", UserID: "u1", Date: date, Time: "10:00:00", PricePaid: 120}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "a@b.co"}, nil)
	f.notifier.EXPECT().NotifyConfirmation(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.intentRepo.EXPECT().Bind(mock.Anything, "cs_1", "a1").Return(nil)

	appt, err := f.svc.HandlePaymentSuccess(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "a1", appt.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_HandlePaymentSuccess_Unpaid(t *testing.T) {
	f := newPaymentFixture(t)

	intent := &domain.ReservationIntent{SessionID: "cs_1", UserID: "u1"}

	f.intentRepo.EXPECT().GetBySessionID(mock.Anything, "cs_1").Return(intent, nil)
	f.provider.EXPECT().GetPaymentStatus(mock.Anything, "cs_1").Return(domain.PaymentStatusUnpaid, nil)

	_, err := f.svc.HandlePaymentSuccess(context.Background(), "cs_1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntentNotFound)
}

func TestPaymentService_HandlePaymentSuccess_UnknownSession(t *testing.T) {
	f := newPaymentFixture(t)

	f.intentRepo.EXPECT().GetBySessionID(mock.Anything, "cs_x").Return(nil, domain.ErrIntentNotFound)

	_, err := f.svc.HandlePaymentSuccess(context.Background(), "cs_x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntentNotFound)
}

func TestPaymentService_HandlePaymentSuccess_ReplayReturnsSameAppointment(t *testing.T) {
	f := newPaymentFixture(t)

	apptID := "a1"
	consumedAt := time.Now().UTC()
	intent := &domain.ReservationIntent{
		SessionID:     "cs_1",
		UserID:        "u1",
		ConsumedAt:    &consumedAt,
		AppointmentID: &apptID,
	}

	f.intentRepo.EXPECT().GetBySessionID(mock.Anything, "cs_1").Return(intent, nil)
	f.provider.EXPECT().GetPaymentStatus(mock.Anything, "cs_1").Return(domain.PaymentStatusPaid, nil)
	f.intentRepo.EXPECT().Consume(mock.Anything, "cs_1").Return(intent, domain.ErrAlreadyProcessed)
	f.apptRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Appointment{ID: "a1", UserID: "u1"}, nil)

	appt, err := f.svc.HandlePaymentSuccess(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "a1", appt.ID)
}

func TestPaymentService_HandlePaymentSuccess_ReserveFailureReleasesIntent(t *testing.T) {
	f := newPaymentFixture(t)

	intent := &domain.ReservationIntent{
		SessionID: "cs_1",
		UserID:    "u1",
		CheckupID: "c1",
		Date:      tomorrow(),
		Time:      "10:00:00",
		Price:     120,
	}

	f.intentRepo.EXPECT().GetBySessionID(mock.Anything, "cs_1").Return(intent, nil)
	f.provider.EXPECT().GetPaymentStatus(mock.Anything, "cs_1").Return(domain.PaymentStatusPaid, nil)
	f.intentRepo.EXPECT().Consume(mock.Anything, "cs_1").Return(intent, nil)
	f.apptRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotFull)
	f.intentRepo.EXPECT().Release(mock.Anything, "cs_1").Return(nil)

	_, err := f.svc.HandlePaymentSuccess(context.Background(), "cs_1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

func TestPaymentService_HandlePaymentSuccess_StatusLookupError(t *testing.T) {
	f := newPaymentFixture(t)

	f.intentRepo.EXPECT().GetBySessionID(mock.Anything, "cs_1").Return(&domain.ReservationIntent{SessionID: "cs_1"}, nil)
	f.provider.EXPECT().GetPaymentStatus(mock.Anything, "cs_1").Return(domain.PaymentStatus(""), errors.New("api unreachable"))

	_, err := f.svc.HandlePaymentSuccess(context.Background(), "cs_1")

	require.Error(t, err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PaymentService creates hosted-checkout sessions and reconciles their
// success callbacks into committed appointments, exactly once per session.
type PaymentService struct {
	intentRepo  ports.IntentRepo
	checkupRepo ports.CheckupRepo
	booking     *BookingService
	provider    ports.PaymentProvider
	logger      logger.Logger
}

func NewPaymentService(
	intentRepo ports.IntentRepo,
	checkupRepo ports.CheckupRepo,
	booking *BookingService,
	provider ports.PaymentProvider,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		intentRepo:  intentRepo,
		checkupRepo: checkupRepo,
		booking:     booking,
		provider:    provider,
		logger:      logger,
	}
}

// CreateCheckout pre-checks availability, opens a checkout session with the
// payment collaborator and records a reservation intent keyed by the session
// id. The pre-check is advisory; the slot may still fill while the user pays.
func (s *PaymentService) CreateCheckout(ctx context.Context, actor domain.Actor, slot domain.Slot) (*domain.CheckoutSession, error) {
	if err := validateTimeOfDay(slot.Time); err != nil {
		return nil, err
	}
	if err := validateSlotDate(slot.Date, actor); err != nil {
		return nil, err
	}

	checkup, err := s.checkupRepo.GetByID(ctx, slot.CheckupID)
	if err != nil {
		return nil, fmt.Errorf("check checkup: %w", err)
	}
	if !checkup.IsActive {
		return nil, fmt.Errorf("%w: checkup type is not available for booking", domain.ErrValidation)
	}

	avail, err := s.booking.CheckAvailability(ctx, slot)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, domain.ErrSlotFull
	}

	session, err := s.provider.CreateCheckout(ctx, ports.CheckoutParams{
		CheckupName: checkup.Name,
		Date:        slot.Date.Format(domain.DateLayout),
		Time:        slot.Time,
		AmountCents: int64(math.Round(checkup.Price * 100)),
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	intent := &domain.ReservationIntent{
		SessionID: session.ID,
		UserID:    actor.ID,
		CheckupID: slot.CheckupID,
		Date:      slot.Date,
		Time:      slot.Time,
		Price:     checkup.Price,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.intentRepo.Create(ctx, intent); err != nil {
		return nil, fmt.Errorf("store reservation intent: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("session_id", session.ID),
		logger.String("user_id", actor.ID),
		logger.String("checkup_id", slot.CheckupID),
	)

	return session, nil
}

// HandlePaymentSuccess converts a confirmed payment into a committed
// appointment. The intent is claimed atomically before reserving, so a
// replayed callback cannot create a second appointment: it gets back the
// appointment the first call produced.
func (s *PaymentService) HandlePaymentSuccess(ctx context.Context, sessionID string) (*domain.Appointment, error) {
	if _, err := s.intentRepo.GetBySessionID(ctx, sessionID); err != nil {
		return nil, err
	}

	status, err := s.provider.GetPaymentStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get payment status: %w", err)
	}
	if status != domain.PaymentStatusPaid {
		// An incomplete payment must never turn into a booking.
		return nil, domain.ErrIntentNotFound
	}

	intent, err := s.intentRepo.Consume(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) && intent != nil && intent.AppointmentID != nil {
			return s.booking.apptRepo.GetByID(ctx, *intent.AppointmentID)
		}
		return nil, err
	}

	appt, err := s.booking.CreateViaPayment(ctx, intent)
	if err != nil {
		// Give a future callback another chance; the claim above is
		// only final once an appointment exists.
		if relErr := s.intentRepo.Release(ctx, sessionID); relErr != nil {
			s.logger.Error("failed to release reservation intent",
				logger.String("session_id", sessionID),
				logger.String("error", relErr.Error()),
			)
		}
		return nil, err
	}

	if err := s.intentRepo.Bind(ctx, sessionID, appt.ID); err != nil {
		s.logger.Error("failed to bind intent to appointment",
			logger.String("session_id", sessionID),
			logger.String("appointment_id", appt.ID),
			logger.String("error", err.Error()),
		)
	}

	return appt, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService orchestrates the admission paths for appointments: direct
// creation, paid checkout (via PaymentService) and reschedules. All of them
// go through the same capacity-check-then-reserve transaction in the
// appointment repository.
type BookingService struct {
	apptRepo ports.AppointmentRepo
	userRepo ports.UserRepo
	notifier ports.ConfirmationNotifier
	logger   logger.Logger
}

func NewBookingService(
	apptRepo ports.AppointmentRepo,
	userRepo ports.UserRepo,
	notifier ports.ConfirmationNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		apptRepo: apptRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) CheckAvailability(ctx context.Context, slot domain.Slot) (*domain.Availability, error) {
	if err := validateTimeOfDay(slot.Time); err != nil {
		return nil, err
	}
	return s.apptRepo.Availability(ctx, slot)
}

// Book creates an appointment directly, bypassing payment. Admins may book
// for any user, backfill past dates and set an initial status or price;
// everyone else books for themselves at the catalog price.
func (s *BookingService) Book(ctx context.Context, actor domain.Actor, in domain.BookInput) (*domain.Appointment, error) {
	if !actor.IsAdmin() {
		if in.UserID != actor.ID {
			return nil, domain.ErrPermissionDenied
		}
		in.Status = domain.StatusConfirmed
		in.PriceOverride = nil
	}

	if err := validateTimeOfDay(in.Time); err != nil {
		return nil, err
	}
	if err := validateSlotDate(in.Date, actor); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.StatusConfirmed
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown appointment status %q", domain.ErrValidation, in.Status)
	}
	if in.PriceOverride != nil {
		if err := validatePrice(*in.PriceOverride); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	appt, err := s.apptRepo.Reserve(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment booked",
		logger.String("appointment_id", appt.ID),
		logger.String("user_id", appt.UserID),
		logger.String("checkup_id", appt.CheckupID),
		logger.String("date", appt.Date.Format(domain.DateLayout)),
		logger.String("time", appt.Time),
	)

	go s.notifier.NotifyConfirmation(context.WithoutCancel(ctx), user.Email, user.Name, appt.CheckupName, appt.Date, appt.Time)

	return appt, nil
}

// CreateViaPayment is the reconciled-checkout admission path. The intent
// was validated when the checkout session was created; status is always
// Confirmed and the price is the one the user actually paid.
func (s *BookingService) CreateViaPayment(ctx context.Context, intent *domain.ReservationIntent) (*domain.Appointment, error) {
	price := intent.Price
	appt, err := s.apptRepo.Reserve(ctx, domain.BookInput{
		UserID:        intent.UserID,
		CheckupID:     intent.CheckupID,
		Date:          intent.Date,
		Time:          intent.Time,
		Status:        domain.StatusConfirmed,
		PriceOverride: &price,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment booked via payment",
		logger.String("appointment_id", appt.ID),
		logger.String("session_id", intent.SessionID),
		logger.String("user_id", appt.UserID),
	)

	if user, err := s.userRepo.GetByID(ctx, intent.UserID); err == nil {
		go s.notifier.NotifyConfirmation(context.WithoutCancel(ctx), user.Email, user.Name, appt.CheckupName, appt.Date, appt.Time)
	} else {
		s.logger.Error("failed to get user for confirmation",
			logger.String("user_id", intent.UserID),
			logger.String("error", err.Error()),
		)
	}

	return appt, nil
}

// Reschedule moves an appointment to a new slot. Non-admins may only move
// their own appointments and may only change date and time; the capacity
// check against the target slot excludes the appointment's own row.
func (s *BookingService) Reschedule(ctx context.Context, actor domain.Actor, appointmentID string, upd domain.RescheduleInput) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessUser(appt.UserID) {
		return nil, domain.ErrPermissionDenied
	}
	if !actor.IsAdmin() && (upd.NewCheckupID != nil || upd.NewStatus != nil || upd.NewPrice != nil) {
		return nil, domain.ErrPermissionDenied
	}

	if upd.NewTime != nil {
		if err := validateTimeOfDay(*upd.NewTime); err != nil {
			return nil, err
		}
	}
	if upd.NewDate != nil {
		if err := validateSlotDate(*upd.NewDate, actor); err != nil {
			return nil, err
		}
	}
	if upd.NewStatus != nil && !upd.NewStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown appointment status %q", domain.ErrValidation, *upd.NewStatus)
	}
	if upd.NewPrice != nil {
		if err := validatePrice(*upd.NewPrice); err != nil {
			return nil, err
		}
	}

	updated, err := s.apptRepo.Reschedule(ctx, appointmentID, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment rescheduled",
		logger.String("appointment_id", updated.ID),
		logger.String("date", updated.Date.Format(domain.DateLayout)),
		logger.String("time", updated.Time),
	)

	return updated, nil
}

func (s *BookingService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessUser(appt.UserID) {
		return nil, domain.ErrPermissionDenied
	}
	return appt, nil
}

func (s *BookingService) List(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	return s.apptRepo.List(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, actor domain.Actor, userID string) ([]*domain.Appointment, error) {
	if !actor.CanAccessUser(userID) {
		return nil, domain.ErrPermissionDenied
	}
	return s.apptRepo.ListByUser(ctx, userID)
}

func (s *BookingService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccessUser(appt.UserID) {
		return domain.ErrPermissionDenied
	}

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("appointment deleted",
		logger.String("appointment_id", id),
		logger.String("actor_id", actor.ID),
	)

	return nil
}

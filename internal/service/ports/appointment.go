package ports

import (
	"context"

	"github.com/umyrahbh/healthassist/internal/domain"
)

type AppointmentRepo interface {
	Reserve(ctx context.Context, in domain.BookInput) (*domain.Appointment, error)
	Reschedule(ctx context.Context, id string, upd domain.RescheduleInput) (*domain.Appointment, error)
	Availability(ctx context.Context, slot domain.Slot) (*domain.Availability, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

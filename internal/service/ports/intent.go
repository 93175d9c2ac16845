package ports

import (
	"context"
	"time"

	"github.com/umyrahbh/healthassist/internal/domain"
)

type IntentRepo interface {
	Create(ctx context.Context, in *domain.ReservationIntent) error
	GetBySessionID(ctx context.Context, sessionID string) (*domain.ReservationIntent, error)
	// Consume atomically claims the intent; a second claim returns the
	// stored intent together with domain.ErrAlreadyProcessed.
	Consume(ctx context.Context, sessionID string) (*domain.ReservationIntent, error)
	Release(ctx context.Context, sessionID string) error
	Bind(ctx context.Context, sessionID, appointmentID string) error
	DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

package ports

import (
	"context"
	"time"
)

// ConfirmationNotifier delivers booking confirmations. Implementations
// absorb every failure (degrading to durable local storage); a notification
// can never fail a booking.
type ConfirmationNotifier interface {
	NotifyConfirmation(ctx context.Context, email, name, checkupName string, date time.Time, timeOfDay string)
}

package ports

import (
	"context"

	"github.com/umyrahbh/healthassist/internal/domain"
)

type CheckoutParams struct {
	CheckupName string
	Date        string
	Time        string
	AmountCents int64
}

// PaymentProvider is the hosted-checkout collaborator. The core never
// implements payment logic; it only creates sessions and reads their
// final status.
type PaymentProvider interface {
	CreateCheckout(ctx context.Context, p CheckoutParams) (*domain.CheckoutSession, error)
	GetPaymentStatus(ctx context.Context, sessionID string) (domain.PaymentStatus, error)
}

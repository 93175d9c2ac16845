package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
)

// StripeProvider creates hosted checkout sessions and reads back their
// payment status. The session ID is the correlation key the rest of the
// system carries around.
type StripeProvider struct {
	currency string
	domain   string
}

func NewStripeProvider(secretKey, currency, appDomain string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{currency: currency, domain: appDomain}
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, params ports.CheckoutParams) (*domain.CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(params.CheckupName + " Appointment"),
						Description: stripe.String(fmt.Sprintf("Appointment on %s at %s", params.Date, params.Time)),
					},
					UnitAmount: stripe.Int64(params.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("http://%s/payment-success?session_id={CHECKOUT_SESSION_ID}", p.domain)),
		CancelURL:  stripe.String(fmt.Sprintf("http://%s/user/appointment", p.domain)),
	}
	sessionParams.Context = ctx

	s, err := session.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &domain.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) GetPaymentStatus(ctx context.Context, sessionID string) (domain.PaymentStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return "", fmt.Errorf("retrieve checkout session: %w", err)
	}

	if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		return domain.PaymentStatusPaid, nil
	}
	return domain.PaymentStatusUnpaid, nil
}

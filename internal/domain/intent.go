package domain

import "time"

// ReservationIntent captures what a user is paying for, keyed by the
// payment-session reference. It is written when the checkout session is
// created and consumed exactly once when the success callback arrives.
type ReservationIntent struct {
	SessionID  string            `json:"session_id"`
	UserID     string            `json:"user_id"`
	CheckupID  string            `json:"checkup_id"`
	Date       time.Time         `json:"appointment_date"`
	Time       string            `json:"appointment_time"`
	Price      float64           `json:"price"`
	CreatedAt  time.Time         `json:"created_at"`
	ConsumedAt *time.Time        `json:"consumed_at,omitempty"`
	// AppointmentID is set once the intent has been reconciled, so a
	// replayed callback can return the appointment it already produced.
	AppointmentID *string `json:"appointment_id,omitempty"`
}

// CheckoutSession is what the payment collaborator hands back when a
// hosted checkout is created.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentStatus of a checkout session as reported by the processor.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

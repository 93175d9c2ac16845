package domain

import "time"

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Slot is the key capacity is enforced against. Two bookings one second
// apart occupy different slots.
type Slot struct {
	CheckupID string
	Date      time.Time // calendar date, midnight UTC
	Time      string    // wall-clock time, HH:MM:SS
}

type Appointment struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	CheckupID   string            `json:"checkup_id"`
	CheckupName string            `json:"checkup_name"`
	Date        time.Time         `json:"appointment_date"`
	Time        string            `json:"appointment_time"`
	Status      AppointmentStatus `json:"status"`
	PricePaid   float64           `json:"price_paid"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (a *Appointment) Slot() Slot {
	return Slot{CheckupID: a.CheckupID, Date: a.Date, Time: a.Time}
}

// Availability is the advisory read model for a slot. The authoritative
// check happens inside the reservation transaction.
type Availability struct {
	Available bool `json:"available"`
	Remaining int  `json:"remaining"`
	Max       int  `json:"max"`
}

type BookInput struct {
	UserID    string
	CheckupID string
	Date      time.Time
	Time      string
	Status    AppointmentStatus
	// PriceOverride replaces the catalog price snapshot when set
	// (admin-direct creation only).
	PriceOverride *float64
}

type RescheduleInput struct {
	NewDate      *time.Time
	NewTime      *string
	NewCheckupID *string
	NewStatus    *AppointmentStatus
	NewPrice     *float64
}

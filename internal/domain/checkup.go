package domain

import "time"

// CheckupType is a catalog entry. Price and capacity edits never touch
// existing appointments: each appointment snapshots the name and price it
// was booked under.
type CheckupType struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	MaxSlotsPerTime int       `json:"max_slots_per_time"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateCheckupInput struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	MaxSlotsPerTime int
	IsActive        *bool
}

type UpdateCheckupInput struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	MaxSlotsPerTime *int
	IsActive        *bool
}

package domain

import "time"

type Specialist struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Specialization string    `json:"specialization"`
	Bio            string    `json:"bio"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type HealthFact struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	IsFeatured bool      `json:"is_featured"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateSpecialistInput struct {
	Name           string
	Title          string
	Specialization string
	Bio            string
	IsActive       *bool
}

type UpdateSpecialistInput struct {
	Name           *string
	Title          *string
	Specialization *string
	Bio            *string
	IsActive       *bool
}

type CreateHealthFactInput struct {
	Title      string
	Content    string
	Category   string
	IsFeatured *bool
	IsActive   *bool
}

type UpdateHealthFactInput struct {
	Title      *string
	Content    *string
	Category   *string
	IsFeatured *bool
	IsActive   *bool
}

package dto

import (
	"time"

	"github.com/umyrahbh/healthassist/internal/domain"
)

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender,omitempty"`
	Birthday    string `json:"birthday"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CheckupResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	MaxSlotsPerTime int     `json:"max_slots_per_time"`
	IsActive        bool    `json:"is_active"`
	CreatedAt       string  `json:"created_at"`
}

type AppointmentResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	CheckupID   string  `json:"checkup_id"`
	CheckupName string  `json:"checkup_name"`
	Date        string  `json:"appointment_date"`
	Time        string  `json:"appointment_time"`
	Status      string  `json:"status"`
	PricePaid   float64 `json:"price_paid"`
	CreatedAt   string  `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
	Remaining int  `json:"remaining"`
	Max       int  `json:"max"`
}

type CheckoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type SpecialistResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

type HealthFactResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category,omitempty"`
	IsFeatured bool   `json:"is_featured"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Gender:      u.Gender,
		Birthday:    u.Birthday.Format(domain.DateLayout),
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Username:    u.Username,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCheckupResponse(c *domain.CheckupType) CheckupResponse {
	return CheckupResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Price:           c.Price,
		DurationMinutes: c.DurationMinutes,
		MaxSlotsPerTime: c.MaxSlotsPerTime,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		CheckupID:   a.CheckupID,
		CheckupName: a.CheckupName,
		Date:        a.Date.Format(domain.DateLayout),
		Time:        a.Time,
		Status:      string(a.Status),
		PricePaid:   a.PricePaid,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a *domain.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Available: a.Available,
		Remaining: a.Remaining,
		Max:       a.Max,
	}
}

func ToSpecialistResponse(s *domain.Specialist) SpecialistResponse {
	return SpecialistResponse{
		ID:             s.ID,
		Name:           s.Name,
		Title:          s.Title,
		Specialization: s.Specialization,
		Bio:            s.Bio,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func ToHealthFactResponse(f *domain.HealthFact) HealthFactResponse {
	return HealthFactResponse{
		ID:         f.ID,
		Title:      f.Title,
		Content:    f.Content,
		Category:   f.Category,
		IsFeatured: f.IsFeatured,
		IsActive:   f.IsActive,
		CreatedAt:  f.CreatedAt.Format(time.RFC3339),
	}
}

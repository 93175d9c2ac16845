package dto

type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"`
}

type UpdateUserRequest struct {
	Name        *string `json:"name"`
	Gender      *string `json:"gender"`
	Birthday    *string `json:"birthday"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
}

type CreateCheckupRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required"`
	DurationMinutes int     `json:"duration_minutes"`
	MaxSlotsPerTime int     `json:"max_slots_per_time"`
	IsActive        *bool   `json:"is_active"`
}

type UpdateCheckupRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	MaxSlotsPerTime *int     `json:"max_slots_per_time"`
	IsActive        *bool    `json:"is_active"`
}

type BookAppointmentRequest struct {
	UserID    string   `json:"user_id"`
	CheckupID string   `json:"checkup_id" binding:"required,uuid"`
	Date      string   `json:"appointment_date" binding:"required"`
	Time      string   `json:"appointment_time" binding:"required"`
	Status    string   `json:"status"`
	Price     *float64 `json:"price"`
}

type RescheduleAppointmentRequest struct {
	Date      *string  `json:"appointment_date"`
	Time      *string  `json:"appointment_time"`
	CheckupID *string  `json:"checkup_id"`
	Status    *string  `json:"status"`
	Price     *float64 `json:"price"`
}

type CreateCheckoutRequest struct {
	CheckupID string `json:"checkup_id" binding:"required,uuid"`
	Date      string `json:"appointment_date" binding:"required"`
	Time      string `json:"appointment_time" binding:"required"`
}

type CreateSpecialistRequest struct {
	Name           string `json:"name" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Bio            string `json:"bio"`
	IsActive       *bool  `json:"is_active"`
}

type UpdateSpecialistRequest struct {
	Name           *string `json:"name"`
	Title          *string `json:"title"`
	Specialization *string `json:"specialization"`
	Bio            *string `json:"bio"`
	IsActive       *bool   `json:"is_active"`
}

type CreateHealthFactRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Category   string `json:"category"`
	IsFeatured *bool  `json:"is_featured"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateHealthFactRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Category   *string `json:"category"`
	IsFeatured *bool   `json:"is_featured"`
	IsActive   *bool   `json:"is_active"`
}

package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleNormal Role = "Normal"
)

// Actor is the authenticated identity attached to a request.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccessUser reports whether the actor may read or modify resources
// owned by the given user.
func (a Actor) CanAccessUser(userID string) bool {
	return a.IsAdmin() || a.ID == userID
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Birthday     time.Time `json:"birthday"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name        string
	Gender      string
	Birthday    time.Time
	PhoneNumber string
	Email       string
	Username    string
	Password    string
	Role        Role
}

type UpdateUserInput struct {
	Name        *string
	Gender      *string
	Birthday    *time.Time
	PhoneNumber *string
	Email       *string
	Password    *string
	Role        *Role
}

package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCheckupNotFound     = errors.New("checkup type not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSpecialistNotFound  = errors.New("specialist not found")
	ErrHealthFactNotFound  = errors.New("health fact not found")
	ErrIntentNotFound      = errors.New("reservation intent not found")
)

var (
	ErrSlotFull         = errors.New("time slot is already fully booked")
	ErrAlreadyProcessed = errors.New("payment session already processed")
	ErrCheckupInUse     = errors.New("checkup type is referenced by appointments")
	ErrLockTimeout      = errors.New("timed out waiting for slot lock")
	ErrUnavailable      = errors.New("storage temporarily unavailable")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidLogin     = errors.New("invalid username or password")
)

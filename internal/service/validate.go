package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/umyrahbh/healthassist/internal/domain"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 12
	nameMinLen     = 2
	nameMaxLen     = 50
	passwordMinLen = 8
	passwordMaxLen = 64
	phoneMinLen    = 8
	phoneMaxLen    = 15
)

var (
	usernameRe  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	nameRe      = regexp.MustCompile(`^[a-zA-Z\s\-]+$`)
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneTrimRe = regexp.MustCompile(`[\s+()\-]`)
	digitsRe    = regexp.MustCompile(`^[0-9]+$`)

	passUpperRe   = regexp.MustCompile(`[A-Z]`)
	passLowerRe   = regexp.MustCompile(`[a-z]`)
	passDigitRe   = regexp.MustCompile(`\d`)
	passSpecialRe = regexp.MustCompile(`[@$!%*?&#]`)
)

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return fmt.Errorf("%w: username must be between %d and %d characters", domain.ErrValidation, usernameMinLen, usernameMaxLen)
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", domain.ErrValidation)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		return fmt.Errorf("%w: name must be between %d and %d characters", domain.ErrValidation, nameMinLen, nameMaxLen)
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%w: name can only contain letters, spaces, and hyphens", domain.ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return fmt.Errorf("%w: password must be between %d and %d characters", domain.ErrValidation, passwordMinLen, passwordMaxLen)
	}
	if !passUpperRe.MatchString(password) ||
		!passLowerRe.MatchString(password) ||
		!passDigitRe.MatchString(password) ||
		!passSpecialRe.MatchString(password) {
		return fmt.Errorf("%w: password must include an uppercase letter, a lowercase letter, a number, and a special character", domain.ErrValidation)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone number is required", domain.ErrValidation)
	}
	digits := phoneTrimRe.ReplaceAllString(phone, "")
	if len(digits) < phoneMinLen || len(digits) > phoneMaxLen {
		return fmt.Errorf("%w: phone number must be between %d and %d digits", domain.ErrValidation, phoneMinLen, phoneMaxLen)
	}
	if !digitsRe.MatchString(digits) {
		return fmt.Errorf("%w: phone number must contain only digits, spaces, or symbols +()-", domain.ErrValidation)
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", domain.ErrValidation)
	}
	return nil
}

func validateTimeOfDay(t string) error {
	if _, err := time.Parse(domain.TimeLayout, t); err != nil {
		return fmt.Errorf("%w: invalid time, expected HH:MM:SS", domain.ErrValidation)
	}
	return nil
}

// validateSlotDate enforces the not-in-the-past rule for user-initiated
// bookings; admins may backfill.
func validateSlotDate(date time.Time, actor domain.Actor) error {
	if date.IsZero() {
		return fmt.Errorf("%w: appointment date is required", domain.ErrValidation)
	}
	if actor.IsAdmin() {
		return nil
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return fmt.Errorf("%w: appointment date cannot be in the past", domain.ErrValidation)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
)

const (
	defaultDurationMinutes = 30
	defaultMaxSlotsPerTime = 10
)

type CheckupService struct {
	repo ports.CheckupRepo
}

func NewCheckupService(repo ports.CheckupRepo) *CheckupService {
	return &CheckupService{repo: repo}
}

func (s *CheckupService) Create(ctx context.Context, actor domain.Actor, input domain.CreateCheckupInput) (*domain.CheckupType, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if input.DurationMinutes < 0 || input.MaxSlotsPerTime < 0 {
		return nil, fmt.Errorf("%w: duration and slot capacity must be positive", domain.ErrValidation)
	}

	if input.DurationMinutes == 0 {
		input.DurationMinutes = defaultDurationMinutes
	}
	if input.MaxSlotsPerTime == 0 {
		input.MaxSlotsPerTime = defaultMaxSlotsPerTime
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	checkup := &domain.CheckupType{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		MaxSlotsPerTime: input.MaxSlotsPerTime,
		IsActive:        active,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, checkup); err != nil {
		return nil, err
	}

	return checkup, nil
}

func (s *CheckupService) GetByID(ctx context.Context, id string) (*domain.CheckupType, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the catalog; non-admins only see active entries.
func (s *CheckupService) List(ctx context.Context, actor domain.Actor) ([]*domain.CheckupType, error) {
	return s.repo.List(ctx, !actor.IsAdmin())
}

// Update edits catalog data. Capacity and price changes do not touch
// existing appointments; those keep their snapshots.
func (s *CheckupService) Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateCheckupInput) (*domain.CheckupType, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	checkup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		checkup.Name = *input.Name
	}
	if input.Description != nil {
		checkup.Description = *input.Description
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		checkup.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
		}
		checkup.DurationMinutes = *input.DurationMinutes
	}
	if input.MaxSlotsPerTime != nil {
		if *input.MaxSlotsPerTime <= 0 {
			return nil, fmt.Errorf("%w: slot capacity must be positive", domain.ErrValidation)
		}
		checkup.MaxSlotsPerTime = *input.MaxSlotsPerTime
	}
	if input.IsActive != nil {
		checkup.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, checkup); err != nil {
		return nil, err
	}

	return checkup, nil
}

// Delete removes a checkup type. When appointments still reference it the
// repository refuses and reports how many block the delete.
func (s *CheckupService) Delete(ctx context.Context, actor domain.Actor, id string) (int, error) {
	if !actor.IsAdmin() {
		return 0, domain.ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

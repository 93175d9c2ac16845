package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
)

const bioMaxLen = 500

// CatalogService manages the informational catalog shown on the public
// pages: specialists and health facts.
type CatalogService struct {
	repo ports.CatalogRepo
}

func NewCatalogService(repo ports.CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateSpecialist(ctx context.Context, actor domain.Actor, input domain.CreateSpecialistInput) (*domain.Specialist, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if input.Name == "" || input.Title == "" || input.Specialization == "" {
		return nil, fmt.Errorf("%w: name, title and specialization are required", domain.ErrValidation)
	}
	if len(input.Bio) > bioMaxLen {
		return nil, fmt.Errorf("%w: bio cannot exceed %d characters", domain.ErrValidation, bioMaxLen)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	sp := &domain.Specialist{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Title:          input.Title,
		Specialization: input.Specialization,
		Bio:            input.Bio,
		IsActive:       active,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.CreateSpecialist(ctx, sp); err != nil {
		return nil, err
	}

	return sp, nil
}

func (s *CatalogService) GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error) {
	return s.repo.GetSpecialist(ctx, id)
}

func (s *CatalogService) ListSpecialists(ctx context.Context, actor domain.Actor) ([]*domain.Specialist, error) {
	return s.repo.ListSpecialists(ctx, !actor.IsAdmin())
}

func (s *CatalogService) UpdateSpecialist(ctx context.Context, actor domain.Actor, id string, input domain.UpdateSpecialistInput) (*domain.Specialist, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	sp, err := s.repo.GetSpecialist(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		sp.Name = *input.Name
	}
	if input.Title != nil {
		sp.Title = *input.Title
	}
	if input.Specialization != nil {
		sp.Specialization = *input.Specialization
	}
	if input.Bio != nil {
		if len(*input.Bio) > bioMaxLen {
			return nil, fmt.Errorf("%w: bio cannot exceed %d characters", domain.ErrValidation, bioMaxLen)
		}
		sp.Bio = *input.Bio
	}
	if input.IsActive != nil {
		sp.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateSpecialist(ctx, sp); err != nil {
		return nil, err
	}

	return sp, nil
}

func (s *CatalogService) DeleteSpecialist(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	return s.repo.DeleteSpecialist(ctx, id)
}

func (s *CatalogService) CreateHealthFact(ctx context.Context, actor domain.Actor, input domain.CreateHealthFactInput) (*domain.HealthFact, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}

	featured := false
	if input.IsFeatured != nil {
		featured = *input.IsFeatured
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	f := &domain.HealthFact{
		ID:         uuid.New().String(),
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		IsFeatured: featured,
		IsActive:   active,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreateHealthFact(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *CatalogService) GetHealthFact(ctx context.Context, id string) (*domain.HealthFact, error) {
	return s.repo.GetHealthFact(ctx, id)
}

func (s *CatalogService) ListHealthFacts(ctx context.Context, actor domain.Actor) ([]*domain.HealthFact, error) {
	return s.repo.ListHealthFacts(ctx, !actor.IsAdmin())
}

func (s *CatalogService) UpdateHealthFact(ctx context.Context, actor domain.Actor, id string, input domain.UpdateHealthFactInput) (*domain.HealthFact, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	f, err := s.repo.GetHealthFact(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		f.Title = *input.Title
	}
	if input.Content != nil {
		f.Content = *input.Content
	}
	if input.Category != nil {
		f.Category = *input.Category
	}
	if input.IsFeatured != nil {
		f.IsFeatured = *input.IsFeatured
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateHealthFact(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *CatalogService) DeleteHealthFact(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	return s.repo.DeleteHealthFact(ctx, id)
}

package ports

import (
	"context"

	"github.com/umyrahbh/healthassist/internal/domain"
)

type CatalogRepo interface {
	CreateSpecialist(ctx context.Context, s *domain.Specialist) error
	GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error)
	ListSpecialists(ctx context.Context, activeOnly bool) ([]*domain.Specialist, error)
	UpdateSpecialist(ctx context.Context, s *domain.Specialist) error
	DeleteSpecialist(ctx context.Context, id string) error

	CreateHealthFact(ctx context.Context, f *domain.HealthFact) error
	GetHealthFact(ctx context.Context, id string) (*domain.HealthFact, error)
	ListHealthFacts(ctx context.Context, activeOnly bool) ([]*domain.HealthFact, error)
	UpdateHealthFact(ctx context.Context, f *domain.HealthFact) error
	DeleteHealthFact(ctx context.Context, id string) error
}

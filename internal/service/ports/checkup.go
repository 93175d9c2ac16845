package ports

import (
	"context"

	"github.com/umyrahbh/healthassist/internal/domain"
)

type CheckupRepo interface {
	Create(ctx context.Context, c *domain.CheckupType) error
	GetByID(ctx context.Context, id string) (*domain.CheckupType, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.CheckupType, error)
	Update(ctx context.Context, c *domain.CheckupType) error
	Delete(ctx context.Context, id string) (int, error)
}

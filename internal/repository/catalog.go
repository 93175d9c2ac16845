package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CatalogRepository holds the informational catalog: specialists and
// health facts.
type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatalogRepository) CreateSpecialist(ctx context.Context, s *domain.Specialist) error {
	query := `INSERT INTO specialists (id, name, title, specialization, bio, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Name, s.Title, s.Specialization, s.Bio, s.IsActive, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert specialist: %w", storeErr(err))
	}

	return nil
}

func (r *CatalogRepository) GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error) {
	query := `SELECT id, name, title, specialization, bio, is_active, created_at
			  FROM specialists
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get specialist: %w", storeErr(err))
	}

	var s domain.Specialist
	if err = row.Scan(&s.ID, &s.Name, &s.Title, &s.Specialization, &s.Bio, &s.IsActive, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpecialistNotFound
		}
		return nil, fmt.Errorf("scan specialist: %w", storeErr(err))
	}

	return &s, nil
}

func (r *CatalogRepository) ListSpecialists(ctx context.Context, activeOnly bool) ([]*domain.Specialist, error) {
	query := `SELECT id, name, title, specialization, bio, is_active, created_at
			  FROM specialists
			  WHERE ($1 = FALSE OR is_active)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list specialists: %w", storeErr(err))
	}
	defer rows.Close()

	var res []*domain.Specialist
	for rows.Next() {
		var s domain.Specialist
		if err = rows.Scan(&s.ID, &s.Name, &s.Title, &s.Specialization, &s.Bio, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan specialist: %w", storeErr(err))
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *CatalogRepository) UpdateSpecialist(ctx context.Context, s *domain.Specialist) error {
	query := `UPDATE specialists
			  SET name = $2, title = $3, specialization = $4, bio = $5, is_active = $6
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ID, s.Name, s.Title, s.Specialization, s.Bio, s.IsActive)
	if err != nil {
		return fmt.Errorf("update specialist: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("specialist rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return domain.ErrSpecialistNotFound
	}

	return nil
}

func (r *CatalogRepository) DeleteSpecialist(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM specialists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete specialist: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("specialist rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return domain.ErrSpecialistNotFound
	}

	return nil
}

func (r *CatalogRepository) CreateHealthFact(ctx context.Context, f *domain.HealthFact) error {
	query := `INSERT INTO health_facts (id, title, content, category, is_featured, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.Title, f.Content, f.Category, f.IsFeatured, f.IsActive, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert health fact: %w", storeErr(err))
	}

	return nil
}

func (r *CatalogRepository) GetHealthFact(ctx context.Context, id string) (*domain.HealthFact, error) {
	query := `SELECT id, title, content, category, is_featured, is_active, created_at
			  FROM health_facts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get health fact: %w", storeErr(err))
	}

	var f domain.HealthFact
	if err = row.Scan(&f.ID, &f.Title, &f.Content, &f.Category, &f.IsFeatured, &f.IsActive, &f.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHealthFactNotFound
		}
		return nil, fmt.Errorf("scan health fact: %w", storeErr(err))
	}

	return &f, nil
}

func (r *CatalogRepository) ListHealthFacts(ctx context.Context, activeOnly bool) ([]*domain.HealthFact, error) {
	query := `SELECT id, title, content, category, is_featured, is_active, created_at
			  FROM health_facts
			  WHERE ($1 = FALSE OR is_active)
			  ORDER BY is_featured DESC, created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list health facts: %w", storeErr(err))
	}
	defer rows.Close()

	var res []*domain.HealthFact
	for rows.Next() {
		var f domain.HealthFact
		if err = rows.Scan(&f.ID, &f.Title, &f.Content, &f.Category, &f.IsFeatured, &f.IsActive, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan health fact: %w", storeErr(err))
		}
		res = append(res, &f)
	}

	return res, rows.Err()
}

func (r *CatalogRepository) UpdateHealthFact(ctx context.Context, f *domain.HealthFact) error {
	query := `UPDATE health_facts
			  SET title = $2, content = $3, category = $4, is_featured = $5, is_active = $6
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, f.ID, f.Title, f.Content, f.Category, f.IsFeatured, f.IsActive)
	if err != nil {
		return fmt.Errorf("update health fact: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("health fact rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return domain.ErrHealthFactNotFound
	}

	return nil
}

func (r *CatalogRepository) DeleteHealthFact(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM health_facts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete health fact: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("health fact rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return domain.ErrHealthFactNotFound
	}

	return nil
}

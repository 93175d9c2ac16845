package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pgUniqueViolate = "23505"

type CheckupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCheckupRepo(db *dbpg.DB) *CheckupRepository {
	return &CheckupRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CheckupRepository) Create(ctx context.Context, c *domain.CheckupType) error {
	query := `INSERT INTO checkup_types (id, name, description, price, duration_minutes, max_slots_per_time, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Description, c.Price,
		c.DurationMinutes, c.MaxSlotsPerTime, c.IsActive, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolate {
			return fmt.Errorf("%w: checkup name must be unique", domain.ErrValidation)
		}
		return fmt.Errorf("insert checkup: %w", storeErr(err))
	}

	return nil
}

func (r *CheckupRepository) GetByID(ctx context.Context, id string) (*domain.CheckupType, error) {
	query := `SELECT id, name, description, price, duration_minutes, max_slots_per_time, is_active, created_at
			  FROM checkup_types
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get checkup: %w", storeErr(err))
	}

	var c domain.CheckupType
	if err = row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Price,
		&c.DurationMinutes, &c.MaxSlotsPerTime, &c.IsActive, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCheckupNotFound
		}
		return nil, fmt.Errorf("scan checkup: %w", storeErr(err))
	}

	return &c, nil
}

func (r *CheckupRepository) List(ctx context.Context, activeOnly bool) ([]*domain.CheckupType, error) {
	query := `SELECT id, name, description, price, duration_minutes, max_slots_per_time, is_active, created_at
			  FROM checkup_types
			  WHERE ($1 = FALSE OR is_active)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list checkups: %w", storeErr(err))
	}
	defer rows.Close()

	var res []*domain.CheckupType
	for rows.Next() {
		var c domain.CheckupType
		if err = rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Price,
			&c.DurationMinutes, &c.MaxSlotsPerTime, &c.IsActive, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan checkup: %w", storeErr(err))
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CheckupRepository) Update(ctx context.Context, c *domain.CheckupType) error {
	query := `UPDATE checkup_types
			  SET name = $2, description = $3, price = $4, duration_minutes = $5,
			      max_slots_per_time = $6, is_active = $7
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Description, c.Price,
		c.DurationMinutes, c.MaxSlotsPerTime, c.IsActive,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolate {
			return fmt.Errorf("%w: checkup name must be unique", domain.ErrValidation)
		}
		return fmt.Errorf("update checkup: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checkup rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return domain.ErrCheckupNotFound
	}

	return nil
}

// Delete refuses to remove a checkup type that appointments still
// reference and reports how many block it.
func (r *CheckupRepository) Delete(ctx context.Context, id string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", storeErr(err))
	}
	defer tx.Rollback()

	var blocking int
	countQuery := `SELECT COUNT(*) FROM appointments WHERE checkup_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, id).Scan(&blocking); err != nil {
		return 0, fmt.Errorf("count referencing appointments: %w", storeErr(err))
	}
	if blocking > 0 {
		return blocking, domain.ErrCheckupInUse
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM checkup_types WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete checkup: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checkup rows affected: %w", storeErr(err))
	}
	if rows == 0 {
		return 0, domain.ErrCheckupNotFound
	}

	return 0, tx.Commit()
}

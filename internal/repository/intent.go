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

type IntentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewIntentRepo(db *dbpg.DB) *IntentRepository {
	return &IntentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *IntentRepository) Create(ctx context.Context, in *domain.ReservationIntent) error {
	query := `INSERT INTO reservation_intents
			 (session_id, user_id, checkup_id, appointment_date, appointment_time, price, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		in.SessionID, in.UserID, in.CheckupID,
		in.Date, in.Time, in.Price, in.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation intent: %w", storeErr(err))
	}

	return nil
}

func (r *IntentRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.ReservationIntent, error) {
	query := `SELECT session_id, user_id, checkup_id, appointment_date,
			 to_char(appointment_time, 'HH24:MI:SS'), price, created_at, consumed_at, appointment_id
			  FROM reservation_intents
			  WHERE session_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get reservation intent: %w", storeErr(err))
	}

	var in domain.ReservationIntent
	if err = row.Scan(
		&in.SessionID, &in.UserID, &in.CheckupID, &in.Date,
		&in.Time, &in.Price, &in.CreatedAt, &in.ConsumedAt, &in.AppointmentID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIntentNotFound
		}
		return nil, fmt.Errorf("scan reservation intent: %w", storeErr(err))
	}

	return &in, nil
}

// Consume marks the intent consumed if and only if no earlier call already
// did. The conditional update is the idempotency guard: a replayed payment
// callback loses the race here and gets ErrAlreadyProcessed.
func (r *IntentRepository) Consume(ctx context.Context, sessionID string) (*domain.ReservationIntent, error) {
	query := `UPDATE reservation_intents
			  SET consumed_at = now()
			  WHERE session_id = $1 AND consumed_at IS NULL
			  RETURNING session_id, user_id, checkup_id, appointment_date,
			  to_char(appointment_time, 'HH24:MI:SS'), price, created_at, consumed_at, appointment_id`

	var in domain.ReservationIntent
	err := r.db.Master.QueryRowContext(ctx, query, sessionID).Scan(
		&in.SessionID, &in.UserID, &in.CheckupID, &in.Date,
		&in.Time, &in.Price, &in.CreatedAt, &in.ConsumedAt, &in.AppointmentID,
	)
	if err == nil {
		return &in, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("consume reservation intent: %w", storeErr(err))
	}

	// No unconsumed row: either the session is unknown or a previous
	// call already took it.
	existing, err := r.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return existing, domain.ErrAlreadyProcessed
}

// Release undoes a consume whose reservation failed, so the caller may
// retry the callback (e.g. after a transient lock timeout).
func (r *IntentRepository) Release(ctx context.Context, sessionID string) error {
	query := `UPDATE reservation_intents
			  SET consumed_at = NULL
			  WHERE session_id = $1 AND appointment_id IS NULL`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID); err != nil {
		return fmt.Errorf("release reservation intent: %w", storeErr(err))
	}

	return nil
}

// Bind records the appointment a consumed intent produced.
func (r *IntentRepository) Bind(ctx context.Context, sessionID, appointmentID string) error {
	query := `UPDATE reservation_intents SET appointment_id = $2 WHERE session_id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, appointmentID); err != nil {
		return fmt.Errorf("bind reservation intent: %w", storeErr(err))
	}

	return nil
}

// DeleteStale removes unconsumed intents older than the TTL. Consumed
// intents are kept for replayed-callback lookups.
func (r *IntentRepository) DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM reservation_intents
			  WHERE consumed_at IS NULL AND created_at < now() - make_interval(secs => $1)`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("delete stale intents: %w", storeErr(err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("stale intent rows affected: %w", storeErr(err))
	}

	return rows, nil
}

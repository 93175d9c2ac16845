package sweeper

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type intentPurger interface {
	DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Sweeper periodically removes reservation intents whose checkout was
// abandoned. Consumed intents are kept; they are the reconciliation
// record for paid appointments.
type Sweeper struct {
	intents  intentPurger
	interval time.Duration
	ttl      time.Duration
	logger   logger.Logger
}

func New(
	intents intentPurger,
	interval time.Duration,
	ttl time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		intents:  intents,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
		logger.Duration("ttl", s.ttl),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	deleted, err := s.intents.DeleteStale(ctx, s.ttl)
	if err != nil {
		s.logger.Error("failed to delete stale reservation intents",
			logger.String("error", err.Error()),
		)
		return
	}

	if deleted > 0 {
		s.logger.Info("stale reservation intents removed",
			logger.Int64("deleted", deleted),
		)
	}
}

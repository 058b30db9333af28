package repo

import (
	"context"
	"log/slog"
	"time"
)

type expiredDeleter interface {
	DeleteExpiredOrders(ctx context.Context) (int64, error)
}

// Sweeper periodically reclaims orders past their expiry window. Read
// queries already hide expired records, so the sweeper only frees storage.
type Sweeper struct {
	logger   *slog.Logger
	repo     expiredDeleter
	interval time.Duration
}

func NewSweeper(logger *slog.Logger, repo expiredDeleter, interval time.Duration) *Sweeper {
	return &Sweeper{
		logger:   logger.With(slog.String("worker", "order-sweeper")),
		repo:     repo,
		interval: interval,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (s *Sweeper) sweep(ctx context.Context) {
	deleted, err := s.repo.DeleteExpiredOrders(ctx)
	if err != nil {
		s.logger.Error("failed to delete expired orders", slog.Any("error", err))
		return
	}
	if deleted > 0 {
		s.logger.Debug("expired orders deleted", slog.Int64("count", deleted))
	}
}

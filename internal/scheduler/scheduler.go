package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

// Ingester runs one full ingestion pass.
type Ingester interface {
	Run(ctx context.Context) (*domain.IngestStats, error)
}

// Scheduler triggers ingestion on a fixed interval. Each run gets its own
// deadline so one hanging upstream fetch cannot stall the loop forever.
type Scheduler struct {
	ingester   Ingester
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(ingester Ingester, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		ingester:   ingester,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "run_timeout", s.runTimeout)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.ingester.Run(runCtx); err != nil {
		s.logger.Error("ingest run failed", "error", err)
	}
}

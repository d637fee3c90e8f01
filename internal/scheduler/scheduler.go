package scheduler

import (
	"context"
	"log/slog"
	"time"

	"reachsync/internal/domain"
)

// Syncer defines the interface for sync runs.
type Syncer interface {
	Sync(ctx context.Context, ownerID string, platform domain.Platform) (*domain.SyncStats, error)
}

// AssignmentLister enumerates owner+platform pairs with tracked links.
type AssignmentLister interface {
	ListKeys(ctx context.Context) ([]domain.AssignmentKey, error)
}

type Scheduler struct {
	syncer      Syncer
	assignments AssignmentLister
	interval    time.Duration
	logger      *slog.Logger
}

func NewScheduler(syncer Syncer, assignments AssignmentLister, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:      syncer,
		assignments: assignments,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

// runSweep syncs every tracked owner+platform once. A failed run is
// logged and the sweep moves on to the next one.
func (s *Scheduler) runSweep(ctx context.Context) {
	keys, err := s.assignments.ListKeys(ctx)
	if err != nil {
		s.logger.Error("failed to list assignments", "error", err)
		return
	}

	for _, key := range keys {
		if ctx.Err() != nil {
			return
		}

		syncCtx, cancel := context.WithTimeout(ctx, 15*time.Minute)
		_, err := s.syncer.Sync(syncCtx, key.OwnerID, key.Platform)
		cancel()

		if err != nil {
			s.logger.Error("sync failed",
				"owner_id", key.OwnerID,
				"platform", key.Platform,
				"error", err,
			)
		}
	}
}

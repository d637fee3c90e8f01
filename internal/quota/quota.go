// Package quota gates the chat feature behind a per-owner daily
// allowance tracked in a rolling 24-hour window.
package quota

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reachsync/internal/domain"
)

// Window is how long one usage window lasts. The window starts at first
// use, not at a clock boundary.
const Window = 24 * time.Hour

type UsageStore interface {
	Get(ctx context.Context, ownerID string) (*domain.UsageCounter, error)
	GetForUpdate(ctx context.Context, ownerID string) (*domain.UsageCounter, error)
	Save(ctx context.Context, counter *domain.UsageCounter) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Limiter struct {
	store     UsageStore
	txManager TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewLimiter(store UsageStore, txManager TransactionManager, logger *slog.Logger) *Limiter {
	return &Limiter{
		store:     store,
		txManager: txManager,
		logger:    logger.With("component", "quota"),
		now:       time.Now,
	}
}

// CheckAndIncrement consumes one unit of the owner's daily allowance. An
// expired window is reset before the request is evaluated, so the first
// call after expiry always succeeds. The load-evaluate-save runs inside a
// transaction with a row lock; concurrent checks for the same owner
// serialize instead of losing increments.
func (l *Limiter) CheckAndIncrement(ctx context.Context, ownerID string, dailyLimit int) (domain.QuotaDecision, error) {
	var decision domain.QuotaDecision

	err := l.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		counter, err := l.store.GetForUpdate(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("load usage counter: %w", err)
		}

		now := l.now()
		if counter.Expired(now, Window) {
			counter.WindowStart = now
			counter.Count = 0
		}

		if counter.Count >= dailyLimit {
			decision = domain.QuotaDecision{LimitReached: true}
			return nil
		}

		counter.Count++
		if err := l.store.Save(txCtx, counter); err != nil {
			return fmt.Errorf("save usage counter: %w", err)
		}

		decision = domain.QuotaDecision{
			Allowed:   true,
			Remaining: dailyLimit - counter.Count,
		}
		return nil
	})
	if err != nil {
		return domain.QuotaDecision{}, err
	}

	if decision.LimitReached {
		l.logger.Info("daily limit reached", "owner_id", ownerID, "limit", dailyLimit)
	}
	return decision, nil
}

// Peek reports the owner's remaining allowance without consuming it. The
// window-expiry check is applied in memory only; nothing is persisted.
func (l *Limiter) Peek(ctx context.Context, ownerID string, dailyLimit int) (domain.QuotaDecision, error) {
	counter, err := l.store.Get(ctx, ownerID)
	if err != nil {
		return domain.QuotaDecision{}, fmt.Errorf("load usage counter: %w", err)
	}

	if counter.Expired(l.now(), Window) {
		counter.Count = 0
	}

	if counter.Count >= dailyLimit {
		return domain.QuotaDecision{LimitReached: true}, nil
	}
	return domain.QuotaDecision{
		Allowed:   true,
		Remaining: dailyLimit - counter.Count,
	}, nil
}

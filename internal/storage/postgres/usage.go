package postgres

import (
	"context"
	"database/sql"

	"reachsync/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UsageStore struct {
	db *sqlx.DB
}

func NewUsageStore(db *sqlx.DB) *UsageStore {
	return &UsageStore{db: db}
}

// Get returns the owner's usage counter, or a zero counter when the owner
// has never been checked.
func (s *UsageStore) Get(ctx context.Context, ownerID string) (*domain.UsageCounter, error) {
	return s.get(ctx, ownerID, false)
}

// GetForUpdate is Get with a row lock; callers must run inside a
// transaction started through TransactionManager.
func (s *UsageStore) GetForUpdate(ctx context.Context, ownerID string) (*domain.UsageCounter, error) {
	return s.get(ctx, ownerID, true)
}

func (s *UsageStore) get(ctx context.Context, ownerID string, forUpdate bool) (*domain.UsageCounter, error) {
	query := `
		SELECT owner_id, window_start, count
		FROM usage_counters
		WHERE owner_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var counter domain.UsageCounter
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &counter, query, ownerID)
	if err == sql.ErrNoRows {
		return &domain.UsageCounter{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

func (s *UsageStore) Save(ctx context.Context, counter *domain.UsageCounter) error {
	query := `
		INSERT INTO usage_counters (owner_id, window_start, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE SET
			window_start = EXCLUDED.window_start,
			count = EXCLUDED.count`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		counter.OwnerID,
		counter.WindowStart,
		counter.Count,
	)
	return err
}

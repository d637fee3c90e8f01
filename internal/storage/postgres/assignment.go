package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"reachsync/internal/domain"
)

type AssignmentStore struct {
	db *sqlx.DB
}

func NewAssignmentStore(db *sqlx.DB) *AssignmentStore {
	return &AssignmentStore{db: db}
}

// Get returns the owner's link assignment for a platform, or an empty
// assignment when none exists yet.
func (s *AssignmentStore) Get(ctx context.Context, ownerID string, platform domain.Platform) (*domain.LinkAssignment, error) {
	return s.get(ctx, ownerID, platform, false)
}

// GetForUpdate is Get with a row lock; callers must run inside a
// transaction started through TransactionManager.
func (s *AssignmentStore) GetForUpdate(ctx context.Context, ownerID string, platform domain.Platform) (*domain.LinkAssignment, error) {
	return s.get(ctx, ownerID, platform, true)
}

func (s *AssignmentStore) get(ctx context.Context, ownerID string, platform domain.Platform, forUpdate bool) (*domain.LinkAssignment, error) {
	query := `
		SELECT links, last_refreshed_at
		FROM link_assignments
		WHERE owner_id = $1 AND platform = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var links pq.StringArray
	var lastRefreshed sql.NullTime

	exec := GetExecutor(ctx, s.db)
	err := exec.QueryRowxContext(ctx, query, ownerID, platform).Scan(&links, &lastRefreshed)
	if err == sql.ErrNoRows {
		return &domain.LinkAssignment{
			OwnerID:  ownerID,
			Platform: platform,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	assignment := &domain.LinkAssignment{
		OwnerID:  ownerID,
		Platform: platform,
		Links:    []string(links),
	}
	if lastRefreshed.Valid {
		t := lastRefreshed.Time
		assignment.LastRefreshedAt = &t
	}
	return assignment, nil
}

// Save writes the full link set for owner+platform, preserving
// last_refreshed_at on conflict.
func (s *AssignmentStore) Save(ctx context.Context, assignment *domain.LinkAssignment) error {
	query := `
		INSERT INTO link_assignments (owner_id, platform, links)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, platform) DO UPDATE SET
			links = EXCLUDED.links`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		assignment.OwnerID,
		assignment.Platform,
		pq.Array(assignment.Links),
	)
	return err
}

// TouchRefreshed stamps the assignment with the current time.
func (s *AssignmentStore) TouchRefreshed(ctx context.Context, ownerID string, platform domain.Platform) error {
	query := `
		UPDATE link_assignments
		SET last_refreshed_at = NOW()
		WHERE owner_id = $1 AND platform = $2`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query, ownerID, platform)
	return err
}

// ListKeys returns every owner+platform pair that has at least one link,
// used by the scheduler to sweep all tracked accounts.
func (s *AssignmentStore) ListKeys(ctx context.Context) ([]domain.AssignmentKey, error) {
	query := `
		SELECT owner_id, platform
		FROM link_assignments
		WHERE cardinality(links) > 0
		ORDER BY owner_id, platform`

	var keys []domain.AssignmentKey
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &keys, query)
	return keys, err
}

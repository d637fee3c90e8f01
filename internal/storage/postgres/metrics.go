package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"reachsync/internal/domain"
)

type MetricsStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewMetricsStore(db *sqlx.DB, logger *slog.Logger) *MetricsStore {
	return &MetricsStore{db: db, logger: logger.With("store", "content_metrics")}
}

// Upsert merge-writes a record keyed by (owner_id, canonical_id). Counts
// and error_message overwrite; nullable descriptive fields keep the stored
// value when the incoming one is absent. last_fetched is always stamped by
// the database at write time, never taken from the caller.
func (s *MetricsStore) Upsert(ctx context.Context, record *domain.ContentMetricsRecord) error {
	query := `
		INSERT INTO content_metrics (
			owner_id, canonical_id, platform, likes, comments, plays, reshares,
			title, thumbnail_url, posted_at, last_fetched, error_message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), $11
		)
		ON CONFLICT (owner_id, canonical_id) DO UPDATE SET
			platform = EXCLUDED.platform,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			plays = EXCLUDED.plays,
			reshares = EXCLUDED.reshares,
			title = COALESCE(EXCLUDED.title, content_metrics.title),
			thumbnail_url = COALESCE(EXCLUDED.thumbnail_url, content_metrics.thumbnail_url),
			posted_at = COALESCE(EXCLUDED.posted_at, content_metrics.posted_at),
			last_fetched = NOW(),
			error_message = EXCLUDED.error_message`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		record.OwnerID,
		record.CanonicalID,
		record.Platform,
		record.Counts.Likes,
		record.Counts.Comments,
		record.Counts.Plays,
		record.Counts.Reshares,
		record.Title,
		record.ThumbnailURL,
		record.PostedAt,
		record.ErrorMessage,
	)
	return err
}

// ListAll returns every cached record for the owner, freshest first.
func (s *MetricsStore) ListAll(ctx context.Context, ownerID string) ([]domain.ContentMetricsRecord, error) {
	query := `
		SELECT owner_id, canonical_id, platform, likes, comments, plays, reshares,
		       title, thumbnail_url, posted_at, last_fetched, error_message
		FROM content_metrics
		WHERE owner_id = $1
		ORDER BY last_fetched DESC`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ContentMetricsRecord
	for rows.Next() {
		record, err := scanMetricsRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// Delete removes one record; a missing record is success, the point is
// that it is absent afterward.
func (s *MetricsStore) Delete(ctx context.Context, ownerID, canonicalID string) error {
	query := `DELETE FROM content_metrics WHERE owner_id = $1 AND canonical_id = $2`
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, ownerID, canonicalID)
	return err
}

// Reconcile deletes cached records for owner+platform whose canonical ID
// is no longer in validIDs. Deletes are best-effort: individual failures
// are logged and the pass continues, so an orphan may linger until the
// next run.
func (s *MetricsStore) Reconcile(ctx context.Context, ownerID string, platform domain.Platform, validIDs map[string]struct{}) error {
	query := `SELECT canonical_id FROM content_metrics WHERE owner_id = $1 AND platform = $2`

	var stored []string
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &stored, query, ownerID, platform); err != nil {
		return err
	}

	for _, id := range stored {
		if _, ok := validIDs[id]; ok {
			continue
		}
		if err := s.Delete(ctx, ownerID, id); err != nil {
			s.logger.Warn("failed to delete orphaned record",
				"owner_id", ownerID,
				"canonical_id", id,
				"error", err,
			)
		}
	}
	return nil
}

func scanMetricsRecord(rows *sqlx.Rows) (*domain.ContentMetricsRecord, error) {
	var record domain.ContentMetricsRecord
	var title, thumbnail, errMsg sql.NullString
	var postedAt sql.NullTime

	err := rows.Scan(
		&record.OwnerID,
		&record.CanonicalID,
		&record.Platform,
		&record.Counts.Likes,
		&record.Counts.Comments,
		&record.Counts.Plays,
		&record.Counts.Reshares,
		&title,
		&thumbnail,
		&postedAt,
		&record.LastFetched,
		&errMsg,
	)
	if err != nil {
		return nil, err
	}

	if title.Valid {
		record.Title = &title.String
	}
	if thumbnail.Valid {
		record.ThumbnailURL = &thumbnail.String
	}
	if postedAt.Valid {
		t := postedAt.Time
		record.PostedAt = &t
	}
	if errMsg.Valid {
		record.ErrorMessage = &errMsg.String
	}
	return &record, nil
}

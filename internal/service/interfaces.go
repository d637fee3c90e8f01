package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"reachsync/internal/domain"
)

type LinkRegistry interface {
	List(ctx context.Context, ownerID string, platform domain.Platform) (*domain.LinkAssignment, error)
	TouchRefreshed(ctx context.Context, ownerID string, platform domain.Platform) error
}

type MetricsStore interface {
	Upsert(ctx context.Context, record *domain.ContentMetricsRecord) error
	Reconcile(ctx context.Context, ownerID string, platform domain.Platform, validIDs map[string]struct{}) error
}

// BatchSource fetches metrics for many canonical IDs in one call.
type BatchSource interface {
	Platform() domain.Platform
	FetchBatch(ctx context.Context, canonicalIDs []string) ([]domain.FetchedMetrics, error)
}

// SingleSource fetches metrics one raw URL at a time and never returns a
// transport error across the boundary.
type SingleSource interface {
	Platform() domain.Platform
	Fetch(ctx context.Context, rawURL string) domain.SingleFetchResult
}

type EventPublisher interface {
	PublishProgress(ctx context.Context, stats *domain.SyncStats) error
	PublishSummary(ctx context.Context, stats *domain.SyncStats) error
	Close() error
}

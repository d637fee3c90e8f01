package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reachsync/internal/config"
	"reachsync/internal/domain"
	"reachsync/internal/resolver"
)

// SyncService re-fetches engagement metrics for every link an owner has
// assigned on one platform and keeps the cached records in step with the
// assignment. Items are processed strictly sequentially; a fixed delay
// between single-item fetches is the run's only throttle.
type SyncService struct {
	registry      LinkRegistry
	metrics       MetricsStore
	batchSources  map[domain.Platform]BatchSource
	singleSources map[domain.Platform]SingleSource
	publisher     EventPublisher
	logger        *slog.Logger
	config        config.SyncConfig
	locks         *runLocks
}

func NewSyncService(
	registry LinkRegistry,
	metrics MetricsStore,
	batchSources []BatchSource,
	singleSources []SingleSource,
	publisher EventPublisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	batch := make(map[domain.Platform]BatchSource, len(batchSources))
	for _, src := range batchSources {
		batch[src.Platform()] = src
	}
	single := make(map[domain.Platform]SingleSource, len(singleSources))
	for _, src := range singleSources {
		single[src.Platform()] = src
	}

	return &SyncService{
		registry:      registry,
		metrics:       metrics,
		batchSources:  batch,
		singleSources: single,
		publisher:     publisher,
		logger:        logger.With("component", "sync"),
		config:        cfg,
		locks:         newRunLocks(),
	}
}

// workItem is one deduplicated fetch target. rawURL is the first raw link
// that resolved to the canonical ID.
type workItem struct {
	canonicalID string
	rawURL      string
}

// Sync runs one full pass for owner+platform. Item-level failures are
// absorbed into error-tagged records and the run continues; only
// registry and store level errors fail the run. Runs for the same
// owner+platform serialize behind a keyed lock.
func (s *SyncService) Sync(ctx context.Context, ownerID string, platform domain.Platform) (*domain.SyncStats, error) {
	unlock := s.locks.Lock(string(platform) + "/" + ownerID)
	defer unlock()

	startTime := time.Now()
	stats := &domain.SyncStats{
		RunID:    uuid.NewString(),
		OwnerID:  ownerID,
		Platform: platform,
	}
	logger := s.logger.With("run_id", stats.RunID, "owner_id", ownerID, "platform", platform)

	assignment, err := s.registry.List(ctx, ownerID, platform)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	items := s.resolveLinks(logger, platform, assignment.Links, stats)
	stats.Total = len(items)

	logger.Info("starting sync run",
		"links", len(assignment.Links),
		"items", stats.Total,
		"unresolved", stats.Unresolved,
	)

	if stats.Total > 0 {
		if src, ok := s.batchSources[platform]; ok {
			s.processBatch(ctx, src, ownerID, items, stats)
		} else if src, ok := s.singleSources[platform]; ok {
			if err := s.processSequential(ctx, src, ownerID, items, stats); err != nil {
				return stats, err
			}
		} else {
			return nil, fmt.Errorf("no source configured for platform %q", platform)
		}
	}

	validIDs := make(map[string]struct{}, len(items))
	for _, item := range items {
		validIDs[item.canonicalID] = struct{}{}
	}
	if err := s.metrics.Reconcile(ctx, ownerID, platform, validIDs); err != nil {
		logger.Warn("reconciliation failed", "error", err)
	}

	if err := s.registry.TouchRefreshed(ctx, ownerID, platform); err != nil {
		return stats, fmt.Errorf("touch refresh timestamp: %w", err)
	}

	stats.Duration = time.Since(startTime)
	s.publishSummary(ctx, logger, stats)

	logger.Info("sync run completed",
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"unresolved", stats.Unresolved,
		"total", stats.Total,
		"duration", stats.Duration,
	)

	return stats, nil
}

// resolveLinks maps raw links to deduplicated work items. Unresolvable
// links are counted, not fatal; duplicate canonical IDs collapse into one
// item keeping the first raw form.
func (s *SyncService) resolveLinks(logger *slog.Logger, platform domain.Platform, links []string, stats *domain.SyncStats) []workItem {
	seen := make(map[string]struct{}, len(links))
	var items []workItem

	for _, link := range links {
		res := resolver.Resolve(platform, link)
		if !res.Resolved() {
			stats.Unresolved++
			logger.Debug("unresolvable link", "link", link, "reason", res.Reason)
			continue
		}
		if _, ok := seen[res.CanonicalID]; ok {
			continue
		}
		seen[res.CanonicalID] = struct{}{}
		items = append(items, workItem{canonicalID: res.CanonicalID, rawURL: res.Raw})
	}

	return items
}

func (s *SyncService) processBatch(ctx context.Context, src BatchSource, ownerID string, items []workItem, stats *domain.SyncStats) {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.canonicalID
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	fetched, err := src.FetchBatch(fetchCtx, ids)
	cancel()

	batchErr := ""
	if err != nil {
		batchErr = err.Error()
		s.logger.Warn("batch fetch failed", "owner_id", ownerID, "error", err)
	}

	byID := make(map[string]domain.FetchedMetrics, len(fetched))
	for _, m := range fetched {
		byID[m.CanonicalID] = m
	}

	for _, item := range items {
		if m, ok := byID[item.canonicalID]; ok {
			s.recordSuccess(ctx, ownerID, src.Platform(), m, stats)
		} else {
			msg := batchErr
			if msg == "" {
				msg = "not returned by provider"
			}
			s.recordFailure(ctx, ownerID, src.Platform(), item.canonicalID, msg, stats)
		}

		stats.Processed++
		s.publishProgress(ctx, stats)
	}
}

func (s *SyncService) processSequential(ctx context.Context, src SingleSource, ownerID string, items []workItem, stats *domain.SyncStats) error {
	for i, item := range items {
		// Fixed delay between successive provider calls; this is the
		// rate-limit backpressure, not an optimization knob.
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.config.ItemDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
		result := src.Fetch(fetchCtx, item.rawURL)
		cancel()

		if result.Success {
			m := domain.FetchedMetrics{
				CanonicalID: item.canonicalID,
				Counts:      result.Counts,
				PostedAt:    result.PostedAt,
			}
			s.recordSuccess(ctx, ownerID, src.Platform(), m, stats)
		} else {
			s.recordFailure(ctx, ownerID, src.Platform(), item.canonicalID, result.ErrorMessage, stats)
		}

		stats.Processed++
		s.publishProgress(ctx, stats)
	}

	return nil
}

func (s *SyncService) recordSuccess(ctx context.Context, ownerID string, platform domain.Platform, m domain.FetchedMetrics, stats *domain.SyncStats) {
	record := &domain.ContentMetricsRecord{
		OwnerID:      ownerID,
		CanonicalID:  m.CanonicalID,
		Platform:     platform,
		Counts:       m.Counts,
		Title:        m.Title,
		ThumbnailURL: m.ThumbnailURL,
		PostedAt:     m.PostedAt,
	}

	if err := s.metrics.Upsert(ctx, record); err != nil {
		s.logger.Warn("failed to store metrics",
			"owner_id", ownerID,
			"canonical_id", m.CanonicalID,
			"error", err,
		)
		stats.Failed++
		return
	}
	stats.Succeeded++
}

// recordFailure writes an error-tagged placeholder with zeroed counts so
// the owner can see which items keep failing. The placeholder never
// blocks future re-fetch attempts.
func (s *SyncService) recordFailure(ctx context.Context, ownerID string, platform domain.Platform, canonicalID, message string, stats *domain.SyncStats) {
	record := &domain.ContentMetricsRecord{
		OwnerID:      ownerID,
		CanonicalID:  canonicalID,
		Platform:     platform,
		ErrorMessage: &message,
	}

	if err := s.metrics.Upsert(ctx, record); err != nil {
		s.logger.Warn("failed to store error placeholder",
			"owner_id", ownerID,
			"canonical_id", canonicalID,
			"error", err,
		)
	}
	stats.Failed++
}

func (s *SyncService) publishProgress(ctx context.Context, stats *domain.SyncStats) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProgress(ctx, stats); err != nil {
		s.logger.Warn("failed to publish progress", "run_id", stats.RunID, "error", err)
	}
}

func (s *SyncService) publishSummary(ctx context.Context, logger *slog.Logger, stats *domain.SyncStats) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSummary(ctx, stats); err != nil {
		logger.Warn("failed to publish summary", "error", err)
	}
}

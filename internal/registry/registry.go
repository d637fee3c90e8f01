// Package registry owns the authoritative set of links an owner wants
// tracked per platform.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"reachsync/internal/domain"
)

type AssignmentStore interface {
	Get(ctx context.Context, ownerID string, platform domain.Platform) (*domain.LinkAssignment, error)
	GetForUpdate(ctx context.Context, ownerID string, platform domain.Platform) (*domain.LinkAssignment, error)
	Save(ctx context.Context, assignment *domain.LinkAssignment) error
	TouchRefreshed(ctx context.Context, ownerID string, platform domain.Platform) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Registry struct {
	store     AssignmentStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewRegistry(store AssignmentStore, txManager TransactionManager, logger *slog.Logger) *Registry {
	return &Registry{
		store:     store,
		txManager: txManager,
		logger:    logger.With("component", "registry"),
	}
}

// Assign adds newLinks to the owner's set and returns how many were
// genuinely new. Re-assigning existing links is a no-op for count
// purposes. The read-modify-write runs inside a transaction with a row
// lock so concurrent assigns for the same owner cannot lose updates.
func (r *Registry) Assign(ctx context.Context, ownerID string, platform domain.Platform, newLinks []string) (int, error) {
	if !platform.Valid() {
		return 0, fmt.Errorf("unknown platform %q", platform)
	}

	var added int
	err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		assignment, err := r.store.GetForUpdate(txCtx, ownerID, platform)
		if err != nil {
			return fmt.Errorf("load assignment: %w", err)
		}

		existing := make(map[string]struct{}, len(assignment.Links))
		for _, link := range assignment.Links {
			existing[link] = struct{}{}
		}

		for _, link := range newLinks {
			link = strings.TrimSpace(link)
			if link == "" {
				continue
			}
			if _, ok := existing[link]; ok {
				continue
			}
			existing[link] = struct{}{}
			assignment.Links = append(assignment.Links, link)
			added++
		}

		if added == 0 {
			return nil
		}
		if err := r.store.Save(txCtx, assignment); err != nil {
			return fmt.Errorf("save assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Debug("links assigned",
		"owner_id", ownerID,
		"platform", platform,
		"added", added,
	)
	return added, nil
}

// List returns the owner's current link set.
func (r *Registry) List(ctx context.Context, ownerID string, platform domain.Platform) (*domain.LinkAssignment, error) {
	return r.store.Get(ctx, ownerID, platform)
}

// Remove takes one link out of the set. Removing a link that is not
// present is a successful no-op.
func (r *Registry) Remove(ctx context.Context, ownerID string, platform domain.Platform, link string) error {
	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		assignment, err := r.store.GetForUpdate(txCtx, ownerID, platform)
		if err != nil {
			return fmt.Errorf("load assignment: %w", err)
		}

		kept := assignment.Links[:0]
		for _, l := range assignment.Links {
			if l != link {
				kept = append(kept, l)
			}
		}
		if len(kept) == len(assignment.Links) {
			return nil
		}
		assignment.Links = kept

		if err := r.store.Save(txCtx, assignment); err != nil {
			return fmt.Errorf("save assignment: %w", err)
		}
		return nil
	})
}

// TouchRefreshed stamps the assignment's last refresh time; called by the
// sync service at run completion.
func (r *Registry) TouchRefreshed(ctx context.Context, ownerID string, platform domain.Platform) error {
	return r.store.TouchRefreshed(ctx, ownerID, platform)
}

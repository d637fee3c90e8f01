package domain

import "time"

// FetchedMetrics is one item of a bulk fetch response, already mapped to
// domain counts.
type FetchedMetrics struct {
	CanonicalID  string
	Counts       Counts
	Title        *string
	ThumbnailURL *string
	PostedAt     *time.Time
}

// SingleFetchResult is the structured outcome of a single-item fetch. The
// boundary never surfaces transport errors directly; failures arrive as
// Success=false with an ErrorMessage.
type SingleFetchResult struct {
	Success      bool
	CanonicalID  string
	Counts       Counts
	PostedAt     *time.Time
	ErrorMessage string
}

// AssignmentKey identifies one owner+platform link set.
type AssignmentKey struct {
	OwnerID  string   `db:"owner_id"`
	Platform Platform `db:"platform"`
}

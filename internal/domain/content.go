package domain

import "time"

// Platform identifies the external source a link belongs to.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

func (p Platform) Valid() bool {
	return p == PlatformYouTube || p == PlatformInstagram
}

// LinkAssignment is the authoritative set of raw links an owner wants
// tracked on one platform. Raw URLs are stored verbatim; normalization
// happens at resolve time.
type LinkAssignment struct {
	OwnerID         string
	Platform        Platform
	Links           []string
	LastRefreshedAt *time.Time
}

// Counts holds the engagement numbers for one piece of content.
type Counts struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Plays    int64 `json:"plays"`
	Reshares int64 `json:"reshares"`
}

// ContentMetricsRecord is the cached last-known metrics for one canonical
// content ID. A record with ErrorMessage set is a failed-fetch placeholder;
// it still counts as present and does not block future re-fetch attempts.
type ContentMetricsRecord struct {
	OwnerID      string
	CanonicalID  string
	Platform     Platform
	Counts       Counts
	Title        *string
	ThumbnailURL *string
	PostedAt     *time.Time
	LastFetched  time.Time
	ErrorMessage *string
}

func (r *ContentMetricsRecord) Failed() bool {
	return r.ErrorMessage != nil && *r.ErrorMessage != ""
}

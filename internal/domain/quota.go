package domain

import "time"

// UsageCounter tracks requests inside a rolling window per owner. The
// window starts at first use, not at a clock boundary; once 24h have
// elapsed the next check resets it.
type UsageCounter struct {
	OwnerID     string    `db:"owner_id"`
	WindowStart time.Time `db:"window_start"`
	Count       int       `db:"count"`
}

// Expired reports whether the counter's window has elapsed at now.
func (c *UsageCounter) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(c.WindowStart) >= window
}

// QuotaDecision is the outcome of a quota check.
type QuotaDecision struct {
	Allowed      bool
	Remaining    int
	LimitReached bool
}

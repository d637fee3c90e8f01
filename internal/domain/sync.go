package domain

import "time"

// SyncStats holds statistics about one sync run for an owner+platform.
type SyncStats struct {
	RunID      string
	OwnerID    string
	Platform   Platform
	Total      int
	Processed  int
	Succeeded  int
	Failed     int
	Unresolved int
	Duration   time.Duration
}

// Progress returns completion in percent, in [0,100].
func (s *SyncStats) Progress() int {
	if s.Total == 0 {
		return 100
	}
	return s.Processed * 100 / s.Total
}

package service

import "sync"

// runLocks serializes sync runs per owner+platform. Concurrent triggers
// for the same key queue behind each other instead of racing on metrics
// writes. Entries are never removed; the map is bounded by the number of
// distinct owner+platform pairs.
type runLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRunLocks() *runLocks {
	return &runLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for key and returns its unlock function.
func (r *runLocks) Lock(key string) func() {
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count     int
	resetTime time.Time
}

// MemoryLimiter is a fixed-window counter map for single-instance
// deployments. Entries are never evicted; the map grows with the
// number of distinct clients seen over the process lifetime, which is
// acceptable for contact-form traffic volumes.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	limit  int
	window time.Duration
	now    func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*entry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// WithClock overrides the limiter's time source. Tests use this to
// control window rollover deterministically.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetTime) {
		// First request from this key, or the previous window expired:
		// start a fresh window.
		l.entries[key] = &entry{count: 1, resetTime: now.Add(l.window)}
		return true, nil
	}

	if e.count >= l.limit {
		return false, nil
	}

	e.count++
	return true, nil
}

// Len reports how many client keys the limiter currently tracks.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

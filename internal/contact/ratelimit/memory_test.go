package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewMemoryLimiter(5, 15*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should be allowed", i+1)
	}

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok, "6th request in the window should be denied")
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, 15*time.Minute)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "1.2.3.4")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "a different client has its own budget")
}

func TestMemoryLimiter_WindowRollover(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(5, 15*time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, _ := l.Allow(ctx, "1.2.3.4")
		require.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "1.2.3.4")
	require.False(t, ok)

	// Still inside the window.
	now = now.Add(14 * time.Minute)
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	// Past the reset time: a fresh window starts with a full budget.
	now = now.Add(2 * time.Minute)
	for i := 0; i < 5; i++ {
		ok, _ = l.Allow(ctx, "1.2.3.4")
		assert.True(t, ok, "request %d of the new window should be allowed", i+1)
	}
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)
}

func TestMemoryLimiter_EntriesAreNeverEvicted(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(5, 15*time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	_, _ = l.Allow(ctx, "a")
	_, _ = l.Allow(ctx, "b")
	now = now.Add(time.Hour)
	_, _ = l.Allow(ctx, "c")

	assert.Equal(t, 3, l.Len())
}

func TestMemoryLimiter_ConcurrentSameKey(t *testing.T) {
	l := NewMemoryLimiter(5, 15*time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, allowed, "exactly the budget must be granted under contention")
}

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	errs "boomstream/internal/domain/error"
	"boomstream/internal/domain/port/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func slot(id string, at time.Time) ratelimit.Slot {
	return ratelimit.Slot{ID: id, At: at}
}

// fill admits n slots for the user, one second apart starting at base
func fill(t *testing.T, store *MemoryStore, userID uint64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("c-%d", i)
		require.NoError(t, store.TryAdmit(context.Background(), userID, slot(id, base.Add(time.Duration(i)*time.Second))))
	}
}

func TestTryAdmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Admits up to the window capacity", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 5)
	})

	t.Run("Rejects the comment above the capacity", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 5)

		err := store.TryAdmit(ctx, 1, slot("c-5", base.Add(5*time.Second)))
		assert.ErrorIs(t, err, errs.ErrRateLimited)

		var rateErr *errs.RateLimitError
		require.True(t, errors.As(err, &rateErr))
		assert.Equal(t, uint64(1), rateErr.AccountID)
	})

	t.Run("Slots outside the window no longer count", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 5)

		// 61s after the first slot: it has left the window
		err := store.TryAdmit(ctx, 1, slot("c-5", base.Add(61*time.Second)))
		assert.NoError(t, err)
	})

	t.Run("A slot exactly one window old is pruned", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 1)
		require.NoError(t, store.TryAdmit(ctx, 1, slot("c-0", base)))

		err := store.TryAdmit(ctx, 1, slot("c-1", base.Add(time.Minute)))
		assert.NoError(t, err)
	})

	t.Run("Users are limited independently", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 5)

		err := store.TryAdmit(ctx, 2, slot("c-other", base.Add(5*time.Second)))
		assert.NoError(t, err)
	})
}

func TestTryAdmitConcurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("Exactly one caller wins the last slot", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 4)

		at := base.Add(10 * time.Second)
		var admitted atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if store.TryAdmit(ctx, 1, slot(fmt.Sprintf("racer-%d", i), at)) == nil {
					admitted.Add(1)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(1), admitted.Load())
	})

	t.Run("Concurrent users do not contend for each other's capacity", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)

		var admitted atomic.Int32
		var wg sync.WaitGroup
		for user := uint64(1); user <= 4; user++ {
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func(user uint64, i int) {
					defer wg.Done()
					id := fmt.Sprintf("u%d-c%d", user, i)
					if store.TryAdmit(ctx, user, slot(id, base)) == nil {
						admitted.Add(1)
					}
				}(user, i)
			}
		}
		wg.Wait()

		// Each of the 4 users gets exactly 5 of their 8 attempts through
		assert.Equal(t, int32(20), admitted.Load())
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("Releasing a slot frees capacity within the window", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 5)

		at := base.Add(5 * time.Second)
		assert.ErrorIs(t, store.TryAdmit(ctx, 1, slot("c-5", at)), errs.ErrRateLimited)

		require.NoError(t, store.Release(ctx, 1, slot("c-2", base.Add(2*time.Second))))
		assert.NoError(t, store.TryAdmit(ctx, 1, slot("c-5", at)))
	})

	t.Run("Slots sharing a timestamp stay distinguishable by ID", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 2)
		require.NoError(t, store.TryAdmit(ctx, 1, slot("c-a", base)))
		require.NoError(t, store.TryAdmit(ctx, 1, slot("c-b", base)))

		require.NoError(t, store.Release(ctx, 1, slot("c-a", base)))

		// Exactly one unit of capacity came back
		assert.NoError(t, store.TryAdmit(ctx, 1, slot("c-c", base)))
		assert.ErrorIs(t, store.TryAdmit(ctx, 1, slot("c-d", base)), errs.ErrRateLimited)
	})

	t.Run("Releasing an unknown slot is a no-op", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		fill(t, store, 1, 5)

		require.NoError(t, store.Release(ctx, 1, slot("never-admitted", base)))
		assert.ErrorIs(t, store.TryAdmit(ctx, 1, slot("c-5", base.Add(5*time.Second))), errs.ErrRateLimited)
	})

	t.Run("Releasing for an untracked user is a no-op", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		assert.NoError(t, store.Release(ctx, 99, slot("c-0", base)))
	})

	t.Run("A slot without an ID falls back to the timestamp", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 1)
		require.NoError(t, store.TryAdmit(ctx, 1, slot("c-0", base)))

		require.NoError(t, store.Release(ctx, 1, slot("", base)))
		assert.NoError(t, store.TryAdmit(ctx, 1, slot("c-1", base)))
	})

	t.Run("Releasing the last slot drops the user entry", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5)
		require.NoError(t, store.TryAdmit(ctx, 1, slot("c-0", base)))

		require.NoError(t, store.Release(ctx, 1, slot("c-0", base)))
		assert.Empty(t, store.entries)
	})
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("Idle users are removed", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, 5, WithIdleTTL(time.Minute))

		stale := time.Now().Add(-time.Hour)
		require.NoError(t, store.TryAdmit(ctx, 1, slot("c-0", stale)))
		require.NoError(t, store.TryAdmit(ctx, 2, slot("c-1", time.Now())))

		store.Cleanup()

		_, staleKept := store.entries[1]
		_, freshKept := store.entries[2]
		assert.False(t, staleKept)
		assert.True(t, freshKept)
	})
}

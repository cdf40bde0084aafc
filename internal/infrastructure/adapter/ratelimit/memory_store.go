// Package ratelimit provides the backing stores for comment admission
// control: an in-memory sliding window for single-instance deployments and
// a Redis sorted-set window for horizontally scaled ones.
package ratelimit

import (
	"context"
	"sync"
	"time"

	errs "boomstream/internal/domain/error"
	"boomstream/internal/domain/port/ratelimit"
)

// MemoryStore is a sliding-window admitter backed by a per-user slot list
// with a single lock and periodic cleanup of idle users.
type MemoryStore struct {
	mu           sync.Mutex
	entries      map[uint64]*windowEntry
	windowSize   time.Duration
	maxSlots     int
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type windowEntry struct {
	slots    []ratelimit.Slot
	lastSeen time.Time
}

type MemoryStoreOption func(*MemoryStore)

func WithIdleTTL(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.idleTTL = d }
}

func WithCleanupEvery(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.cleanupEvery = d }
}

// NewMemoryStore creates an in-memory admitter allowing maxSlots comments
// per user within windowSize.
func NewMemoryStore(windowSize time.Duration, maxSlots int, opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		entries:      make(map[uint64]*windowEntry),
		windowSize:   windowSize,
		maxSlots:     maxSlots,
		idleTTL:      5 * time.Minute,
		cleanupEvery: 1 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TryAdmit prunes entries that fell out of the window, then either records
// the slot or rejects. The whole decision happens under the store lock, so
// two concurrent calls for the same user cannot both take the last slot.
func (s *MemoryStore) TryAdmit(ctx context.Context, userID uint64, slot ratelimit.Slot) error {
	cutoff := slot.At.Add(-s.windowSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[userID]
	if !ok {
		ent = &windowEntry{}
		s.entries[userID] = ent
	}
	ent.lastSeen = slot.At

	// Prune before counting: only slots inside the window occupy capacity
	kept := ent.slots[:0]
	for _, sl := range ent.slots {
		if sl.At.After(cutoff) {
			kept = append(kept, sl)
		}
	}
	ent.slots = kept

	if len(ent.slots) >= s.maxSlots {
		return errs.NewRateLimitError(userID, s.windowSize.String())
	}

	ent.slots = append(ent.slots, slot)
	return nil
}

// Release frees the slot recorded for the given comment. Lookup is by slot
// ID; a slot already dropped by pruning makes Release a no-op. Slots that
// predate identity tracking carry no ID and fall back to a timestamp match.
func (s *MemoryStore) Release(ctx context.Context, userID uint64, slot ratelimit.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[userID]
	if !ok {
		return nil
	}

	for i, sl := range ent.slots {
		if matches(sl, slot) {
			ent.slots = append(ent.slots[:i], ent.slots[i+1:]...)
			break
		}
	}

	if len(ent.slots) == 0 {
		delete(s.entries, userID)
	}
	return nil
}

func matches(recorded, wanted ratelimit.Slot) bool {
	if wanted.ID != "" {
		return recorded.ID == wanted.ID
	}
	return recorded.At.Equal(wanted.At)
}

// Cleanup removes users that have been idle longer than the idle TTL
func (s *MemoryStore) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, userID)
		}
	}
}

// StartJanitor starts a goroutine that cleans up idle users periodically.
// Stop it by cancelling the context.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

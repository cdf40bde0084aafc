// Package ratelimit defines the admission-control capability the comment
// flow depends on, independent of the backing store.
package ratelimit

import (
	"context"
	"time"
)

// Slot identifies one unit of consumed window capacity. ID is the durable
// identity of the comment occupying the slot; At is when it was admitted.
// Keying release by ID rather than by timestamp keeps two comments created
// in the same instant distinguishable.
type Slot struct {
	ID string
	At time.Time
}

// Admitter decides whether a user may post another comment right now and
// releases capacity when a comment is deleted. Implementations must
// serialize decisions per user: when one slot remains, two concurrent
// TryAdmit calls for the same user must not both be admitted.
type Admitter interface {
	// TryAdmit prunes entries older than the window, then either records
	// the slot and admits, or rejects with ErrRateLimited. slot.At is the
	// admission instant and is also used as "now" for pruning.
	TryAdmit(ctx context.Context, userID uint64, slot Slot) error

	// Release removes the slot recorded for the given comment, freeing one
	// unit of capacity. Releasing a slot that was never recorded, or that
	// pruning already dropped, is a no-op.
	Release(ctx context.Context, userID uint64, slot Slot) error
}

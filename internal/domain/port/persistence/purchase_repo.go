package persistence

import (
	"context"

	"boomstream/internal/domain/entity"
)

// PurchaseRepository defines persistence operations for purchases.
// The backing table carries a unique constraint on (user_id, video_id);
// Create surfaces a violation as ErrDuplicatePurchase, which makes the
// existence check and the insert effectively atomic under concurrency.
type PurchaseRepository interface {
	// Create persists a new purchase record
	//
	// Possible errors:
	// - ErrDuplicatePurchase: if a purchase for (user, video) already exists
	Create(ctx context.Context, purchase *entity.Purchase) error

	// Exists reports whether a purchase for (user, video) already exists
	Exists(ctx context.Context, userID, videoID uint64) (bool, error)

	// ListByUser returns all purchases made by the given user, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error)
}

package entity

import (
	"time"

	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
)

// Purchase grants an account permanent access to a paid video. At most one
// purchase may exist per (user, video) pair; the storage layer enforces this
// with a unique constraint. Purchases are immutable once created.
type Purchase struct {
	ID        uint64
	UserID    uint64
	VideoID   uint64
	CreatedAt time.Time
}

// NewPurchase creates a new purchase record
func NewPurchase(userID, videoID uint64, timeProvider coreport.TimeProvider) (*Purchase, error) {
	if userID == 0 || videoID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	return &Purchase{
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: timeProvider.Now(),
	}, nil
}

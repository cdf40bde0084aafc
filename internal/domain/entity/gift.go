package entity

import (
	"time"

	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
)

// Gift is an append-only audit record of a tip sent to a video's creator.
// Gifts are never mutated or deleted; the balance movement itself is handled
// by the wallet ledger and this entry only records that it happened.
type Gift struct {
	ID        uint64
	FromID    uint64
	ToID      uint64
	VideoID   uint64
	Amount    int64
	CreatedAt time.Time
}

// NewGift creates a new gift log entry
func NewGift(fromID, toID, videoID uint64, amountInCents int64, timeProvider coreport.TimeProvider) (*Gift, error) {
	if fromID == 0 || toID == 0 || videoID == 0 {
		return nil, errs.ErrInvalidAccountID
	}
	if fromID == toID {
		return nil, errs.ErrSameAccount
	}
	if amountInCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Gift{
		FromID:    fromID,
		ToID:      toID,
		VideoID:   videoID,
		Amount:    amountInCents,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// GetAmount returns the gifted amount as a string with 2 decimal places
func (g *Gift) GetAmount() string {
	return AmountInCentsToString(g.Amount)
}

package entity

import (
	"strings"
	"time"

	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
)

// Video is a piece of content owned by a creator account. The price is
// stored in cents; a zero price means the video is free to watch. Videos
// are soft-deleted so existing purchases keep a valid reference.
type Video struct {
	ID          uint64
	CreatorID   uint64
	Title       string
	Description string
	Price       int64
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewVideo creates a new video owned by the given creator
func NewVideo(creatorID uint64, title, description, price string, timeProvider coreport.TimeProvider) (*Video, error) {
	if creatorID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.ErrEmptyTitle
	}

	priceInCents, err := ValidateAndConvertAmount(price)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Video{
		CreatorID:   creatorID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Price:       priceInCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetPrice returns the price as a string with 2 decimal places
func (v *Video) GetPrice() string {
	return AmountInCentsToString(v.Price)
}

// IsFree reports whether the video can be watched without a purchase
func (v *Video) IsFree() bool {
	return v.Price == 0
}

// IsOwnedBy reports whether the given account created this video
func (v *Video) IsOwnedBy(accountID uint64) bool {
	return v.CreatorID == accountID
}

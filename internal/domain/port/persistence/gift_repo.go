package persistence

import (
	"context"

	"boomstream/internal/domain/entity"
)

// GiftRepository defines persistence for the append-only gift log
type GiftRepository interface {
	// Create appends a gift log entry
	Create(ctx context.Context, gift *entity.Gift) error

	// ListByVideo returns all gifts recorded for a video, newest first
	ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Gift, error)
}

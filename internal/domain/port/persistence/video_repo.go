package persistence

import (
	"context"

	"boomstream/internal/domain/entity"
)

// VideoRepository defines persistence operations for videos
type VideoRepository interface {
	// GetByID retrieves a video by ID; soft-deleted videos are not returned
	GetByID(ctx context.Context, id uint64) (*entity.Video, error)

	// Create persists a new video, assigning its ID
	Create(ctx context.Context, video *entity.Video) error

	// ListActive returns all not-deleted videos, newest first
	ListActive(ctx context.Context) ([]*entity.Video, error)

	// ListByCreator returns a creator's not-deleted videos, newest first
	ListByCreator(ctx context.Context, creatorID uint64) ([]*entity.Video, error)

	// SoftDelete marks a video as deleted without removing the row, so
	// purchases keep a valid reference
	SoftDelete(ctx context.Context, id uint64) error
}

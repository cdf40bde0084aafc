package persistence

import (
	"context"

	"boomstream/internal/domain/entity"
)

// CommentRepository defines persistence operations for comments
type CommentRepository interface {
	// Create persists a new comment under its caller-assigned ID
	Create(ctx context.Context, comment *entity.Comment) error

	// GetByID retrieves a comment by ID
	//
	// Possible errors:
	// - ErrCommentNotFound: if no comment with the given ID exists
	GetByID(ctx context.Context, id string) (*entity.Comment, error)

	// Delete removes a comment permanently
	Delete(ctx context.Context, id string) error

	// ListByVideo returns a video's comments, newest first
	ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Comment, error)
}

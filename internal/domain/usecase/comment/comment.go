// Package comment handles posting and deleting comments, including the
// sliding-window admission check and the slot release that couples a
// deletion back into the rate limiter.
package comment

import (
	"context"

	"github.com/google/uuid"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/port/persistence"
	"boomstream/internal/domain/port/ratelimit"
)

// UseCase handles the comment lifecycle
type UseCase struct {
	comments     persistence.CommentRepository
	videos       persistence.VideoRepository
	limiter      ratelimit.Admitter
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a comment use case
func NewUseCase(
	comments persistence.CommentRepository,
	videos persistence.VideoRepository,
	limiter ratelimit.Admitter,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		comments:     comments,
		videos:       videos,
		limiter:      limiter,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Post validates the text, asks the rate limiter for admission and only
// then persists the comment. The comment's UUID is assigned before
// admission so the limiter can track the occupied slot by durable identity.
// If persistence fails after admission the slot is released again.
func (u *UseCase) Post(ctx context.Context, userID, videoID uint64, text string) (*entity.Comment, error) {
	if _, err := u.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	record, err := entity.NewComment(uuid.NewString(), userID, videoID, text, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	slot := ratelimit.Slot{ID: record.ID, At: record.CreatedAt}
	if err := u.limiter.TryAdmit(ctx, userID, slot); err != nil {
		u.logger.Info("Comment rejected by rate limiter", map[string]any{
			"user_id":  userID,
			"video_id": videoID,
		})
		return nil, err
	}

	if err := u.comments.Create(ctx, record); err != nil {
		// The admission consumed a slot for a comment that never came to
		// exist; give it back.
		if relErr := u.limiter.Release(ctx, userID, slot); relErr != nil {
			u.logger.Error("Failed to release slot after create failure", map[string]any{
				"user_id": userID,
				"error":   relErr.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Comment posted", map[string]any{
		"user_id":    userID,
		"video_id":   videoID,
		"comment_id": record.ID,
	})
	return record, nil
}

// Delete removes a comment owned by the caller and releases the window
// slot it occupied, so deleting a comment frees capacity for a new one
// within the same window. A comment whose slot was already pruned, or that
// predates the tracker, releases nothing and that is not an error.
func (u *UseCase) Delete(ctx context.Context, userID uint64, commentID string) error {
	record, err := u.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !record.IsOwnedBy(userID) {
		return errs.ErrNotCommentOwner
	}

	if err := u.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	slot := ratelimit.Slot{ID: record.ID, At: record.CreatedAt}
	if err := u.limiter.Release(ctx, record.UserID, slot); err != nil {
		// The comment is gone either way; a failed release only means the
		// user keeps one slot occupied until the window moves past it.
		u.logger.Warn("Failed to release rate limiter slot", map[string]any{
			"user_id":    record.UserID,
			"comment_id": commentID,
			"error":      err.Error(),
		})
	}

	u.logger.Info("Comment deleted", map[string]any{
		"user_id":    userID,
		"comment_id": commentID,
	})
	return nil
}

// ListByVideo returns a video's comments, newest first
func (u *UseCase) ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Comment, error) {
	if _, err := u.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return u.comments.ListByVideo(ctx, videoID)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CommentRepository implements the CommentRepository interface using GORM
type CommentRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCommentRepository creates a new CommentRepository instance
func NewCommentRepository(db *gorm.DB, logger coreport.Logger) *CommentRepository {
	return &CommentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CommentRepository) modelToEntity(commentModel *model.Comment) *entity.Comment {
	return &entity.Comment{
		ID:        commentModel.ID,
		UserID:    commentModel.UserID,
		VideoID:   commentModel.VideoID,
		Text:      commentModel.Text,
		CreatedAt: commentModel.CreatedAt,
	}
}

// Create persists a new comment under its caller-assigned ID
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := model.Comment{
		ID:        comment.ID,
		UserID:    comment.UserID,
		VideoID:   comment.VideoID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&commentModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating comment", map[string]any{
			"comment_id": comment.ID,
			"user_id":    comment.UserID,
			"video_id":   comment.VideoID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Comment created", map[string]any{
		"comment_id": comment.ID,
		"user_id":    comment.UserID,
		"video_id":   comment.VideoID,
	})
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.Comment
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCommentNotFound
		}
		r.logger.Error("Database error when getting comment", map[string]any{
			"comment_id": id,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&commentModel), nil
}

// Delete removes a comment permanently
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})

	if result.Error != nil {
		r.logger.Error("Database error when deleting comment", map[string]any{
			"comment_id": id,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrCommentNotFound
	}

	r.logger.Info("Comment deleted", map[string]any{
		"comment_id": id,
	})
	return nil
}

// ListByVideo returns a video's comments, newest first
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Comment, error) {
	var commentModels []model.Comment
	result := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&commentModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing comments", map[string]any{
			"video_id": videoID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, r.modelToEntity(&commentModels[i]))
	}
	return comments, nil
}

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

// VideoRepository implements the VideoRepository interface using GORM
type VideoRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewVideoRepository creates a new VideoRepository instance
func NewVideoRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *VideoRepository {
	return &VideoRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *VideoRepository) modelToEntity(videoModel *model.Video) *entity.Video {
	return &entity.Video{
		ID:          videoModel.ID,
		CreatorID:   videoModel.CreatorID,
		Title:       videoModel.Title,
		Description: videoModel.Description,
		Price:       videoModel.Price,
		IsDeleted:   videoModel.IsDeleted,
		CreatedAt:   videoModel.CreatedAt,
		UpdatedAt:   videoModel.UpdatedAt,
	}
}

// GetByID retrieves a video by ID; soft-deleted videos are treated as absent
func (r *VideoRepository) GetByID(ctx context.Context, id uint64) (*entity.Video, error) {
	var videoModel model.Video
	result := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&videoModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrVideoNotFound
		}
		r.logger.Error("Database error when getting video", map[string]any{
			"video_id": id,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&videoModel), nil
}

// Create persists a new video and assigns its ID
func (r *VideoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoModel := model.Video{
		CreatorID:   video.CreatorID,
		Title:       video.Title,
		Description: video.Description,
		Price:       video.Price,
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&videoModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating video", map[string]any{
			"creator_id": video.CreatorID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	video.ID = videoModel.ID

	r.logger.Info("Video created successfully", map[string]any{
		"video_id":   video.ID,
		"creator_id": video.CreatorID,
		"price":      video.GetPrice(),
	})
	return nil
}

// ListActive returns all not-deleted videos, newest first
func (r *VideoRepository) ListActive(ctx context.Context) ([]*entity.Video, error) {
	var videoModels []model.Video
	result := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&videoModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing videos", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for i := range videoModels {
		videos = append(videos, r.modelToEntity(&videoModels[i]))
	}
	return videos, nil
}

// ListByCreator returns a creator's not-deleted videos, newest first
func (r *VideoRepository) ListByCreator(ctx context.Context, creatorID uint64) ([]*entity.Video, error) {
	var videoModels []model.Video
	result := r.db.WithContext(ctx).
		Where("creator_id = ? AND is_deleted = ?", creatorID, false).
		Order("created_at DESC").
		Find(&videoModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing creator videos", map[string]any{
			"creator_id": creatorID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for i := range videoModels {
		videos = append(videos, r.modelToEntity(&videoModels[i]))
	}
	return videos, nil
}

// SoftDelete marks a video as deleted without removing the row
func (r *VideoRepository) SoftDelete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Database error when deleting video", map[string]any{
			"video_id": id,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrVideoNotFound
	}

	r.logger.Info("Video soft-deleted", map[string]any{
		"video_id": id,
	})
	return nil
}

package repository

import (
	"context"
	"fmt"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// GiftRepository implements the append-only gift log using GORM
type GiftRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGiftRepository creates a new GiftRepository instance
func NewGiftRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GiftRepository {
	return &GiftRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *GiftRepository) modelToEntity(giftModel *model.Gift) *entity.Gift {
	return &entity.Gift{
		ID:        giftModel.ID,
		FromID:    giftModel.FromID,
		ToID:      giftModel.ToID,
		VideoID:   giftModel.VideoID,
		Amount:    giftModel.Amount,
		CreatedAt: giftModel.CreatedAt,
	}
}

// Create appends a gift log entry
func (r *GiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	giftModel := model.Gift{
		FromID:    gift.FromID,
		ToID:      gift.ToID,
		VideoID:   gift.VideoID,
		Amount:    gift.Amount,
		CreatedAt: gift.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&giftModel)
	if result.Error != nil {
		r.logger.Error("Database error when recording gift", map[string]any{
			"from_account": gift.FromID,
			"to_account":   gift.ToID,
			"video_id":     gift.VideoID,
			"error":        result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	gift.ID = giftModel.ID

	r.logger.Info("Gift recorded", map[string]any{
		"gift_id":      gift.ID,
		"from_account": gift.FromID,
		"to_account":   gift.ToID,
		"video_id":     gift.VideoID,
		"amount":       gift.GetAmount(),
	})
	return nil
}

// ListByVideo returns all gifts recorded for a video, newest first
func (r *GiftRepository) ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Gift, error) {
	var giftModels []model.Gift
	result := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Find(&giftModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing gifts", map[string]any{
			"video_id": videoID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	gifts := make([]*entity.Gift, 0, len(giftModels))
	for i := range giftModels {
		gifts = append(gifts, r.modelToEntity(&giftModels[i]))
	}
	return gifts, nil
}

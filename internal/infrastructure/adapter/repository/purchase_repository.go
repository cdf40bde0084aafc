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

// PurchaseRepository implements the PurchaseRepository interface using GORM
type PurchaseRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PurchaseRepository) modelToEntity(purchaseModel *model.Purchase) *entity.Purchase {
	return &entity.Purchase{
		ID:        purchaseModel.ID,
		UserID:    purchaseModel.UserID,
		VideoID:   purchaseModel.VideoID,
		CreatedAt: purchaseModel.CreatedAt,
	}
}

// Create persists a new purchase record. A violation of the (user_id,
// video_id) unique index surfaces as ErrDuplicatePurchase, which is what
// resolves concurrent duplicate attempts to exactly one winner.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := model.Purchase{
		UserID:    purchase.UserID,
		VideoID:   purchase.VideoID,
		CreatedAt: purchase.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&purchaseModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate purchase attempt", map[string]any{
				"user_id":  purchase.UserID,
				"video_id": purchase.VideoID,
			})
			return errs.ErrDuplicatePurchase
		}
		r.logger.Error("Database error when creating purchase", map[string]any{
			"user_id":  purchase.UserID,
			"video_id": purchase.VideoID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	purchase.ID = purchaseModel.ID

	r.logger.Info("Purchase recorded", map[string]any{
		"purchase_id": purchase.ID,
		"user_id":     purchase.UserID,
		"video_id":    purchase.VideoID,
	})
	return nil
}

// Exists reports whether a purchase for (user, video) already exists
func (r *PurchaseRepository) Exists(ctx context.Context, userID, videoID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when checking purchase existence", map[string]any{
			"user_id":  userID,
			"video_id": videoID,
			"error":    result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count > 0, nil
}

// ListByUser returns all purchases made by the given user, newest first
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error) {
	var purchaseModels []model.Purchase
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchaseModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing purchases", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, r.modelToEntity(&purchaseModels[i]))
	}
	return purchases, nil
}

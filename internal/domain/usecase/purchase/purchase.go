// Package purchase enforces the at-most-one purchase per (user, video) rule
// and drives the wallet transfer that pays for it.
package purchase

import (
	"context"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/port/persistence"
	"boomstream/internal/domain/usecase/wallet"
)

// UseCase handles video purchases
type UseCase struct {
	uow          persistence.UnitOfWork
	videos       persistence.VideoRepository
	ledger       *wallet.Ledger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a purchase use case
func NewUseCase(
	uow persistence.UnitOfWork,
	videos persistence.VideoRepository,
	ledger *wallet.Ledger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:          uow,
		videos:       videos,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Purchase buys a video for the given user. The purchase record and the
// wallet transfer share one transaction: the record is inserted first, so a
// concurrent duplicate attempt fails on the (user, video) unique constraint
// before any money moves, and a failed transfer rolls the record back. A
// zero-price video still records the purchase but moves no money.
func (u *UseCase) Purchase(ctx context.Context, userID, videoID uint64) (*entity.Purchase, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	video, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.IsOwnedBy(userID) {
		return nil, errs.ErrSelfPurchase
	}

	// Fast path: reject an obvious duplicate before opening a transaction.
	// The unique constraint re-checks this at insert time, which closes the
	// window between this read and the commit.
	exists, err := u.uow.GetPurchaseRepository(ctx).Exists(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicatePurchase
	}

	record, err := entity.NewPurchase(userID, videoID, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.uow.GetPurchaseRepository(txCtx).Create(txCtx, record); err != nil {
		u.rollback(txCtx)
		return nil, err
	}

	if video.Price > 0 {
		if err := u.ledger.Transfer(txCtx, userID, video.CreatorID, video.Price); err != nil {
			u.rollback(txCtx)
			return nil, err
		}
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.rollback(txCtx)
		return nil, err
	}

	u.logger.Info("Video purchased", map[string]any{
		"user_id":  userID,
		"video_id": videoID,
		"price":    video.GetPrice(),
	})
	return record, nil
}

// ListByUser returns the purchases made by a user, newest first
func (u *UseCase) ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error) {
	return u.uow.GetPurchaseRepository(ctx).ListByUser(ctx, userID)
}

// HasPurchased reports whether the user already owns access to the video
func (u *UseCase) HasPurchased(ctx context.Context, userID, videoID uint64) (bool, error) {
	return u.uow.GetPurchaseRepository(ctx).Exists(ctx, userID, videoID)
}

func (u *UseCase) rollback(txCtx context.Context) {
	if err := u.uow.Rollback(txCtx); err != nil {
		u.logger.Error("Failed to roll back purchase transaction", map[string]any{
			"error": err.Error(),
		})
	}
}

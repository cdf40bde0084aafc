// Package gift validates tips and drives the wallet transfer for them.
package gift

import (
	"context"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/port/persistence"
	"boomstream/internal/domain/usecase/wallet"
)

// UseCase handles gifts sent to a video's creator
type UseCase struct {
	uow              persistence.UnitOfWork
	videos           persistence.VideoRepository
	ledger           *wallet.Ledger
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
	minAmountInCents int64
}

// NewUseCase creates a gift use case. minAmount is the smallest gift the
// platform accepts, formatted like any other amount string.
func NewUseCase(
	uow persistence.UnitOfWork,
	videos persistence.VideoRepository,
	ledger *wallet.Ledger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	minAmount string,
) (*UseCase, error) {
	minInCents, err := entity.ValidateAndConvertAmount(minAmount)
	if err != nil {
		return nil, err
	}

	return &UseCase{
		uow:              uow,
		videos:           videos,
		ledger:           ledger,
		timeProvider:     timeProvider,
		logger:           logger,
		minAmountInCents: minInCents,
	}, nil
}

// Gift sends a tip from a viewer to the creator of a video. The transfer
// and the append-only log entry share one transaction so a recorded gift
// always corresponds to moved money. Gifts carry no idempotency key: a
// retry after an ambiguous timeout may charge twice (see DESIGN.md).
func (u *UseCase) Gift(ctx context.Context, fromID, videoID uint64, amount string) (*entity.Gift, error) {
	if fromID == 0 {
		return nil, errs.ErrInvalidAccountID
	}

	amountInCents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if amountInCents < u.minAmountInCents {
		return nil, errs.ErrGiftBelowMinimum
	}

	video, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.IsOwnedBy(fromID) {
		return nil, errs.ErrSelfGift
	}

	record, err := entity.NewGift(fromID, video.CreatorID, videoID, amountInCents, u.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.ledger.Transfer(txCtx, fromID, video.CreatorID, amountInCents); err != nil {
		u.rollback(txCtx)
		return nil, err
	}

	if err := u.uow.GetGiftRepository(txCtx).Create(txCtx, record); err != nil {
		u.rollback(txCtx)
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.rollback(txCtx)
		return nil, err
	}

	u.logger.Info("Gift sent", map[string]any{
		"from_account_id": fromID,
		"to_account_id":   video.CreatorID,
		"video_id":        videoID,
		"amount":          amount,
	})
	return record, nil
}

// ListByVideo returns the gifts recorded for a video, newest first
func (u *UseCase) ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Gift, error) {
	if _, err := u.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return u.uow.GetGiftRepository(ctx).ListByVideo(ctx, videoID)
}

func (u *UseCase) rollback(txCtx context.Context) {
	if err := u.uow.Rollback(txCtx); err != nil {
		u.logger.Error("Failed to roll back gift transaction", map[string]any{
			"error": err.Error(),
		})
	}
}

// Package video covers the catalog operations around videos: creating
// metadata, listing, access-checked viewing and soft deletion. Binary
// upload and delivery are handled outside this service.
package video

import (
	"context"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coreport "boomstream/internal/domain/port/core"
	"boomstream/internal/domain/port/persistence"
)

// UseCase handles video catalog operations
type UseCase struct {
	videos       persistence.VideoRepository
	purchases    persistence.PurchaseRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a video use case
func NewUseCase(
	videos persistence.VideoRepository,
	purchases persistence.PurchaseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		videos:       videos,
		purchases:    purchases,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create registers a new video owned by the given creator
func (u *UseCase) Create(ctx context.Context, creatorID uint64, title, description, price string) (*entity.Video, error) {
	record, err := entity.NewVideo(creatorID, title, description, price, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.videos.Create(ctx, record); err != nil {
		return nil, err
	}

	u.logger.Info("Video created", map[string]any{
		"video_id":   record.ID,
		"creator_id": creatorID,
		"price":      record.GetPrice(),
	})
	return record, nil
}

// List returns all not-deleted videos, newest first
func (u *UseCase) List(ctx context.Context) ([]*entity.Video, error) {
	return u.videos.ListActive(ctx)
}

// ListByCreator returns the caller's own videos, newest first
func (u *UseCase) ListByCreator(ctx context.Context, creatorID uint64) ([]*entity.Video, error) {
	return u.videos.ListByCreator(ctx, creatorID)
}

// Details returns a video's public metadata. No access check: titles,
// descriptions and prices are browsable by anyone, only watching is gated.
func (u *UseCase) Details(ctx context.Context, videoID uint64) (*entity.Video, error) {
	return u.videos.GetByID(ctx, videoID)
}

// Get returns a video if the caller may watch it: the video is free, the
// caller created it, or the caller has purchased it. Otherwise the caller
// is not authorized.
func (u *UseCase) Get(ctx context.Context, viewerID, videoID uint64) (*entity.Video, error) {
	record, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if record.IsFree() || record.IsOwnedBy(viewerID) {
		return record, nil
	}

	purchased, err := u.purchases.Exists(ctx, viewerID, videoID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, errs.ErrVideoNotPurchased
	}

	return record, nil
}

// Delete soft-deletes a video owned by the caller
func (u *UseCase) Delete(ctx context.Context, callerID, videoID uint64) error {
	record, err := u.videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if !record.IsOwnedBy(callerID) {
		return errs.ErrNotVideoOwner
	}

	if err := u.videos.SoftDelete(ctx, videoID); err != nil {
		return err
	}

	u.logger.Info("Video deleted", map[string]any{
		"video_id":  videoID,
		"caller_id": callerID,
	})
	return nil
}

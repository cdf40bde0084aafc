package video

import (
	"context"
	"testing"
	"time"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	coremocks "boomstream/mocks/port/core"
	persistencemocks "boomstream/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	videos    *persistencemocks.MockVideoRepository
	purchases *persistencemocks.MockPurchaseRepository
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
	useCase   *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		videos:    persistencemocks.NewMockVideoRepository(t),
		purchases: persistencemocks.NewMockPurchaseRepository(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}

	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.time.On("Now").Return(fixedTime).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()

	f.useCase = NewUseCase(f.videos, f.purchases, f.time, f.logger)
	return f
}

func paidVideo() *entity.Video {
	return &entity.Video{ID: 10, CreatorID: 2, Title: "Workshop", Price: 1999}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful creation", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("Create", mock.Anything, mock.MatchedBy(func(v *entity.Video) bool {
			return v.CreatorID == 2 && v.Title == "Workshop" && v.Price == 1999
		})).Return(nil).Once()

		created, err := f.useCase.Create(ctx, 2, "Workshop", "A live session", "19.99")
		require.NoError(t, err)
		assert.Equal(t, "19.99", created.GetPrice())
	})

	t.Run("Empty title", func(t *testing.T) {
		f := newFixture(t)

		created, err := f.useCase.Create(ctx, 2, "  ", "", "19.99")
		assert.ErrorIs(t, err, errs.ErrEmptyTitle)
		assert.Nil(t, created)
	})

	t.Run("Malformed price", func(t *testing.T) {
		f := newFixture(t)

		created, err := f.useCase.Create(ctx, 2, "Workshop", "", "cheap")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, created)
	})

	t.Run("Negative price", func(t *testing.T) {
		f := newFixture(t)

		created, err := f.useCase.Create(ctx, 2, "Workshop", "", "-1.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Nil(t, created)
	})
}

func TestDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Metadata of a paid video is browsable without a purchase", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(paidVideo(), nil).Once()

		found, err := f.useCase.Details(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "19.99", found.GetPrice())
		f.purchases.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrVideoNotFound).Once()

		_, err := f.useCase.Details(ctx, 99)
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Free video is visible to anyone", func(t *testing.T) {
		f := newFixture(t)

		free := &entity.Video{ID: 11, CreatorID: 2, Title: "Teaser", Price: 0}
		f.videos.On("GetByID", mock.Anything, uint64(11)).Return(free, nil).Once()

		found, err := f.useCase.Get(ctx, 1, 11)
		require.NoError(t, err)
		assert.Equal(t, free, found)
		f.purchases.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creator sees their own paid video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(paidVideo(), nil).Once()

		_, err := f.useCase.Get(ctx, 2, 10)
		assert.NoError(t, err)
	})

	t.Run("Purchaser sees a paid video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(paidVideo(), nil).Once()
		f.purchases.On("Exists", mock.Anything, uint64(1), uint64(10)).Return(true, nil).Once()

		_, err := f.useCase.Get(ctx, 1, 10)
		assert.NoError(t, err)
	})

	t.Run("Paid video without a purchase is withheld", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(paidVideo(), nil).Once()
		f.purchases.On("Exists", mock.Anything, uint64(1), uint64(10)).Return(false, nil).Once()

		found, err := f.useCase.Get(ctx, 1, 10)
		assert.ErrorIs(t, err, errs.ErrVideoNotPurchased)
		assert.Nil(t, found)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrVideoNotFound).Once()

		_, err := f.useCase.Get(ctx, 1, 99)
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner soft-deletes their video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(paidVideo(), nil).Once()
		f.videos.On("SoftDelete", mock.Anything, uint64(10)).Return(nil).Once()

		err := f.useCase.Delete(ctx, 2, 10)
		assert.NoError(t, err)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(paidVideo(), nil).Once()

		err := f.useCase.Delete(ctx, 1, 10)
		assert.ErrorIs(t, err, errs.ErrNotVideoOwner)
		f.videos.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	expected := []*entity.Video{paidVideo()}
	f.videos.On("ListActive", mock.Anything).Return(expected, nil).Once()

	videos, err := f.useCase.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, videos)
}

func TestListByCreator(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	expected := []*entity.Video{paidVideo()}
	f.videos.On("ListByCreator", mock.Anything, uint64(2)).Return(expected, nil).Once()

	videos, err := f.useCase.ListByCreator(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, expected, videos)
}

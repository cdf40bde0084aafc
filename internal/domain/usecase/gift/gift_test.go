package gift

import (
	"context"
	"errors"
	"testing"
	"time"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	"boomstream/internal/domain/usecase/wallet"
	coremocks "boomstream/mocks/port/core"
	persistencemocks "boomstream/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ctxKey string

type fixture struct {
	uow      *persistencemocks.MockUnitOfWork
	videos   *persistencemocks.MockVideoRepository
	gifts    *persistencemocks.MockGiftRepository
	accounts *persistencemocks.MockAccountRepository
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	useCase  *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		videos:   persistencemocks.NewMockVideoRepository(t),
		gifts:    persistencemocks.NewMockGiftRepository(t),
		accounts: persistencemocks.NewMockAccountRepository(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f.time.On("Now").Return(fixedTime).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()

	ledger, err := wallet.NewLedger(f.uow, f.time, f.logger, "1000.00")
	require.NoError(t, err)

	useCase, err := NewUseCase(f.uow, f.videos, ledger, f.time, f.logger, "10.00")
	require.NoError(t, err)
	f.useCase = useCase
	return f
}

func video() *entity.Video {
	return &entity.Video{ID: 10, CreatorID: 2, Title: "Workshop", Price: 1999}
}

func TestNewUseCase(t *testing.T) {
	t.Run("Rejects a malformed minimum amount", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockVideos := persistencemocks.NewMockVideoRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger, err := wallet.NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		useCase, err := NewUseCase(mockUow, mockVideos, ledger, mockTime, mockLogger, "ten")
		assert.Error(t, err)
		assert.Nil(t, useCase)
	})
}

func TestGift(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), struct{}{})

	t.Run("Successful gift", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		f.uow.On("GetAccountRepository", mock.Anything).Return(f.accounts)
		f.accounts.On("Transfer", mock.Anything, uint64(1), uint64(2), int64(2500)).Return(nil).Once()
		f.uow.On("GetGiftRepository", mock.Anything).Return(f.gifts)
		f.gifts.On("Create", mock.Anything, mock.MatchedBy(func(g *entity.Gift) bool {
			return g.FromID == 1 && g.ToID == 2 && g.VideoID == 10 && g.Amount == 2500
		})).Return(nil).Once()
		f.uow.On("Commit", txCtx).Return(nil).Once()

		record, err := f.useCase.Gift(ctx, 1, 10, "25.00")
		require.NoError(t, err)
		assert.Equal(t, "25.00", record.GetAmount())
	})

	t.Run("Gift at exactly the minimum is accepted", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		f.uow.On("GetAccountRepository", mock.Anything).Return(f.accounts)
		f.accounts.On("Transfer", mock.Anything, uint64(1), uint64(2), int64(1000)).Return(nil).Once()
		f.uow.On("GetGiftRepository", mock.Anything).Return(f.gifts)
		f.gifts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.uow.On("Commit", txCtx).Return(nil).Once()

		_, err := f.useCase.Gift(ctx, 1, 10, "10.00")
		assert.NoError(t, err)
	})

	t.Run("Gift below the minimum is rejected", func(t *testing.T) {
		f := newFixture(t)

		record, err := f.useCase.Gift(ctx, 1, 10, "9.99")
		assert.ErrorIs(t, err, errs.ErrGiftBelowMinimum)
		assert.Nil(t, record)
		f.videos.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		f := newFixture(t)

		record, err := f.useCase.Gift(ctx, 1, 10, "0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, record)
	})

	t.Run("Malformed amount is rejected", func(t *testing.T) {
		f := newFixture(t)

		record, err := f.useCase.Gift(ctx, 1, 10, "lots")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, record)
	})

	t.Run("Creator cannot gift their own video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()

		record, err := f.useCase.Gift(ctx, 2, 10, "25.00")
		assert.ErrorIs(t, err, errs.ErrSelfGift)
		assert.Nil(t, record)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Failed transfer rolls back without a log entry", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		f.uow.On("GetAccountRepository", mock.Anything).Return(f.accounts)
		f.accounts.On("Transfer", mock.Anything, uint64(1), uint64(2), int64(2500)).Return(errs.ErrInsufficientBalance).Once()
		f.uow.On("Rollback", txCtx).Return(nil).Once()

		record, err := f.useCase.Gift(ctx, 1, 10, "25.00")
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Nil(t, record)
		f.gifts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed log write rolls the transfer back", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.uow.On("Begin", mock.Anything).Return(txCtx, nil).Once()
		f.uow.On("GetAccountRepository", mock.Anything).Return(f.accounts)
		f.accounts.On("Transfer", mock.Anything, uint64(1), uint64(2), int64(2500)).Return(nil).Once()
		f.uow.On("GetGiftRepository", mock.Anything).Return(f.gifts)

		insertErr := errors.New("insert failed")
		f.gifts.On("Create", mock.Anything, mock.Anything).Return(insertErr).Once()
		f.uow.On("Rollback", txCtx).Return(nil).Once()

		record, err := f.useCase.Gift(ctx, 1, 10, "25.00")
		assert.ErrorIs(t, err, insertErr)
		assert.Nil(t, record)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrVideoNotFound).Once()

		record, err := f.useCase.Gift(ctx, 1, 99, "25.00")
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
		assert.Nil(t, record)
	})
}

func TestListByVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the gifts for a video", func(t *testing.T) {
		f := newFixture(t)

		expected := []*entity.Gift{{ID: 1, FromID: 1, ToID: 2, VideoID: 10, Amount: 2500}}
		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.uow.On("GetGiftRepository", mock.Anything).Return(f.gifts)
		f.gifts.On("ListByVideo", mock.Anything, uint64(10)).Return(expected, nil).Once()

		gifts, err := f.useCase.ListByVideo(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, expected, gifts)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrVideoNotFound).Once()

		_, err := f.useCase.ListByVideo(ctx, 99)
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
	})
}

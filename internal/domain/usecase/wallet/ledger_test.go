package wallet

import (
	"context"
	"errors"
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

func newAccountWithBalance(t *testing.T, id uint64, balanceInCents int64, mockTime *coremocks.MockTimeProvider) *entity.Account {
	t.Helper()
	account, err := entity.NewAccount("Alice", "alice@example.com", "hash", "0.00", mockTime)
	require.NoError(t, err)
	account.ID = id
	account.SetBalance(balanceInCents, mockTime)
	return account
}

func TestNewLedger(t *testing.T) {
	t.Run("Rejects a malformed recharge cap", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "not-a-number")
		assert.Error(t, err)
		assert.Nil(t, ledger)
	})
}

func TestRecharge(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful recharge", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.On("Now").Return(fixedTime).Maybe()
		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		credited := newAccountWithBalance(t, 1, 75000, mockTime)
		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("AddBalance", mock.Anything, uint64(1), int64(25000)).Return(credited, nil).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		account, err := ledger.Recharge(ctx, 1, "250.00")
		require.NoError(t, err)
		assert.Equal(t, "750.00", account.GetBalance())
	})

	t.Run("Recharge at exactly the cap is accepted", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.On("Now").Return(fixedTime).Maybe()
		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		credited := newAccountWithBalance(t, 1, 150000, mockTime)
		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("AddBalance", mock.Anything, uint64(1), int64(100000)).Return(credited, nil).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		_, err = ledger.Recharge(ctx, 1, "1000.00")
		assert.NoError(t, err)
	})

	t.Run("Recharge above the cap is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.On("Warn", mock.Anything, mock.Anything).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		account, err := ledger.Recharge(ctx, 1, "1000.01")
		assert.ErrorIs(t, err, errs.ErrRechargeLimitExceeded)
		assert.Nil(t, account)
	})

	t.Run("Invalid account ID", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		_, err = ledger.Recharge(ctx, 0, "100.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAccountID)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		_, err = ledger.Recharge(ctx, 1, "abc")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Zero amount", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		_, err = ledger.Recharge(ctx, 1, "0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Repository error is passed through", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("AddBalance", mock.Anything, uint64(42), int64(10000)).Return(nil, errs.ErrAccountNotFound).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		_, err = ledger.Recharge(ctx, 42, "100.00")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful transfer", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.On("Info", mock.Anything, mock.Anything).Once()
		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("Transfer", mock.Anything, uint64(1), uint64(2), int64(2500)).Return(nil).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		err = ledger.Transfer(ctx, 1, 2, 2500)
		assert.NoError(t, err)
	})

	t.Run("Validation failures", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		assert.ErrorIs(t, ledger.Transfer(ctx, 0, 2, 100), errs.ErrInvalidAccountID)
		assert.ErrorIs(t, ledger.Transfer(ctx, 1, 0, 100), errs.ErrInvalidAccountID)
		assert.ErrorIs(t, ledger.Transfer(ctx, 1, 1, 100), errs.ErrSameAccount)
		assert.ErrorIs(t, ledger.Transfer(ctx, 1, 2, 0), errs.ErrInvalidAmount)
		assert.ErrorIs(t, ledger.Transfer(ctx, 1, 2, -100), errs.ErrInvalidAmount)
	})

	t.Run("Insufficient balance is wrapped in a transfer error", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockLogger.On("Warn", mock.Anything, mock.Anything).Once()
		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("Transfer", mock.Anything, uint64(1), uint64(2), int64(2500)).Return(errs.ErrInsufficientBalance).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		err = ledger.Transfer(ctx, 1, 2, 2500)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

		var transferErr *errs.TransferError
		require.True(t, errors.As(err, &transferErr))
		assert.Equal(t, uint64(1), transferErr.FromAccountID)
		assert.Equal(t, uint64(2), transferErr.ToAccountID)
		assert.Equal(t, "25.00", transferErr.Amount)
	})
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns the formatted balance", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.On("Now").Return(fixedTime).Maybe()

		account := newAccountWithBalance(t, 1, 12345, mockTime)
		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("GetByID", mock.Anything, uint64(1)).Return(account, nil).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		balance, err := ledger.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "123.45", balance)
	})

	t.Run("Unknown account", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockAccountRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.On("GetAccountRepository", mock.Anything).Return(mockRepo)
		mockRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, errs.ErrAccountNotFound).Once()

		ledger, err := NewLedger(mockUow, mockTime, mockLogger, "1000.00")
		require.NoError(t, err)

		_, err = ledger.GetBalance(ctx, 9)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a new MockUnitOfWork whose expectations are
// asserted when the test finishes
func NewMockUnitOfWork(t mockConstructorTestingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	var txCtx context.Context
	if args.Get(0) != nil {
		txCtx = args.Get(0).(context.Context)
	}
	return txCtx, args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.AccountRepository)
}

func (m *MockUnitOfWork) GetPurchaseRepository(ctx context.Context) persistence.PurchaseRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.PurchaseRepository)
}

func (m *MockUnitOfWork) GetGiftRepository(ctx context.Context) persistence.GiftRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.GiftRepository)
}

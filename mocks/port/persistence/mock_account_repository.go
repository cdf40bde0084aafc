package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/entity"
)

// MockAccountRepository is a mock implementation of the AccountRepository port
type MockAccountRepository struct {
	mock.Mock
}

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewMockAccountRepository creates a new MockAccountRepository whose
// expectations are asserted when the test finishes
func NewMockAccountRepository(t mockConstructorTestingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	var account *entity.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*entity.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	var account *entity.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*entity.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) AddBalance(ctx context.Context, id uint64, amountInCents int64) (*entity.Account, error) {
	args := m.Called(ctx, id, amountInCents)
	var account *entity.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*entity.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) Transfer(ctx context.Context, fromID, toID uint64, amountInCents int64) error {
	args := m.Called(ctx, fromID, toID, amountInCents)
	return args.Error(0)
}

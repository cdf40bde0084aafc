package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/entity"
)

// MockPurchaseRepository is a mock implementation of the PurchaseRepository port
type MockPurchaseRepository struct {
	mock.Mock
}

// NewMockPurchaseRepository creates a new MockPurchaseRepository whose
// expectations are asserted when the test finishes
func NewMockPurchaseRepository(t mockConstructorTestingT) *MockPurchaseRepository {
	m := &MockPurchaseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Exists(ctx context.Context, userID, videoID uint64) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Purchase, error) {
	args := m.Called(ctx, userID)
	var purchases []*entity.Purchase
	if args.Get(0) != nil {
		purchases = args.Get(0).([]*entity.Purchase)
	}
	return purchases, args.Error(1)
}

package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/entity"
)

// MockGiftRepository is a mock implementation of the GiftRepository port
type MockGiftRepository struct {
	mock.Mock
}

// NewMockGiftRepository creates a new MockGiftRepository whose expectations
// are asserted when the test finishes
func NewMockGiftRepository(t mockConstructorTestingT) *MockGiftRepository {
	m := &MockGiftRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGiftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	args := m.Called(ctx, gift)
	return args.Error(0)
}

func (m *MockGiftRepository) ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Gift, error) {
	args := m.Called(ctx, videoID)
	var gifts []*entity.Gift
	if args.Get(0) != nil {
		gifts = args.Get(0).([]*entity.Gift)
	}
	return gifts, args.Error(1)
}

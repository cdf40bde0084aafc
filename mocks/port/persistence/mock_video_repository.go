package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/entity"
)

// MockVideoRepository is a mock implementation of the VideoRepository port
type MockVideoRepository struct {
	mock.Mock
}

// NewMockVideoRepository creates a new MockVideoRepository whose
// expectations are asserted when the test finishes
func NewMockVideoRepository(t mockConstructorTestingT) *MockVideoRepository {
	m := &MockVideoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id uint64) (*entity.Video, error) {
	args := m.Called(ctx, id)
	var video *entity.Video
	if args.Get(0) != nil {
		video = args.Get(0).(*entity.Video)
	}
	return video, args.Error(1)
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) ListActive(ctx context.Context) ([]*entity.Video, error) {
	args := m.Called(ctx)
	var videos []*entity.Video
	if args.Get(0) != nil {
		videos = args.Get(0).([]*entity.Video)
	}
	return videos, args.Error(1)
}

func (m *MockVideoRepository) ListByCreator(ctx context.Context, creatorID uint64) ([]*entity.Video, error) {
	args := m.Called(ctx, creatorID)
	var videos []*entity.Video
	if args.Get(0) != nil {
		videos = args.Get(0).([]*entity.Video)
	}
	return videos, args.Error(1)
}

func (m *MockVideoRepository) SoftDelete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

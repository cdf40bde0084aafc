package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boomstream/internal/domain/entity"
)

// MockCommentRepository is a mock implementation of the CommentRepository port
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates a new MockCommentRepository whose
// expectations are asserted when the test finishes
func NewMockCommentRepository(t mockConstructorTestingT) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	var comment *entity.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*entity.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID uint64) ([]*entity.Comment, error) {
	args := m.Called(ctx, videoID)
	var comments []*entity.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]*entity.Comment)
	}
	return comments, args.Error(1)
}

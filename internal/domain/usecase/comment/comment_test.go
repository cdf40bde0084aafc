package comment

import (
	"context"
	"errors"
	"testing"
	"time"

	"boomstream/internal/domain/entity"
	errs "boomstream/internal/domain/error"
	"boomstream/internal/domain/port/ratelimit"
	coremocks "boomstream/mocks/port/core"
	persistencemocks "boomstream/mocks/port/persistence"
	ratelimitmocks "boomstream/mocks/port/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	comments *persistencemocks.MockCommentRepository
	videos   *persistencemocks.MockVideoRepository
	limiter  *ratelimitmocks.MockAdmitter
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
	useCase  *UseCase
}

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		comments: persistencemocks.NewMockCommentRepository(t),
		videos:   persistencemocks.NewMockVideoRepository(t),
		limiter:  ratelimitmocks.NewMockAdmitter(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	f.time.On("Now").Return(fixedTime).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	f.useCase = NewUseCase(f.comments, f.videos, f.limiter, f.time, f.logger)
	return f
}

func video() *entity.Video {
	return &entity.Video{ID: 10, CreatorID: 2, Title: "Workshop", Price: 1999}
}

// slotFor matches the slot built for a freshly assigned comment ID
func slotFor(at time.Time) any {
	return mock.MatchedBy(func(slot ratelimit.Slot) bool {
		return slot.ID != "" && slot.At.Equal(at)
	})
}

func TestPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Admitted comment is persisted", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.limiter.On("TryAdmit", mock.Anything, uint64(1), slotFor(fixedTime)).Return(nil).Once()
		f.comments.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
			return c.UserID == 1 && c.VideoID == 10 && c.Text == "great video"
		})).Return(nil).Once()

		posted, err := f.useCase.Post(ctx, 1, 10, "great video")
		require.NoError(t, err)
		assert.NotEmpty(t, posted.ID)
		assert.Equal(t, fixedTime, posted.CreatedAt)
	})

	t.Run("Rejected comment is never persisted", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.limiter.On("TryAdmit", mock.Anything, uint64(1), slotFor(fixedTime)).Return(errs.ErrRateLimited).Once()

		posted, err := f.useCase.Post(ctx, 1, 10, "great video")
		assert.ErrorIs(t, err, errs.ErrRateLimited)
		assert.Nil(t, posted)
		f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Slot is released when persistence fails", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.limiter.On("TryAdmit", mock.Anything, uint64(1), slotFor(fixedTime)).Return(nil).Once()

		insertErr := errors.New("insert failed")
		f.comments.On("Create", mock.Anything, mock.Anything).Return(insertErr).Once()
		f.limiter.On("Release", mock.Anything, uint64(1), slotFor(fixedTime)).Return(nil).Once()

		posted, err := f.useCase.Post(ctx, 1, 10, "great video")
		assert.ErrorIs(t, err, insertErr)
		assert.Nil(t, posted)
	})

	t.Run("Empty text never reaches the limiter", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()

		posted, err := f.useCase.Post(ctx, 1, 10, "   ")
		assert.ErrorIs(t, err, errs.ErrEmptyComment)
		assert.Nil(t, posted)
		f.limiter.AssertNotCalled(t, "TryAdmit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrVideoNotFound).Once()

		posted, err := f.useCase.Post(ctx, 1, 99, "great video")
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
		assert.Nil(t, posted)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	stored := &entity.Comment{ID: "c-1", UserID: 1, VideoID: 10, Text: "great video", CreatedAt: fixedTime}

	t.Run("Deleting a comment releases its slot", func(t *testing.T) {
		f := newFixture(t)

		f.comments.On("GetByID", mock.Anything, "c-1").Return(stored, nil).Once()
		f.comments.On("Delete", mock.Anything, "c-1").Return(nil).Once()
		f.limiter.On("Release", mock.Anything, uint64(1), ratelimit.Slot{ID: "c-1", At: fixedTime}).Return(nil).Once()

		err := f.useCase.Delete(ctx, 1, "c-1")
		assert.NoError(t, err)
	})

	t.Run("Only the author may delete", func(t *testing.T) {
		f := newFixture(t)

		f.comments.On("GetByID", mock.Anything, "c-1").Return(stored, nil).Once()

		err := f.useCase.Delete(ctx, 2, "c-1")
		assert.ErrorIs(t, err, errs.ErrNotCommentOwner)
		f.comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.limiter.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("A failed release does not fail the deletion", func(t *testing.T) {
		f := newFixture(t)

		f.comments.On("GetByID", mock.Anything, "c-1").Return(stored, nil).Once()
		f.comments.On("Delete", mock.Anything, "c-1").Return(nil).Once()
		f.limiter.On("Release", mock.Anything, uint64(1), mock.Anything).Return(errors.New("store unavailable")).Once()

		err := f.useCase.Delete(ctx, 1, "c-1")
		assert.NoError(t, err)
	})

	t.Run("Unknown comment", func(t *testing.T) {
		f := newFixture(t)

		f.comments.On("GetByID", mock.Anything, "c-404").Return(nil, errs.ErrCommentNotFound).Once()

		err := f.useCase.Delete(ctx, 1, "c-404")
		assert.ErrorIs(t, err, errs.ErrCommentNotFound)
	})

	t.Run("Failed delete keeps the slot occupied", func(t *testing.T) {
		f := newFixture(t)

		deleteErr := errors.New("delete failed")
		f.comments.On("GetByID", mock.Anything, "c-1").Return(stored, nil).Once()
		f.comments.On("Delete", mock.Anything, "c-1").Return(deleteErr).Once()

		err := f.useCase.Delete(ctx, 1, "c-1")
		assert.ErrorIs(t, err, deleteErr)
		f.limiter.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListByVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the comments for a video", func(t *testing.T) {
		f := newFixture(t)

		expected := []*entity.Comment{{ID: "c-1", UserID: 1, VideoID: 10, Text: "great video"}}
		f.videos.On("GetByID", mock.Anything, uint64(10)).Return(video(), nil).Once()
		f.comments.On("ListByVideo", mock.Anything, uint64(10)).Return(expected, nil).Once()

		comments, err := f.useCase.ListByVideo(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, expected, comments)
	})

	t.Run("Unknown video", func(t *testing.T) {
		f := newFixture(t)

		f.videos.On("GetByID", mock.Anything, uint64(99)).Return(nil, errs.ErrVideoNotFound).Once()

		_, err := f.useCase.ListByVideo(ctx, 99)
		assert.ErrorIs(t, err, errs.ErrVideoNotFound)
	})
}

package services

import (
	"context"
	"strings"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appErrors "github.com/clipstream/api/comments/errors"
	"github.com/clipstream/api/comments/models"
	"github.com/clipstream/api/internal/cache"
	profileModels "github.com/clipstream/api/profiles/models"
)

func disabledCache() *cache.GenericCacheService {
	return cache.NewGenericCacheService(nil, &cache.CacheConfig{Enabled: false})
}

func intPtr(v int) *int {
	return &v
}

func newTestService() (*MockCommentRepository, *MockVideoRepositoryForComments, *MockProfileRepository, CommentService) {
	mockCommentRepo := new(MockCommentRepository)
	mockVideoRepo := new(MockVideoRepositoryForComments)
	mockProfileRepo := new(MockProfileRepository)
	service := NewCommentService(mockCommentRepo, mockVideoRepo, mockProfileRepo, disabledCache())
	return mockCommentRepo, mockVideoRepo, mockProfileRepo, service
}

func TestCommentService_AddComment(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	t.Run("creates comment and bumps the counter", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, mockProfileRepo, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		// Service uses txCtx inside the transaction, so repository mocks
		// match on mock.Anything for context
		mockCommentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
			return c.VideoID == videoID && c.UserID == userID && c.Text == "Nice clip!"
		})).Return(nil)
		mockVideoRepo.On("IncrementCommentsCount", mock.Anything, videoID, 1).Return(nil)
		mockVideoRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			fn(ctx)
		})
		mockProfileRepo.On("GetDisplayInfo", ctx, userID).Return(profileModels.DisplayInfo{Username: "dave", Avatar: "d.png"}, nil)

		comment, err := service.AddComment(ctx, videoID, userID, &models.CreateCommentRequest{Text: "Nice clip!"})

		assert.NoError(t, err)
		assert.Equal(t, "Nice clip!", comment.Text)
		assert.Equal(t, "dave", comment.User.Username)
		assert.Equal(t, videoID.String(), comment.VideoID)
		mockCommentRepo.AssertExpectations(t)
		mockVideoRepo.AssertExpectations(t)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		comment, err := service.AddComment(ctx, videoID, userID, &models.CreateCommentRequest{Text: ""})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, appErrors.ErrInvalidCommentText)
		mockVideoRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		_, _, _, service := newTestService()

		comment, err := service.AddComment(ctx, videoID, userID, &models.CreateCommentRequest{Text: "   \n\t "})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, appErrors.ErrInvalidCommentText)
	})

	t.Run("rejects text over the length limit", func(t *testing.T) {
		_, _, _, service := newTestService()

		comment, err := service.AddComment(ctx, videoID, userID, &models.CreateCommentRequest{
			Text: strings.Repeat("x", 1001),
		})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, appErrors.ErrInvalidCommentText)
	})

	t.Run("unknown video", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(false, nil)

		comment, err := service.AddComment(ctx, videoID, userID, &models.CreateCommentRequest{Text: "hello"})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("video deleted between check and insert", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockCommentRepo.On("Create", mock.Anything, mock.Anything).Return(appErrors.ErrVideoNotFound)
		mockVideoRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(appErrors.ErrVideoNotFound).Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			fn(ctx)
		})

		comment, err := service.AddComment(ctx, videoID, userID, &models.CreateCommentRequest{Text: "hello"})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockVideoRepo.AssertNotCalled(t, "IncrementCommentsCount", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())

	makeComments := func(n int) []models.CommentWithUser {
		comments := make([]models.CommentWithUser, 0, n)
		for i := 0; i < n; i++ {
			comments = append(comments, models.CommentWithUser{
				Comment: models.Comment{
					ID:        uuid.Must(uuid.NewV4()),
					VideoID:   videoID,
					UserID:    uuid.Must(uuid.NewV4()),
					Text:      "comment",
					CreatedAt: time.Now(),
				},
				User: profileModels.DisplayInfo{Username: "user"},
			})
		}
		return comments
	}

	t.Run("first page of three comments with limit two", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockCommentRepo.On("CountByVideoID", ctx, videoID).Return(int64(3), nil)
		mockCommentRepo.On("FindByVideoID", ctx, videoID, 2, 0).Return(makeComments(2), nil)

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{Page: intPtr(1), Limit: intPtr(2)})

		assert.NoError(t, err)
		assert.Len(t, result.Comments, 2)
		assert.Equal(t, int64(3), result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.Equal(t, 1, result.Pagination.Page)
		mockCommentRepo.AssertExpectations(t)
	})

	t.Run("last partial page", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockCommentRepo.On("CountByVideoID", ctx, videoID).Return(int64(3), nil)
		mockCommentRepo.On("FindByVideoID", ctx, videoID, 2, 2).Return(makeComments(1), nil)

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{Page: intPtr(2), Limit: intPtr(2)})

		assert.NoError(t, err)
		assert.Len(t, result.Comments, 1)
		assert.Equal(t, 2, result.Pagination.TotalPages)
	})

	t.Run("page past the end is empty with the true total", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockCommentRepo.On("CountByVideoID", ctx, videoID).Return(int64(3), nil)
		mockCommentRepo.On("FindByVideoID", ctx, videoID, 2, 8).Return([]models.CommentWithUser{}, nil)

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{Page: intPtr(5), Limit: intPtr(2)})

		assert.NoError(t, err)
		assert.Empty(t, result.Comments)
		assert.Equal(t, int64(3), result.Pagination.Total)
		assert.Equal(t, 5, result.Pagination.Page)
	})

	t.Run("defaults apply when parameters are absent", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockCommentRepo.On("CountByVideoID", ctx, videoID).Return(int64(0), nil)
		mockCommentRepo.On("FindByVideoID", ctx, videoID, 10, 0).Return([]models.CommentWithUser{}, nil)

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Pagination.Page)
		assert.Equal(t, 10, result.Pagination.Limit)
		assert.Equal(t, 0, result.Pagination.TotalPages)
	})

	t.Run("rejects zero limit", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{Limit: intPtr(0)})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPagination)
		mockVideoRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		mockCommentRepo.AssertNotCalled(t, "CountByVideoID", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive page", func(t *testing.T) {
		_, _, _, service := newTestService()

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{Page: intPtr(0)})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPagination)
	})

	t.Run("unknown video", func(t *testing.T) {
		mockCommentRepo, mockVideoRepo, _, service := newTestService()

		mockVideoRepo.On("Exists", ctx, videoID).Return(false, nil)

		result, err := service.ListComments(ctx, videoID, &models.CommentQuery{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockCommentRepo.AssertNotCalled(t, "FindByVideoID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

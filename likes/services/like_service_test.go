package services

import (
	"context"
	"errors"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clipstream/api/internal/cache"
	appErrors "github.com/clipstream/api/likes/errors"
	"github.com/clipstream/api/likes/models"
	profileModels "github.com/clipstream/api/profiles/models"
)

func disabledCache() *cache.GenericCacheService {
	return cache.NewGenericCacheService(nil, &cache.CacheConfig{Enabled: false})
}

func TestLikeService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	t.Run("first toggle creates the like and increments the counter", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		// Service uses txCtx inside the transaction, so repository mocks
		// match on mock.Anything for context
		mockLikeRepo.On("AddLike", mock.Anything, mock.MatchedBy(func(like *models.Like) bool {
			return like.VideoID == videoID && like.UserID == userID && like.ID != uuid.Nil
		})).Return(true, nil)
		mockVideoRepo.On("IncrementLikesCount", mock.Anything, videoID).Return(nil)
		mockVideoRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			fn(ctx)
		})

		result, err := service.ToggleLike(ctx, videoID, userID)

		assert.NoError(t, err)
		assert.True(t, result.Liked)
		assert.NotNil(t, result.Like)
		assert.Equal(t, videoID, result.Like.VideoID)
		assert.Equal(t, userID, result.Like.UserID)
		mockLikeRepo.AssertExpectations(t)
		mockVideoRepo.AssertExpectations(t)
	})

	t.Run("second toggle removes the like and decrements the counter", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockLikeRepo.On("AddLike", mock.Anything, mock.Anything).Return(false, nil)
		mockLikeRepo.On("RemoveLike", mock.Anything, videoID, userID).Return(true, nil)
		mockVideoRepo.On("DecrementLikesCount", mock.Anything, videoID).Return(nil)
		mockVideoRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			fn(ctx)
		})

		result, err := service.ToggleLike(ctx, videoID, userID)

		assert.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Nil(t, result.Like)
		mockLikeRepo.AssertExpectations(t)
		mockVideoRepo.AssertExpectations(t)
	})

	t.Run("lost race leaves the counter untouched", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		// Another request deleted the row between our conflicting insert
		// and our delete.
		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockLikeRepo.On("AddLike", mock.Anything, mock.Anything).Return(false, nil)
		mockLikeRepo.On("RemoveLike", mock.Anything, videoID, userID).Return(false, nil)
		mockVideoRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			fn(ctx)
		})

		result, err := service.ToggleLike(ctx, videoID, userID)

		assert.NoError(t, err)
		assert.False(t, result.Liked)
		mockVideoRepo.AssertNotCalled(t, "DecrementLikesCount", mock.Anything, mock.Anything)
		mockLikeRepo.AssertExpectations(t)
	})

	t.Run("unknown video", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		mockVideoRepo.On("Exists", ctx, videoID).Return(false, nil)

		result, err := service.ToggleLike(ctx, videoID, userID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockVideoRepo.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	})

	t.Run("counter failure rolls the toggle back", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		counterErr := errors.New("failed to increment likes count: connection reset")
		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockLikeRepo.On("AddLike", mock.Anything, mock.Anything).Return(true, nil)
		mockVideoRepo.On("IncrementLikesCount", mock.Anything, videoID).Return(errors.New("connection reset"))
		mockVideoRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(counterErr).Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			fn(ctx)
		})

		result, err := service.ToggleLike(ctx, videoID, userID)

		assert.Nil(t, result)
		assert.Error(t, err)
		mockLikeRepo.AssertExpectations(t)
		mockVideoRepo.AssertExpectations(t)
	})
}

func TestLikeService_GetLikes(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())

	t.Run("returns decorated likes", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		likerID := uuid.Must(uuid.NewV4())
		likes := []models.LikeWithUser{
			{
				Like: models.Like{
					ID:        uuid.Must(uuid.NewV4()),
					VideoID:   videoID,
					UserID:    likerID,
					CreatedAt: time.Now(),
				},
				User: profileModels.DisplayInfo{Username: "carol", Avatar: "c.png"},
			},
		}
		mockVideoRepo.On("Exists", ctx, videoID).Return(true, nil)
		mockLikeRepo.On("FindByVideoID", ctx, videoID).Return(likes, nil)

		result, err := service.GetLikes(ctx, videoID)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "carol", result[0].User.Username)
		assert.Equal(t, likerID.String(), result[0].UserID)
		mockLikeRepo.AssertExpectations(t)
	})

	t.Run("unknown video", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		mockVideoRepo.On("Exists", ctx, videoID).Return(false, nil)

		result, err := service.GetLikes(ctx, videoID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockLikeRepo.AssertNotCalled(t, "FindByVideoID", mock.Anything, mock.Anything)
	})
}

func TestLikeService_GetLikedVideos(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("passes through the bulk lookup", func(t *testing.T) {
		mockLikeRepo := new(MockLikeRepository)
		mockVideoRepo := new(MockVideoRepositoryForLikes)
		service := NewLikeService(mockLikeRepo, mockVideoRepo, disabledCache())

		v1 := uuid.Must(uuid.NewV4())
		v2 := uuid.Must(uuid.NewV4())
		mockLikeRepo.On("GetLikedVideos", ctx, userID, []uuid.UUID{v1, v2}).Return(map[uuid.UUID]bool{v1: true}, nil)

		liked, err := service.GetLikedVideos(ctx, userID, []uuid.UUID{v1, v2})

		assert.NoError(t, err)
		assert.True(t, liked[v1])
		assert.False(t, liked[v2])
		mockLikeRepo.AssertExpectations(t)
	})
}

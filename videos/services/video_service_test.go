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
	profileModels "github.com/clipstream/api/profiles/models"
	appErrors "github.com/clipstream/api/videos/errors"
	"github.com/clipstream/api/videos/models"
)

func disabledCache() *cache.GenericCacheService {
	return cache.NewGenericCacheService(nil, &cache.CacheConfig{Enabled: false})
}

func TestVideoService_GetFeed(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV4())

	t.Run("returns decorated videos newest first", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		videoID := uuid.Must(uuid.NewV4())
		feed := []models.VideoWithOwner{
			{
				Video: models.Video{
					ID:          videoID,
					OwnerUserID: ownerID,
					Title:       "First clip",
					ViewsCount:  7,
					CreatedAt:   time.Now(),
				},
				Owner: profileModels.DisplayInfo{Username: "alice", Avatar: "a.png"},
			},
		}
		mockRepo.On("FindFeed", mock.Anything, 20).Return(feed, nil)

		result, err := service.GetFeed(ctx, 0)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, videoID.String(), result[0].ID)
		assert.Equal(t, "alice", result[0].User.Username)
		assert.Equal(t, int64(7), result[0].ViewsCount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("caps limit at maximum", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		mockRepo.On("FindFeed", mock.Anything, maxFeedLimit).Return([]models.VideoWithOwner{}, nil)

		result, err := service.GetFeed(ctx, 5000)

		assert.NoError(t, err)
		assert.Empty(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestVideoService_GetVideo(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	t.Run("returns video and records the view", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		stored := &models.VideoWithOwner{
			Video: models.Video{ID: videoID, OwnerUserID: ownerID, Title: "Clip", ViewsCount: 3},
			Owner: profileModels.DisplayInfo{Username: "bob"},
		}
		mockRepo.On("FindByID", mock.Anything, videoID).Return(stored, nil)
		mockRepo.On("IncrementViewsCount", mock.Anything, videoID).Return(nil)

		result, err := service.GetVideo(ctx, videoID)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), result.ViewsCount)
		assert.Equal(t, "bob", result.User.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("view increment failure does not fail the read", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		stored := &models.VideoWithOwner{
			Video: models.Video{ID: videoID, OwnerUserID: ownerID, ViewsCount: 3},
			Owner: profileModels.DefaultDisplayInfo(),
		}
		mockRepo.On("FindByID", mock.Anything, videoID).Return(stored, nil)
		mockRepo.On("IncrementViewsCount", mock.Anything, videoID).Return(errors.New("connection reset"))

		result, err := service.GetVideo(ctx, videoID)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.ViewsCount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown video", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		mockRepo.On("FindByID", mock.Anything, videoID).Return(nil, appErrors.ErrVideoNotFound)

		result, err := service.GetVideo(ctx, videoID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestVideoService_CreateVideo(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("creates video with zeroed counters", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(v *models.Video) bool {
			return v.OwnerUserID == userID && v.Title == "My clip" &&
				v.ViewsCount == 0 && v.LikesCount == 0 && v.CommentsCount == 0
		})).Return(nil)

		video, err := service.CreateVideo(ctx, userID, &models.CreateVideoRequest{
			Title:    "My clip",
			VideoURL: "https://cdn.example.com/v.mp4",
		})

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, video.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		video, err := service.CreateVideo(ctx, userID, &models.CreateVideoRequest{
			Title:    "   ",
			VideoURL: "https://cdn.example.com/v.mp4",
		})

		assert.Nil(t, video)
		assert.ErrorIs(t, err, appErrors.ErrInvalidVideoData)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects missing video URL", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		video, err := service.CreateVideo(ctx, userID, &models.CreateVideoRequest{Title: "Clip"})

		assert.Nil(t, video)
		assert.ErrorIs(t, err, appErrors.ErrInvalidVideoData)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestVideoService_DeleteVideo(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	t.Run("owner can delete", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		mockRepo.On("GetOwnerID", mock.Anything, videoID).Return(ownerID, nil)
		mockRepo.On("Delete", mock.Anything, videoID).Return(nil)

		err := service.DeleteVideo(ctx, videoID, ownerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		otherUser := uuid.Must(uuid.NewV4())
		mockRepo.On("GetOwnerID", mock.Anything, videoID).Return(ownerID, nil)

		err := service.DeleteVideo(ctx, videoID, otherUser)

		assert.ErrorIs(t, err, appErrors.ErrNotVideoOwner)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("unknown video", func(t *testing.T) {
		mockRepo := new(MockVideoRepository)
		service := NewVideoService(mockRepo, disabledCache())

		mockRepo.On("GetOwnerID", mock.Anything, videoID).Return(uuid.Nil, appErrors.ErrVideoNotFound)

		err := service.DeleteVideo(ctx, videoID, ownerID)

		assert.ErrorIs(t, err, appErrors.ErrVideoNotFound)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

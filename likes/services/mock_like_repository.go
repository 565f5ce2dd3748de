package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/clipstream/api/likes/models"
	likeRepository "github.com/clipstream/api/likes/repository"
	videoModels "github.com/clipstream/api/videos/models"
	videoRepository "github.com/clipstream/api/videos/repository"
)

// MockLikeRepository is a mock implementation of LikeRepository for testing
type MockLikeRepository struct {
	mock.Mock
}

// Ensure MockLikeRepository implements LikeRepository
var _ likeRepository.LikeRepository = (*MockLikeRepository)(nil)

// AddLike mocks the AddLike method
func (m *MockLikeRepository) AddLike(ctx context.Context, like *models.Like) (bool, error) {
	args := m.Called(ctx, like)
	return args.Bool(0), args.Error(1)
}

// RemoveLike mocks the RemoveLike method
func (m *MockLikeRepository) RemoveLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, videoID, userID)
	return args.Bool(0), args.Error(1)
}

// HasLiked mocks the HasLiked method
func (m *MockLikeRepository) HasLiked(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, videoID, userID)
	return args.Bool(0), args.Error(1)
}

// FindByVideoID mocks the FindByVideoID method
func (m *MockLikeRepository) FindByVideoID(ctx context.Context, videoID uuid.UUID) ([]models.LikeWithUser, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LikeWithUser), args.Error(1)
}

// GetLikedVideos mocks the GetLikedVideos method
func (m *MockLikeRepository) GetLikedVideos(ctx context.Context, userID uuid.UUID, videoIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, videoIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

// MockVideoRepositoryForLikes is a mock implementation of the video
// repository used by the like service
type MockVideoRepositoryForLikes struct {
	mock.Mock
}

// Ensure MockVideoRepositoryForLikes implements VideoRepository
var _ videoRepository.VideoRepository = (*MockVideoRepositoryForLikes)(nil)

// Create mocks the Create method
func (m *MockVideoRepositoryForLikes) Create(ctx context.Context, video *videoModels.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockVideoRepositoryForLikes) FindByID(ctx context.Context, videoID uuid.UUID) (*videoModels.VideoWithOwner, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videoModels.VideoWithOwner), args.Error(1)
}

// FindFeed mocks the FindFeed method
func (m *MockVideoRepositoryForLikes) FindFeed(ctx context.Context, limit int) ([]videoModels.VideoWithOwner, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]videoModels.VideoWithOwner), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockVideoRepositoryForLikes) Exists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, videoID)
	return args.Bool(0), args.Error(1)
}

// GetOwnerID mocks the GetOwnerID method
func (m *MockVideoRepositoryForLikes) GetOwnerID(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockVideoRepositoryForLikes) Delete(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementViewsCount mocks the IncrementViewsCount method
func (m *MockVideoRepositoryForLikes) IncrementViewsCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementLikesCount mocks the IncrementLikesCount method
func (m *MockVideoRepositoryForLikes) IncrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// DecrementLikesCount mocks the DecrementLikesCount method
func (m *MockVideoRepositoryForLikes) DecrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementCommentsCount mocks the IncrementCommentsCount method
func (m *MockVideoRepositoryForLikes) IncrementCommentsCount(ctx context.Context, videoID uuid.UUID, delta int) error {
	args := m.Called(ctx, videoID, delta)
	return args.Error(0)
}

// WithTransaction mocks the WithTransaction method
func (m *MockVideoRepositoryForLikes) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

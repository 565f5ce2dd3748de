package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/clipstream/api/comments/models"
	commentRepository "github.com/clipstream/api/comments/repository"
	profileModels "github.com/clipstream/api/profiles/models"
	profileRepository "github.com/clipstream/api/profiles/repository"
	videoModels "github.com/clipstream/api/videos/models"
	videoRepository "github.com/clipstream/api/videos/repository"
)

// MockCommentRepository is a mock implementation of CommentRepository for testing
type MockCommentRepository struct {
	mock.Mock
}

// Ensure MockCommentRepository implements CommentRepository
var _ commentRepository.CommentRepository = (*MockCommentRepository)(nil)

// Create mocks the Create method
func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// FindByVideoID mocks the FindByVideoID method
func (m *MockCommentRepository) FindByVideoID(ctx context.Context, videoID uuid.UUID, limit, offset int) ([]models.CommentWithUser, error) {
	args := m.Called(ctx, videoID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentWithUser), args.Error(1)
}

// CountByVideoID mocks the CountByVideoID method
func (m *MockCommentRepository) CountByVideoID(ctx context.Context, videoID uuid.UUID) (int64, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(int64), args.Error(1)
}

// MockVideoRepositoryForComments is a mock implementation of the video
// repository used by the comment service
type MockVideoRepositoryForComments struct {
	mock.Mock
}

// Ensure MockVideoRepositoryForComments implements VideoRepository
var _ videoRepository.VideoRepository = (*MockVideoRepositoryForComments)(nil)

// Create mocks the Create method
func (m *MockVideoRepositoryForComments) Create(ctx context.Context, video *videoModels.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockVideoRepositoryForComments) FindByID(ctx context.Context, videoID uuid.UUID) (*videoModels.VideoWithOwner, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*videoModels.VideoWithOwner), args.Error(1)
}

// FindFeed mocks the FindFeed method
func (m *MockVideoRepositoryForComments) FindFeed(ctx context.Context, limit int) ([]videoModels.VideoWithOwner, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]videoModels.VideoWithOwner), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockVideoRepositoryForComments) Exists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, videoID)
	return args.Bool(0), args.Error(1)
}

// GetOwnerID mocks the GetOwnerID method
func (m *MockVideoRepositoryForComments) GetOwnerID(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockVideoRepositoryForComments) Delete(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementViewsCount mocks the IncrementViewsCount method
func (m *MockVideoRepositoryForComments) IncrementViewsCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementLikesCount mocks the IncrementLikesCount method
func (m *MockVideoRepositoryForComments) IncrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// DecrementLikesCount mocks the DecrementLikesCount method
func (m *MockVideoRepositoryForComments) DecrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementCommentsCount mocks the IncrementCommentsCount method
func (m *MockVideoRepositoryForComments) IncrementCommentsCount(ctx context.Context, videoID uuid.UUID, delta int) error {
	args := m.Called(ctx, videoID, delta)
	return args.Error(0)
}

// WithTransaction mocks the WithTransaction method
func (m *MockVideoRepositoryForComments) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of ProfileRepository for testing
type MockProfileRepository struct {
	mock.Mock
}

// Ensure MockProfileRepository implements ProfileRepository
var _ profileRepository.ProfileRepository = (*MockProfileRepository)(nil)

// GetDisplayInfo mocks the GetDisplayInfo method
func (m *MockProfileRepository) GetDisplayInfo(ctx context.Context, userID uuid.UUID) (profileModels.DisplayInfo, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(profileModels.DisplayInfo), args.Error(1)
}

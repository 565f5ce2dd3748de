package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/clipstream/api/videos/models"
	videoRepository "github.com/clipstream/api/videos/repository"
)

// MockVideoRepository is a mock implementation of VideoRepository for testing
type MockVideoRepository struct {
	mock.Mock
}

// Ensure MockVideoRepository implements VideoRepository
var _ videoRepository.VideoRepository = (*MockVideoRepository)(nil)

// Create mocks the Create method
func (m *MockVideoRepository) Create(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockVideoRepository) FindByID(ctx context.Context, videoID uuid.UUID) (*models.VideoWithOwner, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VideoWithOwner), args.Error(1)
}

// FindFeed mocks the FindFeed method
func (m *MockVideoRepository) FindFeed(ctx context.Context, limit int) ([]models.VideoWithOwner, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VideoWithOwner), args.Error(1)
}

// Exists mocks the Exists method
func (m *MockVideoRepository) Exists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	args := m.Called(ctx, videoID)
	return args.Bool(0), args.Error(1)
}

// GetOwnerID mocks the GetOwnerID method
func (m *MockVideoRepository) GetOwnerID(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockVideoRepository) Delete(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementViewsCount mocks the IncrementViewsCount method
func (m *MockVideoRepository) IncrementViewsCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementLikesCount mocks the IncrementLikesCount method
func (m *MockVideoRepository) IncrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// DecrementLikesCount mocks the DecrementLikesCount method
func (m *MockVideoRepository) DecrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

// IncrementCommentsCount mocks the IncrementCommentsCount method
func (m *MockVideoRepository) IncrementCommentsCount(ctx context.Context, videoID uuid.UUID, delta int) error {
	args := m.Called(ctx, videoID, delta)
	return args.Error(0)
}

// WithTransaction mocks the WithTransaction method
func (m *MockVideoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

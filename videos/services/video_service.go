package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/internal/cache"
	"github.com/clipstream/api/internal/pkg/log"
	appErrors "github.com/clipstream/api/videos/errors"
	"github.com/clipstream/api/videos/models"
	"github.com/clipstream/api/videos/repository"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100

	feedCacheTTL = 30 * time.Second
)

// VideoService defines the interface for video operations
type VideoService interface {
	// GetFeed returns the most recent videos
	GetFeed(ctx context.Context, limit int) ([]models.VideoResponse, error)

	// GetVideo returns a single video and records the view
	GetVideo(ctx context.Context, videoID uuid.UUID) (*models.VideoResponse, error)

	// CreateVideo registers a new video owned by userID
	CreateVideo(ctx context.Context, userID uuid.UUID, req *models.CreateVideoRequest) (*models.Video, error)

	// DeleteVideo removes a video. Only the owner may delete.
	DeleteVideo(ctx context.Context, videoID, userID uuid.UUID) error
}

// videoService implements the VideoService interface
type videoService struct {
	repo         repository.VideoRepository
	cacheService *cache.GenericCacheService
}

// NewVideoService creates a new instance of the video service
func NewVideoService(repo repository.VideoRepository, cacheService *cache.GenericCacheService) VideoService {
	return &videoService{
		repo:         repo,
		cacheService: cacheService,
	}
}

// GetFeed returns the most recent videos decorated with owner profiles
func (s *videoService) GetFeed(ctx context.Context, limit int) ([]models.VideoResponse, error) {
	limit = sanitizeFeedLimit(limit)

	cacheKey := fmt.Sprintf("feed:limit:%d", limit)
	if s.cacheService.IsEnabled() {
		var cached []models.VideoResponse
		if err := s.cacheService.GetCached(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	videos, err := s.repo.FindFeed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load video feed: %w", err)
	}

	responses := make([]models.VideoResponse, 0, len(videos))
	for i := range videos {
		responses = append(responses, videos[i].ToResponse())
	}

	if s.cacheService.IsEnabled() {
		if err := s.cacheService.CacheData(ctx, cacheKey, responses, feedCacheTTL); err != nil {
			log.Warn("failed to cache video feed: %v", err)
		}
	}

	return responses, nil
}

// GetVideo returns a single video and increments its views counter.
// The view increment is best effort and does not fail the read.
func (s *videoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*models.VideoResponse, error) {
	video, err := s.repo.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViewsCount(ctx, videoID); err != nil {
		log.Warn("failed to increment views for video %s: %v", videoID, err)
	} else {
		video.Video.ViewsCount++
	}

	response := video.ToResponse()
	return &response, nil
}

// CreateVideo registers a new video with zeroed counters
func (s *videoService) CreateVideo(ctx context.Context, userID uuid.UUID, req *models.CreateVideoRequest) (*models.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", appErrors.ErrInvalidVideoData)
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		return nil, fmt.Errorf("%w: videoUrl is required", appErrors.ErrInvalidVideoData)
	}

	videoID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate video ID: %w", err)
	}

	video := &models.Video{
		ID:           videoID,
		OwnerUserID:  userID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}

	s.invalidateFeedCache(ctx)

	return video, nil
}

// DeleteVideo removes a video after verifying ownership
func (s *videoService) DeleteVideo(ctx context.Context, videoID, userID uuid.UUID) error {
	ownerID, err := s.repo.GetOwnerID(ctx, videoID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return appErrors.ErrNotVideoOwner
	}

	if err := s.repo.Delete(ctx, videoID); err != nil {
		return err
	}

	s.invalidateFeedCache(ctx)

	return nil
}

func (s *videoService) invalidateFeedCache(ctx context.Context) {
	if !s.cacheService.IsEnabled() {
		return
	}
	if err := s.cacheService.InvalidatePattern(ctx, "feed:*"); err != nil {
		log.Warn("failed to invalidate feed cache: %v", err)
	}
}

func sanitizeFeedLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}

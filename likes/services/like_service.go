package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/internal/cache"
	"github.com/clipstream/api/internal/pkg/log"
	appErrors "github.com/clipstream/api/likes/errors"
	"github.com/clipstream/api/likes/models"
	likeRepository "github.com/clipstream/api/likes/repository"
	videoErrors "github.com/clipstream/api/videos/errors"
	videoRepository "github.com/clipstream/api/videos/repository"
)

const likesCacheTTL = 15 * time.Second

// LikeService defines the interface for like operations
type LikeService interface {
	// ToggleLike flips the like state of (videoID, userID).
	// A user with no like gains one; a user with a like loses it.
	// The ledger row and the denormalized counter move together.
	ToggleLike(ctx context.Context, videoID, userID uuid.UUID) (*models.ToggleResult, error)

	// GetLikes returns all likes for a video, newest first
	GetLikes(ctx context.Context, videoID uuid.UUID) ([]models.LikeResponse, error)

	// GetLikedVideos reports which of the given videos the user has liked
	GetLikedVideos(ctx context.Context, userID uuid.UUID, videoIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// likeService implements the LikeService interface
type likeService struct {
	likeRepo     likeRepository.LikeRepository
	videoRepo    videoRepository.VideoRepository
	cacheService *cache.GenericCacheService
}

// NewLikeService creates a new instance of the like service
func NewLikeService(likeRepo likeRepository.LikeRepository, videoRepo videoRepository.VideoRepository, cacheService *cache.GenericCacheService) LikeService {
	return &likeService{
		likeRepo:     likeRepo,
		videoRepo:    videoRepo,
		cacheService: cacheService,
	}
}

// ToggleLike flips the like state for a user on a video.
// Both the ledger write and the counter update run in one transaction,
// so a failure on either side rolls the whole toggle back and the
// counter always equals the number of ledger rows.
func (s *likeService) ToggleLike(ctx context.Context, videoID, userID uuid.UUID) (*models.ToggleResult, error) {
	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video existence: %w", err)
	}
	if !exists {
		return nil, appErrors.ErrVideoNotFound
	}

	var result models.ToggleResult

	txErr := s.videoRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		likeID, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate like ID: %w", err)
		}

		like := &models.Like{
			ID:        likeID,
			VideoID:   videoID,
			UserID:    userID,
			CreatedAt: time.Now(),
		}

		created, err := s.likeRepo.AddLike(txCtx, like)
		if err != nil {
			return fmt.Errorf("failed to add like: %w", err)
		}

		if created {
			if err := s.videoRepo.IncrementLikesCount(txCtx, videoID); err != nil {
				return fmt.Errorf("failed to increment likes count: %w", err)
			}
			result = models.ToggleResult{Liked: true, Like: like}
			return nil
		}

		// The row already existed, so this toggle is an unlike.
		removed, err := s.likeRepo.RemoveLike(txCtx, videoID, userID)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}
		if removed {
			if err := s.videoRepo.DecrementLikesCount(txCtx, videoID); err != nil {
				return fmt.Errorf("failed to decrement likes count: %w", err)
			}
		}
		result = models.ToggleResult{Liked: false}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, videoErrors.ErrVideoNotFound) {
			return nil, appErrors.ErrVideoNotFound
		}
		return nil, txErr
	}

	s.invalidateLikesCache(ctx, videoID)

	return &result, nil
}

// GetLikes returns all likes for a video with liker display info
func (s *likeService) GetLikes(ctx context.Context, videoID uuid.UUID) ([]models.LikeResponse, error) {
	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video existence: %w", err)
	}
	if !exists {
		return nil, appErrors.ErrVideoNotFound
	}

	cacheKey := fmt.Sprintf("video:%s", videoID)
	if s.cacheService.IsEnabled() {
		var cached []models.LikeResponse
		if err := s.cacheService.GetCached(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	likes, err := s.likeRepo.FindByVideoID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.LikeResponse, 0, len(likes))
	for i := range likes {
		responses = append(responses, likes[i].ToResponse())
	}

	if s.cacheService.IsEnabled() {
		if err := s.cacheService.CacheData(ctx, cacheKey, responses, likesCacheTTL); err != nil {
			log.Warn("failed to cache likes for video %s: %v", videoID, err)
		}
	}

	return responses, nil
}

// GetLikedVideos reports which of the given videos the user has liked
func (s *likeService) GetLikedVideos(ctx context.Context, userID uuid.UUID, videoIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return s.likeRepo.GetLikedVideos(ctx, userID, videoIDs)
}

func (s *likeService) invalidateLikesCache(ctx context.Context, videoID uuid.UUID) {
	if !s.cacheService.IsEnabled() {
		return
	}
	if err := s.cacheService.InvalidateKey(ctx, fmt.Sprintf("video:%s", videoID)); err != nil {
		log.Warn("failed to invalidate likes cache for video %s: %v", videoID, err)
	}
}

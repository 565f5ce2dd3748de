package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	appErrors "github.com/clipstream/api/comments/errors"
	"github.com/clipstream/api/comments/models"
	commentRepository "github.com/clipstream/api/comments/repository"
	"github.com/clipstream/api/comments/validation"
	"github.com/clipstream/api/internal/cache"
	"github.com/clipstream/api/internal/pkg/log"
	profileRepository "github.com/clipstream/api/profiles/repository"
	videoErrors "github.com/clipstream/api/videos/errors"
	videoRepository "github.com/clipstream/api/videos/repository"
)

const (
	defaultCommentPage  = 1
	defaultCommentLimit = 10
	maxCommentLimit     = 100

	commentsCacheTTL = 15 * time.Second
)

// CommentService defines the interface for comment operations
type CommentService interface {
	// AddComment creates a comment on a video and bumps the counter
	AddComment(ctx context.Context, videoID, userID uuid.UUID, req *models.CreateCommentRequest) (*models.CommentResponse, error)

	// ListComments returns one page of comments, newest first
	ListComments(ctx context.Context, videoID uuid.UUID, query *models.CommentQuery) (*models.CommentsListResponse, error)
}

// commentService implements the CommentService interface
type commentService struct {
	commentRepo  commentRepository.CommentRepository
	videoRepo    videoRepository.VideoRepository
	profileRepo  profileRepository.ProfileRepository
	cacheService *cache.GenericCacheService
}

// NewCommentService creates a new instance of the comment service
func NewCommentService(
	commentRepo commentRepository.CommentRepository,
	videoRepo videoRepository.VideoRepository,
	profileRepo profileRepository.ProfileRepository,
	cacheService *cache.GenericCacheService,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		videoRepo:    videoRepo,
		profileRepo:  profileRepo,
		cacheService: cacheService,
	}
}

// AddComment creates a comment and increments the comments counter in
// the same transaction, so the counter always equals the number of
// ledger rows.
func (s *commentService) AddComment(ctx context.Context, videoID, userID uuid.UUID, req *models.CreateCommentRequest) (*models.CommentResponse, error) {
	if err := validation.ValidateCreateCommentRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidCommentText, err)
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video existence: %w", err)
	}
	if !exists {
		return nil, appErrors.ErrVideoNotFound
	}

	commentID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate comment ID: %w", err)
	}

	comment := &models.Comment{
		ID:        commentID,
		VideoID:   videoID,
		UserID:    userID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	txErr := s.videoRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}
		return s.videoRepo.IncrementCommentsCount(txCtx, videoID, 1)
	})
	if txErr != nil {
		if errors.Is(txErr, videoErrors.ErrVideoNotFound) {
			return nil, appErrors.ErrVideoNotFound
		}
		return nil, txErr
	}

	s.invalidateCommentsCache(ctx, videoID)

	user, err := s.profileRepo.GetDisplayInfo(ctx, userID)
	if err != nil {
		log.Warn("failed to load profile for user %s: %v", userID, err)
	}

	decorated := models.CommentWithUser{Comment: *comment, User: user}
	response := decorated.ToResponse()
	return &response, nil
}

// ListComments returns one page of comments with pagination metadata.
// A page past the end yields an empty list with the true total.
func (s *commentService) ListComments(ctx context.Context, videoID uuid.UUID, query *models.CommentQuery) (*models.CommentsListResponse, error) {
	page, limit, err := resolvePagination(query)
	if err != nil {
		return nil, err
	}

	exists, err := s.videoRepo.Exists(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check video existence: %w", err)
	}
	if !exists {
		return nil, appErrors.ErrVideoNotFound
	}

	cacheKey := fmt.Sprintf("video:%s:page:%d:limit:%d", videoID, page, limit)
	if s.cacheService.IsEnabled() {
		var cached models.CommentsListResponse
		if err := s.cacheService.GetCached(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	total, err := s.commentRepo.CountByVideoID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	comments, err := s.commentRepo.FindByVideoID(ctx, videoID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, comments[i].ToResponse())
	}

	response := &models.CommentsListResponse{
		Comments: responses,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}

	if s.cacheService.IsEnabled() {
		if err := s.cacheService.CacheData(ctx, cacheKey, response, commentsCacheTTL); err != nil {
			log.Warn("failed to cache comments for video %s: %v", videoID, err)
		}
	}

	return response, nil
}

func (s *commentService) invalidateCommentsCache(ctx context.Context, videoID uuid.UUID) {
	if !s.cacheService.IsEnabled() {
		return
	}
	if err := s.cacheService.InvalidatePattern(ctx, fmt.Sprintf("video:%s:*", videoID)); err != nil {
		log.Warn("failed to invalidate comments cache for video %s: %v", videoID, err)
	}
}

// resolvePagination applies defaults for absent parameters and rejects
// explicit non-positive values.
func resolvePagination(query *models.CommentQuery) (page, limit int, err error) {
	page = defaultCommentPage
	limit = defaultCommentLimit

	if query != nil && query.Page != nil {
		if *query.Page <= 0 {
			return 0, 0, fmt.Errorf("%w: page must be at least 1", appErrors.ErrInvalidPagination)
		}
		page = *query.Page
	}
	if query != nil && query.Limit != nil {
		if *query.Limit <= 0 {
			return 0, 0, fmt.Errorf("%w: limit must be at least 1", appErrors.ErrInvalidPagination)
		}
		limit = *query.Limit
		if limit > maxCommentLimit {
			limit = maxCommentLimit
		}
	}

	return page, limit, nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/videos/models"
)

// VideoRepository defines the interface for video data operations.
// It owns the denormalized counters; callers mutate them only through
// the atomic increment methods below.
type VideoRepository interface {
	// Create inserts a new video with zeroed counters
	Create(ctx context.Context, video *models.Video) error

	// FindByID retrieves a single video joined with its owner's display info
	FindByID(ctx context.Context, videoID uuid.UUID) (*models.VideoWithOwner, error)

	// FindFeed retrieves the most recent videos with owner display info
	FindFeed(ctx context.Context, limit int) ([]models.VideoWithOwner, error)

	// Exists reports whether a video row exists
	Exists(ctx context.Context, videoID uuid.UUID) (bool, error)

	// GetOwnerID returns the owner of a video
	GetOwnerID(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error)

	// Delete removes a video row. Likes and comments cascade at the
	// database level.
	Delete(ctx context.Context, videoID uuid.UUID) error

	// IncrementViewsCount atomically increments the views counter
	IncrementViewsCount(ctx context.Context, videoID uuid.UUID) error

	// IncrementLikesCount atomically increments the likes counter
	IncrementLikesCount(ctx context.Context, videoID uuid.UUID) error

	// DecrementLikesCount atomically decrements the likes counter,
	// never taking it below zero
	DecrementLikesCount(ctx context.Context, videoID uuid.UUID) error

	// IncrementCommentsCount atomically adjusts the comments counter by delta
	IncrementCommentsCount(ctx context.Context, videoID uuid.UUID, delta int) error

	// WithTransaction executes a function within a database transaction.
	// The transaction is injected into the context and picked up by
	// every repository operation invoked inside fn.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/comments/models"
)

// CommentRepository defines the interface for the comment ledger.
// The ledger is the source of truth; the videos.comments_count counter
// is adjusted alongside it inside the same transaction.
type CommentRepository interface {
	// Create inserts a new comment row
	Create(ctx context.Context, comment *models.Comment) error

	// FindByVideoID retrieves one page of comments with author display
	// info, newest first
	FindByVideoID(ctx context.Context, videoID uuid.UUID, limit, offset int) ([]models.CommentWithUser, error)

	// CountByVideoID returns the total number of comments for a video
	CountByVideoID(ctx context.Context, videoID uuid.UUID) (int64, error)
}

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/likes/models"
)

// LikeRepository defines the interface for the like ledger.
// The ledger is the source of truth; the videos.likes_count counter
// is adjusted alongside it inside the same transaction.
type LikeRepository interface {
	// AddLike attempts to insert a like row.
	// Returns true if a new row was inserted, false if the user had
	// already liked the video.
	AddLike(ctx context.Context, like *models.Like) (bool, error)

	// RemoveLike deletes a like row.
	// Returns true if a row was deleted, false if no like existed.
	RemoveLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error)

	// HasLiked reports whether the user has liked the video
	HasLiked(ctx context.Context, videoID, userID uuid.UUID) (bool, error)

	// FindByVideoID retrieves all likes for a video with liker display
	// info, newest first
	FindByVideoID(ctx context.Context, videoID uuid.UUID) ([]models.LikeWithUser, error)

	// GetLikedVideos bulk checks which of the given videos the user has
	// liked. Videos absent from the result map are not liked.
	GetLikedVideos(ctx context.Context, userID uuid.UUID, videoIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

package repository

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/clipstream/api/internal/database/postgres"
	appErrors "github.com/clipstream/api/likes/errors"
	"github.com/clipstream/api/likes/models"
	profileModels "github.com/clipstream/api/profiles/models"
)

// postgresLikeRepository implements LikeRepository using raw SQL queries
type postgresLikeRepository struct {
	client *postgres.Client
}

// NewPostgresLikeRepository creates a new PostgreSQL repository for likes
func NewPostgresLikeRepository(client *postgres.Client) LikeRepository {
	return &postgresLikeRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresLikeRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// AddLike attempts to insert a like row.
// The unique constraint on (video_id, user_id) makes concurrent
// toggles safe; the loser of the race sees created=false.
func (r *postgresLikeRepository) AddLike(ctx context.Context, like *models.Like) (bool, error) {
	query := `
		INSERT INTO video_likes (id, video_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (video_id, user_id) DO NOTHING
	`

	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, like.ID, like.VideoID, like.UserID, like.CreatedAt)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" { // foreign_key_violation
			return false, appErrors.ErrVideoNotFound
		}
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// RemoveLike deletes a like row
func (r *postgresLikeRepository) RemoveLike(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM video_likes WHERE video_id = $1 AND user_id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, videoID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// HasLiked reports whether the user has liked the video
func (r *postgresLikeRepository) HasLiked(ctx context.Context, videoID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM video_likes WHERE video_id = $1 AND user_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists, query, videoID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

// likeUserRow is the flat scan target for the like/profile join
type likeUserRow struct {
	models.Like
	Username string `db:"username"`
	Avatar   string `db:"avatar"`
}

// FindByVideoID retrieves all likes for a video with liker display info
func (r *postgresLikeRepository) FindByVideoID(ctx context.Context, videoID uuid.UUID) ([]models.LikeWithUser, error) {
	query := `
		SELECT l.id, l.video_id, l.user_id, l.created_at,
		       COALESCE(p.username, '') AS username,
		       COALESCE(p.avatar, '') AS avatar
		FROM video_likes l
		LEFT JOIN user_profiles p ON p.user_id = l.user_id
		WHERE l.video_id = $1
		ORDER BY l.created_at DESC, l.id DESC
	`

	var rows []likeUserRow
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	likes := make([]models.LikeWithUser, 0, len(rows))
	for i := range rows {
		user := profileModels.DisplayInfo{Username: rows[i].Username, Avatar: rows[i].Avatar}
		if user.Username == "" {
			user.Username = profileModels.DefaultUsername
		}
		likes = append(likes, models.LikeWithUser{Like: rows[i].Like, User: user})
	}

	return likes, nil
}

// GetLikedVideos bulk checks which of the given videos the user has liked
func (r *postgresLikeRepository) GetLikedVideos(ctx context.Context, userID uuid.UUID, videoIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool)
	if len(videoIDs) == 0 {
		return liked, nil
	}

	ids := make([]string, len(videoIDs))
	for i, id := range videoIDs {
		ids[i] = id.String()
	}

	query := `SELECT video_id FROM video_likes WHERE user_id = $1 AND video_id = ANY($2)`

	var likedIDs []uuid.UUID
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &likedIDs, query, userID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get liked videos: %w", err)
	}

	for _, id := range likedIDs {
		liked[id] = true
	}

	return liked, nil
}

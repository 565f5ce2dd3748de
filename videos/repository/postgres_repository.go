package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clipstream/api/internal/database/postgres"
	appErrors "github.com/clipstream/api/videos/errors"
	"github.com/clipstream/api/videos/models"
	profileModels "github.com/clipstream/api/profiles/models"
)

// postgresVideoRepository implements VideoRepository using raw SQL queries
type postgresVideoRepository struct {
	client *postgres.Client
}

// NewPostgresVideoRepository creates a new PostgreSQL repository for videos
func NewPostgresVideoRepository(client *postgres.Client) VideoRepository {
	return &postgresVideoRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresVideoRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	// Check for transaction in context (shared key for cross-package transactions)
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// videoOwnerRow is the flat scan target for the video/profile join
type videoOwnerRow struct {
	models.Video
	OwnerUsername string `db:"owner_username"`
	OwnerAvatar   string `db:"owner_avatar"`
}

func (row *videoOwnerRow) toVideoWithOwner() models.VideoWithOwner {
	owner := profileModels.DisplayInfo{
		Username: row.OwnerUsername,
		Avatar:   row.OwnerAvatar,
	}
	if owner.Username == "" {
		owner.Username = profileModels.DefaultUsername
	}
	return models.VideoWithOwner{Video: row.Video, Owner: owner}
}

// Create inserts a new video with zeroed counters
func (r *postgresVideoRepository) Create(ctx context.Context, video *models.Video) error {
	query := `
		INSERT INTO videos (
			id, owner_user_id, title, description, video_url, thumbnail_url,
			views_count, likes_count, comments_count, created_at
		) VALUES (
			:id, :owner_user_id, :title, :description, :video_url, :thumbnail_url,
			0, 0, 0, :created_at
		)`

	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now()
	}
	video.ViewsCount = 0
	video.LikesCount = 0
	video.CommentsCount = 0

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, video)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// FindByID retrieves a single video joined with its owner's display info
func (r *postgresVideoRepository) FindByID(ctx context.Context, videoID uuid.UUID) (*models.VideoWithOwner, error) {
	query := `
		SELECT v.id, v.owner_user_id, v.title, v.description, v.video_url,
		       v.thumbnail_url, v.views_count, v.likes_count, v.comments_count,
		       v.created_at,
		       COALESCE(p.username, '') AS owner_username,
		       COALESCE(p.avatar, '') AS owner_avatar
		FROM videos v
		LEFT JOIN user_profiles p ON p.user_id = v.owner_user_id
		WHERE v.id = $1
	`

	var row videoOwnerRow
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &row, query, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	result := row.toVideoWithOwner()
	return &result, nil
}

// FindFeed retrieves the most recent videos with owner display info
func (r *postgresVideoRepository) FindFeed(ctx context.Context, limit int) ([]models.VideoWithOwner, error) {
	query := `
		SELECT v.id, v.owner_user_id, v.title, v.description, v.video_url,
		       v.thumbnail_url, v.views_count, v.likes_count, v.comments_count,
		       v.created_at,
		       COALESCE(p.username, '') AS owner_username,
		       COALESCE(p.avatar, '') AS owner_avatar
		FROM videos v
		LEFT JOIN user_profiles p ON p.user_id = v.owner_user_id
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $1
	`

	var rows []videoOwnerRow
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get video feed: %w", err)
	}

	videos := make([]models.VideoWithOwner, 0, len(rows))
	for i := range rows {
		videos = append(videos, rows[i].toVideoWithOwner())
	}

	return videos, nil
}

// Exists reports whether a video row exists
func (r *postgresVideoRepository) Exists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists, query, videoID)
	if err != nil {
		return false, fmt.Errorf("failed to check video existence: %w", err)
	}

	return exists, nil
}

// GetOwnerID returns the owner of a video
func (r *postgresVideoRepository) GetOwnerID(ctx context.Context, videoID uuid.UUID) (uuid.UUID, error) {
	query := `SELECT owner_user_id FROM videos WHERE id = $1`

	var ownerID uuid.UUID
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &ownerID, query, videoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, appErrors.ErrVideoNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get video owner: %w", err)
	}

	return ownerID, nil
}

// Delete removes a video row. Like and comment rows cascade via
// ON DELETE CASCADE on their foreign keys.
func (r *postgresVideoRepository) Delete(ctx context.Context, videoID uuid.UUID) error {
	query := `DELETE FROM videos WHERE id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return appErrors.ErrVideoNotFound
	}

	return nil
}

// IncrementViewsCount atomically increments the views counter
func (r *postgresVideoRepository) IncrementViewsCount(ctx context.Context, videoID uuid.UUID) error {
	query := `UPDATE videos SET views_count = views_count + 1 WHERE id = $1`

	return r.execCounterUpdate(ctx, query, "increment views count", videoID)
}

// IncrementLikesCount atomically increments the likes counter
func (r *postgresVideoRepository) IncrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	query := `UPDATE videos SET likes_count = likes_count + 1 WHERE id = $1`

	return r.execCounterUpdate(ctx, query, "increment likes count", videoID)
}

// DecrementLikesCount atomically decrements the likes counter.
// GREATEST keeps the counter at zero even if it has already drifted.
func (r *postgresVideoRepository) DecrementLikesCount(ctx context.Context, videoID uuid.UUID) error {
	query := `UPDATE videos SET likes_count = GREATEST(likes_count - 1, 0) WHERE id = $1`

	return r.execCounterUpdate(ctx, query, "decrement likes count", videoID)
}

// IncrementCommentsCount atomically adjusts the comments counter by delta
func (r *postgresVideoRepository) IncrementCommentsCount(ctx context.Context, videoID uuid.UUID, delta int) error {
	query := `UPDATE videos SET comments_count = GREATEST(comments_count + $1, 0) WHERE id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, delta, videoID)
	if err != nil {
		return fmt.Errorf("failed to increment comments count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return appErrors.ErrVideoNotFound
	}

	return nil
}

// execCounterUpdate runs a single-video counter update and maps a
// missing row to ErrVideoNotFound.
func (r *postgresVideoRepository) execCounterUpdate(ctx context.Context, query, op string, videoID uuid.UUID) error {
	result, err := r.getExecutor(ctx).ExecContext(ctx, query, videoID)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return appErrors.ErrVideoNotFound
	}

	return nil
}

// WithTransaction executes a function within a database transaction
func (r *postgresVideoRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.client.DB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Inject transaction into context using shared key
	txCtx := context.WithValue(ctx, "tx", tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

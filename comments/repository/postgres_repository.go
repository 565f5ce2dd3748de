package repository

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	appErrors "github.com/clipstream/api/comments/errors"
	"github.com/clipstream/api/comments/models"
	"github.com/clipstream/api/internal/database/postgres"
	profileModels "github.com/clipstream/api/profiles/models"
)

// postgresCommentRepository implements CommentRepository using raw SQL queries
type postgresCommentRepository struct {
	client *postgres.Client
}

// NewPostgresCommentRepository creates a new PostgreSQL repository for comments
func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresCommentRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresCommentRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new comment row
func (r *postgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO video_comments (id, video_id, user_id, text, created_at)
		VALUES (:id, :video_id, :user_id, :text, :created_at)
	`

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, comment)
	if err != nil {
		// Foreign key violation means the video vanished between the
		// existence check and the insert.
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" {
			return appErrors.ErrVideoNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// commentUserRow is the flat scan target for the comment/profile join
type commentUserRow struct {
	models.Comment
	Username string `db:"username"`
	Avatar   string `db:"avatar"`
}

// FindByVideoID retrieves one page of comments with author display info.
// The id tiebreaker keeps the order stable across rows created in the
// same instant.
func (r *postgresCommentRepository) FindByVideoID(ctx context.Context, videoID uuid.UUID, limit, offset int) ([]models.CommentWithUser, error) {
	query := `
		SELECT c.id, c.video_id, c.user_id, c.text, c.created_at,
		       COALESCE(p.username, '') AS username,
		       COALESCE(p.avatar, '') AS avatar
		FROM video_comments c
		LEFT JOIN user_profiles p ON p.user_id = c.user_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3
	`

	var rows []commentUserRow
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, videoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	comments := make([]models.CommentWithUser, 0, len(rows))
	for i := range rows {
		user := profileModels.DisplayInfo{Username: rows[i].Username, Avatar: rows[i].Avatar}
		if user.Username == "" {
			user.Username = profileModels.DefaultUsername
		}
		comments = append(comments, models.CommentWithUser{Comment: rows[i].Comment, User: user})
	}

	return comments, nil
}

// CountByVideoID returns the total number of comments for a video
func (r *postgresCommentRepository) CountByVideoID(ctx context.Context, videoID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM video_comments WHERE video_id = $1`

	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, videoID)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

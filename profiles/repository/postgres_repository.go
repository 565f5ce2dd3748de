package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clipstream/api/internal/database/postgres"
	"github.com/clipstream/api/profiles/models"
)

// postgresProfileRepository implements ProfileRepository using raw SQL queries
type postgresProfileRepository struct {
	client *postgres.Client
}

// NewPostgresProfileRepository creates a new PostgreSQL repository for profiles
func NewPostgresProfileRepository(client *postgres.Client) ProfileRepository {
	return &postgresProfileRepository{client: client}
}

// GetDisplayInfo returns the display fields for a user, falling back to
// the documented default when no profile row exists.
func (r *postgresProfileRepository) GetDisplayInfo(ctx context.Context, userID uuid.UUID) (models.DisplayInfo, error) {
	query := `
		SELECT COALESCE(username, '') AS username, COALESCE(avatar, '') AS avatar
		FROM user_profiles
		WHERE user_id = $1
	`

	var info models.DisplayInfo
	err := sqlx.GetContext(ctx, r.client.DB(), &info, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultDisplayInfo(), nil
		}
		return models.DisplayInfo{}, fmt.Errorf("failed to get display info: %w", err)
	}

	if info.Username == "" {
		info.Username = models.DefaultUsername
	}

	return info, nil
}

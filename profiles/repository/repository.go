package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/profiles/models"
)

// ProfileRepository defines read access to user profiles.
// Profiles are owned by the external identity provider; this service
// never writes them.
type ProfileRepository interface {
	// GetDisplayInfo returns the display fields for a user.
	// A missing profile resolves to the documented default
	// (username "Unknown", empty avatar), never an error.
	GetDisplayInfo(ctx context.Context, userID uuid.UUID) (models.DisplayInfo, error)
}

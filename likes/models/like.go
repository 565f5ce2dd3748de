package models

import (
	"time"

	uuid "github.com/gofrs/uuid"

	profileModels "github.com/clipstream/api/profiles/models"
)

// Like represents a single like ledger row. The (video_id, user_id)
// pair is unique at the database level.
type Like struct {
	ID        uuid.UUID `db:"id" json:"id"`
	VideoID   uuid.UUID `db:"video_id" json:"videoId"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ToggleResult is the outcome of a like toggle
type ToggleResult struct {
	Liked bool  `json:"liked"`
	Like  *Like `json:"like,omitempty"`
}

// LikeWithUser pairs a like with the liker's display info
type LikeWithUser struct {
	Like Like
	User profileModels.DisplayInfo
}

// LikeResponse is a like decorated with the liker's display info
type LikeResponse struct {
	ID        string                    `json:"id"`
	VideoID   string                    `json:"videoId"`
	UserID    string                    `json:"userId"`
	CreatedAt time.Time                 `json:"createdAt"`
	User      profileModels.DisplayInfo `json:"user"`
}

// ToResponse converts a joined like row to its response format
func (l *LikeWithUser) ToResponse() LikeResponse {
	return LikeResponse{
		ID:        l.Like.ID.String(),
		VideoID:   l.Like.VideoID.String(),
		UserID:    l.Like.UserID.String(),
		CreatedAt: l.Like.CreatedAt,
		User:      l.User,
	}
}

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"

	profileModels "github.com/clipstream/api/profiles/models"
)

// Video represents the video entity with its denormalized interaction
// counters. The counters are mutated only through the repository's
// atomic increment methods, never written directly.
type Video struct {
	ID            uuid.UUID `db:"id" json:"id"`
	OwnerUserID   uuid.UUID `db:"owner_user_id" json:"userId"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	VideoURL      string    `db:"video_url" json:"videoUrl"`
	ThumbnailURL  string    `db:"thumbnail_url" json:"thumbnailUrl"`
	ViewsCount    int64     `db:"views_count" json:"viewsCount"`
	LikesCount    int64     `db:"likes_count" json:"likesCount"`
	CommentsCount int64     `db:"comments_count" json:"commentsCount"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// CreateVideoRequest represents the request payload for uploading a video
type CreateVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// FeedQuery represents query parameters for the video feed
type FeedQuery struct {
	Limit int `schema:"limit"`
}

// VideoResponse is a video decorated with its owner's display info
type VideoResponse struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	VideoURL      string                    `json:"videoUrl"`
	ThumbnailURL  string                    `json:"thumbnailUrl"`
	ViewsCount    int64                     `json:"viewsCount"`
	LikesCount    int64                     `json:"likesCount"`
	CommentsCount int64                     `json:"commentsCount"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UserID        string                    `json:"userId"`
	User          profileModels.DisplayInfo `json:"user"`
}

// VideoWithOwner pairs a video with its owner's display info as loaded
// by the repository join.
type VideoWithOwner struct {
	Video Video
	Owner profileModels.DisplayInfo
}

// ToResponse converts a joined video row to its response format
func (v *VideoWithOwner) ToResponse() VideoResponse {
	return VideoResponse{
		ID:            v.Video.ID.String(),
		Title:         v.Video.Title,
		Description:   v.Video.Description,
		VideoURL:      v.Video.VideoURL,
		ThumbnailURL:  v.Video.ThumbnailURL,
		ViewsCount:    v.Video.ViewsCount,
		LikesCount:    v.Video.LikesCount,
		CommentsCount: v.Video.CommentsCount,
		CreatedAt:     v.Video.CreatedAt,
		UserID:        v.Video.OwnerUserID.String(),
		User:          v.Owner,
	}
}

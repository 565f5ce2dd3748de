package models

import (
	"time"

	uuid "github.com/gofrs/uuid"

	profileModels "github.com/clipstream/api/profiles/models"
)

// Comment represents a single comment ledger row
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	VideoID   uuid.UUID `db:"video_id" json:"videoId"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CreateCommentRequest represents the request payload for adding a comment
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentQuery represents pagination query parameters.
// Pointers distinguish an absent parameter from an explicit zero.
type CommentQuery struct {
	Page  *int `schema:"page"`
	Limit *int `schema:"limit"`
}

// CommentWithUser pairs a comment with the author's display info
type CommentWithUser struct {
	Comment Comment
	User    profileModels.DisplayInfo
}

// CommentResponse is a comment decorated with the author's display info
type CommentResponse struct {
	ID        string                    `json:"id"`
	VideoID   string                    `json:"videoId"`
	UserID    string                    `json:"userId"`
	Text      string                    `json:"text"`
	CreatedAt time.Time                 `json:"createdAt"`
	User      profileModels.DisplayInfo `json:"user"`
}

// Pagination describes the page window of a comment list
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// CommentsListResponse is one page of comments plus pagination metadata
type CommentsListResponse struct {
	Comments   []CommentResponse `json:"comments"`
	Pagination Pagination        `json:"pagination"`
}

// ToResponse converts a joined comment row to its response format
func (c *CommentWithUser) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.Comment.ID.String(),
		VideoID:   c.Comment.VideoID.String(),
		UserID:    c.Comment.UserID.String(),
		Text:      c.Comment.Text,
		CreatedAt: c.Comment.CreatedAt,
		User:      c.User,
	}
}

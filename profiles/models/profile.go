package models

import (
	uuid "github.com/gofrs/uuid"
)

// Profile represents a user profile row owned by the identity provider.
// This service only ever reads it to decorate interaction records.
type Profile struct {
	UserID   uuid.UUID `db:"user_id" json:"userId"`
	Username string    `db:"username" json:"username"`
	Avatar   string    `db:"avatar" json:"avatar"`
}

// DefaultUsername is used when no profile row exists for a user.
const DefaultUsername = "Unknown"

// DisplayInfo is the subset of profile data embedded in like and
// comment responses.
type DisplayInfo struct {
	Username string `db:"username" json:"username"`
	Avatar   string `db:"avatar" json:"avatar"`
}

// DefaultDisplayInfo returns the documented fallback for a missing profile.
func DefaultDisplayInfo() DisplayInfo {
	return DisplayInfo{Username: DefaultUsername, Avatar: ""}
}

package types

import (
	uuid "github.com/gofrs/uuid"
)

// HTTP Header Constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "
)

// UserCtxName is the fiber locals key under which the authenticated
// user context is stored by the auth middleware.
const UserCtxName = "user"

// UserContext carries the identity of the authenticated caller as
// extracted from the verified JWT claim.
type UserContext struct {
	UserID      uuid.UUID `json:"uid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Avatar      string    `json:"avatar"`
}

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Like service specific errors
var (
	ErrVideoNotFound      = errors.New("video not found")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidUUID        = errors.New("invalid UUID format")
	ErrMissingUserContext = errors.New("missing user context")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

// Error codes
const (
	CodeVideoNotFound      = "VIDEO_NOT_FOUND"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidUUID        = "INVALID_UUID"
	CodeMissingUserContext = "MISSING_USER_CONTEXT"
	CodeDatabaseError      = "DATABASE_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrVideoNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeVideoNotFound,
			Message: "Video not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseError,
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleUUIDError handles invalid UUID errors with 400 Bad Request
func HandleUUIDError(c *fiber.Ctx, paramName string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidUUID,
		Message: "Invalid " + paramName + " format",
		Details: "Parameter " + paramName + " must be a valid UUID",
	})
}

// HandleUserContextError handles user context errors with 401 Unauthorized
func HandleUserContextError(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Code:    CodeMissingUserContext,
		Message: "Authentication required",
		Details: "User context is missing or invalid",
	})
}

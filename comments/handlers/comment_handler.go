package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/comments/errors"
	"github.com/clipstream/api/comments/models"
	"github.com/clipstream/api/comments/services"
	"github.com/clipstream/api/internal/pkg/parser"
	"github.com/clipstream/api/internal/types"
)

// CommentHandler handles all comment-related HTTP requests
type CommentHandler struct {
	commentService services.CommentService
}

// NewCommentHandler creates a new CommentHandler with injected dependencies
func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment handles comment creation
// Endpoint: POST /videos/:videoId/comment
// Body: {"text": "..."}
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	comment, err := h.commentService.AddComment(c.Context(), videoID, user.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(comment)
}

// ListComments handles the paginated comment listing
// Endpoint: GET /videos/:videoId/comments?page=1&limit=10
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	var query models.CommentQuery
	if err := parser.DecodeQuery(c, &query); err != nil {
		return errors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.commentService.ListComments(c.Context(), videoID, &query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/internal/pkg/parser"
	"github.com/clipstream/api/internal/types"
	"github.com/clipstream/api/videos/errors"
	"github.com/clipstream/api/videos/models"
	"github.com/clipstream/api/videos/services"
)

// VideoHandler handles all video-related HTTP requests
type VideoHandler struct {
	videoService services.VideoService
}

// NewVideoHandler creates a new VideoHandler with injected dependencies
func NewVideoHandler(videoService services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GetFeed handles the public video feed
// Endpoint: GET /videos?limit=20
func (h *VideoHandler) GetFeed(c *fiber.Ctx) error {
	var query models.FeedQuery
	if err := parser.DecodeQuery(c, &query); err != nil {
		return errors.HandleValidationError(c, "Invalid query parameters")
	}

	videos, err := h.videoService.GetFeed(c.Context(), query.Limit)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"videos": videos,
	})
}

// GetVideo handles fetching a single video by ID
// Endpoint: GET /videos/:videoId
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	video, err := h.videoService.GetVideo(c.Context(), videoID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(video)
}

// CreateVideo handles video registration
// Endpoint: POST /videos
// Body: {"title": "...", "videoUrl": "...", ...}
func (h *VideoHandler) CreateVideo(c *fiber.Ctx) error {
	var req models.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	video, err := h.videoService.CreateVideo(c.Context(), user.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(video)
}

// DeleteVideo handles video deletion by its owner
// Endpoint: DELETE /videos/:videoId
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	if err := h.videoService.DeleteVideo(c.Context(), videoID, user.UserID); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Video deleted successfully",
	})
}

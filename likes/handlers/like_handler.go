package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/clipstream/api/internal/types"
	"github.com/clipstream/api/likes/errors"
	"github.com/clipstream/api/likes/services"
)

// LikeHandler handles all like-related HTTP requests
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler creates a new LikeHandler with injected dependencies
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleLike handles the like toggle for the authenticated user
// Endpoint: POST /videos/:videoId/like
func (h *LikeHandler) ToggleLike(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	result, err := h.likeService.ToggleLike(c.Context(), videoID, user.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// GetLikes lists all likes on a video
// Endpoint: GET /videos/:videoId/likes
func (h *LikeHandler) GetLikes(c *fiber.Ctx) error {
	videoID, err := uuid.FromString(c.Params("videoId"))
	if err != nil {
		return errors.HandleUUIDError(c, "videoId")
	}

	likes, err := h.likeService.GetLikes(c.Context(), videoID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"likes": likes,
		"total": len(likes),
	})
}

// GetLikedVideos reports which of the given videos the user has liked
// Endpoint: GET /videos/liked?ids=<uuid>,<uuid>
func (h *LikeHandler) GetLikedVideos(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return errors.HandleUserContextError(c)
	}

	var videoIDs []uuid.UUID
	for _, raw := range strings.Split(c.Query("ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.FromString(raw)
		if err != nil {
			return errors.HandleUUIDError(c, "ids")
		}
		videoIDs = append(videoIDs, id)
	}

	liked, err := h.likeService.GetLikedVideos(c.Context(), user.UserID, videoIDs)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	// Serialize as string keys for JSON
	result := make(map[string]bool, len(liked))
	for id, v := range liked {
		result[id.String()] = v
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"liked": result,
	})
}

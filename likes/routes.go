package likes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clipstream/api/internal/middleware/authjwt"
	platformconfig "github.com/clipstream/api/internal/platform/config"
	"github.com/clipstream/api/likes/handlers"
)

// LikesHandlers holds all the handlers this router needs
type LikesHandlers struct {
	LikeHandler *handlers.LikeHandler
}

// RegisterRoutes is the single entry point for setting up like routes.
// Routes are nested under /videos to match the resource they act on.
func RegisterRoutes(app *fiber.App, h *LikesHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	group := app.Group("/videos")

	// Liked lookup must be registered before /:videoId routes so the
	// literal segment wins.
	group.Get("/liked", authMiddleware, h.LikeHandler.GetLikedVideos)

	// --- Public Routes ---
	group.Get("/:videoId/likes", h.LikeHandler.GetLikes)

	// --- Authenticated Routes ---
	group.Post("/:videoId/like", authMiddleware, h.LikeHandler.ToggleLike)
}

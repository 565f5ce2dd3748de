package videos

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clipstream/api/internal/middleware/authjwt"
	platformconfig "github.com/clipstream/api/internal/platform/config"
	"github.com/clipstream/api/videos/handlers"
)

// VideosHandlers holds all the handlers this router needs
type VideosHandlers struct {
	VideoHandler *handlers.VideoHandler
}

// RegisterRoutes is the single entry point for setting up video routes
func RegisterRoutes(app *fiber.App, h *VideosHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	group := app.Group("/videos")

	// --- Public Routes ---
	group.Get("/", h.VideoHandler.GetFeed)
	group.Get("/:videoId", h.VideoHandler.GetVideo)

	// --- Authenticated Routes ---
	group.Post("/", authMiddleware, h.VideoHandler.CreateVideo)
	group.Delete("/:videoId", authMiddleware, h.VideoHandler.DeleteVideo)
}

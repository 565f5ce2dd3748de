package comments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clipstream/api/comments/handlers"
	"github.com/clipstream/api/internal/middleware/authjwt"
	platformconfig "github.com/clipstream/api/internal/platform/config"
)

// CommentsHandlers holds all the handlers this router needs
type CommentsHandlers struct {
	CommentHandler *handlers.CommentHandler
}

// RegisterRoutes is the single entry point for setting up comment routes.
// Routes are nested under /videos to match the resource they act on.
func RegisterRoutes(app *fiber.App, h *CommentsHandlers, cfg *platformconfig.Config) {
	authMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	group := app.Group("/videos")

	// --- Public Routes ---
	group.Get("/:videoId/comments", h.CommentHandler.ListComments)

	// --- Authenticated Routes ---
	group.Post("/:videoId/comment", authMiddleware, h.CommentHandler.AddComment)
}

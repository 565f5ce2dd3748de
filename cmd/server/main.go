package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/clipstream/api/comments"
	commentHandlers "github.com/clipstream/api/comments/handlers"
	commentRepository "github.com/clipstream/api/comments/repository"
	commentServices "github.com/clipstream/api/comments/services"
	"github.com/clipstream/api/internal/cache"
	"github.com/clipstream/api/internal/database/postgres"
	"github.com/clipstream/api/internal/middleware/requestid"
	platformconfig "github.com/clipstream/api/internal/platform/config"
	"github.com/clipstream/api/likes"
	likeHandlers "github.com/clipstream/api/likes/handlers"
	likeRepository "github.com/clipstream/api/likes/repository"
	likeServices "github.com/clipstream/api/likes/services"
	profileRepository "github.com/clipstream/api/profiles/repository"
	"github.com/clipstream/api/videos"
	videoHandlers "github.com/clipstream/api/videos/handlers"
	videoRepository "github.com/clipstream/api/videos/repository"
	videoServices "github.com/clipstream/api/videos/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// If the handler already wrote a response, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	// Repositories
	videoRepo := videoRepository.NewPostgresVideoRepository(pgClient)
	likeRepo := likeRepository.NewPostgresLikeRepository(pgClient)
	commentRepo := commentRepository.NewPostgresCommentRepository(pgClient)
	profileRepo := profileRepository.NewPostgresProfileRepository(pgClient)

	// Services
	videoService := videoServices.NewVideoService(videoRepo, cache.NewGenericCacheServiceFor("videos"))
	likeService := likeServices.NewLikeService(likeRepo, videoRepo, cache.NewGenericCacheServiceFor("likes"))
	commentService := commentServices.NewCommentService(commentRepo, videoRepo, profileRepo, cache.NewGenericCacheServiceFor("comments"))

	// Routes. Likes register first so the literal /videos/liked segment
	// is matched before the /videos/:videoId parameter routes.
	likes.RegisterRoutes(app, &likes.LikesHandlers{
		LikeHandler: likeHandlers.NewLikeHandler(likeService),
	}, cfg)

	comments.RegisterRoutes(app, &comments.CommentsHandlers{
		CommentHandler: commentHandlers.NewCommentHandler(commentService),
	}, cfg)

	videos.RegisterRoutes(app, &videos.VideosHandlers{
		VideoHandler: videoHandlers.NewVideoHandler(videoService),
	}, cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting ClipStream API server on %s", addr)
	log.Fatal(app.Listen(addr))
}

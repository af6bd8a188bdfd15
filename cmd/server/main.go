package main

import (
	"log"

	"github.com/telconnect/telecom-network/internal/config"
	"github.com/telconnect/telecom-network/internal/database"
	"github.com/telconnect/telecom-network/internal/handler"
	"github.com/telconnect/telecom-network/internal/middleware"
	"github.com/telconnect/telecom-network/internal/repository"
	"github.com/telconnect/telecom-network/internal/router"
	"github.com/telconnect/telecom-network/internal/service"
	"github.com/telconnect/telecom-network/internal/storage"
	"github.com/telconnect/telecom-network/pkg/logger"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	blobStore, err := storage.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	jobRepo := repository.NewJobRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo, blobStore)
	postService := service.NewPostService(postRepo, commentRepo)
	jobService := service.NewJobService(jobRepo)
	resourceService := service.NewResourceService(resourceRepo, blobStore)

	// Handlers and routes
	engine := router.New(
		router.Config{
			CORSOrigin: cfg.CORSOrigin,
			Production: cfg.IsProduction(),
		},
		middleware.Auth(userRepo, cfg.JWTSecret),
		router.Handlers{
			Auth:     handler.NewAuthHandler(authService),
			User:     handler.NewUserHandler(userService, cfg.UploadDir),
			Post:     handler.NewPostHandler(postService),
			Job:      handler.NewJobHandler(jobService),
			Resource: handler.NewResourceHandler(resourceService, cfg.UploadDir),
		},
	)

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := engine.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

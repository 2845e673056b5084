package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/streamchapter-team/stream-chapters/pkg/validator"

	"github.com/streamchapter-team/stream-chapters/internal/adapter/handler"
	"github.com/streamchapter-team/stream-chapters/internal/adapter/repository"
	"github.com/streamchapter-team/stream-chapters/internal/infrastructure/cache"
	"github.com/streamchapter-team/stream-chapters/internal/infrastructure/database"
	"github.com/streamchapter-team/stream-chapters/internal/infrastructure/storage"
	"github.com/streamchapter-team/stream-chapters/internal/usecase/chapters"
	pkgai "github.com/streamchapter-team/stream-chapters/pkg/ai"
	"github.com/streamchapter-team/stream-chapters/pkg/config"
)

// @title           Stream Chapters API
// @version         1.0
// @description     API for turning timestamped livestream transcripts into titled chapters

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	log.Println("Initializing dependencies...")

	// Initialize Database
	log.Println("Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("Applying migrations (development only)...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("Initializing repositories...")
	projectRepo := repository.NewProjectRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	chapterRepo := repository.NewChapterRepository(db)

	// Generation lock: Redis when configured, in-process otherwise
	var locker chapters.GenerationLocker
	if cfg.RedisEnabled() {
		log.Println("Connecting to Redis...")
		redisLocker, err := cache.NewRedisLocker(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisLocker.Close()
		locker = redisLocker
	} else {
		log.Println("Redis not configured, using in-process generation lock")
		locker = cache.NewMemoryLocker()
	}

	// Optional transcript archive storage
	var archiver handler.TranscriptArchiver
	if cfg.StorageEnabled() {
		log.Println("Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		archiver = minioClient
	} else {
		log.Println("Object storage not configured, transcript archiving disabled")
	}

	// Initialize model client and generation service
	log.Println("Initializing chapter generation service...")
	volcClient := pkgai.NewVolcengineClient(&cfg.Volcengine)
	if !volcClient.IsConfigured() {
		log.Println("VOLCENGINE_API_KEY not set; generation will use the equal-split fallback")
	}
	chapterService := chapters.NewService(projectRepo, transcriptRepo, chapterRepo, volcClient, locker, logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectRepo, transcriptRepo, chapterRepo, archiver, logger)
	chapterHandler := handler.NewChapterHandler(chapterService, projectRepo, chapterRepo, logger)

	// Setup router with handlers
	log.Println("Setting up routes...")
	router := handler.NewRouter(cfg, projectHandler, chapterHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		log.Printf("Environment: %s", cfg.Server.Environment)
		log.Printf("Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

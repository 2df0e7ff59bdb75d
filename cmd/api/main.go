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

	pkgvalidator "github.com/fisherypulse/councilpulse/pkg/validator"

	"github.com/fisherypulse/councilpulse/internal/adapter/handler"
	"github.com/fisherypulse/councilpulse/internal/adapter/repository"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/cache"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/database"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/external/sources"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/storage"
	"github.com/fisherypulse/councilpulse/internal/usecase/catalog"
	"github.com/fisherypulse/councilpulse/internal/usecase/compare"
	"github.com/fisherypulse/councilpulse/internal/usecase/stats"
	syncuse "github.com/fisherypulse/councilpulse/internal/usecase/sync"
	"github.com/fisherypulse/councilpulse/internal/usecase/workplan"
	"github.com/fisherypulse/councilpulse/pkg/config"
)

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
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply pending sql-migrate migrations on boot
	log.Println("🔄 Applying migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisStore, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()

	// Initialize raw payload archive when enabled
	var archive storage.Archive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioArchive, err := storage.NewMinIOArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		archive = minioArchive
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	actionRepo := repository.NewActionRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	sscRepo := repository.NewSSCRepository(db)
	ecosystemRepo := repository.NewEcosystemRepository(db)
	councilRepo := repository.NewCouncilRepository(db)
	workplanRepo := repository.NewWorkplanRepository(db)
	syncRunRepo := repository.NewSyncRunRepository(db)

	// Initialize source adapters
	log.Println("🌊 Registering sync sources...")
	fetchClient := sources.NewClient(&cfg.Sync)
	adapters := []syncuse.SourceAdapter{
		sources.NewSAFMCAmendments(fetchClient, cfg.Sync.SAFMCAmendmentsURL),
		sources.NewSAFMCMeetings(fetchClient, cfg.Sync.SAFMCMeetingsURL),
		sources.NewSAFMCComments(fetchClient, cfg.Sync.SAFMCCommentsURL),
		sources.NewSSCMeetings(fetchClient, cfg.Sync.SSCMeetingsURL),
		sources.NewCMODWorkshops(fetchClient, cfg.Sync.CMODWorkshopsURL),
		sources.NewEcosystemIndicators(fetchClient, cfg.Sync.EcosystemURL),
		sources.NewFisheryPulse(fetchClient, cfg.Sync.FisheryPulseFeeds, cfg.Sync.FisheryPulseConcurrency),
	}

	// Initialize services
	log.Println("⚙️  Initializing services...")
	reconciler := syncuse.NewReconciler(actionRepo, meetingRepo, commentRepo, sscRepo, ecosystemRepo, logger)
	syncService := syncuse.NewService(adapters, reconciler, syncRunRepo, redisStore, archive, logger, syncuse.Options{
		InterSourceDelay: cfg.Sync.InterSourceDelay,
		LockTTL:          cfg.Sync.LockTTL,
	})
	catalogService := catalog.NewService(actionRepo, meetingRepo, commentRepo, sscRepo, ecosystemRepo)
	compareService := compare.NewService(actionRepo)
	statsService := stats.NewService(actionRepo, meetingRepo, commentRepo, councilRepo, syncRunRepo, redisStore, logger)
	workplanService := workplan.NewService(workplanRepo)

	// Initialize handlers and routes
	log.Println("🌐 Initializing handlers...")
	router := handler.NewRouter(
		cfg,
		handler.NewCatalog(catalogService, logger),
		handler.NewSync(syncService, logger),
		handler.NewWorkplan(workplanService, logger),
		handler.NewStats(statsService, logger),
		handler.NewCompare(compareService, logger),
		handler.NewArchive(archive, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Server starting on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}

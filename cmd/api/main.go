package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propaint/estimate-api/docs"
	"github.com/propaint/estimate-api/internal/config"
	"github.com/propaint/estimate-api/internal/database"
	"github.com/propaint/estimate-api/internal/http/handler"
	"github.com/propaint/estimate-api/internal/http/middleware"
	"github.com/propaint/estimate-api/internal/http/router"
	"github.com/propaint/estimate-api/internal/jobs"
	"github.com/propaint/estimate-api/internal/logger"
	"github.com/propaint/estimate-api/internal/pricefeed"
	"github.com/propaint/estimate-api/internal/repository"
	"github.com/propaint/estimate-api/internal/seed"
	"github.com/propaint/estimate-api/internal/service"
	"github.com/propaint/estimate-api/internal/storage"
	"go.uber.org/zap"
)

// @title ProPaint Estimate API
// @version 1.0
// @description Estimating API for painting contractors: clients, projects, rooms, line items, and the pricing catalog
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@propaint.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Schema and default catalog for sqlite and development installs.
	// Postgres deployments run the goose migrations in cmd/migrate instead.
	if cfg.Database.Driver == "sqlite" || cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	if err := seed.Run(ctx, db, log); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize backup snapshot storage
	snapshotStore, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize supplier price feed connection (optional).
	// The connection is read-only and the app continues without it.
	var feedClient *pricefeed.Client
	if cfg.PriceFeed.Enabled {
		feedClient, err = pricefeed.NewClient(&cfg.PriceFeed, log)
		if err != nil {
			log.Warn("Price feed connection failed, continuing without it",
				zap.Error(err),
			)
		} else if feedClient != nil {
			log.Info("Price feed connected successfully",
				zap.Int("max_open_conns", cfg.PriceFeed.MaxOpenConns),
				zap.Int("query_timeout_seconds", cfg.PriceFeed.QueryTimeout),
			)
		}
	} else {
		log.Info("Price feed not configured, skipping",
			zap.Bool("enabled", cfg.PriceFeed.Enabled),
		)
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	itemRepo := repository.NewItemRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	estimator := service.NewEstimator(projectRepo, templateRepo, materialRepo)
	clientService := service.NewClientService(clientRepo, projectRepo, log)
	projectService := service.NewProjectService(projectRepo, clientRepo, itemRepo, settingsRepo, estimator, log)
	roomService := service.NewRoomService(roomRepo, itemRepo, projectRepo, templateRepo, materialRepo, estimator, log)
	catalogService := service.NewCatalogService(templateRepo, materialRepo, feedClient, log)
	settingsService := service.NewSettingsService(settingsRepo, log)
	backupService := service.NewBackupService(db, snapshotStore, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientService, log)
	projectHandler := handler.NewProjectHandler(projectService, roomService, log)
	roomHandler := handler.NewRoomHandler(roomService, log)
	templateHandler := handler.NewTemplateHandler(catalogService, log)
	materialHandler := handler.NewMaterialHandler(catalogService, log)
	settingsHandler := handler.NewSettingsHandler(settingsService, log)
	backupHandler := handler.NewBackupHandler(backupService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		feedClient,
		rateLimiter,
		clientHandler,
		projectHandler,
		roomHandler,
		templateHandler,
		materialHandler,
		settingsHandler,
		backupHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.PriceFeed.Enabled && feedClient != nil {
		scheduler = jobs.NewScheduler(log)

		// runStartupSync=true refreshes the price book immediately in the background
		if err := jobs.RegisterPriceSyncJob(
			scheduler,
			catalogService,
			log,
			cfg.PriceFeed.SyncSchedule,
			cfg.PriceFeed.QueryTimeoutDuration(),
			true,
		); err != nil {
			log.Error("Failed to register price sync job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with price sync job",
				zap.String("cron_expr", cfg.PriceFeed.SyncSchedule),
				zap.Duration("timeout", cfg.PriceFeed.QueryTimeoutDuration()),
			)
		}
	} else {
		log.Info("Periodic price sync disabled",
			zap.Bool("feed_enabled", cfg.PriceFeed.Enabled),
			zap.Bool("feed_client_available", feedClient != nil),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Close price feed connection if initialized
		if feedClient != nil {
			if err := feedClient.Close(); err != nil {
				log.Warn("Error closing price feed connection", zap.Error(err))
			}
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

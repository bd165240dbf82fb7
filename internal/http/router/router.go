package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/propaint/estimate-api/internal/config"
	"github.com/propaint/estimate-api/internal/database"
	"github.com/propaint/estimate-api/internal/http/handler"
	"github.com/propaint/estimate-api/internal/http/middleware"
	"github.com/propaint/estimate-api/internal/pricefeed"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/propaint/estimate-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg             *config.Config
	logger          *zap.Logger
	db              *gorm.DB
	priceFeed       *pricefeed.Client
	rateLimiter     *middleware.RateLimiter
	clientHandler   *handler.ClientHandler
	projectHandler  *handler.ProjectHandler
	roomHandler     *handler.RoomHandler
	templateHandler *handler.TemplateHandler
	materialHandler *handler.MaterialHandler
	settingsHandler *handler.SettingsHandler
	backupHandler   *handler.BackupHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	priceFeed *pricefeed.Client,
	rateLimiter *middleware.RateLimiter,
	clientHandler *handler.ClientHandler,
	projectHandler *handler.ProjectHandler,
	roomHandler *handler.RoomHandler,
	templateHandler *handler.TemplateHandler,
	materialHandler *handler.MaterialHandler,
	settingsHandler *handler.SettingsHandler,
	backupHandler *handler.BackupHandler,
) *Router {
	return &Router{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		priceFeed:       priceFeed,
		rateLimiter:     rateLimiter,
		clientHandler:   clientHandler,
		projectHandler:  projectHandler,
		roomHandler:     roomHandler,
		templateHandler: templateHandler,
		materialHandler: materialHandler,
		settingsHandler: settingsHandler,
		backupHandler:   backupHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		// Check database
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		// Check supplier price feed. A disabled feed doesn't fail readiness.
		feedStatus := rt.priceFeed.HealthCheck(r.Context())
		checks["price_feed"] = feedStatus
		if feedStatus.Status == "unhealthy" {
			allHealthy = false
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/{id}", rt.clientHandler.GetByID)
			r.Put("/{id}", rt.clientHandler.Update)
			r.Delete("/{id}", rt.clientHandler.Delete)
		})

		// Projects
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", rt.projectHandler.List)
			r.Post("/", rt.projectHandler.Create)
			r.Get("/stats", rt.projectHandler.Stats)
			r.Get("/{id}", rt.projectHandler.GetByID)
			r.Put("/{id}", rt.projectHandler.Update)
			r.Delete("/{id}", rt.projectHandler.Delete)
			r.Put("/{id}/settings", rt.projectHandler.UpdateSettings)
			r.Post("/{id}/recalculate", rt.projectHandler.Recalculate)

			// Lifecycle endpoints
			r.Post("/{id}/send", rt.projectHandler.Send)
			r.Post("/{id}/approve", rt.projectHandler.Approve)
			r.Post("/{id}/reopen", rt.projectHandler.Reopen)

			// Sub-resources
			r.Get("/{id}/rooms", rt.projectHandler.ListRooms)
			r.Post("/{id}/rooms", rt.projectHandler.CreateRoom)
		})

		// Rooms
		r.Route("/rooms", func(r chi.Router) {
			r.Get("/{id}", rt.roomHandler.GetByID)
			r.Put("/{id}", rt.roomHandler.Update)
			r.Delete("/{id}", rt.roomHandler.Delete)
			r.Post("/{id}/items", rt.roomHandler.AddItem)
			r.Put("/{id}/items/{itemId}", rt.roomHandler.UpdateItem)
			r.Delete("/{id}/items/{itemId}", rt.roomHandler.DeleteItem)
		})

		// Catalog
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", rt.templateHandler.List)
			r.Post("/", rt.templateHandler.Create)
			r.Get("/{id}", rt.templateHandler.GetByID)
			r.Put("/{id}", rt.templateHandler.Update)
			r.Delete("/{id}", rt.templateHandler.Delete)
		})

		r.Route("/materials", func(r chi.Router) {
			r.Get("/", rt.materialHandler.List)
			r.Post("/", rt.materialHandler.Create)
			r.Post("/sync", rt.materialHandler.Sync)
			r.Get("/{id}", rt.materialHandler.GetByID)
			r.Put("/{id}", rt.materialHandler.Update)
			r.Delete("/{id}", rt.materialHandler.Delete)
		})

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/", rt.settingsHandler.GetDefaults)
			r.Put("/", rt.settingsHandler.UpdateDefaults)
			r.Get("/branding", rt.settingsHandler.GetBranding)
			r.Put("/branding", rt.settingsHandler.UpdateBranding)
			r.Get("/room-names", rt.settingsHandler.ListRoomNames)
			r.Post("/room-names", rt.settingsHandler.AddRoomName)
			r.Delete("/room-names/{id}", rt.settingsHandler.DeleteRoomName)
		})

		// Backup
		r.Route("/backup", func(r chi.Router) {
			r.Get("/export", rt.backupHandler.Export)
			r.Post("/import", rt.backupHandler.Import)
		})
	})

	return r
}

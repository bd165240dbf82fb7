package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/propaint/estimate-api/internal/database"
	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/http/handler"
	"github.com/propaint/estimate-api/internal/repository"
	"github.com/propaint/estimate-api/internal/service"
)

// handlerEnv wires the full stack, from in-memory sqlite up to the HTTP
// handlers, so tests can drive handler methods directly and still exercise
// real service and repository behavior.
type handlerEnv struct {
	db        *gorm.DB
	clients   *service.ClientService
	projects  *service.ProjectService
	rooms     *service.RoomService
	catalog   *service.CatalogService
	clientH   *handler.ClientHandler
	projectH  *handler.ProjectHandler
	roomH     *handler.RoomHandler
	templateH *handler.TemplateHandler
	materialH *handler.MaterialHandler
	settingsH *handler.SettingsHandler
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))

	logger := zap.NewNop()

	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	itemRepo := repository.NewItemRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	estimator := service.NewEstimator(projectRepo, templateRepo, materialRepo)

	clientService := service.NewClientService(clientRepo, projectRepo, logger)
	projectService := service.NewProjectService(projectRepo, clientRepo, itemRepo, settingsRepo, estimator, logger)
	roomService := service.NewRoomService(roomRepo, itemRepo, projectRepo, templateRepo, materialRepo, estimator, logger)
	catalogService := service.NewCatalogService(templateRepo, materialRepo, nil, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)

	return &handlerEnv{
		db:        db,
		clients:   clientService,
		projects:  projectService,
		rooms:     roomService,
		catalog:   catalogService,
		clientH:   handler.NewClientHandler(clientService, logger),
		projectH:  handler.NewProjectHandler(projectService, roomService, logger),
		roomH:     handler.NewRoomHandler(roomService, logger),
		templateH: handler.NewTemplateHandler(catalogService, logger),
		materialH: handler.NewMaterialHandler(catalogService, logger),
		settingsH: handler.NewSettingsHandler(settingsService, logger),
	}
}

// withURLParam injects a chi route parameter into the request context so
// handler methods can be called without going through the router.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func createHandlerTestClient(t *testing.T, env *handlerEnv, name string) *domain.ClientDTO {
	t.Helper()
	client, err := env.clients.Create(context.Background(), &domain.CreateClientRequest{
		Name:  name,
		Email: "owner@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	return client
}

func createHandlerTestProject(t *testing.T, env *handlerEnv, clientID uuid.UUID) *domain.ProjectDTO {
	t.Helper()
	project, err := env.projects.Create(context.Background(), &domain.CreateProjectRequest{
		Name:     "Interior Repaint",
		ClientID: clientID,
		Settings: &domain.UpdateProjectSettingsRequest{
			LaborRatePerHour: 50,
			OverheadPct:      0.10,
			ProfitPct:        0.20,
			TaxRate:          0,
		},
	})
	require.NoError(t, err)
	return project
}

func createHandlerTestRoom(t *testing.T, env *handlerEnv, projectID uuid.UUID) *domain.RoomDTO {
	t.Helper()
	room, err := env.rooms.Create(context.Background(), projectID, &domain.CreateRoomRequest{
		Name:             "Living Room",
		Length:           12,
		Width:            12,
		Height:           8,
		Doors:            1,
		Windows:          1,
		DefaultWallGrade: domain.GradeContractor,
	})
	require.NoError(t, err)
	return room
}

func seedHandlerWallsCatalog(t *testing.T, env *handlerEnv) {
	t.Helper()
	ctx := context.Background()

	_, err := env.catalog.CreateTemplate(ctx, &domain.CreateTemplateRequest{
		ID:              "tpl_walls",
		Name:            "Walls",
		Category:        domain.SurfaceWalls,
		MeasureType:     domain.MeasureArea,
		Strategy:        domain.CalcWallArea,
		DefaultCoats:    2,
		DefaultWastePct: 0.10,
		DefaultGrade:    domain.GradeContractor,
		MinutesPerUnit:  0.05,
	})
	require.NoError(t, err)

	_, err = env.catalog.CreateMaterial(ctx, &domain.CreateMaterialRequest{
		ID:              "mat_walls",
		Brand:           "Sherwin-Williams",
		Line:            "ProMar 200",
		Grade:           domain.GradeContractor,
		SurfaceCategory: domain.SurfaceWalls,
		CoverageSqft:    350,
		PricePerGallon:  35,
	})
	require.NoError(t, err)
}

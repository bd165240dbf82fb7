package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/propaint/estimate-api/internal/database"
	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/repository"
	"github.com/propaint/estimate-api/internal/service"
)

// testEnv wires the full service stack against an in-memory sqlite database.
// Each test gets its own database, so there is no cross-test cleanup.
type testEnv struct {
	db       *gorm.DB
	clients  *service.ClientService
	projects *service.ProjectService
	rooms    *service.RoomService
	catalog  *service.CatalogService
	settings *service.SettingsService
	backup   *service.BackupService
}

func newTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:       db,
		clients:  service.NewClientService(clientRepo, projectRepo, logger),
		projects: service.NewProjectService(projectRepo, clientRepo, itemRepo, settingsRepo, estimator, logger),
		rooms:    service.NewRoomService(roomRepo, itemRepo, projectRepo, templateRepo, materialRepo, estimator, logger),
		catalog:  service.NewCatalogService(templateRepo, materialRepo, nil, logger),
		settings: service.NewSettingsService(settingsRepo, logger),
		backup:   service.NewBackupService(db, nil, logger),
	}
}

func createTestClient(t *testing.T, env *testEnv, name string) *domain.ClientDTO {
	t.Helper()
	client, err := env.clients.Create(context.Background(), &domain.CreateClientRequest{
		Name:  name,
		Email: "owner@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	return client
}

// createTestProject creates a draft with a fixed margin policy so cost
// assertions stay deterministic regardless of the stored global defaults.
func createTestProject(t *testing.T, env *testEnv, clientID uuid.UUID) *domain.ProjectDTO {
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

// seedWallsCatalog installs a wall-painting template and a matching
// contractor-grade wall paint. A 12x12x8 room with one door and one window
// priced through this pair comes out at 176.88.
func seedWallsCatalog(t *testing.T, env *testEnv) {
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

// createTestRoom creates a 12x12x8 room with one door and one window. Wall
// area works out to 348 sqft.
func createTestRoom(t *testing.T, env *testEnv, projectID uuid.UUID) *domain.RoomDTO {
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

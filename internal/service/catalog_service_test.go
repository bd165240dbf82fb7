package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/service"
)

func TestCatalogService_CreateTemplate_DuplicateID(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)

	_, err := env.catalog.CreateTemplate(context.Background(), &domain.CreateTemplateRequest{
		ID:          "tpl_walls",
		Name:        "Walls Again",
		Category:    domain.SurfaceWalls,
		MeasureType: domain.MeasureArea,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCatalogService_CreateTemplate_InvalidEnums(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.catalog.CreateTemplate(ctx, &domain.CreateTemplateRequest{
		Name:        "Bad Measure",
		Category:    domain.SurfaceWalls,
		MeasureType: domain.MeasureType("volume"),
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = env.catalog.CreateTemplate(ctx, &domain.CreateTemplateRequest{
		Name:        "Bad Strategy",
		Category:    domain.SurfaceWalls,
		MeasureType: domain.MeasureArea,
		Strategy:    domain.CalcStrategy("floor_area"),
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCatalogService_ListTemplates_ActiveOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWallsCatalog(t, env)

	inactive := false
	_, err := env.catalog.CreateTemplate(ctx, &domain.CreateTemplateRequest{
		ID:          "tpl_retired",
		Name:        "Retired",
		Category:    domain.SurfaceTrim,
		MeasureType: domain.MeasureLength,
	})
	require.NoError(t, err)
	_, err = env.catalog.UpdateTemplate(ctx, "tpl_retired", &domain.UpdateTemplateRequest{
		Name:        "Retired",
		Category:    domain.SurfaceTrim,
		MeasureType: domain.MeasureLength,
		IsActive:    &inactive,
	})
	require.NoError(t, err)

	all, err := env.catalog.ListTemplates(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := env.catalog.ListTemplates(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "tpl_walls", active[0].ID)
}

func TestCatalogService_DeleteTemplate_Unreferenced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWallsCatalog(t, env)

	require.NoError(t, env.catalog.DeleteTemplate(ctx, "tpl_walls"))

	_, err := env.catalog.GetTemplate(ctx, "tpl_walls")
	assert.ErrorIs(t, err, service.ErrTemplateNotFound)
}

func TestCatalogService_DeleteTemplate_ReferencedIsDeactivated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWallsCatalog(t, env)
	client := createTestClient(t, env, "Catalog Co")
	project := createTestProject(t, env, client.ID)
	room := createTestRoom(t, env, project.ID)

	_, err := env.rooms.AddItem(ctx, room.ID, &domain.CreateItemRequest{
		TemplateID: "tpl_walls",
	})
	require.NoError(t, err)

	require.NoError(t, env.catalog.DeleteTemplate(ctx, "tpl_walls"))

	// Stored estimates keep their labor rates via the deactivated template
	template, err := env.catalog.GetTemplate(ctx, "tpl_walls")
	require.NoError(t, err)
	assert.False(t, template.IsActive)
}

func TestCatalogService_CreateMaterial_DuplicateID(t *testing.T) {
	env := newTestEnv(t)
	seedWallsCatalog(t, env)

	_, err := env.catalog.CreateMaterial(context.Background(), &domain.CreateMaterialRequest{
		ID:              "mat_walls",
		Brand:           "Benjamin Moore",
		Line:            "Regal",
		Grade:           domain.GradePremium,
		SurfaceCategory: domain.SurfaceWalls,
		CoverageSqft:    400,
		PricePerGallon:  70,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCatalogService_CreateMaterial_InvalidGrade(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateMaterial(context.Background(), &domain.CreateMaterialRequest{
		Brand:           "Benjamin Moore",
		Line:            "Regal",
		Grade:           domain.PaintGrade("Luxury"),
		SurfaceCategory: domain.SurfaceWalls,
		CoverageSqft:    400,
		PricePerGallon:  70,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCatalogService_MaterialCRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedWallsCatalog(t, env)

	updated, err := env.catalog.UpdateMaterial(ctx, "mat_walls", &domain.UpdateMaterialRequest{
		Brand:           "Sherwin-Williams",
		Line:            "ProMar 200",
		Grade:           domain.GradeContractor,
		SurfaceCategory: domain.SurfaceWalls,
		CoverageSqft:    350,
		PricePerGallon:  38,
	})
	require.NoError(t, err)
	assert.InDelta(t, 38.0, updated.PricePerGallon, 0.001)

	require.NoError(t, env.catalog.DeleteMaterial(ctx, "mat_walls"))

	_, err = env.catalog.GetMaterial(ctx, "mat_walls")
	assert.ErrorIs(t, err, service.ErrMaterialNotFound)

	err = env.catalog.DeleteMaterial(ctx, "mat_walls")
	assert.ErrorIs(t, err, service.ErrMaterialNotFound)
}

func TestCatalogService_SyncSupplierPrices_FeedDisabled(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.SyncSupplierPrices(context.Background())
	assert.ErrorIs(t, err, service.ErrPriceFeedDisabled)
}

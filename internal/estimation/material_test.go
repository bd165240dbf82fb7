package estimation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propaint/estimate-api/internal/domain"
)

func testCatalog() []domain.MaterialLine {
	return []domain.MaterialLine{
		{
			ID:              "mat_promar",
			Brand:           "Sherwin-Williams",
			Line:            "ProMar 200",
			Grade:           domain.GradeStandard,
			SurfaceCategory: domain.SurfaceWalls,
			CoverageSqft:    350,
			PricePerGallon:  35,
		},
		{
			ID:              "mat_duration",
			Brand:           "Sherwin-Williams",
			Line:            "Duration Home",
			Grade:           domain.GradePremium,
			SurfaceCategory: domain.SurfaceWalls,
			CoverageSqft:    400,
			PricePerGallon:  65,
		},
		{
			ID:              "mat_eminence",
			Brand:           "Sherwin-Williams",
			Line:            "Eminence",
			Grade:           domain.GradeStandard,
			SurfaceCategory: domain.SurfaceCeiling,
			CoverageSqft:    400,
			PricePerGallon:  42,
		},
	}
}

func TestResolveMaterial_ExactMatch(t *testing.T) {
	got := ResolveMaterial(domain.SurfaceWalls, domain.GradePremium, testCatalog())
	require.NotNil(t, got)
	assert.Equal(t, "mat_duration", got.ID)
}

func TestResolveMaterial_CategoryFallback(t *testing.T) {
	// no High Performance line for walls, so the first wall line stands in
	got := ResolveMaterial(domain.SurfaceWalls, domain.GradeHighPerformance, testCatalog())
	require.NotNil(t, got)
	assert.Equal(t, "mat_promar", got.ID)
}

func TestResolveMaterial_NoCategoryMatch(t *testing.T) {
	assert.Nil(t, ResolveMaterial(domain.SurfaceTrim, domain.GradeStandard, testCatalog()))
	assert.Nil(t, ResolveMaterial(domain.SurfaceWalls, domain.GradeStandard, nil))
}

func TestFindMaterial(t *testing.T) {
	got := FindMaterial("mat_eminence", testCatalog())
	require.NotNil(t, got)
	assert.Equal(t, domain.SurfaceCeiling, got.SurfaceCategory)

	assert.Nil(t, FindMaterial("mat_missing", testCatalog()))
}

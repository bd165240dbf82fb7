package estimation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propaint/estimate-api/internal/domain"
)

func testSettings() domain.ProjectSettings {
	return domain.ProjectSettings{
		LaborRatePerHour: 50,
		OverheadPct:      0.10,
		ProfitPct:        0.20,
		TaxRate:          0,
	}
}

func wallsTemplate() *domain.ItemTemplate {
	return &domain.ItemTemplate{
		ID:              "tpl_walls",
		Name:            "Walls",
		Category:        domain.SurfaceWalls,
		MeasureType:     domain.MeasureArea,
		Strategy:        domain.CalcWallArea,
		DefaultCoats:    2,
		DefaultWastePct: 0.10,
		MinutesPerUnit:  0.05,
	}
}

// Walls in a 12x12x8 room with one door and one window, two coats, standard
// grade, default margins. Worked end to end by hand:
// area 348, 3 gallons at $35, 34.8 minutes at $50/hr.
func TestCostItem_WallsBreakdown(t *testing.T) {
	room := testRoom()
	template := wallsTemplate()
	item := domain.ItemInstance{
		Name:     "Walls",
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: ResolveQuantity(room, template),
		Coats:    2,
	}

	got := CostItem(item, template, testSettings(), testCatalog())

	assert.InDelta(t, 348.0, got.Quantity, 1e-9)
	assert.InDelta(t, 34.8, got.LaborMinutes, 1e-9)
	assert.InDelta(t, 29.0, got.LaborCost, 1e-9)
	assert.InDelta(t, 105.0, got.MaterialCost, 1e-9)
	assert.InDelta(t, 13.40, got.OverheadCost, 1e-9)
	assert.InDelta(t, 29.48, got.ProfitCost, 1e-9)
	assert.InDelta(t, 176.88, got.TotalPrice, 1e-9)
}

func TestCostItem_ExplicitMaterialWins(t *testing.T) {
	materialID := "mat_duration"
	item := domain.ItemInstance{
		Category:   domain.SurfaceWalls,
		Grade:      domain.GradeStandard,
		Quantity:   100,
		Coats:      1,
		MaterialID: &materialID,
	}

	got := CostItem(item, wallsTemplate(), testSettings(), testCatalog())

	// 100 * 1 * 1.1 / 400 rounds up to 1 gallon of Duration Home
	assert.InDelta(t, 65.0, got.MaterialCost, 1e-9)
}

func TestCostItem_UnknownMaterialIDFallsBackToGrade(t *testing.T) {
	materialID := "mat_discontinued"
	item := domain.ItemInstance{
		Category:   domain.SurfaceWalls,
		Grade:      domain.GradeStandard,
		Quantity:   100,
		Coats:      1,
		MaterialID: &materialID,
	}

	got := CostItem(item, wallsTemplate(), testSettings(), testCatalog())

	assert.InDelta(t, 35.0, got.MaterialCost, 1e-9)
}

func TestCostItem_DefaultPricingWithoutCatalog(t *testing.T) {
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 348,
		Coats:    2,
	}

	got := CostItem(item, wallsTemplate(), testSettings(), nil)

	// 348*2*1.1/350 rounds up to 3 gallons at the $50 default
	assert.InDelta(t, 150.0, got.MaterialCost, 1e-9)
}

func TestCostItem_WholeGallonRounding(t *testing.T) {
	template := &domain.ItemTemplate{MinutesPerUnit: 0.05}
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 351, // 351/350 barely exceeds one gallon
		Coats:    1,
	}

	got := CostItem(item, template, testSettings(), testCatalog())

	assert.InDelta(t, 70.0, got.MaterialCost, 1e-9)
}

func TestCostItem_AdditionalCoatRate(t *testing.T) {
	additional := 0.02
	template := &domain.ItemTemplate{
		MinutesPerUnit:           0.05,
		MinutesPerUnitAdditional: &additional,
	}
	item := domain.ItemInstance{Quantity: 100, Coats: 3}

	got := CostItem(item, template, testSettings(), nil)

	// first coat 5 minutes, two more coats at 2 minutes each
	assert.InDelta(t, 9.0, got.LaborMinutes, 1e-9)
}

func TestCostItem_AdditionalRateDefaultsToBase(t *testing.T) {
	template := &domain.ItemTemplate{MinutesPerUnit: 0.05}
	item := domain.ItemInstance{Quantity: 100, Coats: 3}

	got := CostItem(item, template, testSettings(), nil)

	assert.InDelta(t, 15.0, got.LaborMinutes, 1e-9)
}

func TestCostItem_ZeroCoats(t *testing.T) {
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 348,
		Coats:    0,
	}

	got := CostItem(item, wallsTemplate(), testSettings(), testCatalog())

	assert.Zero(t, got.LaborMinutes)
	assert.Zero(t, got.LaborCost)
	assert.Zero(t, got.MaterialCost)
	assert.Zero(t, got.TotalPrice)
}

func TestCostItem_ZeroQuantity(t *testing.T) {
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 0,
		Coats:    2,
	}

	got := CostItem(item, wallsTemplate(), testSettings(), testCatalog())

	assert.Zero(t, got.MaterialCost)
	assert.Zero(t, got.LaborCost)
	assert.Zero(t, got.TotalPrice)
}

func TestCostItem_TaxAppliedLast(t *testing.T) {
	settings := testSettings()
	settings.TaxRate = 0.08
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 348,
		Coats:    2,
	}

	got := CostItem(item, wallsTemplate(), settings, testCatalog())

	// pre-tax price from the walls breakdown scenario times 1.08
	assert.InDelta(t, 176.88*1.08, got.TotalPrice, 1e-9)
}

func TestCostItem_MarginStackMonotonic(t *testing.T) {
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 348,
		Coats:    2,
	}

	tests := []struct {
		name  string
		set   func(*domain.ProjectSettings, float64)
		steps []float64
	}{
		{
			name:  "raising overhead never lowers the price",
			set:   func(s *domain.ProjectSettings, v float64) { s.OverheadPct = v },
			steps: []float64{0, 0.05, 0.10, 0.25, 0.50},
		},
		{
			name:  "raising profit never lowers the price",
			set:   func(s *domain.ProjectSettings, v float64) { s.ProfitPct = v },
			steps: []float64{0, 0.10, 0.20, 0.35, 1.0},
		},
		{
			name:  "raising tax never lowers the price",
			set:   func(s *domain.ProjectSettings, v float64) { s.TaxRate = v },
			steps: []float64{0, 0.05, 0.08, 0.15, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := -1.0
			for _, step := range tt.steps {
				settings := testSettings()
				tt.set(&settings, step)

				got := CostItem(item, wallsTemplate(), settings, testCatalog())

				assert.GreaterOrEqual(t, got.TotalPrice, prev,
					"total price dropped when the rate rose to %v", step)
				prev = got.TotalPrice
			}
		})
	}
}

func TestCostItem_Deterministic(t *testing.T) {
	item := domain.ItemInstance{
		Category: domain.SurfaceWalls,
		Grade:    domain.GradeStandard,
		Quantity: 348,
		Coats:    2,
	}

	first := CostItem(item, wallsTemplate(), testSettings(), testCatalog())
	second := CostItem(first, wallsTemplate(), testSettings(), testCatalog())

	assert.Equal(t, first.TotalPrice, second.TotalPrice)
	assert.Equal(t, first.LaborMinutes, second.LaborMinutes)
	assert.Equal(t, first.MaterialCost, second.MaterialCost)
}

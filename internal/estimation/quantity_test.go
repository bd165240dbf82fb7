package estimation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propaint/estimate-api/internal/domain"
)

func testRoom() *domain.Room {
	return &domain.Room{
		Name:     "Bedroom",
		Length:   12,
		Width:    12,
		Height:   8,
		Doors:    1,
		Windows:  1,
		Included: true,
	}
}

func TestWallArea(t *testing.T) {
	room := testRoom()
	// 2*(12+12)*8 - 21 - 15 = 384 - 36
	assert.InDelta(t, 348.0, WallArea(room), 1e-9)
}

func TestWallArea_ClampsAtZero(t *testing.T) {
	room := &domain.Room{Length: 3, Width: 3, Height: 2, Doors: 2, Windows: 1}
	// gross 24 sqft, deductions 57 sqft
	assert.Equal(t, 0.0, WallArea(room))
}

func TestCeilingArea(t *testing.T) {
	room := &domain.Room{Length: 10, Width: 14}
	assert.InDelta(t, 140.0, CeilingArea(room), 1e-9)
}

func TestResolveQuantity_Strategies(t *testing.T) {
	room := testRoom()

	tests := []struct {
		name     string
		template domain.ItemTemplate
		want     float64
	}{
		{
			name:     "wall area strategy",
			template: domain.ItemTemplate{Strategy: domain.CalcWallArea},
			want:     348,
		},
		{
			name:     "ceiling area strategy",
			template: domain.ItemTemplate{Strategy: domain.CalcCeilingArea},
			want:     144,
		},
		{
			name:     "perimeter strategy",
			template: domain.ItemTemplate{Strategy: domain.CalcPerimeter},
			want:     48,
		},
		{
			name: "manual falls back to category defaults",
			template: domain.ItemTemplate{
				Strategy:    domain.CalcManual,
				MeasureType: domain.MeasureArea,
				Category:    domain.SurfaceWalls,
			},
			want: 348,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ResolveQuantity(room, &tt.template), 1e-9)
		})
	}
}

func TestResolveQuantity_LegacyCategoryTable(t *testing.T) {
	room := &domain.Room{Length: 10, Width: 12, Height: 9, Doors: 2, Windows: 3}

	tests := []struct {
		name     string
		template domain.ItemTemplate
		want     float64
	}{
		{
			name:     "area walls",
			template: domain.ItemTemplate{MeasureType: domain.MeasureArea, Category: domain.SurfaceWalls},
			// 2*(10+12)*9 - 2*21 - 3*15 = 396 - 87
			want: 309,
		},
		{
			name:     "area ceiling",
			template: domain.ItemTemplate{MeasureType: domain.MeasureArea, Category: domain.SurfaceCeiling},
			want:     120,
		},
		{
			name:     "area for any other surface needs manual entry",
			template: domain.ItemTemplate{MeasureType: domain.MeasureArea, Category: "Cabinets"},
			want:     0,
		},
		{
			name:     "length runs the perimeter",
			template: domain.ItemTemplate{MeasureType: domain.MeasureLength, Category: domain.SurfaceTrim},
			want:     44,
		},
		{
			name:     "count doors",
			template: domain.ItemTemplate{MeasureType: domain.MeasureCount, Category: domain.SurfaceDoors},
			want:     2,
		},
		{
			name:     "count windows",
			template: domain.ItemTemplate{MeasureType: domain.MeasureCount, Category: domain.SurfaceWindows},
			want:     3,
		},
		{
			name:     "count for any other surface defaults to one",
			template: domain.ItemTemplate{MeasureType: domain.MeasureCount, Category: "Accent Wall"},
			want:     1,
		},
		{
			name:     "no measure type defaults to one",
			template: domain.ItemTemplate{MeasureType: domain.MeasureNone},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ResolveQuantity(room, &tt.template), 1e-9)
		})
	}
}

func TestResolveQuantity_TracksGeometryChanges(t *testing.T) {
	room := testRoom()
	walls := &domain.ItemTemplate{Strategy: domain.CalcWallArea}
	ceiling := &domain.ItemTemplate{Strategy: domain.CalcCeilingArea}

	before := ResolveQuantity(room, walls)
	ceilingBefore := ResolveQuantity(room, ceiling)

	room.Height = 10
	assert.Greater(t, ResolveQuantity(room, walls), before)
	// ceiling area does not depend on height
	assert.InDelta(t, ceilingBefore, ResolveQuantity(room, ceiling), 1e-9)
}

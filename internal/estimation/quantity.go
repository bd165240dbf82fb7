// Package estimation contains the pure calculation engine that turns room
// geometry, price-book data and margin settings into costed line items and
// aggregated totals. Every function is deterministic and side-effect free:
// identical inputs always produce identical outputs, so callers may recompute
// on every mutation without coordination.
package estimation

import (
	"math"

	"github.com/propaint/estimate-api/internal/domain"
)

// Fixed per-opening wall area deductions, in square feet. These approximate
// average door and window sizes rather than measuring each opening.
const (
	DoorDeductionSqft   = 21.0
	WindowDeductionSqft = 15.0
)

// WallArea returns the paintable wall area of a room: perimeter times height
// minus the per-opening deductions, clamped at zero so oversized opening
// counts cannot go negative.
func WallArea(room *domain.Room) float64 {
	area := room.Perimeter()*room.Height -
		float64(room.Doors)*DoorDeductionSqft -
		float64(room.Windows)*WindowDeductionSqft
	return math.Max(0, area)
}

// CeilingArea returns the ceiling area of a room
func CeilingArea(room *domain.Room) float64 {
	return room.Length * room.Width
}

// ResolveQuantity derives the raw measurement (area, length or count) for one
// line item from the room's geometry and the template's calculation strategy.
// Templates without a strategy tag, and templates tagged manual, use the
// legacy category table below. The result is always >= 0.
func ResolveQuantity(room *domain.Room, template *domain.ItemTemplate) float64 {
	switch template.Strategy {
	case domain.CalcWallArea:
		return WallArea(room)
	case domain.CalcCeilingArea:
		return CeilingArea(room)
	case domain.CalcPerimeter:
		return room.Perimeter()
	}
	return legacyCategoryQuantity(room, template)
}

// legacyCategoryQuantity maps quantity by measure type and literal category
// name. Pre-strategy templates were matched this way, and existing catalogs
// still rely on the exact "Walls"/"Ceiling"/"Doors"/"Windows" strings, so this
// table must stay separate from the strategy dispatch above.
func legacyCategoryQuantity(room *domain.Room, template *domain.ItemTemplate) float64 {
	switch template.MeasureType {
	case domain.MeasureArea:
		switch template.Category {
		case domain.SurfaceWalls:
			return WallArea(room)
		case domain.SurfaceCeiling:
			return CeilingArea(room)
		}
		// other area surfaces are measured by hand
		return 0
	case domain.MeasureLength:
		// baseboard and crown run the room perimeter
		return room.Perimeter()
	case domain.MeasureCount:
		switch template.Category {
		case domain.SurfaceDoors:
			return float64(room.Doors)
		case domain.SurfaceWindows:
			return float64(room.Windows)
		}
		return 1
	}
	return 1
}

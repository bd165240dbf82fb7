package estimation

import (
	"math"

	"github.com/propaint/estimate-api/internal/domain"
)

// Fallback pricing used when no price-book line matches an item's surface
// category. Estimates stay producible on an empty or partial catalog.
const (
	DefaultPricePerGallon = 50.0
	DefaultCoverageSqft   = 350.0
	minutesPerHour        = 60.0
)

// CostItem computes the full cost breakdown for one line item and returns a
// copy of the item with the labor, material, overhead, profit and total
// fields populated. The input item's Quantity is taken as-is; callers that
// want geometry-derived quantities run ResolveQuantity first.
//
// Material selection order: the item's explicit MaterialID when it resolves,
// then category+grade matching via ResolveMaterial, then default pricing.
//
// Labor uses a two-tier rate: every unit pays the template's base
// minutes-per-unit for the first coat, and each additional coat pays the
// additional-coat rate, which defaults to the base rate when the template
// does not override it.
func CostItem(item domain.ItemInstance, template *domain.ItemTemplate, settings domain.ProjectSettings, catalog []domain.MaterialLine) domain.ItemInstance {
	var material *domain.MaterialLine
	if item.MaterialID != nil {
		material = FindMaterial(*item.MaterialID, catalog)
	}
	if material == nil {
		material = ResolveMaterial(item.Category, item.Grade, catalog)
	}

	pricePerGallon := DefaultPricePerGallon
	coverage := DefaultCoverageSqft
	if material != nil {
		pricePerGallon = material.PricePerGallon
		coverage = material.CoverageSqft
	}

	// Paint is bought in whole gallons, so the coverage quotient rounds up
	// even for a tiny fractional excess.
	wasteMultiplier := 1 + template.DefaultWastePct
	gallons := math.Ceil(item.Quantity * float64(item.Coats) * wasteMultiplier / coverage)
	materialCost := gallons * pricePerGallon

	baseRate := template.MinutesPerUnit
	additionalRate := baseRate
	if template.MinutesPerUnitAdditional != nil {
		additionalRate = *template.MinutesPerUnitAdditional
	}

	var laborMinutes float64
	if item.Coats > 0 {
		laborMinutes = item.Quantity * baseRate
		if item.Coats > 1 {
			laborMinutes += item.Quantity * additionalRate * float64(item.Coats-1)
		}
	}
	laborCost := laborMinutes / minutesPerHour * settings.LaborRatePerHour

	// Margins stack multiplicatively: overhead on direct cost, profit on the
	// overhead-inclusive subtotal, tax on the profit-inclusive price.
	directCost := laborCost + materialCost
	overheadCost := directCost * settings.OverheadPct
	subtotal := directCost + overheadCost
	profitCost := subtotal * settings.ProfitPct
	priceBeforeTax := subtotal + profitCost
	tax := priceBeforeTax * settings.TaxRate

	out := item
	out.LaborMinutes = laborMinutes
	out.LaborCost = laborCost
	out.MaterialCost = materialCost
	out.OverheadCost = overheadCost
	out.ProfitCost = profitCost
	out.TotalPrice = priceBeforeTax + tax
	return out
}

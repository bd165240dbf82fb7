package estimation

import "github.com/propaint/estimate-api/internal/domain"

// FindMaterial returns the price-book line with the given id, or nil when the
// id is not present in the catalog.
func FindMaterial(id string, catalog []domain.MaterialLine) *domain.MaterialLine {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// ResolveMaterial picks a price-book line for a surface category and paint
// grade. An exact category+grade match wins; otherwise the first line for the
// category serves as a price approximation regardless of grade. Returns nil
// when the catalog has nothing for the category at all, in which case the
// cost step falls back to default pricing.
func ResolveMaterial(category string, grade domain.PaintGrade, catalog []domain.MaterialLine) *domain.MaterialLine {
	for i := range catalog {
		if catalog[i].SurfaceCategory == category && catalog[i].Grade == grade {
			return &catalog[i]
		}
	}
	for i := range catalog {
		if catalog[i].SurfaceCategory == category {
			return &catalog[i]
		}
	}
	return nil
}

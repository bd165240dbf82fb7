// Package seed populates an empty database with the default catalog: item
// templates, the material price book, room name presets and the settings
// singletons. Seeding is idempotent; a catalog that already has rows is left
// alone so operator edits survive restarts.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
)

func defaultTemplates() []domain.ItemTemplate {
	return []domain.ItemTemplate{
		{
			ID:              "tpl_walls",
			Name:            "Walls (Cut & Roll)",
			Category:        domain.SurfaceWalls,
			MeasureType:     domain.MeasureArea,
			Strategy:        domain.CalcWallArea,
			DefaultCoats:    2,
			DefaultWastePct: 0.10,
			DefaultGrade:    domain.GradeStandard,
			MinutesPerUnit:  0.05,
			Description:     "Scrape loose paint, patch minor holes/cracks, sand smooth, spot prime repairs, and apply two coats of finish paint.",
			IsActive:        true,
		},
		{
			ID:              "tpl_ceiling",
			Name:            "Ceiling (Flat)",
			Category:        domain.SurfaceCeiling,
			MeasureType:     domain.MeasureArea,
			Strategy:        domain.CalcCeilingArea,
			DefaultCoats:    2,
			DefaultWastePct: 0.10,
			DefaultGrade:    domain.GradeContractor,
			MinutesPerUnit:  0.06,
			Description:     "Mask walls and floors. Apply two coats of flat ceiling paint to ensure uniform coverage.",
			IsActive:        true,
		},
		{
			ID:              "tpl_baseboard",
			Name:            "Baseboard Trim",
			Category:        domain.SurfaceTrim,
			MeasureType:     domain.MeasureLength,
			Strategy:        domain.CalcPerimeter,
			DefaultCoats:    1,
			DefaultWastePct: 0.05,
			DefaultGrade:    domain.GradePremium,
			MinutesPerUnit:  1.5,
			Description:     "Caulk gaps, fill nail holes, sand, and apply finish coat to baseboards.",
			IsActive:        true,
		},
		{
			ID:              "tpl_door_frame",
			Name:            "Door Frame",
			Category:        domain.SurfaceDoors,
			MeasureType:     domain.MeasureCount,
			DefaultCoats:    1,
			DefaultWastePct: 0.05,
			DefaultGrade:    domain.GradePremium,
			MinutesPerUnit:  20,
			Description:     "Prepare surface, sand, and apply finish coat to door casing and jambs.",
			IsActive:        true,
		},
		{
			ID:              "tpl_window_frame",
			Name:            "Window Frame/Sill",
			Category:        domain.SurfaceWindows,
			MeasureType:     domain.MeasureCount,
			DefaultCoats:    1,
			DefaultWastePct: 0.05,
			DefaultGrade:    domain.GradePremium,
			MinutesPerUnit:  30,
			Description:     "Prepare surface, sand, and paint window sash, sill, and casing.",
			IsActive:        true,
		},
	}
}

func defaultMaterials() []domain.MaterialLine {
	return []domain.MaterialLine{
		// Walls
		{ID: "mat_sw_promar200", Brand: "Sherwin-Williams", Line: "ProMar 200", Grade: domain.GradeContractor, SurfaceCategory: domain.SurfaceWalls, CoverageSqft: 350, PricePerGallon: 35},
		{ID: "mat_sw_superpaint", Brand: "Sherwin-Williams", Line: "SuperPaint", Grade: domain.GradeStandard, SurfaceCategory: domain.SurfaceWalls, CoverageSqft: 350, PricePerGallon: 55},
		{ID: "mat_sw_emerald", Brand: "Sherwin-Williams", Line: "Emerald", Grade: domain.GradePremium, SurfaceCategory: domain.SurfaceWalls, CoverageSqft: 400, PricePerGallon: 85},

		// Trim
		{ID: "mat_bm_advance", Brand: "Benjamin Moore", Line: "Advance", Grade: domain.GradePremium, SurfaceCategory: domain.SurfaceTrim, CoverageSqft: 350, PricePerGallon: 90},
		{ID: "mat_sw_solo", Brand: "Sherwin-Williams", Line: "Solo", Grade: domain.GradeStandard, SurfaceCategory: domain.SurfaceTrim, CoverageSqft: 350, PricePerGallon: 60},

		// Ceiling
		{ID: "mat_sw_chb", Brand: "Sherwin-Williams", Line: "CHB", Grade: domain.GradeContractor, SurfaceCategory: domain.SurfaceCeiling, CoverageSqft: 300, PricePerGallon: 25},
	}
}

func defaultRoomNames() []string {
	return []string{
		"Living Room",
		"Kitchen",
		"Master Bedroom",
		"Bedroom 1",
		"Bedroom 2",
		"Dining Room",
		"Hallway",
		"Entryway",
		"Bathroom",
		"Master Bath",
		"Office",
		"Garage",
	}
}

// Run seeds the default catalog into an empty database.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	if err := seedTemplates(ctx, db, logger); err != nil {
		return err
	}
	if err := seedMaterials(ctx, db, logger); err != nil {
		return err
	}
	if err := seedRoomNames(ctx, db, logger); err != nil {
		return err
	}
	if err := seedSettings(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

func seedTemplates(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.ItemTemplate{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	templates := defaultTemplates()
	if err := db.WithContext(ctx).Create(&templates).Error; err != nil {
		return fmt.Errorf("failed to seed templates: %w", err)
	}
	logger.Info("seeded default item templates", zap.Int("count", len(templates)))
	return nil
}

func seedMaterials(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.MaterialLine{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count materials: %w", err)
	}
	if count > 0 {
		return nil
	}

	materials := defaultMaterials()
	if err := db.WithContext(ctx).Create(&materials).Error; err != nil {
		return fmt.Errorf("failed to seed materials: %w", err)
	}
	logger.Info("seeded default material price book", zap.Int("count", len(materials)))
	return nil
}

func seedRoomNames(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.RoomNamePreset{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count room name presets: %w", err)
	}
	if count > 0 {
		return nil
	}

	names := defaultRoomNames()
	presets := make([]domain.RoomNamePreset, 0, len(names))
	for i, name := range names {
		presets = append(presets, domain.RoomNamePreset{
			Name:         name,
			DisplayOrder: i,
		})
	}
	if err := db.WithContext(ctx).Create(&presets).Error; err != nil {
		return fmt.Errorf("failed to seed room name presets: %w", err)
	}
	logger.Info("seeded default room names", zap.Int("count", len(presets)))
	return nil
}

func seedSettings(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.AppSettings{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count settings rows: %w", err)
	}
	if count == 0 {
		settings := &domain.AppSettings{
			ID:       domain.SettingsRowID,
			Settings: domain.DefaultProjectSettings(),
		}
		if err := db.WithContext(ctx).Create(settings).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
		logger.Info("seeded default margin settings")
	}

	if err := db.WithContext(ctx).Model(&domain.BrandingSettings{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count branding rows: %w", err)
	}
	if count == 0 {
		branding := &domain.BrandingSettings{
			ID:           domain.SettingsRowID,
			BusinessName: "ProPaint Co.",
		}
		if err := db.WithContext(ctx).Create(branding).Error; err != nil {
			return fmt.Errorf("failed to seed branding: %w", err)
		}
		logger.Info("seeded default branding")
	}

	return nil
}

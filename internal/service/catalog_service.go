package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/mapper"
	"github.com/propaint/estimate-api/internal/pricefeed"
	"github.com/propaint/estimate-api/internal/repository"
)

// CatalogService manages the estimating catalog: item templates and the
// price book, including the optional supplier price sync.
type CatalogService struct {
	templateRepo *repository.TemplateRepository
	materialRepo *repository.MaterialRepository
	feed         *pricefeed.Client
	logger       *zap.Logger
}

func NewCatalogService(
	templateRepo *repository.TemplateRepository,
	materialRepo *repository.MaterialRepository,
	feed *pricefeed.Client,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		templateRepo: templateRepo,
		materialRepo: materialRepo,
		feed:         feed,
		logger:       logger,
	}
}

func (s *CatalogService) ListTemplates(ctx context.Context, activeOnly bool) ([]domain.ItemTemplateDTO, error) {
	templates, err := s.templateRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	dtos := make([]domain.ItemTemplateDTO, 0, len(templates))
	for i := range templates {
		dtos = append(dtos, mapper.ToItemTemplateDTO(&templates[i]))
	}
	return dtos, nil
}

func (s *CatalogService) GetTemplate(ctx context.Context, id string) (*domain.ItemTemplateDTO, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	dto := mapper.ToItemTemplateDTO(template)
	return &dto, nil
}

func (s *CatalogService) CreateTemplate(ctx context.Context, req *domain.CreateTemplateRequest) (*domain.ItemTemplateDTO, error) {
	if !req.MeasureType.IsValid() {
		return nil, ErrInvalidInput
	}
	if req.Strategy != "" && !req.Strategy.IsValid() {
		return nil, ErrInvalidInput
	}

	if req.ID != "" {
		if _, err := s.templateRepo.GetByID(ctx, req.ID); err == nil {
			return nil, ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check template id: %w", err)
		}
	}

	template := &domain.ItemTemplate{
		ID:                       req.ID,
		Name:                     req.Name,
		Category:                 req.Category,
		ServiceID:                req.ServiceID,
		MeasureType:              req.MeasureType,
		Strategy:                 req.Strategy,
		DefaultCoats:             req.DefaultCoats,
		DefaultWastePct:          req.DefaultWastePct,
		DefaultGrade:             req.DefaultGrade,
		MinutesPerUnit:           req.MinutesPerUnit,
		MinutesPerUnitAdditional: req.MinutesPerUnitAdditional,
		Description:              req.Description,
		IsActive:                 true,
	}
	if template.ID == "" {
		template.ID = fmt.Sprintf("tpl_%d", time.Now().UnixNano())
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.logger.Info("template created", zap.String("template_id", template.ID))

	dto := mapper.ToItemTemplateDTO(template)
	return &dto, nil
}

func (s *CatalogService) UpdateTemplate(ctx context.Context, id string, req *domain.UpdateTemplateRequest) (*domain.ItemTemplateDTO, error) {
	if !req.MeasureType.IsValid() {
		return nil, ErrInvalidInput
	}
	if req.Strategy != "" && !req.Strategy.IsValid() {
		return nil, ErrInvalidInput
	}

	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	template.Name = req.Name
	template.Category = req.Category
	template.ServiceID = req.ServiceID
	template.MeasureType = req.MeasureType
	template.Strategy = req.Strategy
	template.DefaultCoats = req.DefaultCoats
	template.DefaultWastePct = req.DefaultWastePct
	template.DefaultGrade = req.DefaultGrade
	template.MinutesPerUnit = req.MinutesPerUnit
	template.MinutesPerUnitAdditional = req.MinutesPerUnitAdditional
	template.Description = req.Description
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	dto := mapper.ToItemTemplateDTO(template)
	return &dto, nil
}

// DeleteTemplate removes a template from the catalog. Templates referenced by
// existing line items are deactivated instead, so stored estimates keep their
// labor rates.
func (s *CatalogService) DeleteTemplate(ctx context.Context, id string) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}

	inUse, err := s.templateRepo.CountItemsUsingTemplate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check template usage: %w", err)
	}
	if inUse > 0 {
		template.IsActive = false
		if err := s.templateRepo.Update(ctx, template); err != nil {
			return fmt.Errorf("failed to deactivate template: %w", err)
		}
		s.logger.Info("template deactivated instead of deleted",
			zap.String("template_id", id),
			zap.Int("items_using", inUse))
		return nil
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

func (s *CatalogService) ListMaterials(ctx context.Context) ([]domain.MaterialLineDTO, error) {
	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	dtos := make([]domain.MaterialLineDTO, 0, len(materials))
	for i := range materials {
		dtos = append(dtos, mapper.ToMaterialLineDTO(&materials[i]))
	}
	return dtos, nil
}

func (s *CatalogService) GetMaterial(ctx context.Context, id string) (*domain.MaterialLineDTO, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	dto := mapper.ToMaterialLineDTO(material)
	return &dto, nil
}

func (s *CatalogService) CreateMaterial(ctx context.Context, req *domain.CreateMaterialRequest) (*domain.MaterialLineDTO, error) {
	if !req.Grade.IsValid() {
		return nil, ErrInvalidInput
	}

	if req.ID != "" {
		if _, err := s.materialRepo.GetByID(ctx, req.ID); err == nil {
			return nil, ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check material id: %w", err)
		}
	}

	material := &domain.MaterialLine{
		ID:              req.ID,
		Brand:           req.Brand,
		Line:            req.Line,
		Grade:           req.Grade,
		SurfaceCategory: req.SurfaceCategory,
		ServiceID:       req.ServiceID,
		CoverageSqft:    req.CoverageSqft,
		PricePerGallon:  req.PricePerGallon,
	}
	if material.ID == "" {
		material.ID = fmt.Sprintf("mat_%d", time.Now().UnixNano())
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	s.logger.Info("material created", zap.String("material_id", material.ID))

	dto := mapper.ToMaterialLineDTO(material)
	return &dto, nil
}

func (s *CatalogService) UpdateMaterial(ctx context.Context, id string, req *domain.UpdateMaterialRequest) (*domain.MaterialLineDTO, error) {
	if !req.Grade.IsValid() {
		return nil, ErrInvalidInput
	}

	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}

	material.Brand = req.Brand
	material.Line = req.Line
	material.Grade = req.Grade
	material.SurfaceCategory = req.SurfaceCategory
	material.ServiceID = req.ServiceID
	material.CoverageSqft = req.CoverageSqft
	material.PricePerGallon = req.PricePerGallon

	if err := s.materialRepo.Update(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	dto := mapper.ToMaterialLineDTO(material)
	return &dto, nil
}

func (s *CatalogService) DeleteMaterial(ctx context.Context, id string) error {
	if _, err := s.materialRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return fmt.Errorf("failed to get material: %w", err)
	}
	if err := s.materialRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return nil
}

// SyncSupplierPrices pulls the supplier price list and updates matching
// price-book entries. Rows match on brand plus product line; supplier rows
// without a local counterpart are ignored rather than imported, so the
// catalog stays curated.
func (s *CatalogService) SyncSupplierPrices(ctx context.Context) (*domain.PriceSyncResultDTO, error) {
	if !s.feed.IsEnabled() {
		return nil, ErrPriceFeedDisabled
	}

	rows, err := s.feed.GetPriceList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch supplier price list: %w", err)
	}

	updated := 0
	for _, row := range rows {
		material, err := s.materialRepo.FindByBrandLine(ctx, row.Brand, row.Line)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to match price row: %w", err)
		}

		changed := false
		if row.PricePerGallon > 0 && material.PricePerGallon != row.PricePerGallon {
			material.PricePerGallon = row.PricePerGallon
			changed = true
		}
		if row.CoverageSqft > 0 && material.CoverageSqft != row.CoverageSqft {
			material.CoverageSqft = row.CoverageSqft
			changed = true
		}
		if !changed {
			continue
		}

		if err := s.materialRepo.Update(ctx, material); err != nil {
			return nil, fmt.Errorf("failed to update material %s: %w", material.ID, err)
		}
		updated++
	}

	result := &domain.PriceSyncResultDTO{
		RowsFetched:      len(rows),
		MaterialsUpdated: updated,
		SyncedAt:         time.Now().UTC().Format(time.RFC3339),
	}

	s.logger.Info("supplier price sync completed",
		zap.Int("rows_fetched", result.RowsFetched),
		zap.Int("materials_updated", result.MaterialsUpdated))

	return result, nil
}

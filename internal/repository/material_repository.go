package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, material *domain.MaterialLine) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *MaterialRepository) GetByID(ctx context.Context, id string) (*domain.MaterialLine, error) {
	var material domain.MaterialLine
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *MaterialRepository) Update(ctx context.Context, material *domain.MaterialLine) error {
	return r.db.WithContext(ctx).Save(material).Error
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.MaterialLine{}, "id = ?", id).Error
}

// List returns the full price book, ordered for stable catalog resolution:
// the engine's category fallback picks the first line per category, so the
// ordering here is part of pricing behavior.
func (r *MaterialRepository) List(ctx context.Context) ([]domain.MaterialLine, error) {
	var materials []domain.MaterialLine
	err := r.db.WithContext(ctx).
		Order("surface_category ASC, id ASC").
		Find(&materials).Error
	return materials, err
}

func (r *MaterialRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.MaterialLine{}).Count(&count).Error
	return int(count), err
}

// FindByBrandLine matches a supplier feed row to a price-book entry. Brand
// and line are compared case-insensitively since feeds vary in casing.
func (r *MaterialRepository) FindByBrandLine(ctx context.Context, brand, line string) (*domain.MaterialLine, error) {
	var material domain.MaterialLine
	err := r.db.WithContext(ctx).
		Where("LOWER(brand) = ? AND LOWER(line) = ?", strings.ToLower(brand), strings.ToLower(line)).
		First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

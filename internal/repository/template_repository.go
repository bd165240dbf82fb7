package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, template *domain.ItemTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.ItemTemplate, error) {
	var template domain.ItemTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) Update(ctx context.Context, template *domain.ItemTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.ItemTemplate{}, "id = ?", id).Error
}

func (r *TemplateRepository) List(ctx context.Context, activeOnly bool) ([]domain.ItemTemplate, error) {
	var templates []domain.ItemTemplate
	query := r.db.WithContext(ctx).Model(&domain.ItemTemplate{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ItemTemplate{}).Count(&count).Error
	return int(count), err
}

// CountItemsUsingTemplate reports how many line items reference a template.
// Templates in use are deactivated instead of deleted.
func (r *TemplateRepository) CountItemsUsingTemplate(ctx context.Context, templateID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ItemInstance{}).
		Where("template_id = ?", templateID).
		Count(&count).Error
	return int(count), err
}

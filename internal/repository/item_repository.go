package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.ItemInstance) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ItemInstance, error) {
	var item domain.ItemInstance
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.ItemInstance) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// UpdateAll rewrites a batch of recosted items in a single transaction so a
// recalculation either lands fully or not at all.
func (r *ItemRepository) UpdateAll(ctx context.Context, items []domain.ItemInstance) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := tx.Save(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ItemInstance{}, "id = ?", id).Error
}

func (r *ItemRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.ItemInstance, error) {
	var items []domain.ItemInstance
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("display_order ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) NextDisplayOrder(ctx context.Context, roomID uuid.UUID) (int, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&domain.ItemInstance{}).
		Where("room_id = ?", roomID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&max).Error
	return int(max) + 1, err
}

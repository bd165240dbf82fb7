package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithRooms loads a project with its full room and item tree, in stable
// display order, for estimate views and recalculation.
func (r *ProjectRepository) GetWithRooms(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at ASC")
		}).
		Preload("Rooms.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_items.display_order ASC, room_items.created_at ASC")
		}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// UpdateTotals rewrites only the aggregate columns, leaving the rest of the
// row untouched so concurrent field edits are not clobbered.
func (r *ProjectRepository) UpdateTotals(ctx context.Context, id uuid.UUID, totalCost, totalPrice float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_cost":  totalCost,
			"total_price": totalPrice,
		}).Error
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error
}

func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, search string, status domain.ProjectStatus) ([]domain.Project, int64, error) {
	var projects []domain.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Project{})

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(client_name) LIKE ?", searchPattern, searchPattern)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("updated_at DESC").Find(&projects).Error

	return projects, total, err
}

func (r *ProjectRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

// StatusAggregate is one row of the pipeline stats grouping.
type StatusAggregate struct {
	Status domain.ProjectStatus
	Count  int
	Value  float64
}

func (r *ProjectRepository) StatsByStatus(ctx context.Context) ([]StatusAggregate, error) {
	var rows []StatusAggregate
	err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_price), 0) as value").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// UpdateClientNameSnapshot refreshes the denormalized client name on all of a
// client's projects after the client is renamed.
func (r *ProjectRepository) UpdateClientNameSnapshot(ctx context.Context, clientID uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("client_id = ?", clientID).
		Update("client_name", name).Error
}

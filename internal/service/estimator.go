package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/estimation"
	"github.com/propaint/estimate-api/internal/repository"
)

// Estimator bridges the pure calculation engine and the persistence layer.
// Project and room services share it so every mutation path runs the same
// resolve, cost and aggregate steps.
type Estimator struct {
	projectRepo  *repository.ProjectRepository
	templateRepo *repository.TemplateRepository
	materialRepo *repository.MaterialRepository
}

func NewEstimator(
	projectRepo *repository.ProjectRepository,
	templateRepo *repository.TemplateRepository,
	materialRepo *repository.MaterialRepository,
) *Estimator {
	return &Estimator{
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		materialRepo: materialRepo,
	}
}

func (e *Estimator) catalog(ctx context.Context) ([]domain.MaterialLine, error) {
	materials, err := e.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price book: %w", err)
	}
	return materials, nil
}

func (e *Estimator) templates(ctx context.Context) (map[string]domain.ItemTemplate, error) {
	list, err := e.templateRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	byID := make(map[string]domain.ItemTemplate, len(list))
	for _, t := range list {
		byID[t.ID] = t
	}
	return byID, nil
}

// RequantifyItems re-resolves every item quantity in the room from its
// current geometry. Manual quantity overrides are overwritten; room geometry
// is the source of truth once it changes.
func (e *Estimator) RequantifyItems(ctx context.Context, room *domain.Room) error {
	templates, err := e.templates(ctx)
	if err != nil {
		return err
	}
	for i := range room.Items {
		template, ok := templates[room.Items[i].TemplateID]
		if !ok {
			// orphaned template reference, leave the quantity as stored
			continue
		}
		room.Items[i].Quantity = estimation.ResolveQuantity(room, &template)
	}
	return nil
}

// RecostItems recomputes the cost breakdown of every given item in place
// against the current price book and the project's margin settings.
func (e *Estimator) RecostItems(ctx context.Context, items []domain.ItemInstance, settings domain.ProjectSettings) error {
	if len(items) == 0 {
		return nil
	}
	catalog, err := e.catalog(ctx)
	if err != nil {
		return err
	}
	templates, err := e.templates(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		template, ok := templates[items[i].TemplateID]
		if !ok {
			template = domain.ItemTemplate{}
		}
		items[i] = estimation.CostItem(items[i], &template, settings, catalog)
	}
	return nil
}

// RefreshTotals re-sums the full room tree and rewrites the project's
// aggregate columns. Returns the freshly loaded project for response mapping.
func (e *Estimator) RefreshTotals(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	project, err := e.projectRepo.GetWithRooms(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project for aggregation: %w", err)
	}

	totals := estimation.ProjectTotals(*project)
	if err := e.projectRepo.UpdateTotals(ctx, projectID, totals.TotalCost, totals.TotalPrice); err != nil {
		return nil, fmt.Errorf("failed to persist project totals: %w", err)
	}

	project.TotalCost = totals.TotalCost
	project.TotalPrice = totals.TotalPrice
	return project, nil
}

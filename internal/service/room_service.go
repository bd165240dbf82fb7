package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/estimation"
	"github.com/propaint/estimate-api/internal/mapper"
	"github.com/propaint/estimate-api/internal/repository"
)

type RoomService struct {
	roomRepo     *repository.RoomRepository
	itemRepo     *repository.ItemRepository
	projectRepo  *repository.ProjectRepository
	templateRepo *repository.TemplateRepository
	materialRepo *repository.MaterialRepository
	estimator    *Estimator
	logger       *zap.Logger
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	itemRepo *repository.ItemRepository,
	projectRepo *repository.ProjectRepository,
	templateRepo *repository.TemplateRepository,
	materialRepo *repository.MaterialRepository,
	estimator *Estimator,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		itemRepo:     itemRepo,
		projectRepo:  projectRepo,
		templateRepo: templateRepo,
		materialRepo: materialRepo,
		estimator:    estimator,
		logger:       logger,
	}
}

func clampFloat(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (s *RoomService) Create(ctx context.Context, projectID uuid.UUID, req *domain.CreateRoomRequest) (*domain.RoomDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	included := true
	if req.Included != nil {
		included = *req.Included
	}

	room := &domain.Room{
		ProjectID:           project.ID,
		Name:                req.Name,
		ServiceID:           req.ServiceID,
		Length:              clampFloat(req.Length),
		Width:               clampFloat(req.Width),
		Height:              clampFloat(req.Height),
		Doors:               clampInt(req.Doors),
		Windows:             clampInt(req.Windows),
		DefaultWallGrade:    req.DefaultWallGrade,
		DefaultTrimGrade:    req.DefaultTrimGrade,
		DefaultCeilingGrade: req.DefaultCeilingGrade,
		Included:            included,
		Notes:               req.Notes,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	if _, err := s.estimator.RefreshTotals(ctx, project.ID); err != nil {
		return nil, err
	}

	s.logger.Info("room created",
		zap.String("room_id", room.ID.String()),
		zap.String("project_id", project.ID.String()))

	dto := mapper.ToRoomDTO(room)
	return &dto, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoomDTO, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	dto := mapper.ToRoomDTO(room)
	return &dto, nil
}

func (s *RoomService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.RoomDTO, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	rooms, err := s.roomRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	dtos := make([]domain.RoomDTO, 0, len(rooms))
	for i := range rooms {
		dtos = append(dtos, mapper.ToRoomDTO(&rooms[i]))
	}
	return dtos, nil
}

// Update rewrites the room and, whenever geometry or openings changed,
// re-derives every item quantity from the new measurements and re-costs the
// room. Manually overridden quantities are replaced in the process; the room's
// measurements win once they change.
func (s *RoomService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateRoomRequest) (*domain.RoomDTO, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	project, err := s.projectRepo.GetByID(ctx, room.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	length := clampFloat(req.Length)
	width := clampFloat(req.Width)
	height := clampFloat(req.Height)
	doors := clampInt(req.Doors)
	windows := clampInt(req.Windows)

	geometryChanged := room.Length != length || room.Width != width || room.Height != height ||
		room.Doors != doors || room.Windows != windows

	room.Name = req.Name
	room.ServiceID = req.ServiceID
	room.Length = length
	room.Width = width
	room.Height = height
	room.Doors = doors
	room.Windows = windows
	room.DefaultWallGrade = req.DefaultWallGrade
	room.DefaultTrimGrade = req.DefaultTrimGrade
	room.DefaultCeilingGrade = req.DefaultCeilingGrade
	if req.Included != nil {
		room.Included = *req.Included
	}
	room.Notes = req.Notes

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	if geometryChanged {
		if err := s.estimator.RequantifyItems(ctx, room); err != nil {
			return nil, err
		}
		if err := s.estimator.RecostItems(ctx, room.Items, project.Settings); err != nil {
			return nil, err
		}
		if err := s.itemRepo.UpdateAll(ctx, room.Items); err != nil {
			return nil, fmt.Errorf("failed to persist requantified items: %w", err)
		}
	}

	if _, err := s.estimator.RefreshTotals(ctx, room.ProjectID); err != nil {
		return nil, err
	}

	dto := mapper.ToRoomDTO(room)
	return &dto, nil
}

func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to get room: %w", err)
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	if _, err := s.estimator.RefreshTotals(ctx, room.ProjectID); err != nil {
		return err
	}

	s.logger.Info("room deleted", zap.String("room_id", id.String()))
	return nil
}

// AddItem creates a line item from a template. Omitted fields inherit the
// template defaults; the quantity derives from the room's geometry unless the
// request supplies one explicitly.
func (s *RoomService) AddItem(ctx context.Context, roomID uuid.UUID, req *domain.CreateItemRequest) (*domain.ItemInstanceDTO, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	project, err := s.projectRepo.GetByID(ctx, room.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	template, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	item := domain.ItemInstance{
		RoomID:     room.ID,
		TemplateID: template.ID,
		Name:       req.Name,
		Category:   template.Category,
		MaterialID: req.MaterialID,
		Grade:      req.Grade,
		Sheen:      req.Sheen,
		Color:      req.Color,
		Coats:      template.DefaultCoats,
	}
	if item.Name == "" {
		item.Name = template.Name
	}
	if item.Grade == "" {
		item.Grade = s.defaultGrade(room, template)
	}
	if req.Coats != nil {
		item.Coats = clampInt(*req.Coats)
	}
	if req.Quantity != nil {
		item.Quantity = clampFloat(*req.Quantity)
	} else {
		item.Quantity = estimation.ResolveQuantity(room, template)
	}

	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	} else {
		next, err := s.itemRepo.NextDisplayOrder(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to determine display order: %w", err)
		}
		item.DisplayOrder = next
	}

	catalog, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price book: %w", err)
	}
	item = estimation.CostItem(item, template, project.Settings, catalog)

	if err := s.itemRepo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create line item: %w", err)
	}

	if _, err := s.estimator.RefreshTotals(ctx, room.ProjectID); err != nil {
		return nil, err
	}

	s.logger.Info("line item added",
		zap.String("item_id", item.ID.String()),
		zap.String("room_id", room.ID.String()),
		zap.String("template_id", template.ID))

	dto := mapper.ToItemInstanceDTO(&item)
	return &dto, nil
}

// defaultGrade picks the room's per-surface default grade when one is set,
// falling back to the template default and then to Standard.
func (s *RoomService) defaultGrade(room *domain.Room, template *domain.ItemTemplate) domain.PaintGrade {
	var grade domain.PaintGrade
	switch template.Category {
	case domain.SurfaceWalls:
		grade = room.DefaultWallGrade
	case domain.SurfaceTrim, domain.SurfaceDoors, domain.SurfaceWindows:
		grade = room.DefaultTrimGrade
	case domain.SurfaceCeiling:
		grade = room.DefaultCeilingGrade
	}
	if grade == "" {
		grade = template.DefaultGrade
	}
	if grade == "" {
		grade = domain.GradeStandard
	}
	return grade
}

func (s *RoomService) UpdateItem(ctx context.Context, itemID uuid.UUID, req *domain.UpdateItemRequest) (*domain.ItemInstanceDTO, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get line item: %w", err)
	}

	room, err := s.roomRepo.GetByID(ctx, item.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	project, err := s.projectRepo.GetByID(ctx, room.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	template, err := s.templateRepo.GetByID(ctx, item.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	item.Name = req.Name
	item.MaterialID = req.MaterialID
	if req.Grade != "" {
		item.Grade = req.Grade
	}
	if req.Sheen != "" {
		item.Sheen = req.Sheen
	}
	item.Color = req.Color
	if req.Coats != nil {
		item.Coats = clampInt(*req.Coats)
	}
	if req.Quantity != nil {
		item.Quantity = clampFloat(*req.Quantity)
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}

	catalog, err := s.materialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price book: %w", err)
	}
	recosted := estimation.CostItem(*item, template, project.Settings, catalog)

	if err := s.itemRepo.Update(ctx, &recosted); err != nil {
		return nil, fmt.Errorf("failed to update line item: %w", err)
	}

	if _, err := s.estimator.RefreshTotals(ctx, room.ProjectID); err != nil {
		return nil, err
	}

	dto := mapper.ToItemInstanceDTO(&recosted)
	return &dto, nil
}

func (s *RoomService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to get line item: %w", err)
	}

	room, err := s.roomRepo.GetByID(ctx, item.RoomID)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete line item: %w", err)
	}

	if _, err := s.estimator.RefreshTotals(ctx, room.ProjectID); err != nil {
		return err
	}

	s.logger.Info("line item deleted", zap.String("item_id", itemID.String()))
	return nil
}

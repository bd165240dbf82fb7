package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/mapper"
	"github.com/propaint/estimate-api/internal/repository"
)

type ProjectService struct {
	projectRepo  *repository.ProjectRepository
	clientRepo   *repository.ClientRepository
	itemRepo     *repository.ItemRepository
	settingsRepo *repository.SettingsRepository
	estimator    *Estimator
	logger       *zap.Logger
}

func NewProjectService(
	projectRepo *repository.ProjectRepository,
	clientRepo *repository.ClientRepository,
	itemRepo *repository.ItemRepository,
	settingsRepo *repository.SettingsRepository,
	estimator *Estimator,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		clientRepo:   clientRepo,
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
		estimator:    estimator,
		logger:       logger,
	}
}

// Create starts a new draft estimate. The project snapshots the client name
// and the global default margin settings, so later changes to either leave
// existing estimates untouched.
func (s *ProjectService) Create(ctx context.Context, req *domain.CreateProjectRequest) (*domain.ProjectDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	settings := domain.DefaultProjectSettings()
	if appSettings, err := s.settingsRepo.GetAppSettings(ctx); err == nil {
		settings = appSettings.Settings
	} else {
		s.logger.Warn("failed to load default settings, using factory defaults", zap.Error(err))
	}
	if req.Settings != nil {
		settings = domain.ProjectSettings{
			LaborRatePerHour: req.Settings.LaborRatePerHour,
			OverheadPct:      req.Settings.OverheadPct,
			ProfitPct:        req.Settings.ProfitPct,
			TaxRate:          req.Settings.TaxRate,
		}
	}

	project := &domain.Project{
		Name:       req.Name,
		ClientID:   client.ID,
		ClientName: client.Name,
		Address:    req.Address,
		Status:     domain.ProjectStatusDraft,
		Settings:   settings,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("client_id", client.ID.String()))

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project.Name = req.Name
	project.Address = req.Address

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// UpdateSettings replaces the project's margin policy and re-costs every line
// item in every room, since labor rate and margins feed into each breakdown.
func (s *ProjectService) UpdateSettings(ctx context.Context, id uuid.UUID, req *domain.UpdateProjectSettingsRequest) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project.Settings = domain.ProjectSettings{
		LaborRatePerHour: req.LaborRatePerHour,
		OverheadPct:      req.OverheadPct,
		ProfitPct:        req.ProfitPct,
		TaxRate:          req.TaxRate,
	}
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project settings: %w", err)
	}

	return s.recostAll(ctx, project)
}

// Recalculate re-runs costing and aggregation for the whole project against
// the current price book. Stored quantities are kept as-is; geometry-driven
// requantification happens on room updates.
func (s *ProjectService) Recalculate(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.recostAll(ctx, project)
}

func (s *ProjectService) recostAll(ctx context.Context, project *domain.Project) (*domain.ProjectDTO, error) {
	for i := range project.Rooms {
		room := &project.Rooms[i]
		if err := s.estimator.RecostItems(ctx, room.Items, project.Settings); err != nil {
			return nil, err
		}
		if err := s.itemRepo.UpdateAll(ctx, room.Items); err != nil {
			return nil, fmt.Errorf("failed to persist recosted items: %w", err)
		}
	}

	refreshed, err := s.estimator.RefreshTotals(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project recalculated",
		zap.String("project_id", project.ID.String()),
		zap.Float64("total_price", refreshed.TotalPrice))

	dto := mapper.ToProjectDTO(refreshed)
	return &dto, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

func (s *ProjectService) List(ctx context.Context, page, pageSize int, search string, status domain.ProjectStatus) ([]domain.ProjectDTO, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, ErrInvalidInput
	}

	projects, total, err := s.projectRepo.List(ctx, page, pageSize, search, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	dtos := make([]domain.ProjectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, mapper.ToProjectDTO(&projects[i]))
	}
	return dtos, total, nil
}

// Send marks a draft estimate as delivered to the client.
func (s *ProjectService) Send(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	return s.transition(ctx, id, domain.ProjectStatusDraft, domain.ProjectStatusSent)
}

// Approve marks a sent estimate as accepted.
func (s *ProjectService) Approve(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	return s.transition(ctx, id, domain.ProjectStatusSent, domain.ProjectStatusApproved)
}

// Reopen puts a sent or approved estimate back into draft for editing.
func (s *ProjectService) Reopen(ctx context.Context, id uuid.UUID) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project.Status == domain.ProjectStatusDraft {
		return nil, ErrInvalidStatusTransition
	}
	return s.setStatus(ctx, project, domain.ProjectStatusDraft)
}

func (s *ProjectService) transition(ctx context.Context, id uuid.UUID, from, to domain.ProjectStatus) (*domain.ProjectDTO, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project.Status != from {
		return nil, ErrInvalidStatusTransition
	}
	return s.setStatus(ctx, project, to)
}

func (s *ProjectService) setStatus(ctx context.Context, project *domain.Project, status domain.ProjectStatus) (*domain.ProjectDTO, error) {
	oldStatus := project.Status
	if err := s.projectRepo.UpdateStatus(ctx, project.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}
	project.Status = status

	s.logger.Info("project status changed",
		zap.String("project_id", project.ID.String()),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(status)))

	dto := mapper.ToProjectDTO(project)
	return &dto, nil
}

// Stats aggregates the estimate pipeline by status.
func (s *ProjectService) Stats(ctx context.Context) (*domain.ProjectStatsDTO, error) {
	rows, err := s.projectRepo.StatsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate project stats: %w", err)
	}

	stats := &domain.ProjectStatsDTO{}
	for _, row := range rows {
		stats.TotalProjects += row.Count
		stats.TotalValue += row.Value
		switch row.Status {
		case domain.ProjectStatusDraft:
			stats.DraftCount = row.Count
			stats.DraftValue = row.Value
		case domain.ProjectStatusSent:
			stats.SentCount = row.Count
			stats.SentValue = row.Value
		case domain.ProjectStatusApproved:
			stats.ApprovedCount = row.Count
			stats.ApprovedValue = row.Value
		}
	}
	return stats, nil
}

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

type ClientService struct {
	clientRepo  *repository.ClientRepository
	projectRepo *repository.ProjectRepository
	logger      *zap.Logger
}

func NewClientService(
	clientRepo *repository.ClientRepository,
	projectRepo *repository.ProjectRepository,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (s *ClientService) Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.ClientDTO, error) {
	client := &domain.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("client created", zap.String("client_id", client.ID.String()))

	dto := mapper.ToClientDTO(client, 0)
	return &dto, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientWithProjectsDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	projects, err := s.projectRepo.ListByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list client projects: %w", err)
	}

	dto := domain.ClientWithProjectsDTO{
		ClientDTO: mapper.ToClientDTO(client, len(projects)),
	}
	for i := range projects {
		dto.Projects = append(dto.Projects, mapper.ToProjectDTO(&projects[i]))
	}
	return &dto, nil
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateClientRequest) (*domain.ClientDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	renamed := client.Name != req.Name

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address
	client.Notes = req.Notes

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	// Projects carry a display snapshot of the client name
	if renamed {
		if err := s.projectRepo.UpdateClientNameSnapshot(ctx, id, client.Name); err != nil {
			s.logger.Warn("failed to refresh client name on projects", zap.Error(err))
		}
	}

	count, err := s.clientRepo.GetProjectsCount(ctx, id)
	if err != nil {
		s.logger.Warn("failed to count client projects", zap.Error(err))
	}

	dto := mapper.ToClientDTO(client, count)
	return &dto, nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to get client: %w", err)
	}

	count, err := s.clientRepo.GetProjectsCount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count client projects: %w", err)
	}
	if count > 0 {
		return ErrClientHasProjects
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.logger.Info("client deleted", zap.String("client_id", id.String()))
	return nil
}

func (s *ClientService) List(ctx context.Context, page, pageSize int, search string) ([]domain.ClientDTO, int64, error) {
	clients, total, err := s.clientRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	dtos := make([]domain.ClientDTO, 0, len(clients))
	for i := range clients {
		count, err := s.clientRepo.GetProjectsCount(ctx, clients[i].ID)
		if err != nil {
			s.logger.Warn("failed to count client projects", zap.Error(err))
		}
		dtos = append(dtos, mapper.ToClientDTO(&clients[i], count))
	}
	return dtos, total, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/mapper"
	"github.com/propaint/estimate-api/internal/repository"
)

// SettingsService manages the global default estimate settings, the branding
// block printed on estimates, and the room-name presets.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetDefaults returns the global default margin settings applied to new
// projects.
func (s *SettingsService) GetDefaults(ctx context.Context) (*domain.ProjectSettingsDTO, error) {
	settings, err := s.settingsRepo.GetAppSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}
	dto := mapper.ToProjectSettingsDTO(settings.Settings)
	return &dto, nil
}

// UpdateDefaults replaces the global defaults. Existing projects keep their
// snapshot; only projects created afterwards pick up the new values.
func (s *SettingsService) UpdateDefaults(ctx context.Context, req *domain.UpdateProjectSettingsRequest) (*domain.ProjectSettingsDTO, error) {
	settings, err := s.settingsRepo.GetAppSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default settings: %w", err)
	}

	settings.Settings = domain.ProjectSettings{
		LaborRatePerHour: req.LaborRatePerHour,
		OverheadPct:      req.OverheadPct,
		ProfitPct:        req.ProfitPct,
		TaxRate:          req.TaxRate,
	}

	if err := s.settingsRepo.SaveAppSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save default settings: %w", err)
	}

	s.logger.Info("default estimate settings updated",
		zap.Float64("labor_rate", settings.Settings.LaborRatePerHour),
		zap.Float64("overhead_pct", settings.Settings.OverheadPct),
		zap.Float64("profit_pct", settings.Settings.ProfitPct),
		zap.Float64("tax_rate", settings.Settings.TaxRate))

	dto := mapper.ToProjectSettingsDTO(settings.Settings)
	return &dto, nil
}

func (s *SettingsService) GetBranding(ctx context.Context) (*domain.BrandingDTO, error) {
	branding, err := s.settingsRepo.GetBranding(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load branding: %w", err)
	}
	dto := mapper.ToBrandingDTO(branding)
	return &dto, nil
}

func (s *SettingsService) UpdateBranding(ctx context.Context, req *domain.UpdateBrandingRequest) (*domain.BrandingDTO, error) {
	branding, err := s.settingsRepo.GetBranding(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load branding: %w", err)
	}

	branding.BusinessName = req.BusinessName
	branding.ContactInfo = req.ContactInfo
	branding.ReviewBlurb = req.ReviewBlurb

	if err := s.settingsRepo.SaveBranding(ctx, branding); err != nil {
		return nil, fmt.Errorf("failed to save branding: %w", err)
	}

	dto := mapper.ToBrandingDTO(branding)
	return &dto, nil
}

func (s *SettingsService) ListRoomNames(ctx context.Context) ([]domain.RoomNamePresetDTO, error) {
	presets, err := s.settingsRepo.ListRoomNamePresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list room name presets: %w", err)
	}
	dtos := make([]domain.RoomNamePresetDTO, 0, len(presets))
	for i := range presets {
		dtos = append(dtos, mapper.ToRoomNamePresetDTO(&presets[i]))
	}
	return dtos, nil
}

func (s *SettingsService) AddRoomName(ctx context.Context, req *domain.CreateRoomNamePresetRequest) (*domain.RoomNamePresetDTO, error) {
	count, err := s.settingsRepo.CountRoomNamePresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count room name presets: %w", err)
	}

	preset := &domain.RoomNamePreset{
		Name:         req.Name,
		DisplayOrder: count,
	}
	if err := s.settingsRepo.CreateRoomNamePreset(ctx, preset); err != nil {
		return nil, fmt.Errorf("failed to create room name preset: %w", err)
	}

	dto := mapper.ToRoomNamePresetDTO(preset)
	return &dto, nil
}

func (s *SettingsService) DeleteRoomName(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.settingsRepo.DeleteRoomNamePreset(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete room name preset: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

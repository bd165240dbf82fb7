package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
)

// SettingsRepository persists the singleton rows (global estimate defaults,
// branding) and the room-name presets.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetAppSettings returns the singleton defaults row, creating it with the
// factory defaults on first access.
func (r *SettingsRepository) GetAppSettings(ctx context.Context) (*domain.AppSettings, error) {
	var settings domain.AppSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", domain.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = domain.AppSettings{
			ID:       domain.SettingsRowID,
			Settings: domain.DefaultProjectSettings(),
		}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) SaveAppSettings(ctx context.Context, settings *domain.AppSettings) error {
	settings.ID = domain.SettingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *SettingsRepository) GetBranding(ctx context.Context) (*domain.BrandingSettings, error) {
	var branding domain.BrandingSettings
	err := r.db.WithContext(ctx).First(&branding, "id = ?", domain.SettingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		branding = domain.BrandingSettings{ID: domain.SettingsRowID}
		if err := r.db.WithContext(ctx).Create(&branding).Error; err != nil {
			return nil, err
		}
		return &branding, nil
	}
	if err != nil {
		return nil, err
	}
	return &branding, nil
}

func (r *SettingsRepository) SaveBranding(ctx context.Context, branding *domain.BrandingSettings) error {
	branding.ID = domain.SettingsRowID
	return r.db.WithContext(ctx).Save(branding).Error
}

func (r *SettingsRepository) ListRoomNamePresets(ctx context.Context) ([]domain.RoomNamePreset, error) {
	var presets []domain.RoomNamePreset
	err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&presets).Error
	return presets, err
}

func (r *SettingsRepository) CreateRoomNamePreset(ctx context.Context, preset *domain.RoomNamePreset) error {
	return r.db.WithContext(ctx).Create(preset).Error
}

func (r *SettingsRepository) DeleteRoomNamePreset(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.RoomNamePreset{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *SettingsRepository) CountRoomNamePresets(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.RoomNamePreset{}).Count(&count).Error
	return int(count), err
}

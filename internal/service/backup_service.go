package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/mapper"
	"github.com/propaint/estimate-api/internal/storage"
)

// backupFormatVersion guards imports against snapshots from incompatible
// releases.
const backupFormatVersion = 1

// BackupService exports and imports the full dataset as a single JSON
// document. Exports are additionally persisted as snapshots through the
// storage layer when one is configured.
type BackupService struct {
	db     *gorm.DB
	store  storage.Storage
	logger *zap.Logger
}

func NewBackupService(db *gorm.DB, store storage.Storage, logger *zap.Logger) *BackupService {
	return &BackupService{
		db:     db,
		store:  store,
		logger: logger,
	}
}

// Export assembles the full dataset into a portable snapshot. The snapshot is
// also written to the snapshot store, but a storage failure does not fail the
// export itself.
func (s *BackupService) Export(ctx context.Context) (*domain.BackupDTO, error) {
	backup := &domain.BackupDTO{
		Version:    backupFormatVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var clients []domain.Client
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to export clients: %w", err)
	}
	for i := range clients {
		backup.Clients = append(backup.Clients, mapper.ToClientDTO(&clients[i], 0))
	}

	var projects []domain.Project
	err := s.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.created_at ASC")
		}).
		Preload("Rooms.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("room_items.display_order ASC, room_items.created_at ASC")
		}).
		Order("created_at ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to export projects: %w", err)
	}
	for i := range projects {
		backup.Projects = append(backup.Projects, mapper.ToProjectDTO(&projects[i]))
	}

	var templates []domain.ItemTemplate
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to export templates: %w", err)
	}
	for i := range templates {
		backup.Templates = append(backup.Templates, mapper.ToItemTemplateDTO(&templates[i]))
	}

	var materials []domain.MaterialLine
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("failed to export materials: %w", err)
	}
	for i := range materials {
		backup.Materials = append(backup.Materials, mapper.ToMaterialLineDTO(&materials[i]))
	}

	var appSettings domain.AppSettings
	if err := s.db.WithContext(ctx).First(&appSettings, "id = ?", domain.SettingsRowID).Error; err == nil {
		backup.Settings = mapper.ToProjectSettingsDTO(appSettings.Settings)
	} else {
		backup.Settings = mapper.ToProjectSettingsDTO(domain.DefaultProjectSettings())
	}

	var branding domain.BrandingSettings
	if err := s.db.WithContext(ctx).First(&branding, "id = ?", domain.SettingsRowID).Error; err == nil {
		backup.Branding = mapper.ToBrandingDTO(&branding)
	}

	var presets []domain.RoomNamePreset
	if err := s.db.WithContext(ctx).Order("display_order ASC").Find(&presets).Error; err != nil {
		return nil, fmt.Errorf("failed to export room name presets: %w", err)
	}
	for i := range presets {
		backup.RoomNames = append(backup.RoomNames, mapper.ToRoomNamePresetDTO(&presets[i]))
	}

	s.persistSnapshot(ctx, backup)

	s.logger.Info("backup exported",
		zap.Int("clients", len(backup.Clients)),
		zap.Int("projects", len(backup.Projects)),
		zap.Int("templates", len(backup.Templates)),
		zap.Int("materials", len(backup.Materials)))

	return backup, nil
}

func (s *BackupService) persistSnapshot(ctx context.Context, backup *domain.BackupDTO) {
	if s.store == nil {
		return
	}

	data, err := json.Marshal(backup)
	if err != nil {
		s.logger.Warn("failed to encode backup snapshot", zap.Error(err))
		return
	}

	filename := fmt.Sprintf("backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	path, size, err := s.store.Upload(ctx, filename, "application/json", bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("failed to persist backup snapshot", zap.Error(err))
		return
	}

	s.logger.Info("backup snapshot persisted",
		zap.String("path", path),
		zap.Int64("bytes", size))
}

// Import replaces the entire dataset with the snapshot's contents. The whole
// restore runs in one transaction; a bad snapshot leaves the database as it
// was.
func (s *BackupService) Import(ctx context.Context, backup *domain.BackupDTO) error {
	if backup.Version != backupFormatVersion {
		return fmt.Errorf("%w: unsupported backup version %d", ErrInvalidInput, backup.Version)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first to satisfy foreign keys
		for _, model := range []interface{}{
			&domain.ItemInstance{},
			&domain.Room{},
			&domain.Project{},
			&domain.Client{},
			&domain.ItemTemplate{},
			&domain.MaterialLine{},
			&domain.RoomNamePreset{},
			&domain.AppSettings{},
			&domain.BrandingSettings{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		for i := range backup.Clients {
			client := clientFromDTO(&backup.Clients[i])
			if err := tx.Create(&client).Error; err != nil {
				return fmt.Errorf("failed to restore client: %w", err)
			}
		}

		for i := range backup.Templates {
			template := templateFromDTO(&backup.Templates[i])
			if err := tx.Create(&template).Error; err != nil {
				return fmt.Errorf("failed to restore template: %w", err)
			}
		}

		for i := range backup.Materials {
			material := materialFromDTO(&backup.Materials[i])
			if err := tx.Create(&material).Error; err != nil {
				return fmt.Errorf("failed to restore material: %w", err)
			}
		}

		for i := range backup.Projects {
			project := projectFromDTO(&backup.Projects[i])
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("failed to restore project: %w", err)
			}
		}

		settings := domain.AppSettings{
			ID: domain.SettingsRowID,
			Settings: domain.ProjectSettings{
				LaborRatePerHour: backup.Settings.LaborRatePerHour,
				OverheadPct:      backup.Settings.OverheadPct,
				ProfitPct:        backup.Settings.ProfitPct,
				TaxRate:          backup.Settings.TaxRate,
			},
		}
		if err := tx.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to restore settings: %w", err)
		}

		branding := domain.BrandingSettings{
			ID:           domain.SettingsRowID,
			BusinessName: backup.Branding.BusinessName,
			ContactInfo:  backup.Branding.ContactInfo,
			ReviewBlurb:  backup.Branding.ReviewBlurb,
		}
		if err := tx.Create(&branding).Error; err != nil {
			return fmt.Errorf("failed to restore branding: %w", err)
		}

		for i := range backup.RoomNames {
			preset := domain.RoomNamePreset{
				ID:           backup.RoomNames[i].ID,
				Name:         backup.RoomNames[i].Name,
				DisplayOrder: backup.RoomNames[i].DisplayOrder,
			}
			if err := tx.Create(&preset).Error; err != nil {
				return fmt.Errorf("failed to restore room name preset: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("backup imported",
		zap.Int("clients", len(backup.Clients)),
		zap.Int("projects", len(backup.Projects)))
	return nil
}

func clientFromDTO(dto *domain.ClientDTO) domain.Client {
	return domain.Client{
		BaseModel: domain.BaseModel{ID: dto.ID},
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Address:   dto.Address,
		Notes:     dto.Notes,
	}
}

func templateFromDTO(dto *domain.ItemTemplateDTO) domain.ItemTemplate {
	return domain.ItemTemplate{
		ID:                       dto.ID,
		Name:                     dto.Name,
		Category:                 dto.Category,
		ServiceID:                dto.ServiceID,
		MeasureType:              dto.MeasureType,
		Strategy:                 dto.Strategy,
		DefaultCoats:             dto.DefaultCoats,
		DefaultWastePct:          dto.DefaultWastePct,
		DefaultGrade:             dto.DefaultGrade,
		MinutesPerUnit:           dto.MinutesPerUnit,
		MinutesPerUnitAdditional: dto.MinutesPerUnitAdditional,
		Description:              dto.Description,
		IsActive:                 dto.IsActive,
	}
}

func materialFromDTO(dto *domain.MaterialLineDTO) domain.MaterialLine {
	return domain.MaterialLine{
		ID:              dto.ID,
		Brand:           dto.Brand,
		Line:            dto.Line,
		Grade:           dto.Grade,
		SurfaceCategory: dto.SurfaceCategory,
		ServiceID:       dto.ServiceID,
		CoverageSqft:    dto.CoverageSqft,
		PricePerGallon:  dto.PricePerGallon,
	}
}

func projectFromDTO(dto *domain.ProjectDTO) domain.Project {
	project := domain.Project{
		BaseModel:  domain.BaseModel{ID: dto.ID},
		Name:       dto.Name,
		ClientID:   dto.ClientID,
		ClientName: dto.ClientName,
		Address:    dto.Address,
		Status:     dto.Status,
		Settings: domain.ProjectSettings{
			LaborRatePerHour: dto.Settings.LaborRatePerHour,
			OverheadPct:      dto.Settings.OverheadPct,
			ProfitPct:        dto.Settings.ProfitPct,
			TaxRate:          dto.Settings.TaxRate,
		},
		TotalCost:  dto.TotalCost,
		TotalPrice: dto.TotalPrice,
	}
	for i := range dto.Rooms {
		project.Rooms = append(project.Rooms, roomFromDTO(&dto.Rooms[i]))
	}
	return project
}

func roomFromDTO(dto *domain.RoomDTO) domain.Room {
	room := domain.Room{
		BaseModel:           domain.BaseModel{ID: dto.ID},
		ProjectID:           dto.ProjectID,
		Name:                dto.Name,
		ServiceID:           dto.ServiceID,
		Length:              dto.Length,
		Width:               dto.Width,
		Height:              dto.Height,
		Doors:               dto.Doors,
		Windows:             dto.Windows,
		DefaultWallGrade:    dto.DefaultWallGrade,
		DefaultTrimGrade:    dto.DefaultTrimGrade,
		DefaultCeilingGrade: dto.DefaultCeilingGrade,
		Included:            dto.Included,
		Notes:               dto.Notes,
	}
	for i := range dto.Items {
		room.Items = append(room.Items, itemFromDTO(&dto.Items[i]))
	}
	return room
}

func itemFromDTO(dto *domain.ItemInstanceDTO) domain.ItemInstance {
	return domain.ItemInstance{
		BaseModel:    domain.BaseModel{ID: dto.ID},
		RoomID:       dto.RoomID,
		TemplateID:   dto.TemplateID,
		Name:         dto.Name,
		Category:     dto.Category,
		Quantity:     dto.Quantity,
		MaterialID:   dto.MaterialID,
		Grade:        dto.Grade,
		Sheen:        dto.Sheen,
		Color:        dto.Color,
		Coats:        dto.Coats,
		LaborMinutes: dto.LaborMinutes,
		LaborCost:    dto.LaborCost,
		MaterialCost: dto.MaterialCost,
		OverheadCost: dto.OverheadCost,
		ProfitCost:   dto.ProfitCost,
		TotalPrice:   dto.TotalPrice,
		DisplayOrder: dto.DisplayOrder,
	}
}

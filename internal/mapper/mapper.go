package mapper

import (
	"time"

	"github.com/propaint/estimate-api/internal/domain"
	"github.com/propaint/estimate-api/internal/estimation"
)

// ToClientDTO converts Client to ClientDTO
func ToClientDTO(client *domain.Client, projectCount int) domain.ClientDTO {
	return domain.ClientDTO{
		ID:           client.ID,
		Name:         client.Name,
		Email:        client.Email,
		Phone:        client.Phone,
		Address:      client.Address,
		Notes:        client.Notes,
		ProjectCount: projectCount,
		CreatedAt:    client.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    client.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToProjectDTO converts Project to ProjectDTO. Rooms are included only when
// loaded on the model.
func ToProjectDTO(project *domain.Project) domain.ProjectDTO {
	dto := domain.ProjectDTO{
		ID:         project.ID,
		Name:       project.Name,
		ClientID:   project.ClientID,
		ClientName: project.ClientName,
		Address:    project.Address,
		Status:     project.Status,
		Settings:   ToProjectSettingsDTO(project.Settings),
		RoomCount:  len(project.Rooms),
		TotalCost:  project.TotalCost,
		TotalPrice: project.TotalPrice,
		CreatedAt:  project.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  project.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if len(project.Rooms) > 0 {
		dto.Rooms = make([]domain.RoomDTO, 0, len(project.Rooms))
		for i := range project.Rooms {
			dto.Rooms = append(dto.Rooms, ToRoomDTO(&project.Rooms[i]))
		}
		dto.DirectCost = estimation.ProjectDirectCost(project)
	}
	return dto
}

// ToProjectSettingsDTO converts the embedded settings struct
func ToProjectSettingsDTO(settings domain.ProjectSettings) domain.ProjectSettingsDTO {
	return domain.ProjectSettingsDTO{
		LaborRatePerHour: settings.LaborRatePerHour,
		OverheadPct:      settings.OverheadPct,
		ProfitPct:        settings.ProfitPct,
		TaxRate:          settings.TaxRate,
	}
}

// ToRoomDTO converts Room to RoomDTO, including its items and running total
func ToRoomDTO(room *domain.Room) domain.RoomDTO {
	items := make([]domain.ItemInstanceDTO, 0, len(room.Items))
	for i := range room.Items {
		items = append(items, ToItemInstanceDTO(&room.Items[i]))
	}
	return domain.RoomDTO{
		ID:                  room.ID,
		ProjectID:           room.ProjectID,
		Name:                room.Name,
		ServiceID:           room.ServiceID,
		Length:              room.Length,
		Width:               room.Width,
		Height:              room.Height,
		Doors:               room.Doors,
		Windows:             room.Windows,
		DefaultWallGrade:    room.DefaultWallGrade,
		DefaultTrimGrade:    room.DefaultTrimGrade,
		DefaultCeilingGrade: room.DefaultCeilingGrade,
		Included:            room.Included,
		Notes:               room.Notes,
		Items:               items,
		RoomTotal:           estimation.RoomTotal(room),
		CreatedAt:           room.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           room.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToItemInstanceDTO converts ItemInstance to ItemInstanceDTO
func ToItemInstanceDTO(item *domain.ItemInstance) domain.ItemInstanceDTO {
	return domain.ItemInstanceDTO{
		ID:           item.ID,
		RoomID:       item.RoomID,
		TemplateID:   item.TemplateID,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		MaterialID:   item.MaterialID,
		Grade:        item.Grade,
		Sheen:        item.Sheen,
		Color:        item.Color,
		Coats:        item.Coats,
		LaborMinutes: item.LaborMinutes,
		LaborCost:    item.LaborCost,
		MaterialCost: item.MaterialCost,
		OverheadCost: item.OverheadCost,
		ProfitCost:   item.ProfitCost,
		TotalPrice:   item.TotalPrice,
		DisplayOrder: item.DisplayOrder,
	}
}

// ToItemTemplateDTO converts ItemTemplate to ItemTemplateDTO
func ToItemTemplateDTO(template *domain.ItemTemplate) domain.ItemTemplateDTO {
	return domain.ItemTemplateDTO{
		ID:                       template.ID,
		Name:                     template.Name,
		Category:                 template.Category,
		ServiceID:                template.ServiceID,
		MeasureType:              template.MeasureType,
		Strategy:                 template.Strategy,
		DefaultCoats:             template.DefaultCoats,
		DefaultWastePct:          template.DefaultWastePct,
		DefaultGrade:             template.DefaultGrade,
		MinutesPerUnit:           template.MinutesPerUnit,
		MinutesPerUnitAdditional: template.MinutesPerUnitAdditional,
		Description:              template.Description,
		IsActive:                 template.IsActive,
	}
}

// ToMaterialLineDTO converts MaterialLine to MaterialLineDTO
func ToMaterialLineDTO(material *domain.MaterialLine) domain.MaterialLineDTO {
	return domain.MaterialLineDTO{
		ID:              material.ID,
		Brand:           material.Brand,
		Line:            material.Line,
		Grade:           material.Grade,
		SurfaceCategory: material.SurfaceCategory,
		ServiceID:       material.ServiceID,
		CoverageSqft:    material.CoverageSqft,
		PricePerGallon:  material.PricePerGallon,
	}
}

// ToBrandingDTO converts BrandingSettings to BrandingDTO
func ToBrandingDTO(branding *domain.BrandingSettings) domain.BrandingDTO {
	return domain.BrandingDTO{
		BusinessName: branding.BusinessName,
		ContactInfo:  branding.ContactInfo,
		ReviewBlurb:  branding.ReviewBlurb,
	}
}

// ToRoomNamePresetDTO converts RoomNamePreset to RoomNamePresetDTO
func ToRoomNamePresetDTO(preset *domain.RoomNamePreset) domain.RoomNamePresetDTO {
	return domain.RoomNamePresetDTO{
		ID:           preset.ID,
		Name:         preset.Name,
		DisplayOrder: preset.DisplayOrder,
	}
}

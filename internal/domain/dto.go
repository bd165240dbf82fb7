package domain

import (
	"github.com/google/uuid"
)

// DTOs for API responses

type ClientDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	ProjectCount int       `json:"projectCount,omitempty"`
	CreatedAt    string    `json:"createdAt"` // ISO 8601
	UpdatedAt    string    `json:"updatedAt"` // ISO 8601
}

// ClientWithProjectsDTO includes the client's projects for the detail view
type ClientWithProjectsDTO struct {
	ClientDTO
	Projects []ProjectDTO `json:"projects,omitempty"`
}

type ProjectDTO struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	ClientID   uuid.UUID          `json:"clientId"`
	ClientName string             `json:"clientName,omitempty"`
	Address    string             `json:"address,omitempty"`
	Status     ProjectStatus      `json:"status"`
	Settings   ProjectSettingsDTO `json:"settings"`
	Rooms      []RoomDTO          `json:"rooms,omitempty"`
	RoomCount  int                `json:"roomCount"`
	TotalCost  float64            `json:"totalCost"`
	TotalPrice float64            `json:"totalPrice"`
	DirectCost float64            `json:"directCost,omitempty"`
	CreatedAt  string             `json:"createdAt"` // ISO 8601
	UpdatedAt  string             `json:"updatedAt"` // ISO 8601
}

type ProjectSettingsDTO struct {
	LaborRatePerHour float64 `json:"laborRatePerHour"`
	OverheadPct      float64 `json:"overheadPct"`
	ProfitPct        float64 `json:"profitPct"`
	TaxRate          float64 `json:"taxRate"`
}

// ProjectStatsDTO holds pipeline statistics aggregated across all projects
type ProjectStatsDTO struct {
	TotalProjects int     `json:"totalProjects"`
	DraftCount    int     `json:"draftCount"`
	SentCount     int     `json:"sentCount"`
	ApprovedCount int     `json:"approvedCount"`
	DraftValue    float64 `json:"draftValue"`
	SentValue     float64 `json:"sentValue"`
	ApprovedValue float64 `json:"approvedValue"`
	TotalValue    float64 `json:"totalValue"`
}

type RoomDTO struct {
	ID                  uuid.UUID         `json:"id"`
	ProjectID           uuid.UUID         `json:"projectId"`
	Name                string            `json:"name"`
	ServiceID           string            `json:"serviceId,omitempty"`
	Length              float64           `json:"length"`
	Width               float64           `json:"width"`
	Height              float64           `json:"height"`
	Doors               int               `json:"doors"`
	Windows             int               `json:"windows"`
	DefaultWallGrade    PaintGrade        `json:"defaultWallGrade,omitempty"`
	DefaultTrimGrade    PaintGrade        `json:"defaultTrimGrade,omitempty"`
	DefaultCeilingGrade PaintGrade        `json:"defaultCeilingGrade,omitempty"`
	Included            bool              `json:"included"`
	Notes               string            `json:"notes,omitempty"`
	Items               []ItemInstanceDTO `json:"items"`
	RoomTotal           float64           `json:"roomTotal"`
	CreatedAt           string            `json:"createdAt"` // ISO 8601
	UpdatedAt           string            `json:"updatedAt"` // ISO 8601
}

type ItemInstanceDTO struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"roomId"`
	TemplateID   string     `json:"templateId"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Quantity     float64    `json:"quantity"`
	MaterialID   *string    `json:"materialId,omitempty"`
	Grade        PaintGrade `json:"grade"`
	Sheen        PaintSheen `json:"sheen,omitempty"`
	Color        string     `json:"color,omitempty"`
	Coats        int        `json:"coats"`
	LaborMinutes float64    `json:"laborMinutes"`
	LaborCost    float64    `json:"laborCost"`
	MaterialCost float64    `json:"materialCost"`
	OverheadCost float64    `json:"overheadCost"`
	ProfitCost   float64    `json:"profitCost"`
	TotalPrice   float64    `json:"totalPrice"`
	DisplayOrder int        `json:"displayOrder"`
}

type ItemTemplateDTO struct {
	ID                       string       `json:"id"`
	Name                     string       `json:"name"`
	Category                 string       `json:"category"`
	ServiceID                string       `json:"serviceId,omitempty"`
	MeasureType              MeasureType  `json:"measureType"`
	Strategy                 CalcStrategy `json:"strategy,omitempty"`
	DefaultCoats             int          `json:"defaultCoats"`
	DefaultWastePct          float64      `json:"defaultWastePct"`
	DefaultGrade             PaintGrade   `json:"defaultGrade,omitempty"`
	MinutesPerUnit           float64      `json:"minutesPerUnit"`
	MinutesPerUnitAdditional *float64     `json:"minutesPerUnitAdditional,omitempty"`
	Description              string       `json:"description,omitempty"`
	IsActive                 bool         `json:"isActive"`
}

type MaterialLineDTO struct {
	ID              string     `json:"id"`
	Brand           string     `json:"brand"`
	Line            string     `json:"line"`
	Grade           PaintGrade `json:"grade"`
	SurfaceCategory string     `json:"surfaceCategory"`
	ServiceID       string     `json:"serviceId,omitempty"`
	CoverageSqft    float64    `json:"coverageSqft"`
	PricePerGallon  float64    `json:"pricePerGallon"`
}

type BrandingDTO struct {
	BusinessName string `json:"businessName"`
	ContactInfo  string `json:"contactInfo,omitempty"`
	ReviewBlurb  string `json:"reviewBlurb,omitempty"`
}

type RoomNamePresetDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"displayOrder"`
}

type ServiceTypeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BackupDTO is the portable snapshot format for export and import. Projects
// carry their rooms and items nested, so a backup restores the full tree.
type BackupDTO struct {
	Version    int                 `json:"version"`
	ExportedAt string              `json:"exportedAt"` // ISO 8601
	Clients    []ClientDTO         `json:"clients"`
	Projects   []ProjectDTO        `json:"projects"`
	Templates  []ItemTemplateDTO   `json:"templates"`
	Materials  []MaterialLineDTO   `json:"materials"`
	Settings   ProjectSettingsDTO  `json:"settings"`
	Branding   BrandingDTO         `json:"branding"`
	RoomNames  []RoomNamePresetDTO `json:"roomNames"`
}

// PriceSyncResultDTO summarizes one supplier price sync run
type PriceSyncResultDTO struct {
	RowsFetched      int    `json:"rowsFetched"`
	MaterialsUpdated int    `json:"materialsUpdated"`
	SyncedAt         string `json:"syncedAt"` // ISO 8601
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// PaginatedResponse wraps list payloads with paging metadata.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Request DTOs

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Address string `json:"address,omitempty" validate:"max=500"`
	Notes   string `json:"notes,omitempty"`
}

type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Address string `json:"address,omitempty" validate:"max=500"`
	Notes   string `json:"notes,omitempty"`
}

type CreateProjectRequest struct {
	Name     string                        `json:"name" validate:"required,max=200"`
	ClientID uuid.UUID                     `json:"clientId" validate:"required"`
	Address  string                        `json:"address,omitempty" validate:"max=500"`
	Settings *UpdateProjectSettingsRequest `json:"settings,omitempty"`
}

type UpdateProjectRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address,omitempty" validate:"max=500"`
}

type UpdateProjectSettingsRequest struct {
	LaborRatePerHour float64 `json:"laborRatePerHour" validate:"gte=0"`
	OverheadPct      float64 `json:"overheadPct" validate:"gte=0"`
	ProfitPct        float64 `json:"profitPct" validate:"gte=0"`
	TaxRate          float64 `json:"taxRate" validate:"gte=0"`
}

type CreateRoomRequest struct {
	Name                string     `json:"name" validate:"required,max=200"`
	ServiceID           string     `json:"serviceId,omitempty" validate:"max=50"`
	Length              float64    `json:"length" validate:"gte=0"`
	Width               float64    `json:"width" validate:"gte=0"`
	Height              float64    `json:"height" validate:"gte=0"`
	Doors               int        `json:"doors" validate:"gte=0"`
	Windows             int        `json:"windows" validate:"gte=0"`
	DefaultWallGrade    PaintGrade `json:"defaultWallGrade,omitempty"`
	DefaultTrimGrade    PaintGrade `json:"defaultTrimGrade,omitempty"`
	DefaultCeilingGrade PaintGrade `json:"defaultCeilingGrade,omitempty"`
	Included            *bool      `json:"included,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

type UpdateRoomRequest struct {
	Name                string     `json:"name" validate:"required,max=200"`
	ServiceID           string     `json:"serviceId,omitempty" validate:"max=50"`
	Length              float64    `json:"length" validate:"gte=0"`
	Width               float64    `json:"width" validate:"gte=0"`
	Height              float64    `json:"height" validate:"gte=0"`
	Doors               int        `json:"doors" validate:"gte=0"`
	Windows             int        `json:"windows" validate:"gte=0"`
	DefaultWallGrade    PaintGrade `json:"defaultWallGrade,omitempty"`
	DefaultTrimGrade    PaintGrade `json:"defaultTrimGrade,omitempty"`
	DefaultCeilingGrade PaintGrade `json:"defaultCeilingGrade,omitempty"`
	Included            *bool      `json:"included,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

// CreateItemRequest adds a template-based line item to a room. Quantity is
// optional: when omitted the room's geometry derives it.
type CreateItemRequest struct {
	TemplateID   string     `json:"templateId" validate:"required,max=50"`
	Name         string     `json:"name,omitempty" validate:"max=200"`
	Quantity     *float64   `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MaterialID   *string    `json:"materialId,omitempty"`
	Grade        PaintGrade `json:"grade,omitempty"`
	Sheen        PaintSheen `json:"sheen,omitempty"`
	Color        string     `json:"color,omitempty" validate:"max=100"`
	Coats        *int       `json:"coats,omitempty" validate:"omitempty,gte=0"`
	DisplayOrder *int       `json:"displayOrder,omitempty"`
}

type UpdateItemRequest struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Quantity     *float64   `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MaterialID   *string    `json:"materialId,omitempty"`
	Grade        PaintGrade `json:"grade,omitempty"`
	Sheen        PaintSheen `json:"sheen,omitempty"`
	Color        string     `json:"color,omitempty" validate:"max=100"`
	Coats        *int       `json:"coats,omitempty" validate:"omitempty,gte=0"`
	DisplayOrder *int       `json:"displayOrder,omitempty"`
}

type CreateTemplateRequest struct {
	ID                       string       `json:"id,omitempty" validate:"max=50"`
	Name                     string       `json:"name" validate:"required,max=200"`
	Category                 string       `json:"category" validate:"required,max=100"`
	ServiceID                string       `json:"serviceId,omitempty" validate:"max=50"`
	MeasureType              MeasureType  `json:"measureType" validate:"required"`
	Strategy                 CalcStrategy `json:"strategy,omitempty"`
	DefaultCoats             int          `json:"defaultCoats" validate:"gte=0"`
	DefaultWastePct          float64      `json:"defaultWastePct" validate:"gte=0"`
	DefaultGrade             PaintGrade   `json:"defaultGrade,omitempty"`
	MinutesPerUnit           float64      `json:"minutesPerUnit" validate:"gte=0"`
	MinutesPerUnitAdditional *float64     `json:"minutesPerUnitAdditional,omitempty" validate:"omitempty,gte=0"`
	Description              string       `json:"description,omitempty"`
}

type UpdateTemplateRequest struct {
	Name                     string       `json:"name" validate:"required,max=200"`
	Category                 string       `json:"category" validate:"required,max=100"`
	ServiceID                string       `json:"serviceId,omitempty" validate:"max=50"`
	MeasureType              MeasureType  `json:"measureType" validate:"required"`
	Strategy                 CalcStrategy `json:"strategy,omitempty"`
	DefaultCoats             int          `json:"defaultCoats" validate:"gte=0"`
	DefaultWastePct          float64      `json:"defaultWastePct" validate:"gte=0"`
	DefaultGrade             PaintGrade   `json:"defaultGrade,omitempty"`
	MinutesPerUnit           float64      `json:"minutesPerUnit" validate:"gte=0"`
	MinutesPerUnitAdditional *float64     `json:"minutesPerUnitAdditional,omitempty" validate:"omitempty,gte=0"`
	Description              string       `json:"description,omitempty"`
	IsActive                 *bool        `json:"isActive,omitempty"`
}

type CreateMaterialRequest struct {
	ID              string     `json:"id,omitempty" validate:"max=50"`
	Brand           string     `json:"brand" validate:"required,max=100"`
	Line            string     `json:"line" validate:"required,max=100"`
	Grade           PaintGrade `json:"grade" validate:"required"`
	SurfaceCategory string     `json:"surfaceCategory" validate:"required,max=100"`
	ServiceID       string     `json:"serviceId,omitempty" validate:"max=50"`
	CoverageSqft    float64    `json:"coverageSqft" validate:"required,gt=0"`
	PricePerGallon  float64    `json:"pricePerGallon" validate:"gte=0"`
}

type UpdateMaterialRequest struct {
	Brand           string     `json:"brand" validate:"required,max=100"`
	Line            string     `json:"line" validate:"required,max=100"`
	Grade           PaintGrade `json:"grade" validate:"required"`
	SurfaceCategory string     `json:"surfaceCategory" validate:"required,max=100"`
	ServiceID       string     `json:"serviceId,omitempty" validate:"max=50"`
	CoverageSqft    float64    `json:"coverageSqft" validate:"required,gt=0"`
	PricePerGallon  float64    `json:"pricePerGallon" validate:"gte=0"`
}

type UpdateBrandingRequest struct {
	BusinessName string `json:"businessName" validate:"required,max=200"`
	ContactInfo  string `json:"contactInfo,omitempty" validate:"max=500"`
	ReviewBlurb  string `json:"reviewBlurb,omitempty" validate:"max=1000"`
}

type CreateRoomNamePresetRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

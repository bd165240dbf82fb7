package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeCreate assigns a UUID so the model works on both postgres and sqlite
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// PaintGrade represents a material quality tier
type PaintGrade string

const (
	GradeContractor      PaintGrade = "Contractor"
	GradeStandard        PaintGrade = "Standard"
	GradePremium         PaintGrade = "Premium"
	GradeHighPerformance PaintGrade = "High Performance"
)

// IsValid checks if the PaintGrade is a valid enum value
func (g PaintGrade) IsValid() bool {
	switch g {
	case GradeContractor, GradeStandard, GradePremium, GradeHighPerformance:
		return true
	}
	return false
}

// PaintSheen represents the finish sheen selected per line item
type PaintSheen string

const (
	SheenFlat      PaintSheen = "Flat"
	SheenMatte     PaintSheen = "Matte"
	SheenEggshell  PaintSheen = "Eggshell"
	SheenSatin     PaintSheen = "Satin"
	SheenSemiGloss PaintSheen = "Semi-Gloss"
	SheenGloss     PaintSheen = "Gloss"
)

// IsValid checks if the PaintSheen is a valid enum value
func (s PaintSheen) IsValid() bool {
	switch s {
	case SheenFlat, SheenMatte, SheenEggshell, SheenSatin, SheenSemiGloss, SheenGloss:
		return true
	}
	return false
}

// MeasureType represents how a template's quantity is measured
type MeasureType string

const (
	MeasureArea   MeasureType = "area"
	MeasureLength MeasureType = "length"
	MeasureCount  MeasureType = "count"
	MeasureNone   MeasureType = "none"
)

// IsValid checks if the MeasureType is a valid enum value
func (m MeasureType) IsValid() bool {
	switch m {
	case MeasureArea, MeasureLength, MeasureCount, MeasureNone:
		return true
	}
	return false
}

// CalcStrategy selects the room-dimension formula for a template's quantity.
// Templates created before the strategy tag existed carry an empty value and
// fall back to the legacy category table in the estimation package.
type CalcStrategy string

const (
	CalcManual      CalcStrategy = "manual"
	CalcWallArea    CalcStrategy = "wall_area"
	CalcCeilingArea CalcStrategy = "ceiling_area"
	CalcPerimeter   CalcStrategy = "perimeter"
)

// IsValid checks if the CalcStrategy is a valid enum value
func (c CalcStrategy) IsValid() bool {
	switch c {
	case CalcManual, CalcWallArea, CalcCeilingArea, CalcPerimeter:
		return true
	}
	return false
}

// Surface category names. The legacy quantity fallback matches these exact
// strings, so they are data compatibility constants, not display labels.
const (
	SurfaceWalls   = "Walls"
	SurfaceCeiling = "Ceiling"
	SurfaceTrim    = "Trim"
	SurfaceDoors   = "Doors"
	SurfaceWindows = "Windows"
)

// ProjectStatus represents the lifecycle status of an estimate project
type ProjectStatus string

const (
	ProjectStatusDraft    ProjectStatus = "draft"
	ProjectStatusSent     ProjectStatus = "sent"
	ProjectStatusApproved ProjectStatus = "approved"
)

// IsValid checks if the ProjectStatus is a valid enum value
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusSent, ProjectStatusApproved:
		return true
	}
	return false
}

// ServiceType is a catalog dimension grouping templates, materials and rooms
// (interior, exterior, cabinets, ...)
type ServiceType struct {
	ID        string    `gorm:"type:varchar(50);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsActive  bool      `gorm:"not null;default:true;column:is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name for ServiceType
func (ServiceType) TableName() string {
	return "service_types"
}

// Client represents a customer of the painting contractor
type Client struct {
	BaseModel
	Name     string    `gorm:"type:varchar(200);not null;index"`
	Email    string    `gorm:"type:varchar(255)"`
	Phone    string    `gorm:"type:varchar(50)"`
	Address  string    `gorm:"type:varchar(500)"`
	Notes    string    `gorm:"type:text"`
	Projects []Project `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// ItemTemplate is a catalog definition of a paintable surface type with its
// default productivity, waste and coat parameters. Immutable reference data
// during an estimate.
type ItemTemplate struct {
	ID          string       `gorm:"type:varchar(50);primaryKey"`
	Name        string       `gorm:"type:varchar(200);not null"`
	Category    string       `gorm:"type:varchar(100);not null;index"`
	ServiceID   string       `gorm:"type:varchar(50);not null;index;column:service_id"`
	MeasureType MeasureType  `gorm:"type:varchar(20);not null;column:measure_type"`
	Strategy    CalcStrategy `gorm:"type:varchar(20);column:calc_strategy"`

	DefaultCoats    int        `gorm:"not null;default:1;column:default_coats"`
	DefaultWastePct float64    `gorm:"type:decimal(5,4);not null;default:0;column:default_waste_pct"`
	DefaultGrade    PaintGrade `gorm:"type:varchar(50);not null;default:'Standard';column:default_grade"`

	// MinutesPerUnit covers prep plus the first coat. MinutesPerUnitAdditional
	// applies to coats 2+ and is usually lower; nil means reuse the base rate.
	MinutesPerUnit           float64  `gorm:"type:decimal(10,4);not null;column:minutes_per_unit"`
	MinutesPerUnitAdditional *float64 `gorm:"type:decimal(10,4);column:minutes_per_unit_additional"`

	// Description is the scope-of-work text rendered on proposals
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true;column:is_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name for ItemTemplate
func (ItemTemplate) TableName() string {
	return "item_templates"
}

// MaterialLine is a price-book entry for one paint product. Immutable
// reference data during an estimate.
type MaterialLine struct {
	ID              string     `gorm:"type:varchar(50);primaryKey"`
	Brand           string     `gorm:"type:varchar(100);not null"`
	Line            string     `gorm:"type:varchar(100);not null"`
	Grade           PaintGrade `gorm:"type:varchar(50);not null;index"`
	SurfaceCategory string     `gorm:"type:varchar(100);not null;index;column:surface_category"`
	ServiceID       string     `gorm:"type:varchar(50);not null;index;column:service_id"`
	CoverageSqft    float64    `gorm:"type:decimal(10,2);not null;column:coverage_sqft"`
	PricePerGallon  float64    `gorm:"type:decimal(10,2);not null;column:price_per_gallon"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name for MaterialLine
func (MaterialLine) TableName() string {
	return "material_lines"
}

// ProjectSettings is the margin policy applied uniformly to every line item
// at calculation time. Percentages are fractions in [0,1].
type ProjectSettings struct {
	LaborRatePerHour float64 `gorm:"type:decimal(10,2);not null;default:0;column:labor_rate_per_hour" json:"laborRatePerHour" validate:"gte=0"`
	OverheadPct      float64 `gorm:"type:decimal(5,4);not null;default:0;column:overhead_pct" json:"overheadPct" validate:"gte=0,lte=1"`
	ProfitPct        float64 `gorm:"type:decimal(5,4);not null;default:0;column:profit_pct" json:"profitPct" validate:"gte=0,lte=1"`
	TaxRate          float64 `gorm:"type:decimal(5,4);not null;default:0;column:tax_rate" json:"taxRate" validate:"gte=0,lte=1"`
}

// DefaultProjectSettings returns the factory margin policy applied when no
// global defaults have been saved yet.
func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		LaborRatePerHour: 50,
		OverheadPct:      0.10,
		ProfitPct:        0.20,
		TaxRate:          0,
	}
}

// Project represents one estimate for a client
type Project struct {
	BaseModel
	Name     string    `gorm:"type:varchar(200);not null;index"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index;column:client_id"`
	Client   *Client   `gorm:"foreignKey:ClientID"`
	// ClientName is a display snapshot taken at creation
	ClientName string          `gorm:"type:varchar(200);column:client_name"`
	Address    string          `gorm:"type:varchar(500)"`
	Status     ProjectStatus   `gorm:"type:varchar(20);not null;default:'draft';index"`
	Settings   ProjectSettings `gorm:"embedded"`
	Rooms      []Room          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	// Aggregates, rewritten from the estimation engine after every mutation
	TotalCost  float64 `gorm:"type:decimal(15,2);not null;default:0;column:total_cost"`
	TotalPrice float64 `gorm:"type:decimal(15,2);not null;default:0;column:total_price"`
}

// Room represents one measured room (or exterior elevation) in a project
type Room struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index;column:project_id"`
	Name      string    `gorm:"type:varchar(200);not null"`
	ServiceID string    `gorm:"type:varchar(50);column:service_id"`

	// Dimensions in feet
	Length float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Width  float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Height float64 `gorm:"type:decimal(10,2);not null;default:0"`

	// Opening counts deducted from wall area
	Doors   int `gorm:"not null;default:0"`
	Windows int `gorm:"not null;default:0"`

	// Default grades for new items added to this room
	DefaultWallGrade    PaintGrade `gorm:"type:varchar(50);not null;default:'Standard';column:default_wall_grade"`
	DefaultTrimGrade    PaintGrade `gorm:"type:varchar(50);not null;default:'Premium';column:default_trim_grade"`
	DefaultCeilingGrade PaintGrade `gorm:"type:varchar(50);not null;default:'Contractor';column:default_ceiling_grade"`

	// Included controls whether this room contributes to project totals
	Included bool           `gorm:"not null;default:true"`
	Notes    string         `gorm:"type:text"`
	Items    []ItemInstance `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// Perimeter returns the room perimeter in linear feet
func (r *Room) Perimeter() float64 {
	return 2 * (r.Length + r.Width)
}

// ItemInstance is a costed line item inside a room, derived from a template.
// The cost fields are a snapshot written by the estimation engine and are
// never hand-edited.
type ItemInstance struct {
	BaseModel
	RoomID     uuid.UUID     `gorm:"type:uuid;not null;index;column:room_id"`
	TemplateID string        `gorm:"type:varchar(50);not null;column:template_id"`
	Template   *ItemTemplate `gorm:"foreignKey:TemplateID"`

	// Name and Category are copied from the template for display
	Name     string `gorm:"type:varchar(200);not null"`
	Category string `gorm:"type:varchar(100);not null"`

	// Quantity is the raw measured amount (sqft, lf or count). It is
	// recomputed from room geometry whenever the geometry changes; manual
	// overrides survive only until the next geometry change.
	Quantity float64 `gorm:"type:decimal(12,2);not null;default:0"`

	// MaterialID is an explicit price-book selection; nil falls back to the
	// category/grade search
	MaterialID *string    `gorm:"type:varchar(50);column:material_id"`
	Grade      PaintGrade `gorm:"type:varchar(50);not null;default:'Standard'"`
	Sheen      PaintSheen `gorm:"type:varchar(50);not null;default:'Eggshell'"`
	Color      string     `gorm:"type:varchar(100)"`
	Coats      int        `gorm:"not null;default:1"`

	// Cost snapshot
	LaborMinutes float64 `gorm:"type:decimal(12,2);not null;default:0;column:labor_minutes"`
	LaborCost    float64 `gorm:"type:decimal(15,2);not null;default:0;column:labor_cost"`
	MaterialCost float64 `gorm:"type:decimal(15,2);not null;default:0;column:material_cost"`
	OverheadCost float64 `gorm:"type:decimal(15,2);not null;default:0;column:overhead_cost"`
	ProfitCost   float64 `gorm:"type:decimal(15,2);not null;default:0;column:profit_cost"`
	TotalPrice   float64 `gorm:"type:decimal(15,2);not null;default:0;column:total_price"`

	DisplayOrder int `gorm:"not null;default:0;column:display_order"`
}

// TableName overrides the table name for ItemInstance
func (ItemInstance) TableName() string {
	return "room_items"
}

// AppSettings is the singleton row holding the default margin policy applied
// to new projects
type AppSettings struct {
	ID        string          `gorm:"type:varchar(20);primaryKey"`
	Settings  ProjectSettings `gorm:"embedded"`
	UpdatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name for AppSettings
func (AppSettings) TableName() string {
	return "app_settings"
}

// SettingsRowID is the primary key of the settings and branding singletons
const SettingsRowID = "default"

// BrandingSettings is the singleton row holding the business identity read by
// the export layer
type BrandingSettings struct {
	ID           string    `gorm:"type:varchar(20);primaryKey"`
	BusinessName string    `gorm:"type:varchar(200);not null;column:business_name"`
	ContactInfo  string    `gorm:"type:text;column:contact_info"`
	ReviewBlurb  string    `gorm:"type:text;column:review_blurb"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name for BrandingSettings
func (BrandingSettings) TableName() string {
	return "branding_settings"
}

// RoomNamePreset is a reusable room name offered when adding rooms
type RoomNamePreset struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayOrder int       `gorm:"not null;default:0;column:display_order"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name for RoomNamePreset
func (RoomNamePreset) TableName() string {
	return "room_name_presets"
}

// BeforeCreate assigns a UUID for portability across drivers
func (p *RoomNamePreset) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

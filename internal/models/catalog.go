package models

import (
	"strings"
	"time"
)

// Body types a CarModel can have.
const (
	BodySedan       = "sedan"
	BodySUV         = "suv"
	BodyHatchback   = "hatchback"
	BodyCoupe       = "coupe"
	BodyConvertible = "convertible"
	BodyWagon       = "wagon"
	BodyPickup      = "pickup"
	BodyVan         = "van"
	BodyCrossover   = "crossover"
)

// Car conditions.
const (
	ConditionNew         = "new"
	ConditionUsedLocal   = "used_local"
	ConditionUsedForeign = "used_foreign"
)

// Car listing statuses.
const (
	CarStatusAvailable        = "available"
	CarStatusSold             = "sold"
	CarStatusReserved         = "reserved"
	CarStatusUnderMaintenance = "under_maintenance"
)

// Rental fleet statuses.
const (
	RentalStatusAvailable   = "available"
	RentalStatusRented      = "rented"
	RentalStatusMaintenance = "maintenance"
	RentalStatusUnavailable = "unavailable"
)

// ConditionLabels maps condition codes to display labels.
var ConditionLabels = map[string]string{
	ConditionNew:         "Brand New",
	ConditionUsedLocal:   "Used (Local)",
	ConditionUsedForeign: "Used (Foreign Import)",
}

// FuelTypeLabels maps fuel type codes to display labels.
var FuelTypeLabels = map[string]string{
	"petrol":   "Petrol",
	"diesel":   "Diesel",
	"hybrid":   "Hybrid",
	"electric": "Electric",
	"lpg":      "LPG",
}

// TransmissionLabels maps transmission codes to display labels.
var TransmissionLabels = map[string]string{
	"manual":    "Manual",
	"automatic": "Automatic",
	"cvt":       "CVT",
}

// Brand is a car manufacturer. Slug is generated once on create and never
// recomputed.
type Brand struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug            string    `gorm:"size:120;uniqueIndex" json:"slug"`
	LogoURL         string    `gorm:"size:255" json:"logo_url"`
	CountryOfOrigin string    `gorm:"size:100" json:"country_of_origin"`
	CreatedAt       time.Time `json:"created_at"`

	CarModels []CarModel `gorm:"constraint:OnDelete:CASCADE" json:"car_models,omitempty"`
}

// CarModel is a model line within a brand. Name is unique per brand.
type CarModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BrandID   uint      `gorm:"not null;uniqueIndex:idx_brand_model_name" json:"brand_id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_brand_model_name" json:"name"`
	BodyType  string    `gorm:"size:50;not null" json:"body_type"`
	CreatedAt time.Time `json:"created_at"`

	Brand *Brand `json:"brand,omitempty"`
}

// Location is a dealership yard or showroom.
type Location struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	County   string `gorm:"size:100;not null" json:"county"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// DisplayName renders the location the way listings show it.
func (l Location) DisplayName() string {
	return l.Name + ", " + l.County
}

// Car is the central catalog entity. A car with a CarRental row is a rental
// listing; without one it is a sale listing.
type Car struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BrandID    uint `gorm:"not null;index" json:"brand_id"`
	CarModelID uint `gorm:"not null;index" json:"car_model_id"`
	LocationID uint `gorm:"not null;index" json:"location_id"`

	Year      int    `gorm:"not null" json:"year"`
	Condition string `gorm:"size:20;not null" json:"condition"`

	EngineSize   float64 `gorm:"type:decimal(3,1)" json:"engine_size"`
	FuelType     string  `gorm:"size:20;not null" json:"fuel_type"`
	Transmission string  `gorm:"size:20;not null" json:"transmission"`
	DriveType    string  `gorm:"size:10;not null" json:"drive_type"`
	Mileage      int     `json:"mileage"`

	Color string `gorm:"size:50" json:"color"`
	Doors int    `json:"doors"`
	Seats int    `json:"seats"`

	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Negotiable bool    `gorm:"default:true" json:"negotiable"`
	Status     string  `gorm:"size:20;default:'available';index" json:"status"`

	Description string `gorm:"type:text" json:"description"`
	Features    string `gorm:"type:text" json:"features"` // comma-delimited

	CountryOfImport string `gorm:"size:100" json:"country_of_import"`
	ImportDutyPaid  bool   `gorm:"default:false" json:"import_duty_paid"`

	Slug string `gorm:"size:160;uniqueIndex" json:"slug"`

	IsFeatured bool      `gorm:"default:false" json:"is_featured"`
	ViewsCount int       `gorm:"default:0" json:"views_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Brand    *Brand     `gorm:"constraint:OnDelete:CASCADE" json:"brand,omitempty"`
	CarModel *CarModel  `gorm:"constraint:OnDelete:CASCADE" json:"car_model,omitempty"`
	Location *Location  `gorm:"constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Images   []CarImage `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Rental   *CarRental `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE" json:"rental,omitempty"`
}

// IsRental reports whether the car carries rental terms. The read model keeps
// the rental sub-object explicit so a missed preload is never mistaken for a
// sale listing by accident elsewhere.
func (c *Car) IsRental() bool {
	return c.Rental != nil
}

// ConditionLabel returns the display label for the condition code.
func (c *Car) ConditionLabel() string {
	if label, ok := ConditionLabels[c.Condition]; ok {
		return label
	}
	return c.Condition
}

// FuelTypeLabel returns the display label for the fuel type code.
func (c *Car) FuelTypeLabel() string {
	if label, ok := FuelTypeLabels[c.FuelType]; ok {
		return label
	}
	return c.FuelType
}

// TransmissionLabel returns the display label for the transmission code.
func (c *Car) TransmissionLabel() string {
	if label, ok := TransmissionLabels[c.Transmission]; ok {
		return label
	}
	return c.Transmission
}

// FeatureList splits the comma-delimited features string, dropping blanks.
func (c *Car) FeatureList() []string {
	out := []string{}
	for _, part := range strings.Split(c.Features, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// CarImage is a photo attached to a car. At most one image per car is
// primary; the catalog service flips the flag transactionally.
type CarImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CarID      uint      `gorm:"not null;index" json:"car_id"`
	ImageURL   string    `gorm:"size:255;not null" json:"image_url"`
	Caption    string    `gorm:"size:200" json:"caption"`
	IsPrimary  bool      `gorm:"default:false" json:"is_primary"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// CarRental holds rental terms for a car. One row per car.
type CarRental struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	CarID uint `gorm:"not null;uniqueIndex" json:"car_id"`

	DailyRate   float64  `gorm:"type:decimal(8,2);not null" json:"daily_rate"`
	WeeklyRate  *float64 `gorm:"type:decimal(8,2)" json:"weekly_rate"`
	MonthlyRate *float64 `gorm:"type:decimal(8,2)" json:"monthly_rate"`

	MinimumAge      int      `gorm:"default:21" json:"minimum_age"`
	RequiresLicense bool     `gorm:"default:true" json:"requires_license"`
	RequiresDeposit bool     `gorm:"default:true" json:"requires_deposit"`
	DepositAmount   *float64 `gorm:"type:decimal(8,2)" json:"deposit_amount"`

	MaxRentalDays      int      `gorm:"default:30" json:"max_rental_days"`
	MileageLimitPerDay *int     `json:"mileage_limit_per_day"`
	ExtraMileageCharge *float64 `gorm:"type:decimal(5,2)" json:"extra_mileage_charge"`

	RentalStatus       string `gorm:"size:20;default:'available'" json:"rental_status"`
	TermsAndConditions string `gorm:"type:text" json:"terms_and_conditions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarComparison groups cars an anonymous visitor put side by side.
type CarComparison struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionKey string    `gorm:"size:100;not null;index" json:"session_key"`
	UserName   string    `gorm:"size:100" json:"user_name"`
	CreatedAt  time.Time `json:"created_at"`

	Cars []Car `gorm:"many2many:comparison_cars" json:"cars,omitempty"`
}

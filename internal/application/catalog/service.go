package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/slugs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Sentinel errors. Handlers map these to HTTP status codes.
var (
	ErrBrandNotFound    = errors.New("Brand not found")
	ErrModelNotFound    = errors.New("Car model not found")
	ErrLocationNotFound = errors.New("Location not found")
	ErrCarNotFound      = errors.New("Car not found")
	ErrImageNotFound    = errors.New("Image not found")
	ErrRentalNotFound   = errors.New("Rental terms not found")
)

// Service holds the catalog business logic. Rdb is optional; nil disables
// the filter-vocabulary cache.
type Service struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

var validBodyTypes = map[string]bool{
	models.BodySedan: true, models.BodySUV: true, models.BodyHatchback: true,
	models.BodyCoupe: true, models.BodyConvertible: true, models.BodyWagon: true,
	models.BodyPickup: true, models.BodyVan: true, models.BodyCrossover: true,
}

var validConditions = map[string]bool{
	models.ConditionNew: true, models.ConditionUsedLocal: true, models.ConditionUsedForeign: true,
}

var validStatuses = map[string]bool{
	models.CarStatusAvailable: true, models.CarStatusSold: true,
	models.CarStatusReserved: true, models.CarStatusUnderMaintenance: true,
}

// --- Brands ---

type BrandInput struct {
	Name            string
	LogoURL         string
	CountryOfOrigin string
}

func (s *Service) CreateBrand(ctx context.Context, in BrandInput) (*models.Brand, error) {
	if in.Name == "" {
		return nil, errors.New("Brand name is required")
	}
	slug, err := slugs.Unique(in.Name, s.slugExists(&models.Brand{}))
	if err != nil {
		return nil, err
	}
	brand := &models.Brand{
		Name:            in.Name,
		Slug:            slug,
		LogoURL:         in.LogoURL,
		CountryOfOrigin: in.CountryOfOrigin,
	}
	if err := s.DB.WithContext(ctx).Create(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *Service) UpdateBrand(ctx context.Context, id uint, in BrandInput) (*models.Brand, error) {
	var brand models.Brand
	if err := s.DB.WithContext(ctx).First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	// Slug is assigned once on create and never regenerated.
	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.LogoURL != "" {
		updates["logo_url"] = in.LogoURL
	}
	if in.CountryOfOrigin != "" {
		updates["country_of_origin"] = in.CountryOfOrigin
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&brand).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &brand, nil
}

func (s *Service) DeleteBrand(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Brand{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (s *Service) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.DB.WithContext(ctx).Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// --- Car models ---

type CarModelInput struct {
	BrandID  uint
	Name     string
	BodyType string
}

func (s *Service) CreateCarModel(ctx context.Context, in CarModelInput) (*models.CarModel, error) {
	if in.Name == "" {
		return nil, errors.New("Model name is required")
	}
	if !validBodyTypes[in.BodyType] {
		return nil, errors.New("Invalid body type")
	}
	if err := s.DB.WithContext(ctx).First(&models.Brand{}, in.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	model := &models.CarModel{BrandID: in.BrandID, Name: in.Name, BodyType: in.BodyType}
	if err := s.DB.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model, nil
}

func (s *Service) DeleteCarModel(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.CarModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrModelNotFound
	}
	return nil
}

// ModelOption is the (id, name) pair the brand/model picker consumes.
type ModelOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ModelsByBrand returns the models of a brand. An unknown brand yields an
// empty list, not an error.
func (s *Service) ModelsByBrand(ctx context.Context, brandID uint) ([]ModelOption, error) {
	options := []ModelOption{}
	err := s.DB.WithContext(ctx).
		Model(&models.CarModel{}).
		Where("brand_id = ?", brandID).
		Order("name").
		Select("id", "name").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// --- Locations ---

type LocationInput struct {
	Name     string
	County   string
	IsActive *bool
}

func (s *Service) CreateLocation(ctx context.Context, in LocationInput) (*models.Location, error) {
	if in.Name == "" || in.County == "" {
		return nil, errors.New("Location name and county are required")
	}
	loc := &models.Location{Name: in.Name, County: in.County, IsActive: true}
	if in.IsActive != nil {
		loc.IsActive = *in.IsActive
	}
	if err := s.DB.WithContext(ctx).Create(loc).Error; err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *Service) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.DB.WithContext(ctx).Order("county, name").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Location{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

// --- Cars ---

type CarInput struct {
	BrandID    uint
	CarModelID uint
	LocationID uint

	Year      int
	Condition string

	EngineSize   float64
	FuelType     string
	Transmission string
	DriveType    string
	Mileage      int

	Color string
	Doors int
	Seats int

	Price      float64
	Negotiable *bool
	Status     string

	Description string
	Features    string

	CountryOfImport string
	ImportDutyPaid  bool

	IsFeatured bool
}

func (s *Service) validateCarInput(in CarInput) error {
	if in.Year < 1900 || in.Year > 2030 {
		return errors.New("Year must be between 1900 and 2030")
	}
	if !validConditions[in.Condition] {
		return errors.New("Invalid condition")
	}
	if in.Doors < 2 || in.Doors > 5 {
		return errors.New("Doors must be between 2 and 5")
	}
	if in.Seats < 2 || in.Seats > 9 {
		return errors.New("Seats must be between 2 and 9")
	}
	if in.Status != "" && !validStatuses[in.Status] {
		return errors.New("Invalid status")
	}
	return nil
}

// CreateCar validates the input, derives the unique slug from
// "year brand model" and persists the car. The slug is never regenerated
// afterwards.
func (s *Service) CreateCar(ctx context.Context, in CarInput) (*models.Car, error) {
	if err := s.validateCarInput(in); err != nil {
		return nil, err
	}
	var brand models.Brand
	if err := s.DB.WithContext(ctx).First(&brand, in.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	var model models.CarModel
	if err := s.DB.WithContext(ctx).First(&model, in.CarModelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	if model.BrandID != brand.ID {
		return nil, errors.New("Car model does not belong to the brand")
	}
	if err := s.DB.WithContext(ctx).First(&models.Location{}, in.LocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	slug, err := slugs.Unique(
		fmt.Sprintf("%d %s %s", in.Year, brand.Name, model.Name),
		s.slugExists(&models.Car{}),
	)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.CarStatusAvailable
	}
	car := &models.Car{
		BrandID:         in.BrandID,
		CarModelID:      in.CarModelID,
		LocationID:      in.LocationID,
		Year:            in.Year,
		Condition:       in.Condition,
		EngineSize:      in.EngineSize,
		FuelType:        in.FuelType,
		Transmission:    in.Transmission,
		DriveType:       in.DriveType,
		Mileage:         in.Mileage,
		Color:           in.Color,
		Doors:           in.Doors,
		Seats:           in.Seats,
		Price:           in.Price,
		Negotiable:      true,
		Status:          status,
		Description:     in.Description,
		Features:        in.Features,
		CountryOfImport: in.CountryOfImport,
		ImportDutyPaid:  in.ImportDutyPaid,
		Slug:            slug,
		IsFeatured:      in.IsFeatured,
	}
	if in.Negotiable != nil {
		car.Negotiable = *in.Negotiable
	}
	if err := s.DB.WithContext(ctx).Create(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

// UpdateCar applies field-level updates. The slug is left untouched.
func (s *Service) UpdateCar(ctx context.Context, id uint, updates map[string]interface{}) (*models.Car, error) {
	var car models.Car
	if err := s.DB.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	delete(updates, "slug")
	delete(updates, "id")
	delete(updates, "views_count")
	if len(updates) == 0 {
		return &car, nil
	}
	if v, ok := updates["status"].(string); ok && !validStatuses[v] {
		return nil, errors.New("Invalid status")
	}
	if err := s.DB.WithContext(ctx).Model(&car).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *Service) DeleteCar(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Car{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCarNotFound
	}
	return nil
}

// IncrementViews bumps views_count by one as an atomic single-column update;
// no other field is touched.
func (s *Service) IncrementViews(ctx context.Context, carID uint) error {
	return s.DB.WithContext(ctx).
		Model(&models.Car{}).
		Where("id = ?", carID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}

// slugExists builds the existence predicate the slug generator needs for a
// given entity table.
func (s *Service) slugExists(model interface{}) slugs.ExistsFunc {
	return func(candidate string) (bool, error) {
		var count int64
		if err := s.DB.Model(model).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
}

// --- Images ---

type CarImageInput struct {
	CarID     uint
	ImageURL  string
	Caption   string
	IsPrimary bool
	SortOrder int
}

// AddCarImage attaches an image. Marking it primary clears any previous
// primary for the car in the same transaction.
func (s *Service) AddCarImage(ctx context.Context, in CarImageInput) (*models.CarImage, error) {
	if in.ImageURL == "" {
		return nil, errors.New("Image URL is required")
	}
	if err := s.DB.WithContext(ctx).First(&models.Car{}, in.CarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	image := &models.CarImage{
		CarID:     in.CarID,
		ImageURL:  in.ImageURL,
		Caption:   in.Caption,
		IsPrimary: in.IsPrimary,
		SortOrder: in.SortOrder,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.IsPrimary {
			if err := tx.Model(&models.CarImage{}).
				Where("car_id = ? AND is_primary = ?", in.CarID, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(image).Error
	})
	if err != nil {
		return nil, err
	}
	return image, nil
}

// SetPrimaryImage makes the given image the car's primary one, demoting the
// previous primary. Exactly one primary image per car remains afterwards.
func (s *Service) SetPrimaryImage(ctx context.Context, imageID uint) (*models.CarImage, error) {
	var image models.CarImage
	if err := s.DB.WithContext(ctx).First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CarImage{}).
			Where("car_id = ? AND id <> ?", image.CarID, image.ID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&image).Update("is_primary", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *Service) DeleteCarImage(ctx context.Context, imageID uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.CarImage{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}

// --- Rentals ---

type RentalInput struct {
	DailyRate   float64
	WeeklyRate  *float64
	MonthlyRate *float64

	MinimumAge      int
	RequiresLicense *bool
	RequiresDeposit *bool
	DepositAmount   *float64

	MaxRentalDays      int
	MileageLimitPerDay *int
	ExtraMileageCharge *float64

	RentalStatus       string
	TermsAndConditions string
}

// UpsertRental creates or replaces the rental terms for a car. Presence of
// the row is what turns a sale listing into a rental listing.
func (s *Service) UpsertRental(ctx context.Context, carID uint, in RentalInput) (*models.CarRental, error) {
	if in.DailyRate <= 0 {
		return nil, errors.New("Daily rate must be positive")
	}
	if err := s.DB.WithContext(ctx).First(&models.Car{}, carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	rental := models.CarRental{
		CarID:              carID,
		DailyRate:          in.DailyRate,
		WeeklyRate:         in.WeeklyRate,
		MonthlyRate:        in.MonthlyRate,
		MinimumAge:         in.MinimumAge,
		RequiresLicense:    true,
		RequiresDeposit:    true,
		DepositAmount:      in.DepositAmount,
		MaxRentalDays:      in.MaxRentalDays,
		MileageLimitPerDay: in.MileageLimitPerDay,
		ExtraMileageCharge: in.ExtraMileageCharge,
		RentalStatus:       in.RentalStatus,
		TermsAndConditions: in.TermsAndConditions,
	}
	if in.RequiresLicense != nil {
		rental.RequiresLicense = *in.RequiresLicense
	}
	if in.RequiresDeposit != nil {
		rental.RequiresDeposit = *in.RequiresDeposit
	}
	if rental.MinimumAge == 0 {
		rental.MinimumAge = 21
	}
	if rental.MaxRentalDays == 0 {
		rental.MaxRentalDays = 30
	}
	if rental.RentalStatus == "" {
		rental.RentalStatus = models.RentalStatusAvailable
	}

	var existing models.CarRental
	err := s.DB.WithContext(ctx).Where("car_id = ?", carID).First(&existing).Error
	switch {
	case err == nil:
		rental.ID = existing.ID
		rental.CreatedAt = existing.CreatedAt
		if err := s.DB.WithContext(ctx).Save(&rental).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.DB.WithContext(ctx).Create(&rental).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &rental, nil
}

// DeleteRental removes rental terms, turning the car back into a pure sale
// listing.
func (s *Service) DeleteRental(ctx context.Context, carID uint) error {
	res := s.DB.WithContext(ctx).Where("car_id = ?", carID).Delete(&models.CarRental{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRentalNotFound
	}
	return nil
}

// --- Comparisons ---

// CreateComparison stores a side-by-side comparison for a session. Car ids
// that do not resolve are skipped; at least two resolvable cars are required
// and at most four are kept.
func (s *Service) CreateComparison(ctx context.Context, sessionKey, userName string, carIDs []uint) (*models.CarComparison, error) {
	if sessionKey == "" {
		return nil, errors.New("Session key is required")
	}
	var cars []models.Car
	if len(carIDs) > 0 {
		if err := s.DB.WithContext(ctx).Where("id IN ?", carIDs).Find(&cars).Error; err != nil {
			return nil, err
		}
	}
	if len(cars) < 2 {
		return nil, errors.New("At least two cars are required for a comparison")
	}
	if len(cars) > 4 {
		cars = cars[:4]
	}
	comparison := &models.CarComparison{SessionKey: sessionKey, UserName: userName, Cars: cars}
	if err := s.DB.WithContext(ctx).Create(comparison).Error; err != nil {
		return nil, err
	}
	return comparison, nil
}

// ComparisonBySession returns the latest comparison for a session key.
func (s *Service) ComparisonBySession(ctx context.Context, sessionKey string) (*models.CarComparison, error) {
	var comparison models.CarComparison
	err := s.DB.WithContext(ctx).
		Preload("Cars").
		Preload("Cars.Brand").
		Preload("Cars.CarModel").
		Where("session_key = ?", sessionKey).
		Order("created_at DESC").
		First(&comparison).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Comparison not found")
		}
		return nil, err
	}
	return &comparison, nil
}

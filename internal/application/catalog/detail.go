package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/steve-ongera/carsoko/internal/models"

	"gorm.io/gorm"
)

// RentalTerms is the explicit optional rental sub-object on the read models.
// A nil value always means "not a rental listing"; the association is eagerly
// loaded so a lookup miss cannot masquerade as a sale listing.
type RentalTerms struct {
	DailyRate       float64  `json:"daily_rate"`
	WeeklyRate      *float64 `json:"weekly_rate"`
	MonthlyRate     *float64 `json:"monthly_rate"`
	MinimumAge      int      `json:"minimum_age"`
	RequiresDeposit bool     `json:"requires_deposit"`
	DepositAmount   *float64 `json:"deposit_amount"`
}

func rentalTerms(r *models.CarRental) *RentalTerms {
	if r == nil {
		return nil
	}
	return &RentalTerms{
		DailyRate:       r.DailyRate,
		WeeklyRate:      r.WeeklyRate,
		MonthlyRate:     r.MonthlyRate,
		MinimumAge:      r.MinimumAge,
		RequiresDeposit: r.RequiresDeposit,
		DepositAmount:   r.DepositAmount,
	}
}

// CarDetail is the detail-page payload: the car with relations plus the two
// recommendation strips.
type CarDetail struct {
	Car              models.Car   `json:"car"`
	RentalTerms      *RentalTerms `json:"rental_terms"`
	SimilarCars      []models.Car `json:"similar_cars"`
	SameLocationCars []models.Car `json:"same_location_cars"`
}

// CarBySlug assembles the detail page for one car and counts the view. The
// view counter is bumped exactly once per call as a single-column update.
func (s *Service) CarBySlug(ctx context.Context, slug string) (*CarDetail, error) {
	var car models.Car
	err := s.DB.WithContext(ctx).
		Preload("Brand").
		Preload("CarModel").
		Preload("Location").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, uploaded_at") }).
		Preload("Rental").
		Where("slug = ?", slug).
		First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	if err := s.IncrementViews(ctx, car.ID); err != nil {
		return nil, err
	}
	car.ViewsCount++

	similar := []models.Car{}
	err = s.DB.WithContext(ctx).
		Preload("Brand").Preload("CarModel").Preload("Images").Preload("Rental").
		Where("brand_id = ? AND car_model_id = ? AND id <> ? AND status = ?",
			car.BrandID, car.CarModelID, car.ID, models.CarStatusAvailable).
		Order("year DESC").
		Limit(4).
		Find(&similar).Error
	if err != nil {
		return nil, err
	}

	sameLocation := []models.Car{}
	err = s.DB.WithContext(ctx).
		Preload("Brand").Preload("CarModel").Preload("Images").Preload("Rental").
		Where("location_id = ? AND id <> ? AND status = ?",
			car.LocationID, car.ID, models.CarStatusAvailable).
		Order("created_at DESC").
		Limit(4).
		Find(&sameLocation).Error
	if err != nil {
		return nil, err
	}

	return &CarDetail{
		Car:              car,
		RentalTerms:      rentalTerms(car.Rental),
		SimilarCars:      similar,
		SameLocationCars: sameLocation,
	}, nil
}

// CarQuickView is the flat read model the AJAX quick-view modal consumes.
type CarQuickView struct {
	ID           uint         `json:"id"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Condition    string       `json:"condition"`
	FuelType     string       `json:"fuel_type"`
	Transmission string       `json:"transmission"`
	Mileage      int          `json:"mileage"`
	Color        string       `json:"color"`
	Doors        int          `json:"doors"`
	Seats        int          `json:"seats"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
	Negotiable   bool         `json:"negotiable"`
	PrimaryImage *string      `json:"primary_image"`
	AllImages    []string     `json:"all_images"`
	RentalTerms  *RentalTerms `json:"rental_info"`
	IsRental     bool         `json:"is_rental"`
}

// CarQuickViewByID builds the flat read model for an available car by numeric
// id and counts the view. Display labels replace enum codes.
func (s *Service) CarQuickViewByID(ctx context.Context, carID uint) (*CarQuickView, error) {
	var car models.Car
	err := s.DB.WithContext(ctx).
		Preload("Brand").
		Preload("CarModel").
		Preload("Location").
		Preload("Images").
		Preload("Rental").
		Where("id = ? AND status = ?", carID, models.CarStatusAvailable).
		First(&car).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	if err := s.IncrementViews(ctx, car.ID); err != nil {
		return nil, err
	}

	images := append([]models.CarImage{}, car.Images...)
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].SortOrder != images[j].SortOrder {
			return images[i].SortOrder < images[j].SortOrder
		}
		return images[i].UploadedAt.Before(images[j].UploadedAt)
	})

	var primary *string
	urls := make([]string, 0, len(images))
	for i := range images {
		urls = append(urls, images[i].ImageURL)
		if images[i].IsPrimary && primary == nil {
			primary = &images[i].ImageURL
		}
	}

	view := &CarQuickView{
		ID:           car.ID,
		Year:         car.Year,
		Price:        car.Price,
		Condition:    car.ConditionLabel(),
		FuelType:     car.FuelTypeLabel(),
		Transmission: car.TransmissionLabel(),
		Mileage:      car.Mileage,
		Color:        car.Color,
		Doors:        car.Doors,
		Seats:        car.Seats,
		Description:  car.Description,
		Features:     car.FeatureList(),
		Negotiable:   car.Negotiable,
		PrimaryImage: primary,
		AllImages:    urls,
		RentalTerms:  rentalTerms(car.Rental),
		IsRental:     car.Rental != nil,
	}
	if car.Brand != nil {
		view.Brand = car.Brand.Name
	}
	if car.CarModel != nil {
		view.Model = car.CarModel.Name
	}
	if car.Location != nil {
		view.Location = car.Location.DisplayName()
	}
	return view, nil
}

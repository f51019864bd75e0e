package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/steve-ongera/carsoko/internal/models"

	"gorm.io/gorm"
)

const homepageCarCount = 8

// CarStats are the headline inventory numbers on the homepage.
type CarStats struct {
	TotalCars   int64 `json:"total_cars"`
	CarsForSale int64 `json:"cars_for_sale"`
	CarsForRent int64 `json:"cars_for_rent"`
	TotalBrands int64 `json:"total_brands"`
}

// HomepageData is everything the landing page renders.
type HomepageData struct {
	CarsForSale  []models.Car           `json:"cars_for_sale"`
	CarsForRent  []models.Car           `json:"cars_for_rent"`
	Stats        CarStats               `json:"stats"`
	Testimonials []models.Testimonial   `json:"testimonials"`
	LatestPosts  []models.BlogPost      `json:"latest_posts"`
	Options      *FilterOptions         `json:"options"`
	Business     *models.BusinessConfig `json:"business"`
}

// HomepageCars selects up to 8 featured available cars, backfilled with the
// most recently created available cars until 8 or the pool is exhausted, with
// no duplicates. Rental terms are eagerly attached so partitioning never has
// to probe the store again.
func (s *Service) HomepageCars(ctx context.Context) ([]models.Car, error) {
	withRelations := func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("Brand").
			Preload("CarModel").
			Preload("Location").
			Preload("Images").
			Preload("Rental")
	}

	featured := []models.Car{}
	err := withRelations(s.DB.WithContext(ctx)).
		Where("status = ? AND is_featured = ?", models.CarStatusAvailable, true).
		Order("created_at DESC").
		Limit(homepageCarCount).
		Find(&featured).Error
	if err != nil {
		return nil, err
	}
	if len(featured) >= homepageCarCount {
		return featured, nil
	}

	seen := make([]uint, 0, len(featured))
	for _, car := range featured {
		seen = append(seen, car.ID)
	}
	q := withRelations(s.DB.WithContext(ctx)).
		Where("status = ?", models.CarStatusAvailable).
		Order("created_at DESC").
		Limit(homepageCarCount - len(featured))
	if len(seen) > 0 {
		q = q.Where("id NOT IN ?", seen)
	}
	backfill := []models.Car{}
	if err := q.Find(&backfill).Error; err != nil {
		return nil, err
	}
	return append(featured, backfill...), nil
}

// Homepage assembles the landing page: the 8-car strip partitioned into sale
// and rental listings, inventory stats, featured testimonials, latest posts,
// the filter vocabulary and the business config (nil when none is set up).
func (s *Service) Homepage(ctx context.Context) (*HomepageData, error) {
	cars, err := s.HomepageCars(ctx)
	if err != nil {
		return nil, err
	}

	data := &HomepageData{
		CarsForSale:  []models.Car{},
		CarsForRent:  []models.Car{},
		Testimonials: []models.Testimonial{},
		LatestPosts:  []models.BlogPost{},
	}
	for _, car := range cars {
		if car.Rental != nil {
			data.CarsForRent = append(data.CarsForRent, car)
		} else {
			data.CarsForSale = append(data.CarsForSale, car)
		}
	}

	stats, err := s.carStats(ctx)
	if err != nil {
		return nil, err
	}
	data.Stats = stats

	err = s.DB.WithContext(ctx).
		Where("is_approved = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(3).
		Find(&data.Testimonials).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).
		Where("is_published = ? AND published_at <= ?", true, time.Now()).
		Order("published_at DESC").
		Limit(3).
		Find(&data.LatestPosts).Error
	if err != nil {
		return nil, err
	}

	options, err := s.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}
	data.Options = options

	var business models.BusinessConfig
	err = s.DB.WithContext(ctx).Order("id").First(&business).Error
	switch {
	case err == nil:
		data.Business = &business
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No config yet; the page renders without contact details.
	default:
		return nil, err
	}

	return data, nil
}

func (s *Service) carStats(ctx context.Context) (CarStats, error) {
	var stats CarStats

	if err := s.DB.WithContext(ctx).Model(&models.Car{}).
		Where("status = ?", models.CarStatusAvailable).
		Count(&stats.TotalCars).Error; err != nil {
		return stats, err
	}
	if err := s.DB.WithContext(ctx).Model(&models.Car{}).
		Where("status = ?", models.CarStatusAvailable).
		Where("EXISTS (SELECT 1 FROM car_rentals WHERE car_rentals.car_id = cars.id)").
		Count(&stats.CarsForRent).Error; err != nil {
		return stats, err
	}
	stats.CarsForSale = stats.TotalCars - stats.CarsForRent

	if err := s.DB.WithContext(ctx).Model(&models.Car{}).
		Where("status = ?", models.CarStatusAvailable).
		Distinct("brand_id").
		Count(&stats.TotalBrands).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

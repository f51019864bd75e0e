package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"
)

// Sort keys the listing endpoint accepts. Anything else falls back to
// DefaultSort.
const DefaultSort = "created_desc"

var sortClauses = map[string]string{
	"created_asc":  "cars.created_at ASC",
	"created_desc": "cars.created_at DESC",
	"price_asc":    "cars.price ASC",
	"price_desc":   "cars.price DESC",
	"year_asc":     "cars.year ASC",
	"year_desc":    "cars.year DESC",
}

func orderClause(sortKey string) (string, string) {
	if clause, ok := sortClauses[sortKey]; ok {
		return clause, sortKey
	}
	return sortClauses[DefaultSort], DefaultSort
}

// SearchResult is one page of the public listing plus everything the filter
// controls need.
type SearchResult struct {
	Cars       []models.Car      `json:"cars"`
	Pagination pagination.Window `json:"pagination"`
	Sort       string            `json:"sort"`
	Options    *FilterOptions    `json:"options"`
}

// SearchCars executes the filter predicate over available cars, applies the
// allow-listed sort and clamped pagination, and attaches the filter
// vocabulary.
func (s *Service) SearchCars(ctx context.Context, f SearchFilters, sortKey string, params pagination.Params) (*SearchResult, error) {
	base := s.DB.WithContext(ctx).
		Model(&models.Car{}).
		Where("cars.status = ?", models.CarStatusAvailable)
	q := f.Apply(base)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	window := params.Clamp(total)

	clause, sort := orderClause(sortKey)
	cars := []models.Car{}
	listQ := q.
		Preload("Brand").
		Preload("CarModel").
		Preload("Location").
		Preload("Images").
		Preload("Rental").
		Order(clause).
		Offset(window.Offset)
	if window.Limit > 0 {
		listQ = listQ.Limit(window.Limit)
	}
	if err := listQ.Find(&cars).Error; err != nil {
		return nil, err
	}

	options, err := s.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Cars: cars, Pagination: window, Sort: sort, Options: options}, nil
}

// BrandOption is a brand with available stock.
type BrandOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PopularModel is a model ranked by available-car count.
type PopularModel struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	BrandID  uint   `json:"brand_id"`
	CarCount int64  `json:"car_count"`
}

// LocationOption is an active location with available stock.
type LocationOption struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	County string `json:"county"`
}

// PriceRange bounds the available inventory.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions is the vocabulary the search form renders its controls from.
type FilterOptions struct {
	Years         []int             `json:"years"`
	Brands        []BrandOption     `json:"brands"`
	PopularModels []PopularModel    `json:"popular_models"`
	Locations     []LocationOption  `json:"locations"`
	PriceRange    PriceRange        `json:"price_range"`
	Conditions    map[string]string `json:"conditions"`
	FuelTypes     map[string]string `json:"fuel_types"`
	Transmissions map[string]string `json:"transmissions"`
}

const filterOptionsCacheKey = "carsoko:search:filter-options"
const filterOptionsCacheTTL = 5 * time.Minute

// FilterOptions assembles the search vocabulary, serving it cache-aside from
// Redis when a client is configured. Cache failures fall through to the
// store.
func (s *Service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	if s.Rdb != nil {
		if raw, err := s.Rdb.Get(ctx, filterOptionsCacheKey).Result(); err == nil {
			var cached FilterOptions
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	options, err := s.loadFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	if s.Rdb != nil {
		if raw, err := json.Marshal(options); err == nil {
			s.Rdb.Set(ctx, filterOptionsCacheKey, raw, filterOptionsCacheTTL)
		}
	}
	return options, nil
}

// InvalidateFilterOptions drops the cached vocabulary; called after catalog
// writes from the operator surface.
func (s *Service) InvalidateFilterOptions(ctx context.Context) {
	if s.Rdb != nil {
		s.Rdb.Del(ctx, filterOptionsCacheKey)
	}
}

func (s *Service) loadFilterOptions(ctx context.Context) (*FilterOptions, error) {
	db := s.DB.WithContext(ctx)
	options := &FilterOptions{
		Years:         []int{},
		Brands:        []BrandOption{},
		PopularModels: []PopularModel{},
		Locations:     []LocationOption{},
		Conditions:    models.ConditionLabels,
		FuelTypes:     models.FuelTypeLabels,
		Transmissions: models.TransmissionLabels,
	}

	if err := db.Model(&models.Car{}).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &options.Years).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Brand{}).
		Where("id IN (SELECT brand_id FROM cars WHERE status = ?)", models.CarStatusAvailable).
		Order("name").
		Select("id", "name", "slug").
		Scan(&options.Brands).Error; err != nil {
		return nil, err
	}

	if err := db.Table("car_models").
		Select("car_models.id, car_models.name, car_models.brand_id, COUNT(cars.id) AS car_count").
		Joins("JOIN cars ON cars.car_model_id = car_models.id AND cars.status = ?", models.CarStatusAvailable).
		Group("car_models.id, car_models.name, car_models.brand_id").
		Order("car_count DESC").
		Limit(10).
		Scan(&options.PopularModels).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Location{}).
		Where("is_active = ?", true).
		Where("id IN (SELECT location_id FROM cars WHERE status = ?)", models.CarStatusAvailable).
		Order("county, name").
		Select("id", "name", "county").
		Scan(&options.Locations).Error; err != nil {
		return nil, err
	}

	var bounds struct {
		Min *float64
		Max *float64
	}
	if err := db.Model(&models.Car{}).
		Where("status = ?", models.CarStatusAvailable).
		Select("MIN(price) AS min, MAX(price) AS max").
		Scan(&bounds).Error; err != nil {
		return nil, err
	}
	if bounds.Min != nil {
		options.PriceRange.Min = *bounds.Min
	}
	if bounds.Max != nil {
		options.PriceRange.Max = *bounds.Max
	}

	return options, nil
}

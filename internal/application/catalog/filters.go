package catalog

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Car type filter values.
const (
	CarTypeRental = "rental"
	CarTypeSale   = "sale"
)

// SearchFilters is the parsed form of the optional listing query parameters.
// A nil/zero field means "no constraint". All supplied filters combine with
// AND; the keyword filter is an OR across brand name, model name, description
// and features.
type SearchFilters struct {
	Year         *int
	BrandID      *uint
	BrandSlug    string
	ModelID      *uint
	BodyType     string
	Condition    string
	Transmission string
	FuelType     string
	MaxMileage   *int
	MinPrice     *float64
	MaxPrice     *float64
	LocationID   *uint
	Keyword      string
	CarType      string
}

// ParseSearchFilters interprets raw query parameters. Malformed numeric input
// drops the filter rather than erroring; unrecognized values pass through to
// exact-match clauses that simply match nothing.
//
// The mileage parameter arrives in thousands of kilometres and is scaled
// before use.
func ParseSearchFilters(get func(key string) string) SearchFilters {
	f := SearchFilters{
		BrandSlug:    strings.TrimSpace(get("brand_slug")),
		BodyType:     strings.TrimSpace(get("body_type")),
		Condition:    strings.TrimSpace(get("condition")),
		Transmission: strings.TrimSpace(get("transmission")),
		FuelType:     strings.TrimSpace(get("fuel_type")),
		Keyword:      strings.TrimSpace(get("keyword")),
		CarType:      strings.TrimSpace(get("car_type")),
	}
	if v := get("year"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Year = &n
		}
	}
	if v := get("brand"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			f.BrandID = &id
		}
	}
	if v := get("model"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			f.ModelID = &id
		}
	}
	if v := get("location"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			f.LocationID = &id
		}
	}
	if v := get("mileage"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			scaled := n * 1000
			f.MaxMileage = &scaled
		}
	}
	if v := get("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := get("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	return f
}

// Apply composes the filters onto a cars query. Building the query never
// executes it; the caller decides when to count/find.
func (f SearchFilters) Apply(q *gorm.DB) *gorm.DB {
	if f.Year != nil {
		q = q.Where("cars.year = ?", *f.Year)
	}
	if f.BrandID != nil {
		q = q.Where("cars.brand_id = ?", *f.BrandID)
	}
	if f.BrandSlug != "" {
		q = q.Where("cars.brand_id IN (SELECT id FROM brands WHERE slug = ?)", f.BrandSlug)
	}
	if f.ModelID != nil {
		q = q.Where("cars.car_model_id = ?", *f.ModelID)
	}
	if f.BodyType != "" {
		q = q.Where("cars.car_model_id IN (SELECT id FROM car_models WHERE body_type = ?)", f.BodyType)
	}
	if f.Condition != "" {
		q = q.Where("cars.condition = ?", f.Condition)
	}
	if f.Transmission != "" {
		q = q.Where("cars.transmission = ?", f.Transmission)
	}
	if f.FuelType != "" {
		q = q.Where("cars.fuel_type = ?", f.FuelType)
	}
	if f.MaxMileage != nil {
		q = q.Where("cars.mileage <= ?", *f.MaxMileage)
	}
	if f.MinPrice != nil {
		q = q.Where("cars.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("cars.price <= ?", *f.MaxPrice)
	}
	if f.LocationID != nil {
		q = q.Where("cars.location_id = ?", *f.LocationID)
	}
	if f.Keyword != "" {
		kw := "%" + strings.ToLower(f.Keyword) + "%"
		q = q.Where(
			`cars.brand_id IN (SELECT id FROM brands WHERE LOWER(name) LIKE ?)
			OR cars.car_model_id IN (SELECT id FROM car_models WHERE LOWER(name) LIKE ?)
			OR LOWER(COALESCE(cars.description, '')) LIKE ?
			OR LOWER(COALESCE(cars.features, '')) LIKE ?`,
			kw, kw, kw, kw,
		)
	}
	switch f.CarType {
	case CarTypeRental:
		q = q.Where("EXISTS (SELECT 1 FROM car_rentals WHERE car_rentals.car_id = cars.id)")
	case CarTypeSale:
		q = q.Where("NOT EXISTS (SELECT 1 FROM car_rentals WHERE car_rentals.car_id = cars.id)")
	}
	return q
}

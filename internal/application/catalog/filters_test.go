package catalog

import (
	"context"
	"testing"

	"github.com/steve-ongera/carsoko/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryGetter(params map[string]string) func(string) string {
	return func(key string) string { return params[key] }
}

func TestParseSearchFilters_MileageScaledToKilometres(t *testing.T) {
	f := ParseSearchFilters(queryGetter(map[string]string{"mileage": "50"}))
	require.NotNil(t, f.MaxMileage)
	assert.Equal(t, 50000, *f.MaxMileage)
}

func TestParseSearchFilters_MalformedNumbersDropped(t *testing.T) {
	f := ParseSearchFilters(queryGetter(map[string]string{
		"year":      "twenty-twenty",
		"brand":     "abc",
		"min_price": "cheap",
		"max_price": "1e",
		"mileage":   "low",
	}))
	assert.Nil(t, f.Year)
	assert.Nil(t, f.BrandID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MaxMileage)
}

func TestParseSearchFilters_TrimsStrings(t *testing.T) {
	f := ParseSearchFilters(queryGetter(map[string]string{
		"keyword":   "  corolla  ",
		"condition": " new ",
	}))
	assert.Equal(t, "corolla", f.Keyword)
	assert.Equal(t, "new", f.Condition)
}

// seedSearchable creates two sale cars and one rental car with distinct
// prices and descriptions for filter assertions.
func seedSearchable(t *testing.T, svc *Service) (sale1, sale2, rental models.Car) {
	t.Helper()
	ctx := context.Background()
	brand, model, location := seedCatalog(t, svc.DB)

	in := validCarInput(brand, model, location)
	in.Price = 1000000
	in.Description = "Clean family sedan"
	c1, err := svc.CreateCar(ctx, in)
	require.NoError(t, err)

	in = validCarInput(brand, model, location)
	in.Price = 2000000
	in.Features = "Sunroof, Leather seats"
	c2, err := svc.CreateCar(ctx, in)
	require.NoError(t, err)

	in = validCarInput(brand, model, location)
	in.Price = 3000000
	c3, err := svc.CreateCar(ctx, in)
	require.NoError(t, err)
	_, err = svc.UpsertRental(ctx, c3.ID, RentalInput{DailyRate: 7000})
	require.NoError(t, err)

	return *c1, *c2, *c3
}

func applyAndFind(t *testing.T, svc *Service, f SearchFilters) []models.Car {
	t.Helper()
	cars := []models.Car{}
	q := f.Apply(svc.DB.Model(&models.Car{}).Where("cars.status = ?", models.CarStatusAvailable))
	require.NoError(t, q.Find(&cars).Error)
	return cars
}

func TestApply_PriceBounds(t *testing.T) {
	svc, _ := setupCatalogTest(t)
	_, sale2, _ := seedSearchable(t, svc)

	min := 1500000.0
	max := 2500000.0
	cars := applyAndFind(t, svc, SearchFilters{MinPrice: &min, MaxPrice: &max})
	require.Len(t, cars, 1)
	assert.Equal(t, sale2.ID, cars[0].ID)
}

func TestApply_CarTypePartitionsByRentalRow(t *testing.T) {
	svc, _ := setupCatalogTest(t)
	_, _, rental := seedSearchable(t, svc)

	rentals := applyAndFind(t, svc, SearchFilters{CarType: CarTypeRental})
	require.Len(t, rentals, 1)
	assert.Equal(t, rental.ID, rentals[0].ID)

	sales := applyAndFind(t, svc, SearchFilters{CarType: CarTypeSale})
	assert.Len(t, sales, 2)
}

func TestApply_KeywordMatchesAcrossFields(t *testing.T) {
	svc, _ := setupCatalogTest(t)
	sale1, sale2, _ := seedSearchable(t, svc)

	// Description match, case-insensitive.
	cars := applyAndFind(t, svc, SearchFilters{Keyword: "FAMILY"})
	require.Len(t, cars, 1)
	assert.Equal(t, sale1.ID, cars[0].ID)

	// Features match.
	cars = applyAndFind(t, svc, SearchFilters{Keyword: "sunroof"})
	require.Len(t, cars, 1)
	assert.Equal(t, sale2.ID, cars[0].ID)

	// Brand name match hits every car.
	cars = applyAndFind(t, svc, SearchFilters{Keyword: "toyota"})
	assert.Len(t, cars, 3)
}

func TestApply_BrandSlug(t *testing.T) {
	svc, _ := setupCatalogTest(t)
	seedSearchable(t, svc)

	cars := applyAndFind(t, svc, SearchFilters{BrandSlug: "toyota"})
	assert.Len(t, cars, 3)

	cars = applyAndFind(t, svc, SearchFilters{BrandSlug: "bmw"})
	assert.Empty(t, cars)
}

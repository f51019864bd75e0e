package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	catsvc "github.com/steve-ongera/carsoko/internal/application/catalog"
	contsvc "github.com/steve-ongera/carsoko/internal/application/content"
	leadsvc "github.com/steve-ongera/carsoko/internal/application/leads"
	"github.com/steve-ongera/carsoko/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAdminTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Brand{}, &models.CarModel{}, &models.Location{},
		&models.Car{}, &models.CarImage{}, &models.CarRental{},
		&models.CustomerInquiry{}, &models.Testimonial{},
		&models.BlogPost{}, &models.FAQ{}, &models.BusinessConfig{},
	))
	return &Handlers{
		Catalog: &catsvc.Service{DB: db},
		Leads:   &leadsvc.Service{DB: db},
		Content: &contsvc.Service{DB: db},
	}, db
}

func TestCreateCar_ValidationError(t *testing.T) {
	h, _ := setupAdminTest(t)
	app := fiber.New()
	app.Post("/admin/cars", h.CreateCar)

	body, _ := json.Marshal(map[string]interface{}{
		"brand_id": 1, "car_model_id": 1, "location_id": 1,
		"year": 1800, "condition": "new",
		"fuel_type": "petrol", "transmission": "manual", "drive_type": "2wd",
		"doors": 4, "seats": 5, "price": 500000,
	})
	req := httptest.NewRequest("POST", "/admin/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	errObj := result["error"].(map[string]interface{})
	assert.Equal(t, "Year must be between 1900 and 2030", errObj["message"])
}

func TestUpdateInquiryStatus_Endpoint(t *testing.T) {
	h, _ := setupAdminTest(t)
	ctx := context.Background()
	created, err := h.Leads.SubmitInquiry(ctx, leadsvc.SubmitInquiryInput{
		CustomerName: "Jane", CustomerPhone: "0712345678", Message: "Interested",
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Patch("/admin/inquiries/:inquiry_id/status", h.UpdateInquiryStatus)

	body, _ := json.Marshal(map[string]string{"status": "contacted", "notes": "Left voicemail"})
	req := httptest.NewRequest("PATCH", "/admin/inquiries/1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var inquiry models.CustomerInquiry
	require.NoError(t, h.Leads.DB.First(&inquiry, created.InquiryID).Error)
	assert.Equal(t, models.InquiryStatusContacted, inquiry.Status)
	assert.Equal(t, "Left voicemail", inquiry.Notes)
}

func TestUpdateInquiryStatus_InvalidStatus(t *testing.T) {
	h, _ := setupAdminTest(t)
	app := fiber.New()
	app.Patch("/admin/inquiries/:inquiry_id/status", h.UpdateInquiryStatus)

	body, _ := json.Marshal(map[string]string{"status": "ghosted"})
	req := httptest.NewRequest("PATCH", "/admin/inquiries/1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestModerateTestimonial_NotFound(t *testing.T) {
	h, _ := setupAdminTest(t)
	app := fiber.New()
	app.Patch("/admin/testimonials/:testimonial_id/moderate", h.ModerateTestimonial)

	body, _ := json.Marshal(map[string]bool{"is_approved": true})
	req := httptest.NewRequest("PATCH", "/admin/testimonials/42/moderate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestUpsertRental_CarNotFound(t *testing.T) {
	h, _ := setupAdminTest(t)
	app := fiber.New()
	app.Put("/admin/cars/:car_id/rental", h.UpsertRental)

	body, _ := json.Marshal(map[string]float64{"daily_rate": 5000})
	req := httptest.NewRequest("PUT", "/admin/cars/7/rental", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

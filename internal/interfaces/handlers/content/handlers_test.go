package content

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	contsvc "github.com/steve-ongera/carsoko/internal/application/content"
	"github.com/steve-ongera/carsoko/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContentHandlersTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Testimonial{}, &models.BlogPost{}, &models.FAQ{},
		&models.BusinessConfig{},
	))
	return &Handlers{Service: &contsvc.Service{DB: db}}, db
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	h, _ := setupContentHandlersTest(t)
	app := fiber.New()
	app.Get("/blog/:slug", h.GetPostBySlug)

	req := httptest.NewRequest("GET", "/blog/no-such-post", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetPostBySlug_OK(t *testing.T) {
	h, _ := setupContentHandlersTest(t)
	post, err := h.Service.CreatePost(context.Background(), contsvc.PostInput{
		Title: "News", Content: "...", AuthorName: "Steve", IsPublished: true,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/blog/:slug", h.GetPostBySlug)

	req := httptest.NewRequest("GET", "/blog/"+post.Slug, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestCreateTestimonial_InvalidRating(t *testing.T) {
	h, _ := setupContentHandlersTest(t)
	app := fiber.New()
	app.Post("/testimonials", h.CreateTestimonial)

	body, _ := json.Marshal(map[string]interface{}{
		"customer_name": "Jane",
		"message":       "Great",
		"rating":        9,
	})
	req := httptest.NewRequest("POST", "/testimonials", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestGetFAQs_CategoryFilter(t *testing.T) {
	h, _ := setupContentHandlersTest(t)
	ctx := context.Background()
	_, err := h.Service.CreateFAQ(ctx, contsvc.FAQInput{Question: "B?", Answer: "B", Category: models.FAQCategoryBuying})
	require.NoError(t, err)
	_, err = h.Service.CreateFAQ(ctx, contsvc.FAQInput{Question: "R?", Answer: "R", Category: models.FAQCategoryRental})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/faqs", h.GetFAQs)

	req := httptest.NewRequest("GET", "/faqs?category=rental", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result struct {
		Data []models.FAQ `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "R?", result.Data[0].Question)
}

package content

import (
	contsvc "github.com/steve-ongera/carsoko/internal/application/content"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"
	"github.com/steve-ongera/carsoko/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *contsvc.Service
}

// GET /api/v1/testimonials — approved testimonials, ?featured=true narrows
func (h *Handlers) GetTestimonials(c *fiber.Ctx) error {
	featuredOnly := c.Query("featured") == "true"
	testimonials, err := h.Service.ApprovedTestimonials(c.Context(), featuredOnly)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Testimonials fetched successfully", testimonials, nil)
}

// POST /api/v1/testimonials — submit feedback, pending moderation
func (h *Handlers) CreateTestimonial(c *fiber.Ctx) error {
	var body struct {
		CustomerName     string `json:"customer_name"`
		CustomerLocation string `json:"customer_location"`
		Message          string `json:"message"`
		Rating           int    `json:"rating"`
		CarID            *uint  `json:"car_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	t, err := h.Service.CreateTestimonial(c.Context(), contsvc.TestimonialInput{
		CustomerName:     body.CustomerName,
		CustomerLocation: body.CustomerLocation,
		Message:          body.Message,
		Rating:           body.Rating,
		CarID:            body.CarID,
	})
	if err != nil {
		statusMap := map[string]int{
			"Please fill in all required fields": 400,
			"Rating must be between 1 and 5":     400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Thank you for your feedback!", t, nil)
}

// GET /api/v1/blog — published posts, paginated
func (h *Handlers) GetPosts(c *fiber.Ctx) error {
	params := pagination.Parse(c.Query("page"), c.Query("per_page"))
	posts, window, err := h.Service.PublishedPosts(c.Context(), params)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Posts fetched successfully", posts, window)
}

// GET /api/v1/blog/:slug — one published post, counts the read
func (h *Handlers) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.Error(c, "slug is required", 400, nil)
	}
	post, err := h.Service.PostBySlug(c.Context(), slug)
	if err != nil {
		statusMap := map[string]int{
			"Post not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Post fetched successfully", post, nil)
}

// GET /api/v1/faqs — active FAQs, ?category narrows
func (h *Handlers) GetFAQs(c *fiber.Ctx) error {
	faqs, err := h.Service.ActiveFAQs(c.Context(), c.Query("category"))
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "FAQs fetched successfully", faqs, nil)
}

// GET /api/v1/business — dealership contact/identity settings
func (h *Handlers) GetBusinessConfig(c *fiber.Ctx) error {
	cfg, err := h.Service.BusinessConfig(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Business config fetched successfully", cfg, nil)
}

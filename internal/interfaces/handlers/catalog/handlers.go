package catalog

import (
	"strconv"

	catsvc "github.com/steve-ongera/carsoko/internal/application/catalog"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"
	"github.com/steve-ongera/carsoko/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *catsvc.Service
}

// GET /api/v1/cars — filtered, sorted, paginated listing
func (h *Handlers) SearchCars(c *fiber.Ctx) error {
	filters := catsvc.ParseSearchFilters(func(key string) string { return c.Query(key) })
	params := pagination.Parse(c.Query("page"), c.Query("per_page"))

	result, err := h.Service.SearchCars(c.Context(), filters, c.Query("sort"), params)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Cars fetched successfully", result, result.Pagination)
}

// GET /api/v1/cars/slug/:slug — detail page payload
func (h *Handlers) GetCarBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.Error(c, "slug is required", 400, nil)
	}
	detail, err := h.Service.CarBySlug(c.Context(), slug)
	if err != nil {
		statusMap := map[string]int{
			"Car not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Car fetched successfully", detail, nil)
}

// GET /api/v1/cars/:car_id/quick-view — flat modal payload
func (h *Handlers) GetCarQuickView(c *fiber.Ctx) error {
	carID, err := strconv.ParseUint(c.Params("car_id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid car_id format", 400, nil)
	}
	view, err := h.Service.CarQuickViewByID(c.Context(), uint(carID))
	if err != nil {
		statusMap := map[string]int{
			"Car not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Car fetched successfully", view, nil)
}

// GET /api/v1/brands — public brand list
func (h *Handlers) GetBrands(c *fiber.Ctx) error {
	brands, err := h.Service.ListBrands(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Brands fetched successfully", brands, nil)
}

// GET /api/v1/brands/:brand_id/models — brand/model picker
func (h *Handlers) GetModelsByBrand(c *fiber.Ctx) error {
	brandID, err := strconv.ParseUint(c.Params("brand_id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid brand_id format", 400, nil)
	}
	options, err := h.Service.ModelsByBrand(c.Context(), uint(brandID))
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Models fetched successfully", options, nil)
}

// GET /api/v1/home — landing page assembly
func (h *Handlers) GetHomepage(c *fiber.Ctx) error {
	data, err := h.Service.Homepage(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Homepage fetched successfully", data, nil)
}

// GET /api/v1/filter-options — search vocabulary on its own
func (h *Handlers) GetFilterOptions(c *fiber.Ctx) error {
	options, err := h.Service.FilterOptions(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Filter options fetched successfully", options, nil)
}

// POST /api/v1/comparisons — store a side-by-side comparison
func (h *Handlers) CreateComparison(c *fiber.Ctx) error {
	var body struct {
		SessionKey string `json:"session_key"`
		UserName   string `json:"user_name"`
		CarIDs     []uint `json:"car_ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	comparison, err := h.Service.CreateComparison(c.Context(), body.SessionKey, body.UserName, body.CarIDs)
	if err != nil {
		statusMap := map[string]int{
			"Session key is required":                         400,
			"At least two cars are required for a comparison": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Comparison created successfully", comparison, nil)
}

// GET /api/v1/comparisons/:session_key — latest comparison for a session
func (h *Handlers) GetComparison(c *fiber.Ctx) error {
	sessionKey := c.Params("session_key")
	if sessionKey == "" {
		return response.Error(c, "session_key is required", 400, nil)
	}
	comparison, err := h.Service.ComparisonBySession(c.Context(), sessionKey)
	if err != nil {
		statusMap := map[string]int{
			"Comparison not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Comparison fetched successfully", comparison, nil)
}

package admin

import (
	"strconv"
	"time"

	catsvc "github.com/steve-ongera/carsoko/internal/application/catalog"
	contsvc "github.com/steve-ongera/carsoko/internal/application/content"
	leadsvc "github.com/steve-ongera/carsoko/internal/application/leads"
	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"
	"github.com/steve-ongera/carsoko/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers is the operator surface: catalog management, inquiry follow-up,
// content moderation and business settings.
type Handlers struct {
	Catalog *catsvc.Service
	Leads   *leadsvc.Service
	Content *contsvc.Service
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// --- Brands ---

// POST /api/v1/admin/brands
func (h *Handlers) CreateBrand(c *fiber.Ctx) error {
	var body struct {
		Name            string `json:"name"`
		LogoURL         string `json:"logo_url"`
		CountryOfOrigin string `json:"country_of_origin"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	brand, err := h.Catalog.CreateBrand(c.Context(), catsvc.BrandInput{
		Name:            body.Name,
		LogoURL:         body.LogoURL,
		CountryOfOrigin: body.CountryOfOrigin,
	})
	if err != nil {
		statusMap := map[string]int{
			"Brand name is required": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.SuccessCreated(c, "Brand created successfully", brand, nil)
}

// PATCH /api/v1/admin/brands/:brand_id
func (h *Handlers) UpdateBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "brand_id")
	if err != nil {
		return response.Error(c, "Invalid brand_id format", 400, nil)
	}
	var body struct {
		Name            string `json:"name"`
		LogoURL         string `json:"logo_url"`
		CountryOfOrigin string `json:"country_of_origin"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	brand, err := h.Catalog.UpdateBrand(c.Context(), id, catsvc.BrandInput{
		Name:            body.Name,
		LogoURL:         body.LogoURL,
		CountryOfOrigin: body.CountryOfOrigin,
	})
	if err != nil {
		statusMap := map[string]int{
			"Brand not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.Success(c, "Brand updated successfully", brand, nil)
}

// DELETE /api/v1/admin/brands/:brand_id
func (h *Handlers) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "brand_id")
	if err != nil {
		return response.Error(c, "Invalid brand_id format", 400, nil)
	}
	if err := h.Catalog.DeleteBrand(c.Context(), id); err != nil {
		statusMap := map[string]int{
			"Brand not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.Success(c, "Brand deleted successfully", nil, nil)
}

// --- Car models ---

// POST /api/v1/admin/models
func (h *Handlers) CreateCarModel(c *fiber.Ctx) error {
	var body struct {
		BrandID  uint   `json:"brand_id"`
		Name     string `json:"name"`
		BodyType string `json:"body_type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	model, err := h.Catalog.CreateCarModel(c.Context(), catsvc.CarModelInput{
		BrandID:  body.BrandID,
		Name:     body.Name,
		BodyType: body.BodyType,
	})
	if err != nil {
		statusMap := map[string]int{
			"Model name is required": 400,
			"Invalid body type":      400,
			"Brand not found":        404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.SuccessCreated(c, "Car model created successfully", model, nil)
}

// DELETE /api/v1/admin/models/:model_id
func (h *Handlers) DeleteCarModel(c *fiber.Ctx) error {
	id, err := parseID(c, "model_id")
	if err != nil {
		return response.Error(c, "Invalid model_id format", 400, nil)
	}
	if err := h.Catalog.DeleteCarModel(c.Context(), id); err != nil {
		statusMap := map[string]int{
			"Car model not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.Success(c, "Car model deleted successfully", nil, nil)
}

// --- Locations ---

// POST /api/v1/admin/locations
func (h *Handlers) CreateLocation(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		County   string `json:"county"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	loc, err := h.Catalog.CreateLocation(c.Context(), catsvc.LocationInput{
		Name:     body.Name,
		County:   body.County,
		IsActive: body.IsActive,
	})
	if err != nil {
		statusMap := map[string]int{
			"Location name and county are required": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.SuccessCreated(c, "Location created successfully", loc, nil)
}

// GET /api/v1/admin/locations
func (h *Handlers) GetLocations(c *fiber.Ctx) error {
	locations, err := h.Catalog.ListLocations(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Locations fetched successfully", locations, nil)
}

// DELETE /api/v1/admin/locations/:location_id
func (h *Handlers) DeleteLocation(c *fiber.Ctx) error {
	id, err := parseID(c, "location_id")
	if err != nil {
		return response.Error(c, "Invalid location_id format", 400, nil)
	}
	if err := h.Catalog.DeleteLocation(c.Context(), id); err != nil {
		statusMap := map[string]int{
			"Location not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.Success(c, "Location deleted successfully", nil, nil)
}

// --- Cars ---

type carBody struct {
	BrandID    uint `json:"brand_id"`
	CarModelID uint `json:"car_model_id"`
	LocationID uint `json:"location_id"`

	Year      int    `json:"year"`
	Condition string `json:"condition"`

	EngineSize   float64 `json:"engine_size"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	DriveType    string  `json:"drive_type"`
	Mileage      int     `json:"mileage"`

	Color string `json:"color"`
	Doors int    `json:"doors"`
	Seats int    `json:"seats"`

	Price      float64 `json:"price"`
	Negotiable *bool   `json:"negotiable"`
	Status     string  `json:"status"`

	Description string `json:"description"`
	Features    string `json:"features"`

	CountryOfImport string `json:"country_of_import"`
	ImportDutyPaid  bool   `json:"import_duty_paid"`

	IsFeatured bool `json:"is_featured"`
}

// POST /api/v1/admin/cars
func (h *Handlers) CreateCar(c *fiber.Ctx) error {
	var body carBody
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	car, err := h.Catalog.CreateCar(c.Context(), catsvc.CarInput{
		BrandID:         body.BrandID,
		CarModelID:      body.CarModelID,
		LocationID:      body.LocationID,
		Year:            body.Year,
		Condition:       body.Condition,
		EngineSize:      body.EngineSize,
		FuelType:        body.FuelType,
		Transmission:    body.Transmission,
		DriveType:       body.DriveType,
		Mileage:         body.Mileage,
		Color:           body.Color,
		Doors:           body.Doors,
		Seats:           body.Seats,
		Price:           body.Price,
		Negotiable:      body.Negotiable,
		Status:          body.Status,
		Description:     body.Description,
		Features:        body.Features,
		CountryOfImport: body.CountryOfImport,
		ImportDutyPaid:  body.ImportDutyPaid,
		IsFeatured:      body.IsFeatured,
	})
	if err != nil {
		statusMap := map[string]int{
			"Year must be between 1900 and 2030":     400,
			"Invalid condition":                      400,
			"Doors must be between 2 and 5":          400,
			"Seats must be between 2 and 9":          400,
			"Invalid status":                         400,
			"Brand not found":                        404,
			"Car model not found":                    404,
			"Location not found":                     404,
			"Car model does not belong to the brand": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.SuccessCreated(c, "Car created successfully", car, nil)
}

// PATCH /api/v1/admin/cars/:car_id
func (h *Handlers) UpdateCar(c *fiber.Ctx) error {
	id, err := parseID(c, "car_id")
	if err != nil {
		return response.Error(c, "Invalid car_id format", 400, nil)
	}
	updates := map[string]interface{}{}
	if err := c.BodyParser(&updates); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	car, err := h.Catalog.UpdateCar(c.Context(), id, updates)
	if err != nil {
		statusMap := map[string]int{
			"Car not found":  404,
			"Invalid status": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.Success(c, "Car updated successfully", car, nil)
}

// DELETE /api/v1/admin/cars/:car_id
func (h *Handlers) DeleteCar(c *fiber.Ctx) error {
	id, err := parseID(c, "car_id")
	if err != nil {
		return response.Error(c, "Invalid car_id format", 400, nil)
	}
	if err := h.Catalog.DeleteCar(c.Context(), id); err != nil {
		statusMap := map[string]int{
			"Car not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	h.Catalog.InvalidateFilterOptions(c.Context())
	return response.Success(c, "Car deleted successfully", nil, nil)
}

// --- Images ---

// POST /api/v1/admin/cars/:car_id/images
func (h *Handlers) AddCarImage(c *fiber.Ctx) error {
	carID, err := parseID(c, "car_id")
	if err != nil {
		return response.Error(c, "Invalid car_id format", 400, nil)
	}
	var body struct {
		ImageURL  string `json:"image_url"`
		Caption   string `json:"caption"`
		IsPrimary bool   `json:"is_primary"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	image, err := h.Catalog.AddCarImage(c.Context(), catsvc.CarImageInput{
		CarID:     carID,
		ImageURL:  body.ImageURL,
		Caption:   body.Caption,
		IsPrimary: body.IsPrimary,
		SortOrder: body.SortOrder,
	})
	if err != nil {
		statusMap := map[string]int{
			"Image URL is required": 400,
			"Car not found":         404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Image added successfully", image, nil)
}

// PATCH /api/v1/admin/images/:image_id/primary
func (h *Handlers) SetPrimaryImage(c *fiber.Ctx) error {
	id, err := parseID(c, "image_id")
	if err != nil {
		return response.Error(c, "Invalid image_id format", 400, nil)
	}
	image, err := h.Catalog.SetPrimaryImage(c.Context(), id)
	if err != nil {
		statusMap := map[string]int{
			"Image not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Primary image updated successfully", image, nil)
}

// DELETE /api/v1/admin/images/:image_id
func (h *Handlers) DeleteCarImage(c *fiber.Ctx) error {
	id, err := parseID(c, "image_id")
	if err != nil {
		return response.Error(c, "Invalid image_id format", 400, nil)
	}
	if err := h.Catalog.DeleteCarImage(c.Context(), id); err != nil {
		statusMap := map[string]int{
			"Image not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Image deleted successfully", nil, nil)
}

// --- Rentals ---

// PUT /api/v1/admin/cars/:car_id/rental
func (h *Handlers) UpsertRental(c *fiber.Ctx) error {
	carID, err := parseID(c, "car_id")
	if err != nil {
		return response.Error(c, "Invalid car_id format", 400, nil)
	}
	var body struct {
		DailyRate   float64  `json:"daily_rate"`
		WeeklyRate  *float64 `json:"weekly_rate"`
		MonthlyRate *float64 `json:"monthly_rate"`

		MinimumAge      int      `json:"minimum_age"`
		RequiresLicense *bool    `json:"requires_license"`
		RequiresDeposit *bool    `json:"requires_deposit"`
		DepositAmount   *float64 `json:"deposit_amount"`

		MaxRentalDays      int      `json:"max_rental_days"`
		MileageLimitPerDay *int     `json:"mileage_limit_per_day"`
		ExtraMileageCharge *float64 `json:"extra_mileage_charge"`

		RentalStatus       string `json:"rental_status"`
		TermsAndConditions string `json:"terms_and_conditions"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	rental, err := h.Catalog.UpsertRental(c.Context(), carID, catsvc.RentalInput{
		DailyRate:          body.DailyRate,
		WeeklyRate:         body.WeeklyRate,
		MonthlyRate:        body.MonthlyRate,
		MinimumAge:         body.MinimumAge,
		RequiresLicense:    body.RequiresLicense,
		RequiresDeposit:    body.RequiresDeposit,
		DepositAmount:      body.DepositAmount,
		MaxRentalDays:      body.MaxRentalDays,
		MileageLimitPerDay: body.MileageLimitPerDay,
		ExtraMileageCharge: body.ExtraMileageCharge,
		RentalStatus:       body.RentalStatus,
		TermsAndConditions: body.TermsAndConditions,
	})
	if err != nil {
		statusMap := map[string]int{
			"Daily rate must be positive": 400,
			"Car not found":               404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Rental terms saved successfully", rental, nil)
}

// DELETE /api/v1/admin/cars/:car_id/rental
func (h *Handlers) DeleteRental(c *fiber.Ctx) error {
	carID, err := parseID(c, "car_id")
	if err != nil {
		return response.Error(c, "Invalid car_id format", 400, nil)
	}
	if err := h.Catalog.DeleteRental(c.Context(), carID); err != nil {
		statusMap := map[string]int{
			"Rental terms not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Rental terms deleted successfully", nil, nil)
}

// --- Inquiries ---

// GET /api/v1/admin/inquiries — ?status narrows, paginated
func (h *Handlers) GetInquiries(c *fiber.Ctx) error {
	params := pagination.Parse(c.Query("page"), c.Query("per_page"))
	inquiries, window, err := h.Leads.ListInquiries(c.Context(), c.Query("status"), params)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inquiries fetched successfully", inquiries, window)
}

// PATCH /api/v1/admin/inquiries/:inquiry_id/status
func (h *Handlers) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "inquiry_id")
	if err != nil {
		return response.Error(c, "Invalid inquiry_id format", 400, nil)
	}
	var body struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	inquiry, err := h.Leads.UpdateInquiryStatus(c.Context(), id, body.Status, body.Notes)
	if err != nil {
		statusMap := map[string]int{
			"Invalid inquiry status": 400,
			"Inquiry not found":      404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Inquiry updated successfully", inquiry, nil)
}

// --- Testimonials ---

// PATCH /api/v1/admin/testimonials/:testimonial_id/moderate
func (h *Handlers) ModerateTestimonial(c *fiber.Ctx) error {
	id, err := parseID(c, "testimonial_id")
	if err != nil {
		return response.Error(c, "Invalid testimonial_id format", 400, nil)
	}
	var body struct {
		IsApproved bool `json:"is_approved"`
		IsFeatured bool `json:"is_featured"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	t, err := h.Content.ModerateTestimonial(c.Context(), id, body.IsApproved, body.IsFeatured)
	if err != nil {
		statusMap := map[string]int{
			"Testimonial not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Testimonial updated successfully", t, nil)
}

// --- Blog ---

// POST /api/v1/admin/blog
func (h *Handlers) CreatePost(c *fiber.Ctx) error {
	var body struct {
		Title            string     `json:"title"`
		Content          string     `json:"content"`
		Excerpt          string     `json:"excerpt"`
		FeaturedImageURL string     `json:"featured_image_url"`
		MetaTitle        string     `json:"meta_title"`
		MetaDescription  string     `json:"meta_description"`
		AuthorName       string     `json:"author_name"`
		IsPublished      bool       `json:"is_published"`
		PublishedAt      *time.Time `json:"published_at"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	post, err := h.Content.CreatePost(c.Context(), contsvc.PostInput{
		Title:            body.Title,
		Content:          body.Content,
		Excerpt:          body.Excerpt,
		FeaturedImageURL: body.FeaturedImageURL,
		MetaTitle:        body.MetaTitle,
		MetaDescription:  body.MetaDescription,
		AuthorName:       body.AuthorName,
		IsPublished:      body.IsPublished,
		PublishedAt:      body.PublishedAt,
	})
	if err != nil {
		statusMap := map[string]int{
			"Please fill in all required fields": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Post created successfully", post, nil)
}

// --- FAQs ---

// POST /api/v1/admin/faqs
func (h *Handlers) CreateFAQ(c *fiber.Ctx) error {
	var body struct {
		Question  string `json:"question"`
		Answer    string `json:"answer"`
		Category  string `json:"category"`
		SortOrder int    `json:"sort_order"`
		IsActive  *bool  `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	faq, err := h.Content.CreateFAQ(c.Context(), contsvc.FAQInput{
		Question:  body.Question,
		Answer:    body.Answer,
		Category:  body.Category,
		SortOrder: body.SortOrder,
		IsActive:  body.IsActive,
	})
	if err != nil {
		statusMap := map[string]int{
			"Please fill in all required fields": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "FAQ created successfully", faq, nil)
}

// DELETE /api/v1/admin/faqs/:faq_id
func (h *Handlers) DeleteFAQ(c *fiber.Ctx) error {
	id, err := parseID(c, "faq_id")
	if err != nil {
		return response.Error(c, "Invalid faq_id format", 400, nil)
	}
	if err := h.Content.DeleteFAQ(c.Context(), id); err != nil {
		statusMap := map[string]int{
			"FAQ not found": 404,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "FAQ deleted successfully", nil, nil)
}

// --- Business config ---

// PUT /api/v1/admin/business
func (h *Handlers) UpsertBusinessConfig(c *fiber.Ctx) error {
	var body models.BusinessConfig
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	cfg, err := h.Content.UpsertBusinessConfig(c.Context(), body)
	if err != nil {
		statusMap := map[string]int{
			"Business name is required": 400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Business config saved successfully", cfg, nil)
}

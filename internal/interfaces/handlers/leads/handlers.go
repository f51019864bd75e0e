package leads

import (
	leadsvc "github.com/steve-ongera/carsoko/internal/application/leads"
	"github.com/steve-ongera/carsoko/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *leadsvc.Service
}

// POST /api/v1/inquiries — customer inquiry intake
func (h *Handlers) SubmitInquiry(c *fiber.Ctx) error {
	var body struct {
		CarID            *uint  `json:"car_id"`
		InquiryType      string `json:"inquiry_type"`
		CustomerName     string `json:"customer_name"`
		CustomerPhone    string `json:"customer_phone"`
		CustomerEmail    string `json:"customer_email"`
		Message          string `json:"message"`
		PreferredContact string `json:"preferred_contact_method"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	result, err := h.Service.SubmitInquiry(c.Context(), leadsvc.SubmitInquiryInput{
		CarID:            body.CarID,
		InquiryType:      body.InquiryType,
		CustomerName:     body.CustomerName,
		CustomerPhone:    body.CustomerPhone,
		CustomerEmail:    body.CustomerEmail,
		Message:          body.Message,
		PreferredContact: body.PreferredContact,
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
	return response.SuccessCreated(c, result.Message, result, nil)
}

// POST /api/v1/newsletter/subscribe — newsletter upsert by email
func (h *Handlers) Subscribe(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	result, err := h.Service.Subscribe(c.Context(), body.Email)
	if err != nil {
		statusMap := map[string]int{
			"Email is required":                400,
			"Enter a valid email address":      400,
			"This email is already subscribed": 409,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, result.Message, result, nil)
}

// POST /api/v1/contact — general contact form
func (h *Handlers) SubmitContactMessage(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	msg, err := h.Service.SubmitContactMessage(c.Context(), leadsvc.ContactMessageInput{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		statusMap := map[string]int{
			"Please fill in all required fields": 400,
			"Enter a valid email address":        400,
		}
		if code, ok := statusMap[err.Error()]; ok {
			return response.Error(c, err.Error(), code, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.SuccessCreated(c, "Your message has been sent. Thank you!", msg, nil)
}

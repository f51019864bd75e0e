package leads

import (
	"context"
	"errors"

	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"
	"github.com/steve-ongera/carsoko/internal/pkg/validation"

	"gorm.io/gorm"
)

// Sentinel errors. Handlers map these to HTTP status codes.
var (
	ErrMissingFields     = errors.New("Please fill in all required fields")
	ErrInvalidEmail      = errors.New("Enter a valid email address")
	ErrAlreadySubscribed = errors.New("This email is already subscribed")
	ErrInquiryNotFound   = errors.New("Inquiry not found")
)

// Service handles lead capture: inquiries, newsletter signups and contact
// messages. Currency prefixes prices in generated deep links.
type Service struct {
	DB       *gorm.DB
	Currency string
}

var validInquiryTypes = map[string]bool{
	models.InquiryTypePurchase: true,
	models.InquiryTypeRental:   true,
	models.InquiryTypeGeneral:  true,
}

var validContactMethods = map[string]bool{
	models.ContactMethodPhone:    true,
	models.ContactMethodWhatsApp: true,
	models.ContactMethodEmail:    true,
}

var validInquiryStatuses = map[string]bool{
	models.InquiryStatusNew:        true,
	models.InquiryStatusContacted:  true,
	models.InquiryStatusInProgress: true,
	models.InquiryStatusClosed:     true,
}

type SubmitInquiryInput struct {
	CarID            *uint
	InquiryType      string
	CustomerName     string
	CustomerPhone    string
	CustomerEmail    string
	Message          string
	PreferredContact string
}

// InquiryResult is the intake outcome: the persisted id, a confirmation
// message, and the WhatsApp deep link when the optional enrichment succeeds.
type InquiryResult struct {
	InquiryID   uint   `json:"inquiry_id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// SubmitInquiry validates and persists a customer inquiry. A car id that
// does not resolve leaves the inquiry unlinked rather than rejecting it. The
// deep-link enrichment never fails the submission.
func (s *Service) SubmitInquiry(ctx context.Context, in SubmitInquiryInput) (*InquiryResult, error) {
	if in.CustomerName == "" || in.CustomerPhone == "" || in.Message == "" {
		return nil, ErrMissingFields
	}

	inquiryType := in.InquiryType
	if !validInquiryTypes[inquiryType] {
		inquiryType = models.InquiryTypeGeneral
	}
	contactMethod := in.PreferredContact
	if !validContactMethods[contactMethod] {
		contactMethod = models.ContactMethodWhatsApp
	}

	var car *models.Car
	if in.CarID != nil {
		var found models.Car
		err := s.DB.WithContext(ctx).
			Preload("Brand").
			Preload("CarModel").
			First(&found, *in.CarID).Error
		if err == nil {
			car = &found
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	inquiry := models.CustomerInquiry{
		InquiryType:            inquiryType,
		CustomerName:           in.CustomerName,
		CustomerPhone:          in.CustomerPhone,
		CustomerEmail:          in.CustomerEmail,
		Message:                in.Message,
		PreferredContactMethod: contactMethod,
		Status:                 models.InquiryStatusNew,
	}
	if car != nil {
		inquiry.CarID = &car.ID
	}
	if err := s.DB.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return nil, err
	}

	result := &InquiryResult{
		InquiryID: inquiry.ID,
		Message:   "Thank you for your inquiry! We will contact you soon.",
	}

	// Optional enrichment; any failure here is swallowed.
	if car != nil {
		var cfg models.BusinessConfig
		if err := s.DB.WithContext(ctx).Order("id").First(&cfg).Error; err == nil {
			if link, err := WhatsAppLink(&cfg, car, s.Currency); err == nil {
				result.WhatsAppURL = link
			}
		}
	}

	return result, nil
}

// SubscribeResult is the newsletter outcome.
type SubscribeResult struct {
	Message     string `json:"message"`
	Reactivated bool   `json:"reactivated"`
}

// Subscribe upserts a newsletter subscription by email. A duplicate active
// subscription is a normal negative outcome (ErrAlreadySubscribed); an
// inactive one is reactivated.
func (s *Service) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	if email == "" {
		return nil, errors.New("Email is required")
	}
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	var existing models.NewsletterSubscription
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := models.NewsletterSubscription{Email: email, IsActive: true}
		if err := s.DB.WithContext(ctx).Create(&sub).Error; err != nil {
			return nil, err
		}
		return &SubscribeResult{Message: "Thank you for subscribing to our newsletter!"}, nil
	case err != nil:
		return nil, err
	case existing.IsActive:
		return nil, ErrAlreadySubscribed
	default:
		if err := s.DB.WithContext(ctx).Model(&existing).Update("is_active", true).Error; err != nil {
			return nil, err
		}
		return &SubscribeResult{
			Message:     "Welcome back! Your subscription has been reactivated.",
			Reactivated: true,
		}, nil
	}
}

type ContactMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SubmitContactMessage validates and persists a contact-form submission.
func (s *Service) SubmitContactMessage(ctx context.Context, in ContactMessageInput) (*models.ContactMessage, error) {
	if in.Name == "" || in.Email == "" || in.Subject == "" || in.Message == "" {
		return nil, ErrMissingFields
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	msg := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListInquiries returns inquiries for the operator surface, optionally
// filtered by workflow status, newest first.
func (s *Service) ListInquiries(ctx context.Context, status string, params pagination.Params) ([]models.CustomerInquiry, pagination.Window, error) {
	q := s.DB.WithContext(ctx).Model(&models.CustomerInquiry{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Window{}, err
	}
	window := params.Clamp(total)

	inquiries := []models.CustomerInquiry{}
	listQ := q.Preload("Car").Preload("Car.Brand").Preload("Car.CarModel").
		Order("created_at DESC").
		Offset(window.Offset)
	if window.Limit > 0 {
		listQ = listQ.Limit(window.Limit)
	}
	if err := listQ.Find(&inquiries).Error; err != nil {
		return nil, pagination.Window{}, err
	}
	return inquiries, window, nil
}

// UpdateInquiryStatus moves an inquiry through the follow-up workflow and
// optionally replaces the internal notes.
func (s *Service) UpdateInquiryStatus(ctx context.Context, id uint, status string, notes *string) (*models.CustomerInquiry, error) {
	if !validInquiryStatuses[status] {
		return nil, errors.New("Invalid inquiry status")
	}
	var inquiry models.CustomerInquiry
	if err := s.DB.WithContext(ctx).First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}
	if err := s.DB.WithContext(ctx).Model(&inquiry).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

package models

import "time"

// Inquiry types.
const (
	InquiryTypePurchase = "purchase"
	InquiryTypeRental   = "rental"
	InquiryTypeGeneral  = "general"
)

// Inquiry workflow statuses.
const (
	InquiryStatusNew        = "new"
	InquiryStatusContacted  = "contacted"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusClosed     = "closed"
)

// Preferred contact methods.
const (
	ContactMethodPhone    = "phone"
	ContactMethodWhatsApp = "whatsapp"
	ContactMethodEmail    = "email"
)

// CustomerInquiry is a lead captured from an inquiry form. The car reference
// is optional and survives car deletion checks at intake time only.
type CustomerInquiry struct {
	ID    uint  `gorm:"primaryKey" json:"id"`
	CarID *uint `gorm:"index" json:"car_id"`

	InquiryType string `gorm:"size:20;default:'general'" json:"inquiry_type"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:255" json:"customer_email"`

	Message                string `gorm:"type:text;not null" json:"message"`
	PreferredContactMethod string `gorm:"size:20;default:'whatsapp'" json:"preferred_contact_method"`

	Status string `gorm:"size:20;default:'new'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"` // internal follow-up notes

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Car *Car `gorm:"constraint:OnDelete:CASCADE" json:"car,omitempty"`
}

// NewsletterSubscription is an email signup. Upserted by email.
type NewsletterSubscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

// ContactMessage is a general contact-form submission.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// FAQ categories.
const (
	FAQCategoryBuying    = "buying"
	FAQCategorySelling   = "selling"
	FAQCategoryRental    = "rental"
	FAQCategoryFinancing = "financing"
	FAQCategoryGeneral   = "general"
)

// BusinessConfig holds dealership identity and marketing settings. There is
// no uniqueness constraint; consumers always take the first row.
type BusinessConfig struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	BusinessName    string `gorm:"size:200;not null" json:"business_name"`
	BusinessPhone   string `gorm:"size:20" json:"business_phone"`
	WhatsAppNumber  string `gorm:"size:20" json:"whatsapp_number"`
	BusinessEmail   string `gorm:"size:255" json:"business_email"`
	BusinessAddress string `gorm:"type:text" json:"business_address"`

	// Placeholders: {car_year}, {car_brand}, {car_model}, {car_price}
	WhatsAppMessageTemplate string `gorm:"type:text;default:'Hello! I''m interested in your {car_year} {car_brand} {car_model}. Price: {car_price}. Is it still available?'" json:"whatsapp_message_template"`

	OpeningHours string `gorm:"size:100;default:'Mon-Sat: 8:00 AM - 6:00 PM'" json:"opening_hours"`

	WebsiteTitle       string `gorm:"size:200" json:"website_title"`
	WebsiteDescription string `gorm:"type:text" json:"website_description"`
	WebsiteKeywords    string `gorm:"type:text" json:"website_keywords"`

	FacebookURL  string `gorm:"size:255" json:"facebook_url"`
	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	TwitterURL   string `gorm:"size:255" json:"twitter_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Testimonial is customer feedback shown on the site once approved.
type Testimonial struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CustomerName     string    `gorm:"size:100;not null" json:"customer_name"`
	CustomerLocation string    `gorm:"size:100" json:"customer_location"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	Rating           int       `gorm:"not null" json:"rating"`
	CarID            *uint     `json:"car_id"`
	IsFeatured       bool      `gorm:"default:false" json:"is_featured"`
	IsApproved       bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt        time.Time `json:"created_at"`

	Car *Car `gorm:"constraint:OnDelete:SET NULL" json:"car,omitempty"`
}

// BlogPost is a news/blog article. Slug is unique and generated once.
type BlogPost struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Title            string `gorm:"size:200;not null" json:"title"`
	Slug             string `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Content          string `gorm:"type:text;not null" json:"content"`
	Excerpt          string `gorm:"size:300" json:"excerpt"`
	FeaturedImageURL string `gorm:"size:255" json:"featured_image_url"`

	MetaTitle       string `gorm:"size:200" json:"meta_title"`
	MetaDescription string `gorm:"size:300" json:"meta_description"`

	IsPublished bool       `gorm:"default:false" json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorName  string     `gorm:"size:100;not null" json:"author_name"`

	ViewsCount int `gorm:"default:0" json:"views_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQ is a frequently asked question, ordered within its category.
type FAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"size:300;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Category  string    `gorm:"size:20;not null" json:"category"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

package content

import (
	"context"
	"errors"
	"time"

	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"
	"github.com/steve-ongera/carsoko/internal/pkg/slugs"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound        = errors.New("Post not found")
	ErrTestimonialNotFound = errors.New("Testimonial not found")
	ErrFAQNotFound         = errors.New("FAQ not found")
	ErrInvalidRating       = errors.New("Rating must be between 1 and 5")
)

var validFAQCategories = map[string]bool{
	models.FAQCategoryBuying:    true,
	models.FAQCategorySelling:   true,
	models.FAQCategoryRental:    true,
	models.FAQCategoryFinancing: true,
	models.FAQCategoryGeneral:   true,
}

// Service serves the marketing content: testimonials, blog posts, FAQs and
// the business configuration.
type Service struct {
	DB *gorm.DB
}

// ApprovedTestimonials lists approved testimonials newest first, optionally
// only the featured ones.
func (s *Service) ApprovedTestimonials(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	q := s.DB.WithContext(ctx).Where("is_approved = ?", true)
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	testimonials := []models.Testimonial{}
	if err := q.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

type TestimonialInput struct {
	CustomerName     string
	CustomerLocation string
	Message          string
	Rating           int
	CarID            *uint
}

// CreateTestimonial records customer feedback. New testimonials start
// unapproved and only appear publicly after moderation.
func (s *Service) CreateTestimonial(ctx context.Context, in TestimonialInput) (*models.Testimonial, error) {
	if in.CustomerName == "" || in.Message == "" {
		return nil, errors.New("Please fill in all required fields")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}
	t := models.Testimonial{
		CustomerName:     in.CustomerName,
		CustomerLocation: in.CustomerLocation,
		Message:          in.Message,
		Rating:           in.Rating,
		CarID:            in.CarID,
	}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ModerateTestimonial flips the approved/featured flags from the operator
// surface.
func (s *Service) ModerateTestimonial(ctx context.Context, id uint, approved, featured bool) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.DB.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	updates := map[string]interface{}{"is_approved": approved, "is_featured": featured}
	if err := s.DB.WithContext(ctx).Model(&t).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// PublishedPosts lists published posts newest first, paginated.
func (s *Service) PublishedPosts(ctx context.Context, params pagination.Params) ([]models.BlogPost, pagination.Window, error) {
	q := s.DB.WithContext(ctx).Model(&models.BlogPost{}).
		Where("is_published = ? AND published_at <= ?", true, time.Now())

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Window{}, err
	}
	window := params.Clamp(total)

	posts := []models.BlogPost{}
	listQ := q.Order("published_at DESC").Offset(window.Offset)
	if window.Limit > 0 {
		listQ = listQ.Limit(window.Limit)
	}
	if err := listQ.Find(&posts).Error; err != nil {
		return nil, pagination.Window{}, err
	}
	return posts, window, nil
}

// PostBySlug returns one published post and counts the read.
func (s *Service) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.DB.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(&models.BlogPost{}).
		Where("id = ?", post.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	post.ViewsCount++
	return &post, nil
}

type PostInput struct {
	Title            string
	Content          string
	Excerpt          string
	FeaturedImageURL string
	MetaTitle        string
	MetaDescription  string
	AuthorName       string
	IsPublished      bool
	PublishedAt      *time.Time
}

// CreatePost creates a blog post with a collision-safe slug derived from the
// title. Publishing without an explicit timestamp stamps it now.
func (s *Service) CreatePost(ctx context.Context, in PostInput) (*models.BlogPost, error) {
	if in.Title == "" || in.Content == "" || in.AuthorName == "" {
		return nil, errors.New("Please fill in all required fields")
	}

	postSlug, err := slugs.Unique(in.Title, func(candidate string) (bool, error) {
		var count int64
		err := s.DB.WithContext(ctx).Model(&models.BlogPost{}).
			Where("slug = ?", candidate).
			Count(&count).Error
		return count > 0, err
	})
	if err != nil {
		return nil, err
	}

	publishedAt := in.PublishedAt
	if in.IsPublished && publishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}

	post := models.BlogPost{
		Title:            in.Title,
		Slug:             postSlug,
		Content:          in.Content,
		Excerpt:          in.Excerpt,
		FeaturedImageURL: in.FeaturedImageURL,
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
		AuthorName:       in.AuthorName,
		IsPublished:      in.IsPublished,
		PublishedAt:      publishedAt,
	}
	if err := s.DB.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ActiveFAQs lists active FAQs, optionally for one category, in category then
// sort order.
func (s *Service) ActiveFAQs(ctx context.Context, category string) ([]models.FAQ, error) {
	q := s.DB.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	faqs := []models.FAQ{}
	if err := q.Order("category, sort_order, id").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

type FAQInput struct {
	Question  string
	Answer    string
	Category  string
	SortOrder int
	IsActive  *bool
}

func (s *Service) CreateFAQ(ctx context.Context, in FAQInput) (*models.FAQ, error) {
	if in.Question == "" || in.Answer == "" {
		return nil, errors.New("Please fill in all required fields")
	}
	category := in.Category
	if !validFAQCategories[category] {
		category = models.FAQCategoryGeneral
	}
	faq := models.FAQ{
		Question:  in.Question,
		Answer:    in.Answer,
		Category:  category,
		SortOrder: in.SortOrder,
		IsActive:  true,
	}
	if in.IsActive != nil {
		faq.IsActive = *in.IsActive
	}
	if err := s.DB.WithContext(ctx).Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *Service) DeleteFAQ(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.FAQ{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}

// BusinessConfig returns the dealership settings, nil when none are set up.
func (s *Service) BusinessConfig(ctx context.Context) (*models.BusinessConfig, error) {
	var cfg models.BusinessConfig
	err := s.DB.WithContext(ctx).Order("id").First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertBusinessConfig updates the first config row or creates it.
func (s *Service) UpsertBusinessConfig(ctx context.Context, in models.BusinessConfig) (*models.BusinessConfig, error) {
	if in.BusinessName == "" {
		return nil, errors.New("Business name is required")
	}
	existing, err := s.BusinessConfig(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.DB.WithContext(ctx).Create(&in).Error; err != nil {
			return nil, err
		}
		return &in, nil
	}
	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.DB.WithContext(ctx).Save(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

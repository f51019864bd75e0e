package content

import (
	"context"
	"testing"
	"time"

	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContentTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Testimonial{}, &models.BlogPost{}, &models.FAQ{},
		&models.BusinessConfig{},
	))
	return &Service{DB: db}, db
}

func TestCreateTestimonial_RatingBounds(t *testing.T) {
	svc, _ := setupContentTest(t)
	ctx := context.Background()

	_, err := svc.CreateTestimonial(ctx, TestimonialInput{CustomerName: "Jane", Message: "Great", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.CreateTestimonial(ctx, TestimonialInput{CustomerName: "Jane", Message: "Great", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	created, err := svc.CreateTestimonial(ctx, TestimonialInput{CustomerName: "Jane", Message: "Great", Rating: 5})
	require.NoError(t, err)
	assert.False(t, created.IsApproved, "new testimonials await moderation")
}

func TestApprovedTestimonials_ModerationGate(t *testing.T) {
	svc, _ := setupContentTest(t)
	ctx := context.Background()

	created, err := svc.CreateTestimonial(ctx, TestimonialInput{CustomerName: "Jane", Message: "Great", Rating: 5})
	require.NoError(t, err)

	visible, err := svc.ApprovedTestimonials(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.ModerateTestimonial(ctx, created.ID, true, true)
	require.NoError(t, err)

	visible, err = svc.ApprovedTestimonials(ctx, true)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestCreatePost_SlugCollision(t *testing.T) {
	svc, _ := setupContentTest(t)
	ctx := context.Background()

	in := PostInput{Title: "Buying Your First Car", Content: "...", AuthorName: "Steve"}
	first, err := svc.CreatePost(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "buying-your-first-car", first.Slug)

	second, err := svc.CreatePost(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "buying-your-first-car-1", second.Slug)
}

func TestCreatePost_PublishStampsTimestamp(t *testing.T) {
	svc, _ := setupContentTest(t)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, PostInput{
		Title: "News", Content: "...", AuthorName: "Steve", IsPublished: true,
	})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)

	draft, err := svc.CreatePost(ctx, PostInput{
		Title: "Draft", Content: "...", AuthorName: "Steve",
	})
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)
}

func TestPostBySlug_CountsReadAndHidesDrafts(t *testing.T) {
	svc, db := setupContentTest(t)
	ctx := context.Background()

	published, err := svc.CreatePost(ctx, PostInput{
		Title: "News", Content: "...", AuthorName: "Steve", IsPublished: true,
	})
	require.NoError(t, err)
	draft, err := svc.CreatePost(ctx, PostInput{
		Title: "Draft", Content: "...", AuthorName: "Steve",
	})
	require.NoError(t, err)

	post, err := svc.PostBySlug(ctx, published.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, post.ViewsCount)

	var reloaded models.BlogPost
	require.NoError(t, db.First(&reloaded, published.ID).Error)
	assert.Equal(t, 1, reloaded.ViewsCount)

	_, err = svc.PostBySlug(ctx, draft.Slug)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPublishedPosts_ExcludesFutureAndDrafts(t *testing.T) {
	svc, db := setupContentTest(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, PostInput{
		Title: "Live", Content: "...", AuthorName: "Steve", IsPublished: true,
	})
	require.NoError(t, err)

	future := time.Now().Add(24 * time.Hour)
	require.NoError(t, db.Create(&models.BlogPost{
		Title: "Scheduled", Slug: "scheduled", Content: "...",
		AuthorName: "Steve", IsPublished: true, PublishedAt: &future,
	}).Error)

	posts, window, err := svc.PublishedPosts(ctx, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Live", posts[0].Title)
	assert.EqualValues(t, 1, window.TotalItems)
}

func TestActiveFAQs_CategoryAndOrder(t *testing.T) {
	svc, _ := setupContentTest(t)
	ctx := context.Background()

	_, err := svc.CreateFAQ(ctx, FAQInput{Question: "B?", Answer: "B", Category: models.FAQCategoryBuying, SortOrder: 2})
	require.NoError(t, err)
	_, err = svc.CreateFAQ(ctx, FAQInput{Question: "A?", Answer: "A", Category: models.FAQCategoryBuying, SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.CreateFAQ(ctx, FAQInput{Question: "R?", Answer: "R", Category: models.FAQCategoryRental})
	require.NoError(t, err)

	inactive := false
	_, err = svc.CreateFAQ(ctx, FAQInput{Question: "Hidden?", Answer: "H", Category: models.FAQCategoryBuying, IsActive: &inactive})
	require.NoError(t, err)

	buying, err := svc.ActiveFAQs(ctx, models.FAQCategoryBuying)
	require.NoError(t, err)
	require.Len(t, buying, 2)
	assert.Equal(t, "A?", buying[0].Question)
	assert.Equal(t, "B?", buying[1].Question)

	all, err := svc.ActiveFAQs(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateFAQ_UnknownCategoryFallsBack(t *testing.T) {
	svc, _ := setupContentTest(t)
	ctx := context.Background()

	faq, err := svc.CreateFAQ(ctx, FAQInput{Question: "Q?", Answer: "A", Category: "misc"})
	require.NoError(t, err)
	assert.Equal(t, models.FAQCategoryGeneral, faq.Category)
}

func TestBusinessConfig_Upsert(t *testing.T) {
	svc, db := setupContentTest(t)
	ctx := context.Background()

	cfg, err := svc.BusinessConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	created, err := svc.UpsertBusinessConfig(ctx, models.BusinessConfig{BusinessName: "Carsoko Motors"})
	require.NoError(t, err)

	updated, err := svc.UpsertBusinessConfig(ctx, models.BusinessConfig{
		BusinessName:   "Carsoko Motors Ltd",
		WhatsAppNumber: "+254712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	var count int64
	require.NoError(t, db.Model(&models.BusinessConfig{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

package leads

import (
	"context"
	"testing"

	"github.com/steve-ongera/carsoko/internal/models"
	"github.com/steve-ongera/carsoko/internal/pkg/pagination"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupLeadsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Brand{}, &models.CarModel{}, &models.Location{}, &models.Car{},
		&models.CustomerInquiry{}, &models.NewsletterSubscription{},
		&models.ContactMessage{}, &models.BusinessConfig{},
	))
	return &Service{DB: db, Currency: "KES"}, db
}

func seedInquiryCar(t *testing.T, db *gorm.DB) models.Car {
	brand := models.Brand{Name: "Toyota", Slug: "toyota"}
	require.NoError(t, db.Create(&brand).Error)
	model := models.CarModel{BrandID: brand.ID, Name: "Corolla", BodyType: models.BodySedan}
	require.NoError(t, db.Create(&model).Error)
	location := models.Location{Name: "Westlands", County: "Nairobi", IsActive: true}
	require.NoError(t, db.Create(&location).Error)
	car := models.Car{
		BrandID: brand.ID, CarModelID: model.ID, LocationID: location.ID,
		Year: 2019, Condition: models.ConditionUsedForeign,
		FuelType: "petrol", Transmission: "automatic", DriveType: "2wd",
		Doors: 4, Seats: 5, Price: 1250000,
		Status: models.CarStatusAvailable, Slug: "2019-toyota-corolla",
	}
	require.NoError(t, db.Create(&car).Error)
	return car
}

func TestSubmitInquiry_MissingFieldsPersistsNothing(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()

	_, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{CustomerName: "Jane"})
	assert.ErrorIs(t, err, ErrMissingFields)

	var count int64
	require.NoError(t, db.Model(&models.CustomerInquiry{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSubmitInquiry_Defaults(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()

	result, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
		CustomerName:     "Jane",
		CustomerPhone:    "0712345678",
		Message:          "Is this available?",
		InquiryType:      "haggle",
		PreferredContact: "fax",
	})
	require.NoError(t, err)
	assert.Equal(t, "Thank you for your inquiry! We will contact you soon.", result.Message)
	assert.Empty(t, result.WhatsAppURL)

	var inquiry models.CustomerInquiry
	require.NoError(t, db.First(&inquiry, result.InquiryID).Error)
	assert.Equal(t, models.InquiryTypeGeneral, inquiry.InquiryType)
	assert.Equal(t, models.ContactMethodWhatsApp, inquiry.PreferredContactMethod)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)
	assert.Nil(t, inquiry.CarID)
}

func TestSubmitInquiry_UnresolvableCarLeftUnlinked(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()

	ghost := uint(9999)
	result, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
		CarID:         &ghost,
		CustomerName:  "Jane",
		CustomerPhone: "0712345678",
		Message:       "Interested",
	})
	require.NoError(t, err)

	var inquiry models.CustomerInquiry
	require.NoError(t, db.First(&inquiry, result.InquiryID).Error)
	assert.Nil(t, inquiry.CarID)
}

func TestSubmitInquiry_WhatsAppEnrichment(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()
	car := seedInquiryCar(t, db)
	require.NoError(t, db.Create(&models.BusinessConfig{
		BusinessName:            "Carsoko Motors",
		WhatsAppNumber:          "+254712345678",
		WhatsAppMessageTemplate: "Interested in {car_year} {car_brand} {car_model} at {car_price}",
	}).Error)

	result, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
		CarID:         &car.ID,
		CustomerName:  "Jane",
		CustomerPhone: "0712345678",
		Message:       "Interested",
	})
	require.NoError(t, err)
	assert.Contains(t, result.WhatsAppURL, "https://wa.me/254712345678?text=")
	assert.Contains(t, result.WhatsAppURL, "Corolla")

	var inquiry models.CustomerInquiry
	require.NoError(t, db.First(&inquiry, result.InquiryID).Error)
	require.NotNil(t, inquiry.CarID)
	assert.Equal(t, car.ID, *inquiry.CarID)
}

func TestSubmitInquiry_EnrichmentFailureSwallowed(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()
	car := seedInquiryCar(t, db)
	// No business config: the inquiry still succeeds, just without a link.

	result, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
		CarID:         &car.ID,
		CustomerName:  "Jane",
		CustomerPhone: "0712345678",
		Message:       "Interested",
	})
	require.NoError(t, err)
	assert.Empty(t, result.WhatsAppURL)
}

func TestSubscribe_ThreeOutcomes(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()

	result, err := svc.Subscribe(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for subscribing to our newsletter!", result.Message)

	_, err = svc.Subscribe(ctx, "jane@example.com")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	require.NoError(t, db.Model(&models.NewsletterSubscription{}).
		Where("email = ?", "jane@example.com").
		Update("is_active", false).Error)

	result, err = svc.Subscribe(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Welcome back! Your subscription has been reactivated.", result.Message)
	assert.True(t, result.Reactivated)

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscription{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	svc, _ := setupLeadsTest(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "")
	assert.EqualError(t, err, "Email is required")

	_, err = svc.Subscribe(ctx, "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSubmitContactMessage_Validation(t *testing.T) {
	svc, db := setupLeadsTest(t)
	ctx := context.Background()

	_, err := svc.SubmitContactMessage(ctx, ContactMessageInput{Name: "Jane"})
	assert.ErrorIs(t, err, ErrMissingFields)

	msg, err := svc.SubmitContactMessage(ctx, ContactMessageInput{
		Name: "Jane", Email: "jane@example.com",
		Subject: "Trade-in", Message: "Do you take trade-ins?",
	})
	require.NoError(t, err)
	assert.False(t, msg.IsRead)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateInquiryStatus(t *testing.T) {
	svc, _ := setupLeadsTest(t)
	ctx := context.Background()

	result, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
		CustomerName: "Jane", CustomerPhone: "0712345678", Message: "Interested",
	})
	require.NoError(t, err)

	notes := "Called, call back Monday"
	inquiry, err := svc.UpdateInquiryStatus(ctx, result.InquiryID, models.InquiryStatusContacted, &notes)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusContacted, inquiry.Status)
	assert.Equal(t, notes, inquiry.Notes)

	_, err = svc.UpdateInquiryStatus(ctx, result.InquiryID, "ghosted", nil)
	assert.EqualError(t, err, "Invalid inquiry status")

	_, err = svc.UpdateInquiryStatus(ctx, 9999, models.InquiryStatusClosed, nil)
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestListInquiries_StatusFilter(t *testing.T) {
	svc, _ := setupLeadsTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
			CustomerName: "Jane", CustomerPhone: "0712345678", Message: "Interested",
		})
		require.NoError(t, err)
	}
	first, err := svc.SubmitInquiry(ctx, SubmitInquiryInput{
		CustomerName: "Bob", CustomerPhone: "0700000000", Message: "Price?",
	})
	require.NoError(t, err)
	_, err = svc.UpdateInquiryStatus(ctx, first.InquiryID, models.InquiryStatusClosed, nil)
	require.NoError(t, err)

	inquiries, window, err := svc.ListInquiries(ctx, models.InquiryStatusNew, pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, inquiries, 3)
	assert.EqualValues(t, 3, window.TotalItems)
}

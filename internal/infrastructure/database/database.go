package database

import (
	"github.com/steve-ongera/carsoko/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN. PreferSimpleProtocol disables prepared
// statement caching to avoid 42P05 ("prepared statement already exists")
// when running behind connection poolers (PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all catalog, lead and content models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Brand{},
		&models.CarModel{},
		&models.Location{},
		&models.Car{},
		&models.CarImage{},
		&models.CarRental{},
		&models.CarComparison{},
		&models.CustomerInquiry{},
		&models.NewsletterSubscription{},
		&models.ContactMessage{},
		&models.BusinessConfig{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.FAQ{},
	)
}

package router

import (
	"net/http"

	catsvc "github.com/steve-ongera/carsoko/internal/application/catalog"
	contsvc "github.com/steve-ongera/carsoko/internal/application/content"
	leadsvc "github.com/steve-ongera/carsoko/internal/application/leads"
	"github.com/steve-ongera/carsoko/internal/config"
	"github.com/steve-ongera/carsoko/internal/infrastructure/cache"
	"github.com/steve-ongera/carsoko/internal/infrastructure/database"
	adminhandler "github.com/steve-ongera/carsoko/internal/interfaces/handlers/admin"
	cathandler "github.com/steve-ongera/carsoko/internal/interfaces/handlers/catalog"
	conthandler "github.com/steve-ongera/carsoko/internal/interfaces/handlers/content"
	leadhandler "github.com/steve-ongera/carsoko/internal/interfaces/handlers/leads"
	"github.com/steve-ongera/carsoko/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp wires the dealership API. The DB connection is optional so the
// route table can be inspected without a database; the Redis client is
// optional and only accelerates the filter vocabulary.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	rdb, err := cache.Open(cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if db != nil {
		catalogSvc := &catsvc.Service{DB: db, Rdb: rdb}
		leadsSvc := &leadsvc.Service{DB: db, Currency: cfg.Currency}
		contentSvc := &contsvc.Service{DB: db}

		ch := &cathandler.Handlers{Service: catalogSvc}
		lh := &leadhandler.Handlers{Service: leadsSvc}
		coh := &conthandler.Handlers{Service: contentSvc}
		ah := &adminhandler.Handlers{Catalog: catalogSvc, Leads: leadsSvc, Content: contentSvc}

		v1 := app.Group("/api/v1")

		// Catalog
		v1.Get("/home", ch.GetHomepage)
		v1.Get("/cars", ch.SearchCars)
		v1.Get("/cars/slug/:slug", ch.GetCarBySlug)
		v1.Get("/cars/:car_id/quick-view", ch.GetCarQuickView)
		v1.Get("/brands", ch.GetBrands)
		v1.Get("/brands/:brand_id/models", ch.GetModelsByBrand)
		v1.Get("/filter-options", ch.GetFilterOptions)
		v1.Post("/comparisons", ch.CreateComparison)
		v1.Get("/comparisons/:session_key", ch.GetComparison)

		// Leads
		v1.Post("/inquiries", lh.SubmitInquiry)
		v1.Post("/newsletter/subscribe", lh.Subscribe)
		v1.Post("/contact", lh.SubmitContactMessage)

		// Content
		v1.Get("/testimonials", coh.GetTestimonials)
		v1.Post("/testimonials", coh.CreateTestimonial)
		v1.Get("/blog", coh.GetPosts)
		v1.Get("/blog/:slug", coh.GetPostBySlug)
		v1.Get("/faqs", coh.GetFAQs)
		v1.Get("/business", coh.GetBusinessConfig)

		// Operator surface
		admin := v1.Group("/admin")
		admin.Post("/brands", ah.CreateBrand)
		admin.Patch("/brands/:brand_id", ah.UpdateBrand)
		admin.Delete("/brands/:brand_id", ah.DeleteBrand)
		admin.Post("/models", ah.CreateCarModel)
		admin.Delete("/models/:model_id", ah.DeleteCarModel)
		admin.Post("/locations", ah.CreateLocation)
		admin.Get("/locations", ah.GetLocations)
		admin.Delete("/locations/:location_id", ah.DeleteLocation)
		admin.Post("/cars", ah.CreateCar)
		admin.Patch("/cars/:car_id", ah.UpdateCar)
		admin.Delete("/cars/:car_id", ah.DeleteCar)
		admin.Post("/cars/:car_id/images", ah.AddCarImage)
		admin.Patch("/images/:image_id/primary", ah.SetPrimaryImage)
		admin.Delete("/images/:image_id", ah.DeleteCarImage)
		admin.Put("/cars/:car_id/rental", ah.UpsertRental)
		admin.Delete("/cars/:car_id/rental", ah.DeleteRental)
		admin.Get("/inquiries", ah.GetInquiries)
		admin.Patch("/inquiries/:inquiry_id/status", ah.UpdateInquiryStatus)
		admin.Patch("/testimonials/:testimonial_id/moderate", ah.ModerateTestimonial)
		admin.Post("/blog", ah.CreatePost)
		admin.Post("/faqs", ah.CreateFAQ)
		admin.Delete("/faqs/:faq_id", ah.DeleteFAQ)
		admin.Put("/business", ah.UpsertBusinessConfig)
	}

	return app, db, rdb, nil
}

func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}

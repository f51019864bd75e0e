package bootstrap

import (
	"github.com/steve-ongera/carsoko/internal/config"
	"github.com/steve-ongera/carsoko/internal/interfaces/router"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New loads configuration and assembles the app with its backing
// connections. The binary entry point and embedding deployments both start
// from here.
func New() (*fiber.App, *config.Config, *gorm.DB, *redis.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	app, db, rdb, err := router.CreateApp(cfg)
	return app, cfg, db, rdb, err
}

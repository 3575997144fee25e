package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/afume/internal/config"
	"github.com/example/afume/internal/database"
	"github.com/example/afume/internal/handlers"
	"github.com/example/afume/internal/logger"
	"github.com/example/afume/internal/routes"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := database.Connect(cfg.DatabaseURL, log)

	app := fiber.New(fiber.Config{
		AppName:      "Afume Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	routes.Register(app, db, cfg)

	log.Infow("starting server", "port", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalw("fiber.Listen error", "error", err)
	}
}

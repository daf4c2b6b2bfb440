package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/mcalvert/outings-api/internal/config"
	"github.com/mcalvert/outings-api/internal/database"
	"github.com/mcalvert/outings-api/internal/logger"
	"github.com/mcalvert/outings-api/internal/routes"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if err := database.Connect(cfg); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := database.Seed(); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to seed emoticons")
	}

	app := fiber.New(fiber.Config{
		AppName: "outings-api",
	})
	app.Use(recover.New())
	app.Use(cors.New())

	routes.Setup(app)

	logger.Log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}

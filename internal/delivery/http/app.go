package http

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/weatherstation/client/internal/domain"
)

// NewApp builds the fiber app with middleware and routes wired to provider
func NewApp(provider domain.WeatherProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Weather Station API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorHandler: ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	SetupRoutes(app, provider)
	return app
}

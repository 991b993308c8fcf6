package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/weatherstation/client/internal/domain"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, provider domain.WeatherProvider) {
	handler := NewHandler(provider)

	app.Use(RequestID())

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/weather", handler.GetWeather)
	}
}

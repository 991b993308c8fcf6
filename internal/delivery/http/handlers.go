package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/weatherstation/client/internal/domain"
	"github.com/weatherstation/client/internal/presenter"
)

// Handler contains all HTTP handlers
type Handler struct {
	provider domain.WeatherProvider
}

// NewHandler creates a new handler
func NewHandler(provider domain.WeatherProvider) *Handler {
	return &Handler{provider: provider}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weatherstation",
		"version": "1.0.0",
	})
}

// GetWeather returns current weather and its rendered report for ?city=&country=
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	query := domain.NewWeatherQuery(c.Query("city"), c.Query("country"))
	if query.City == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'city' is required")
	}

	weather, err := h.provider.GetCurrentWeather(c.UserContext(), query)
	if err != nil {
		return err
	}

	report, err := presenter.Render(weather)
	if err != nil {
		return err
	}

	return c.JSON(domain.WeatherResponse{
		Data:    weather,
		Report:  report.DTO(),
		Success: true,
	})
}

// ErrorHandler maps lookup failures onto HTTP status codes
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	var fetchErr *domain.FetchError
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.As(err, &fetchErr):
		code = fiber.StatusBadGateway
		if fetchErr.Kind == domain.FetchStatus && fetchErr.StatusCode == fiber.StatusNotFound {
			code = fiber.StatusNotFound
		}
		message = strings.TrimPrefix(fetchErr.Error(), "weather: ")
	case errors.Is(err, domain.ErrNoConditions):
		code = fiber.StatusBadGateway
		message = strings.TrimPrefix(err.Error(), "weather: ")
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

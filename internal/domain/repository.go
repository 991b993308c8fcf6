package domain

import "context"

// WeatherProvider defines the interface for current-weather lookups.
// The domain owns the interface; service implements it and delivery consumes it.
type WeatherProvider interface {
	// GetCurrentWeather performs one lookup for the query, no retries
	GetCurrentWeather(ctx context.Context, query WeatherQuery) (Weather, error)
}

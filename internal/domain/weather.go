package domain

import "strings"

// WeatherQuery identifies the location a lookup is made for
type WeatherQuery struct {
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

// NewWeatherQuery builds a query from raw user input, trimming surrounding whitespace
func NewWeatherQuery(city, countryCode string) WeatherQuery {
	return WeatherQuery{
		City:        strings.TrimSpace(city),
		CountryCode: strings.TrimSpace(countryCode),
	}
}

// Condition is a single provider weather condition entry
type Condition struct {
	Description string `json:"description"`
}

// Weather represents current conditions for a location, metric units
type Weather struct {
	LocationName       string      `json:"location_name"`
	Conditions         []Condition `json:"conditions"`
	TemperatureCelsius float64     `json:"temperature_celsius"`
	HumidityPercent    float64     `json:"humidity_percent"`
	PressureHpa        float64     `json:"pressure_hpa"`
	WindSpeedMps       float64     `json:"wind_speed_mps"`
}

// Description returns the first condition's description.
// It fails with ErrNoConditions when the provider sent none.
func (w Weather) Description() (string, error) {
	if len(w.Conditions) == 0 {
		return "", ErrNoConditions
	}
	return w.Conditions[0].Description, nil
}

// Report is a rendered weather block ready for display
type Report struct {
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
	Tone  string `json:"tone"`
}

// WeatherResponse wraps weather data with metadata
type WeatherResponse struct {
	Data    Weather `json:"data"`
	Report  Report  `json:"report"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
}

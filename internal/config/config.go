package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"
	defaultTimeout = 10 * time.Second
)

// ErrMissingAPIKey is returned when OPENWEATHER_API_KEY is not set
var ErrMissingAPIKey = errors.New("config: OPENWEATHER_API_KEY is not set")

// Config holds runtime settings sourced from the environment
type Config struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	RequestTimeout     time.Duration
	NoColor            bool
	Port               string
	Env                string
}

// Load reads an optional .env file, then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() (*Config, error) {
	cfg := &Config{
		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", defaultBaseURL),
		NoColor:            getEnv("NO_COLOR", "") != "",
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("GO_ENV", "development"),
	}

	timeout, err := getEnvDuration("WEATHER_HTTP_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	if cfg.OpenWeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative, got %s", key, value)
	}
	return d, nil
}

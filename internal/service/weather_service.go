package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/weatherstation/client/internal/domain"
)

const (
	// DefaultBaseURL is the OpenWeatherMap API root
	DefaultBaseURL = "https://api.openweathermap.org"

	currentWeatherPath = "/data/2.5/weather"
	errorBodyLimit     = 4 << 10
)

var _ domain.WeatherProvider = (*WeatherService)(nil)

// WeatherService handles weather data fetching
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewWeatherService creates a new weather service.
// An empty baseURL falls back to DefaultBaseURL; a zero timeout disables the client timeout.
func NewWeatherService(apiKey, baseURL string, timeout time.Duration) *WeatherService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// OpenWeatherResponse represents the OpenWeatherMap API response.
// Pointer fields let missing keys be told apart from zero values.
type OpenWeatherResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		Pressure *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Name *string `json:"name"`
}

// openWeatherError is the body OpenWeatherMap sends with non-2xx answers
type openWeatherError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// GetCurrentWeather fetches current weather for the queried city
func (s *WeatherService) GetCurrentWeather(ctx context.Context, query domain.WeatherQuery) (domain.Weather, error) {
	endpoint, err := s.requestURL(query)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather: failed to build request url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.Weather{}, &domain.FetchError{Kind: domain.FetchNetwork, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Weather{}, &domain.FetchError{
			Kind:       domain.FetchStatus,
			StatusCode: resp.StatusCode,
			Message:    providerMessage(resp.Body),
		}
	}

	var owResp OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return domain.Weather{}, &domain.FetchError{Kind: domain.FetchDecode, StatusCode: resp.StatusCode, Err: err}
	}

	weather, err := owResp.toDomain()
	if err != nil {
		return domain.Weather{}, &domain.FetchError{Kind: domain.FetchDecode, StatusCode: resp.StatusCode, Err: err}
	}
	return weather, nil
}

// requestURL builds <base>/data/2.5/weather?q=<city>,<country>&units=metric&appid=<key>
// with every parameter percent-encoded.
func (s *WeatherService) requestURL(query domain.WeatherQuery) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	u = u.JoinPath(currentWeatherPath)

	params := url.Values{}
	params.Set("q", query.City+","+query.CountryCode)
	params.Set("units", "metric")
	params.Set("appid", s.apiKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func (r OpenWeatherResponse) toDomain() (domain.Weather, error) {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Weather == nil {
		missing = append(missing, "weather")
	}
	if r.Main == nil {
		missing = append(missing, "main")
	} else {
		if r.Main.Temp == nil {
			missing = append(missing, "main.temp")
		}
		if r.Main.Humidity == nil {
			missing = append(missing, "main.humidity")
		}
		if r.Main.Pressure == nil {
			missing = append(missing, "main.pressure")
		}
	}
	if r.Wind == nil {
		missing = append(missing, "wind")
	} else if r.Wind.Speed == nil {
		missing = append(missing, "wind.speed")
	}

	conditions := make([]domain.Condition, 0, len(r.Weather))
	for i, w := range r.Weather {
		if w.Description == nil {
			missing = append(missing, fmt.Sprintf("weather[%d].description", i))
			continue
		}
		conditions = append(conditions, domain.Condition{Description: *w.Description})
	}

	if len(missing) > 0 {
		return domain.Weather{}, fmt.Errorf("missing field(s): %s", strings.Join(missing, ", "))
	}
	if len(conditions) == 0 {
		return domain.Weather{}, domain.ErrNoConditions
	}

	return domain.Weather{
		LocationName:       *r.Name,
		Conditions:         conditions,
		TemperatureCelsius: *r.Main.Temp,
		HumidityPercent:    *r.Main.Humidity,
		PressureHpa:        *r.Main.Pressure,
		WindSpeedMps:       *r.Wind.Speed,
	}, nil
}

// providerMessage extracts the "message" field of an error body, best effort
func providerMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, errorBodyLimit))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var owErr openWeatherError
	if err := json.Unmarshal(raw, &owErr); err != nil {
		return ""
	}
	return owErr.Message
}

// redactKey strips the request URL, and with it the appid, from transport errors
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}

// Package presenter turns weather data into the colored text block shown to users.
package presenter

import (
	"fmt"
	"math"

	"github.com/weatherstation/client/internal/domain"
)

type emojiBand struct {
	below float64
	emoji string
}

// temperatureBands are half-open intervals [prev, below), checked in order
var temperatureBands = []emojiBand{
	{below: 0, emoji: "❄️"},
	{below: 10, emoji: "☁️"},
	{below: 20, emoji: "⛅"},
	{below: 30, emoji: "🌤️"},
	{below: math.Inf(1), emoji: "🔥"},
}

// descriptionTones maps provider descriptions to a tone; exact, case-sensitive match
var descriptionTones = map[string]Tone{
	"clear sky": ToneBrightYellow,

	"few clouds":       ToneBrightBlue,
	"scattered clouds": ToneBrightBlue,
	"broken clouds":    ToneBrightBlue,

	"overcast clouds": ToneDimmed,
	"mist":            ToneDimmed,
	"haze":            ToneDimmed,
	"smoke":           ToneDimmed,
	"sand":            ToneDimmed,
	"dust":            ToneDimmed,
	"fog":             ToneDimmed,
	"squalls":         ToneDimmed,

	"shower rain":  ToneBrightCyan,
	"rain":         ToneBrightCyan,
	"thunderstorm": ToneBrightCyan,
	"snow":         ToneBrightCyan,
}

// TemperatureEmoji picks the emoji for a temperature in °C
func TemperatureEmoji(celsius float64) string {
	for _, band := range temperatureBands {
		if celsius < band.below {
			return band.emoji
		}
	}
	// NaN compares false against every band
	return temperatureBands[len(temperatureBands)-1].emoji
}

// ToneFor returns the tone for a weather description, ToneDefault when unknown
func ToneFor(description string) Tone {
	if tone, ok := descriptionTones[description]; ok {
		return tone
	}
	return ToneDefault
}

// Report is a formatted weather block plus the tone it is displayed in
type Report struct {
	Text  string
	Emoji string
	Tone  Tone
}

// Colored returns the report text wrapped in its tone's escape codes
func (r Report) Colored() string {
	return r.Tone.Paint(r.Text)
}

// DTO converts the report for JSON delivery
func (r Report) DTO() domain.Report {
	return domain.Report{Text: r.Text, Emoji: r.Emoji, Tone: r.Tone.String()}
}

// Render formats weather data into the five-line block
func Render(w domain.Weather) (Report, error) {
	description, err := w.Description()
	if err != nil {
		return Report{}, err
	}

	emoji := TemperatureEmoji(w.TemperatureCelsius)
	text := fmt.Sprintf(
		"Weather in %s: %s %s\n"+
			"> Temperature: %.1f°C,\n"+
			"> Humidity: %.1f%%,\n"+
			"> Pressure: %.1f hPa,\n"+
			"> Wind Speed: %.1f m/s",
		w.LocationName, description, emoji,
		w.TemperatureCelsius,
		w.HumidityPercent,
		w.PressureHpa,
		w.WindSpeedMps,
	)

	return Report{
		Text:  text,
		Emoji: emoji,
		Tone:  ToneFor(description),
	}, nil
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/weatherstation/client/internal/domain"
	"github.com/weatherstation/client/internal/presenter"
)

// ErrInput marks a failure to read from the input source. It is not recoverable.
var ErrInput = errors.New("cli: failed to read input")

const (
	bannerText    = "Welcome to Weather Station!"
	cityPrompt    = "Please enter the name of the city:"
	countryPrompt = "Please enter the country code (e.g., US for United States):"
	againPrompt   = "Do you want to search for weather in another city? (yes/no):"
	farewellText  = "Thank you for using our software!"
)

// Session runs the interactive lookup loop over line-oriented input
type Session struct {
	provider domain.WeatherProvider
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
}

// NewSession creates a new session reading from in and writing to out/errOut
func NewSession(provider domain.WeatherProvider, in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		provider: provider,
		in:       bufio.NewReader(in),
		out:      out,
		errOut:   errOut,
	}
}

// Run loops until the user declines another lookup.
// A read failure aborts the loop with an error wrapping ErrInput.
func (s *Session) Run(ctx context.Context) error {
	s.println(presenter.ToneBrightYellow.Paint(bannerText))

	for {
		s.println(presenter.ToneBrightGreen.Paint(cityPrompt))
		city, err := s.readLine("city")
		if err != nil {
			return err
		}

		s.println(presenter.ToneBrightGreen.Paint(countryPrompt))
		country, err := s.readLine("country code")
		if err != nil {
			return err
		}

		s.lookup(ctx, domain.NewWeatherQuery(city, country))

		s.println(presenter.ToneBrightGreen.Paint(againPrompt))
		answer, err := s.readLine("answer")
		if err != nil {
			return err
		}
		if !WantsAnother(answer) {
			s.println(farewellText)
			return nil
		}
	}
}

// lookup fetches and prints one report; failures become an error line
func (s *Session) lookup(ctx context.Context, query domain.WeatherQuery) {
	weather, err := s.provider.GetCurrentWeather(ctx, query)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return
	}

	report, err := presenter.Render(weather)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return
	}
	s.println(report.Colored())
}

// readLine returns one line without surrounding whitespace.
// A last line ended by EOF rather than a newline still counts.
func (s *Session) readLine(what string) (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("%w: %s: %v", ErrInput, what, err)
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// WantsAnother reports whether a continuation answer asks for another lookup
func WantsAnother(answer string) bool {
	// Casers are stateful and must not be shared
	return cases.Lower(language.Und).String(strings.TrimSpace(answer)) == "yes"
}

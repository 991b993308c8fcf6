package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"

	"github.com/weatherstation/client/internal/domain"
)

type fakeProvider struct {
	queries []domain.WeatherQuery
	results []fakeResult
}

type fakeResult struct {
	weather domain.Weather
	err     error
}

func (f *fakeProvider) GetCurrentWeather(_ context.Context, query domain.WeatherQuery) (domain.Weather, error) {
	f.queries = append(f.queries, query)
	if len(f.results) == 0 {
		return domain.Weather{}, errors.New("no scripted result")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.weather, r.err
}

var testville = domain.Weather{
	LocationName:       "Testville",
	Conditions:         []domain.Condition{{Description: "clear sky"}},
	TemperatureCelsius: 21.3,
	HumidityPercent:    40.2,
	PressureHpa:        1012.0,
	WindSpeedMps:       3.4,
}

type SessionTestSuite struct {
	suite.Suite
	provider  *fakeProvider
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	prevColor bool
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.prevColor = color.NoColor
	color.NoColor = true
	s.provider = &fakeProvider{}
	s.out = &bytes.Buffer{}
	s.errOut = &bytes.Buffer{}
}

func (s *SessionTestSuite) TearDownTest() {
	color.NoColor = s.prevColor
}

func (s *SessionTestSuite) run(input string) error {
	return NewSession(s.provider, strings.NewReader(input), s.out, s.errOut).Run(context.Background())
}

func (s *SessionTestSuite) TestSingleLookup() {
	s.provider.results = []fakeResult{{weather: testville}}

	s.Require().NoError(s.run("  Testville \n tv\nno\n"))

	s.Equal([]domain.WeatherQuery{{City: "Testville", CountryCode: "tv"}}, s.provider.queries)
	s.Equal(strings.Join([]string{
		bannerText,
		cityPrompt,
		countryPrompt,
		"Weather in Testville: clear sky 🌤️",
		"> Temperature: 21.3°C,",
		"> Humidity: 40.2%,",
		"> Pressure: 1012.0 hPa,",
		"> Wind Speed: 3.4 m/s",
		againPrompt,
		farewellText,
		"",
	}, "\n"), s.out.String())
	s.Empty(s.errOut.String())
}

func (s *SessionTestSuite) TestLoopsWhileUserSaysYes() {
	s.provider.results = []fakeResult{{weather: testville}, {weather: testville}, {weather: testville}}

	s.Require().NoError(s.run("A\nAA\nyes\nB\nBB\n Yes \nC\nCC\nYES please\n"))

	s.Equal([]domain.WeatherQuery{
		{City: "A", CountryCode: "AA"},
		{City: "B", CountryCode: "BB"},
		{City: "C", CountryCode: "CC"},
	}, s.provider.queries)
	s.Equal(1, strings.Count(s.out.String(), farewellText))
}

func (s *SessionTestSuite) TestEmptyInputPassedThrough() {
	s.provider.results = []fakeResult{{weather: testville}}

	s.Require().NoError(s.run("\n   \n\n"))

	s.Equal([]domain.WeatherQuery{{}}, s.provider.queries)
}

func (s *SessionTestSuite) TestFetchFailureKeepsLooping() {
	s.provider.results = []fakeResult{
		{err: &domain.FetchError{Kind: domain.FetchStatus, StatusCode: 404, Message: "city not found"}},
		{weather: testville},
	}

	s.Require().NoError(s.run("Nowhere\nXX\nyes\nTestville\nTV\nno\n"))

	s.Equal("Error: weather: provider returned status 404: city not found\n", s.errOut.String())
	s.Len(s.provider.queries, 2)
	s.Equal(1, strings.Count(s.out.String(), "Weather in"))
	s.Equal(2, strings.Count(s.out.String(), againPrompt))
}

func (s *SessionTestSuite) TestEmptyConditionsReportedNotRendered() {
	s.provider.results = []fakeResult{{weather: domain.Weather{LocationName: "Testville"}}}

	s.Require().NoError(s.run("Testville\nTV\nno\n"))

	s.Contains(s.errOut.String(), "Error: ")
	s.Contains(s.errOut.String(), domain.ErrNoConditions.Error())
	s.NotContains(s.out.String(), "Weather in")
	s.Contains(s.out.String(), farewellText)
}

func (s *SessionTestSuite) TestInputFailureIsFatal() {
	for _, input := range []string{"", "Testville\n", "Testville\nTV\n"} {
		s.provider.results = []fakeResult{{weather: testville}}
		err := s.run(input)
		s.ErrorIs(err, ErrInput, "input %q", input)
	}
	s.NotContains(s.out.String(), farewellText)
}

func (s *SessionTestSuite) TestLastLineWithoutNewline() {
	s.provider.results = []fakeResult{{weather: testville}}

	s.Require().NoError(s.run("Testville\nTV\nno"))
	s.Contains(s.out.String(), farewellText)
}

func TestWantsAnother(t *testing.T) {
	for _, answer := range []string{"yes", "YES", " Yes ", "yes\n", "\tyEs\r\n"} {
		if !WantsAnother(answer) {
			t.Errorf("WantsAnother(%q) = false, want true", answer)
		}
	}
	for _, answer := range []string{"no", "y", "", "yes please", "ye s", "oui"} {
		if WantsAnother(answer) {
			t.Errorf("WantsAnother(%q) = true, want false", answer)
		}
	}
}

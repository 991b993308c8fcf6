package domain

import (
	"errors"
	"fmt"
)

// ErrNoConditions is returned when a provider response carries an empty condition list
var ErrNoConditions = errors.New("weather: response has no weather conditions")

// FetchErrorKind classifies a failed lookup
type FetchErrorKind int

const (
	// FetchNetwork covers transport failures: DNS, refused connections, timeouts
	FetchNetwork FetchErrorKind = iota
	// FetchStatus is a non-2xx answer from the provider
	FetchStatus
	// FetchDecode is a body that does not match the expected shape
	FetchDecode
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchNetwork:
		return "network"
	case FetchStatus:
		return "status"
	case FetchDecode:
		return "decode"
	default:
		return fmt.Sprintf("FetchErrorKind(%d)", int(k))
	}
}

// FetchError describes a failed weather lookup
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchStatus:
		if e.Message != "" {
			return fmt.Sprintf("weather: provider returned status %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("weather: provider returned status %d", e.StatusCode)
	case FetchDecode:
		return fmt.Sprintf("weather: failed to decode response: %v", e.Err)
	default:
		return fmt.Sprintf("weather: request failed: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

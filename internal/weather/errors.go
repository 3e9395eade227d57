package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the provider cannot resolve a location name.
	ErrNotFound = errors.New("location not found")
)

// NetworkError reports a transport or parse failure at some fetch stage.
// Any such failure is terminal for the current query; nothing retries it.
type NetworkError struct {
	Stage string // e.g. "current conditions", "forecast"
	Err   error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.Stage, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// GeoFailure classifies why device-location resolution failed.
type GeoFailure string

const (
	GeoPermissionDenied    GeoFailure = "permission denied"
	GeoPositionUnavailable GeoFailure = "position unavailable"
	GeoTimeout             GeoFailure = "timeout"
	GeoUnsupported         GeoFailure = "not supported"
)

// GeolocationError reports a failed device-location request.
type GeolocationError struct {
	Reason GeoFailure
	Err    error
}

func (e *GeolocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geolocation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("geolocation failed: %s", e.Reason)
}

func (e *GeolocationError) Unwrap() error { return e.Err }

// ConfigurationError reports a missing or placeholder provider credential.
// It is detected once at startup and blocks all queries.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is missing or not set", e.Field)
}

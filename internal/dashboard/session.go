// Package dashboard holds the per-session orchestration: resolving a
// location query into the current-conditions and forecast datasets, the
// periodic refresh target, and the read-only snapshot the UI renders.
package dashboard

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/vkuzmenko/weather-dashboard/internal/view"
	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

// maxForecastDays caps the displayed forecast; the aggregator itself does
// not truncate.
const maxForecastDays = 5

// Session owns one dashboard's mutable state: the resolved location, the
// active unit, and the last fetched payload. Everything is guarded by one
// mutex, written only after a completed fetch or an explicit command.
//
// Fetches run outside the lock, so a slow request superseded by a newer one
// is not cancelled and may overwrite its result; last writer wins.
type Session struct {
	provider weather.Provider
	locator  weather.Locator
	zone     *time.Location

	mu          sync.Mutex
	location    *weather.Location
	unit        weather.TemperatureUnit
	current     *weather.CurrentConditions
	days        []weather.DailySummary
	lastError   string
	lastUpdated time.Time
}

// NewSession creates a session in Celsius with no location resolved. The
// zone decides which calendar day a forecast sample belongs to; nil means
// the process-local zone.
func NewSession(provider weather.Provider, locator weather.Locator, zone *time.Location) *Session {
	if zone == nil {
		zone = time.Local
	}
	return &Session{
		provider: provider,
		locator:  locator,
		zone:     zone,
		unit:     weather.UnitCelsius,
	}
}

// Search resolves a city name through the provider and fetches both
// datasets for the resolved point. Either both land or neither does.
func (s *Session) Search(ctx context.Context, city string) error {
	current, err := s.provider.CurrentByName(ctx, city)
	if err != nil {
		s.recordError(err)
		return err
	}
	return s.completeFetch(ctx, current)
}

// Locate asks the device-location capability for coordinates and fetches
// both datasets for that point.
func (s *Session) Locate(ctx context.Context) error {
	if s.locator == nil {
		err := &weather.GeolocationError{Reason: weather.GeoUnsupported}
		s.recordError(err)
		return err
	}

	lat, lon, err := s.locator.Locate(ctx)
	if err != nil {
		s.recordError(err)
		return err
	}
	return s.fetchByCoords(ctx, lat, lon)
}

// Refresh re-fetches for the stored location. With no location resolved yet
// it is a no-op, not a failure. It never re-resolves by name.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	loc := s.location
	s.mu.Unlock()

	if loc == nil {
		return nil
	}
	return s.fetchByCoords(ctx, loc.Lat, loc.Lon)
}

// SwitchUnit changes the display unit. Stored values stay Celsius, so the
// switch never loses precision.
func (s *Session) SwitchUnit(u weather.TemperatureUnit) {
	s.mu.Lock()
	s.unit = u
	s.mu.Unlock()
}

func (s *Session) fetchByCoords(ctx context.Context, lat, lon float64) error {
	current, err := s.provider.CurrentByCoords(ctx, lat, lon)
	if err != nil {
		s.recordError(err)
		return err
	}
	return s.completeFetch(ctx, current)
}

// completeFetch performs the forecast leg for the point the current
// conditions resolved to, then commits both datasets together. A failure in
// this leg fails the whole query; no partial state is written.
func (s *Session) completeFetch(ctx context.Context, current weather.CurrentConditions) error {
	samples, err := s.provider.ForecastByCoords(ctx, current.Location.Lat, current.Location.Lon)
	if err != nil {
		s.recordError(err)
		return err
	}

	days := weather.AggregateDaily(samples, s.zone)

	s.mu.Lock()
	defer s.mu.Unlock()

	loc := current.Location
	s.location = &loc
	s.current = &current
	s.days = days
	s.lastError = ""
	s.lastUpdated = time.Now()
	return nil
}

// recordError fills the single user-visible error slot; last error wins.
func (s *Session) recordError(err error) {
	msg := userMessage(err)

	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()

	log.Printf("dashboard: query failed: %v", err)
}

func userMessage(err error) string {
	var netErr *weather.NetworkError
	var geoErr *weather.GeolocationError
	switch {
	case errors.Is(err, weather.ErrNotFound):
		return "location not found"
	case errors.As(err, &netErr):
		return netErr.Error()
	case errors.As(err, &geoErr):
		return geoErr.Error()
	default:
		return "unexpected error"
	}
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Current     *view.CurrentView       `json:"current,omitempty"`
	Forecast    []view.DailyView        `json:"forecast"`
	Unit        weather.TemperatureUnit `json:"unit"`
	LastUpdated *time.Time              `json:"lastUpdated,omitempty"`
	LastError   string                  `json:"lastError,omitempty"`
}

// Snapshot formats the session state for display. The forecast is truncated
// to the first five days here, not in the aggregator.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Unit:      s.unit,
		LastError: s.lastError,
	}

	if s.current != nil {
		cv := view.Current(*s.current, s.unit)
		snap.Current = &cv
	}
	if !s.lastUpdated.IsZero() {
		ts := s.lastUpdated
		snap.LastUpdated = &ts
	}

	days := s.days
	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}
	snap.Forecast = make([]view.DailyView, 0, len(days))
	for _, d := range days {
		snap.Forecast = append(snap.Forecast, view.Daily(d, s.unit))
	}

	return snap
}

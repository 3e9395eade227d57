package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vkuzmenko/weather-dashboard/internal/dashboard"
	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

type stubProvider struct {
	current weather.CurrentConditions
	samples []weather.RawSample
	err     error
}

func (s *stubProvider) CurrentByName(ctx context.Context, city string) (weather.CurrentConditions, error) {
	if s.err != nil {
		return weather.CurrentConditions{}, s.err
	}
	return s.current, nil
}

func (s *stubProvider) CurrentByCoords(ctx context.Context, lat, lon float64) (weather.CurrentConditions, error) {
	if s.err != nil {
		return weather.CurrentConditions{}, s.err
	}
	return s.current, nil
}

func (s *stubProvider) ForecastByCoords(ctx context.Context, lat, lon float64) ([]weather.RawSample, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.samples, nil
}

func testApp(provider weather.Provider) (*fiber.App, *dashboard.Manager) {
	app := fiber.New()
	manager := dashboard.NewManager(provider, nil, time.UTC)
	RegisterRoutes(app, manager)
	return app, manager
}

// TestSearchCityValidation verifies that the search command rejects a
// missing city parameter before touching the provider.
func TestSearchCityValidation(t *testing.T) {
	app, manager := testApp(&stubProvider{})
	id, _ := manager.Create()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/search", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	app, _ := testApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/nope/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestUnknownUnitIs400(t *testing.T) {
	app, manager := testApp(&stubProvider{})
	id, _ := manager.Create()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/unit?unit=kelvin", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestUnresolvableCityIs404(t *testing.T) {
	app, manager := testApp(&stubProvider{err: weather.ErrNotFound})
	id, _ := manager.Create()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/search?city=Atlantis", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestSearchReturnsSnapshot(t *testing.T) {
	provider := &stubProvider{
		current: weather.CurrentConditions{
			Location:  weather.Location{Lat: 40.71, Lon: -74.0, Name: "New York"},
			Temp:      21.6,
			Condition: weather.Condition{Code: 800, Text: "clear sky"},
		},
		samples: []weather.RawSample{
			{Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Unix(), Temperature: 20},
		},
	}
	app, manager := testApp(provider)
	id, _ := manager.Create()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/search?city=New+York", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var snap dashboard.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.Current == nil || snap.Current.Location != "New York" {
		t.Fatalf("expected current conditions for New York, got %+v", snap.Current)
	}
	if len(snap.Forecast) != 1 {
		t.Fatalf("expected 1 forecast day, got %d", len(snap.Forecast))
	}
	if snap.Unit != weather.UnitCelsius {
		t.Fatalf("expected default unit celsius, got %s", snap.Unit)
	}
}

func TestSessionLifecycle(t *testing.T) {
	app, _ := testApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a session id")
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}

	// Deleting again is a 404.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/"+created.ID, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

package weather

import "context"

// Provider abstracts the remote weather service. CurrentByName resolves a
// city name and returns the current conditions for it, including the
// resolved coordinates; the coordinate-based calls are then used for
// everything else so both datasets refer to the identical point.
type Provider interface {
	CurrentByName(ctx context.Context, city string) (CurrentConditions, error)
	CurrentByCoords(ctx context.Context, lat, lon float64) (CurrentConditions, error)
	ForecastByCoords(ctx context.Context, lat, lon float64) ([]RawSample, error)
}

// Locator is the device-location capability: a one-shot coordinate request
// that may fail with a GeolocationError. Implementations live outside this
// package; the orchestrator only consumes the result.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

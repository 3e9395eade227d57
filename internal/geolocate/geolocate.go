// Package geolocate provides device-location capabilities for deployments
// that have no browser geolocation to lean on: a Google-geocoder lookup of
// a configured address, and a fixed-coordinates fallback.
package geolocate

import (
	"context"
	"time"

	"github.com/kelvins/geocoder"

	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

// Timeout bounds a single location request, matching the one-shot
// device-location contract.
const Timeout = 10 * time.Second

// Geocoder resolves a configured address to coordinates through the Google
// Geocoding API.
type Geocoder struct {
	apiKey  string
	address geocoder.Address
}

func NewGeocoder(apiKey, city, country string) *Geocoder {
	return &Geocoder{
		apiKey: apiKey,
		address: geocoder.Address{
			City:    city,
			Country: country,
		},
	}
}

func (g *Geocoder) Locate(ctx context.Context) (float64, float64, error) {
	if g.apiKey == "" {
		return 0, 0, &weather.GeolocationError{Reason: weather.GeoUnsupported}
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	type result struct {
		loc weather.Location
		err error
	}

	// The geocoder client takes no context; bound it ourselves.
	ch := make(chan result, 1)
	go func() {
		geocoder.ApiKey = g.apiKey
		loc, err := geocoder.Geocoding(g.address)
		ch <- result{loc: weather.Location{Lat: loc.Latitude, Lon: loc.Longitude}, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, 0, &weather.GeolocationError{Reason: weather.GeoTimeout, Err: ctx.Err()}
	case r := <-ch:
		if r.err != nil {
			return 0, 0, &weather.GeolocationError{Reason: weather.GeoPositionUnavailable, Err: r.err}
		}
		return r.loc.Lat, r.loc.Lon, nil
	}
}

// Fixed returns configured coordinates, for deployments pinned to a site.
type Fixed struct {
	Lat, Lon float64
	Set      bool
}

func (f *Fixed) Locate(ctx context.Context) (float64, float64, error) {
	if !f.Set {
		return 0, 0, &weather.GeolocationError{Reason: weather.GeoUnsupported}
	}
	return f.Lat, f.Lon, nil
}

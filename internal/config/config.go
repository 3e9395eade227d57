package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

// placeholderKey is what the sample .env ships with; treating it the same
// as an empty key keeps an unconfigured deployment from issuing queries
// that can only fail.
const placeholderKey = "REPLACE_ME"

type AppConfig struct {
	OpenWeatherAPIKey string
	GeocoderAPIKey    string

	// RefreshInterval controls how often live sessions re-fetch.
	RefreshInterval time.Duration

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// Fallback device location for deployments pinned to a site.
	DefaultLat    float64
	DefaultLon    float64
	HasDefaultLoc bool

	// Address geocoded when the geocoder locator is in use.
	LocatorCity    string
	LocatorCountry string

	Port string
}

// Load reads configuration from environment with sensible defaults. The
// provider credential is checked here, once, so a missing or placeholder
// key surfaces at startup instead of per request.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" || cfg.OpenWeatherAPIKey == placeholderKey {
		return nil, &weather.ConfigurationError{Field: "OPENWEATHER_API_KEY"}
	}

	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.LocatorCity = os.Getenv("LOCATOR_CITY")
	cfg.LocatorCountry = os.Getenv("LOCATOR_COUNTRY")

	intervalStr := getenvDefault("REFRESH_INTERVAL", "10m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if latStr, lonStr := os.Getenv("DEFAULT_LAT"), os.Getenv("DEFAULT_LON"); latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_LAT: %w", err)
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_LON: %w", err)
		}
		cfg.DefaultLat = lat
		cfg.DefaultLon = lon
		cfg.HasDefaultLoc = true
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

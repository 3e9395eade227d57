package weather

import (
	"fmt"
	"time"
)

// Condition is one weather condition as reported by the provider:
// a numeric code plus its human-readable text and icon identifier.
type Condition struct {
	Code int    `json:"code"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// TemperatureUnit selects the display scale. Stored values are always
// Celsius; the unit affects presentation only.
type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "celsius"
	UnitFahrenheit TemperatureUnit = "fahrenheit"
)

// ParseUnit accepts the short and long spellings used on the wire.
func ParseUnit(s string) (TemperatureUnit, error) {
	switch s {
	case "c", "celsius":
		return UnitCelsius, nil
	case "f", "fahrenheit":
		return UnitFahrenheit, nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", s)
}

// Location is a resolved point, optionally carrying the display name the
// provider reported for it.
type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

// RawSample is one fine-grained forecast point from the provider's 3-hourly
// series. Immutable once decoded; consumed only by AggregateDaily.
type RawSample struct {
	Timestamp   int64   // epoch seconds
	Temperature float64 // °C
	Humidity    float64 // %
	WindSpeed   float64 // m/s
	Condition   Condition
}

// CurrentConditions is the provider's current-weather payload, normalized.
// All values metric; temperatures in Celsius.
type CurrentConditions struct {
	Location   Location  `json:"location"`
	Timestamp  time.Time `json:"timestamp"`
	Temp       float64   `json:"tempC"`
	FeelsLike  float64   `json:"feelsLikeC"`
	Humidity   float64   `json:"humidityPercent"`
	Pressure   float64   `json:"pressureHpa"`
	Visibility int       `json:"visibilityM"`
	WindSpeed  float64   `json:"windSpeedMS"`
	Sunrise    time.Time `json:"sunrise"`
	Sunset     time.Time `json:"sunset"`
	Condition  Condition `json:"condition"`
}

// DailySummary is one aggregated forecast day. Derived by AggregateDaily
// and never mutated afterwards.
type DailySummary struct {
	Date         time.Time `json:"date"` // midnight in the grouping zone
	MaxTemp      int       `json:"maxTempC"`
	MinTemp      int       `json:"minTempC"`
	AvgHumidity  int       `json:"avgHumidityPercent"`
	AvgWindSpeed int       `json:"avgWindSpeedKmh"`
	Condition    Condition `json:"condition"`
}

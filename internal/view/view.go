// Package view turns raw and aggregated weather data into display-ready
// strings. Pure mapping; no external effects.
package view

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

// title re-renders condition text from the provider's lowercase form.
// A Caser carries state, so one is created per call.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// CurrentView is the formatted current-conditions block.
type CurrentView struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	Humidity    string `json:"humidity"`
	Pressure    string `json:"pressure"`
	Visibility  string `json:"visibility"`
	WindSpeed   string `json:"windSpeed"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	Conditions  string `json:"conditions"`
	Icon        string `json:"icon"`
}

// DailyView is one formatted forecast day.
type DailyView struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	High       string `json:"high"`
	Low        string `json:"low"`
	Humidity   string `json:"humidity"`
	WindSpeed  string `json:"windSpeed"`
	Conditions string `json:"conditions"`
	Icon       string `json:"icon"`
}

// FormatTemp renders a stored Celsius value in the active unit. Conversion
// happens on the unrounded value; rounding is applied last, so switching
// units back and forth always reproduces the same display.
func FormatTemp(celsius float64, unit weather.TemperatureUnit) string {
	if unit == weather.UnitFahrenheit {
		return fmt.Sprintf("%d°F", int(math.Round(weather.CelsiusToFahrenheit(celsius))))
	}
	return fmt.Sprintf("%d°C", int(math.Round(celsius)))
}

// Current formats a current-conditions payload for the given unit.
func Current(cc weather.CurrentConditions, unit weather.TemperatureUnit) CurrentView {
	return CurrentView{
		Location:    cc.Location.Name,
		Temperature: FormatTemp(cc.Temp, unit),
		FeelsLike:   FormatTemp(cc.FeelsLike, unit),
		Humidity:    fmt.Sprintf("%d%%", int(math.Round(cc.Humidity))),
		Pressure:    fmt.Sprintf("%d hPa", int(math.Round(cc.Pressure))),
		Visibility:  fmt.Sprintf("%.1f km", float64(cc.Visibility)/1000),
		WindSpeed:   fmt.Sprintf("%d km/h", int(math.Round(cc.WindSpeed*3.6))),
		Sunrise:     cc.Sunrise.Format("15:04"),
		Sunset:      cc.Sunset.Format("15:04"),
		Conditions:  title(cc.Condition.Text),
		Icon:        Icon(cc.Condition.Code),
	}
}

// Daily formats one aggregated day. Wind is already km/h from aggregation.
func Daily(d weather.DailySummary, unit weather.TemperatureUnit) DailyView {
	high := float64(d.MaxTemp)
	low := float64(d.MinTemp)
	return DailyView{
		Date:       d.Date.Format("2006-01-02"),
		Weekday:    d.Date.Format("Mon"),
		High:       FormatTemp(high, unit),
		Low:        FormatTemp(low, unit),
		Humidity:   fmt.Sprintf("%d%%", d.AvgHumidity),
		WindSpeed:  fmt.Sprintf("%d km/h", d.AvgWindSpeed),
		Conditions: title(d.Condition.Text),
		Icon:       Icon(d.Condition.Code),
	}
}

// Icon maps an OpenWeather condition code group to an icon identifier.
// Unrecognized codes fall back to "na".
func Icon(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "thunderstorm"
	case code >= 300 && code < 400:
		return "drizzle"
	case code >= 500 && code < 600:
		return "rain"
	case code >= 600 && code < 700:
		return "snow"
	case code >= 700 && code < 800:
		return "mist"
	case code == 800:
		return "clear"
	case code > 800 && code < 900:
		return "clouds"
	default:
		return "na"
	}
}

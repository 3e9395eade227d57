package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

/*
	OpenWeather response codes of interest:
	200  success
	401  unauthorized (invalid API key)
	404  city not found
	429  rate limited
	5xx  server error
*/

// OpenWeatherProvider implements weather.Provider against the OpenWeatherMap
// /data/2.5 endpoints. All requests use metric units.
type OpenWeatherProvider struct {
	apiKey      string
	currentURL  string
	forecastURL string
	client      *http.Client
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		client:      client,
		circuit:     cb,
	}
}

// currentPayload mirrors the /weather response.
type currentPayload struct {
	Dt    int64 `json:"dt"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Visibility int    `json:"visibility"`
	Name       string `json:"name"`
}

// forecastPayload mirrors the /forecast response: 3-hour samples over 5 days.
type forecastPayload struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

func (p *OpenWeatherProvider) CurrentByName(ctx context.Context, city string) (weather.CurrentConditions, error) {
	values := url.Values{}
	values.Set("q", city)
	return p.fetchCurrent(ctx, values)
}

func (p *OpenWeatherProvider) CurrentByCoords(ctx context.Context, lat, lon float64) (weather.CurrentConditions, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	return p.fetchCurrent(ctx, values)
}

func (p *OpenWeatherProvider) fetchCurrent(ctx context.Context, values url.Values) (weather.CurrentConditions, error) {
	const stage = "current conditions"

	resp, err := p.get(ctx, p.currentURL, values)
	if err != nil {
		return weather.CurrentConditions{}, &weather.NetworkError{Stage: stage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return weather.CurrentConditions{}, weather.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return weather.CurrentConditions{}, &weather.NetworkError{
			Stage: stage,
			Err:   fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	var payload currentPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentConditions{}, &weather.NetworkError{Stage: stage, Err: err}
	}

	cond := weather.Condition{}
	if len(payload.Weather) > 0 {
		cond = weather.Condition{
			Code: payload.Weather[0].ID,
			Text: payload.Weather[0].Description,
			Icon: payload.Weather[0].Icon,
		}
	}

	return weather.CurrentConditions{
		Location: weather.Location{
			Lat:  payload.Coord.Lat,
			Lon:  payload.Coord.Lon,
			Name: payload.Name,
		},
		Timestamp:  time.Unix(payload.Dt, 0),
		Temp:       payload.Main.Temp,
		FeelsLike:  payload.Main.FeelsLike,
		Humidity:   payload.Main.Humidity,
		Pressure:   payload.Main.Pressure,
		Visibility: payload.Visibility,
		WindSpeed:  payload.Wind.Speed,
		Sunrise:    time.Unix(payload.Sys.Sunrise, 0),
		Sunset:     time.Unix(payload.Sys.Sunset, 0),
		Condition:  cond,
	}, nil
}

func (p *OpenWeatherProvider) ForecastByCoords(ctx context.Context, lat, lon float64) ([]weather.RawSample, error) {
	const stage = "forecast"

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))

	resp, err := p.get(ctx, p.forecastURL, values)
	if err != nil {
		return nil, &weather.NetworkError{Stage: stage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, weather.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &weather.NetworkError{
			Stage: stage,
			Err:   fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &weather.NetworkError{Stage: stage, Err: err}
	}

	samples := make([]weather.RawSample, 0, len(payload.List))
	for _, item := range payload.List {
		cond := weather.Condition{}
		if len(item.Weather) > 0 {
			cond = weather.Condition{
				Code: item.Weather[0].ID,
				Text: item.Weather[0].Description,
				Icon: item.Weather[0].Icon,
			}
		}
		samples = append(samples, weather.RawSample{
			Timestamp:   item.Dt,
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			Condition:   cond,
		})
	}

	return samples, nil
}

func (p *OpenWeatherProvider) get(ctx context.Context, base string, values url.Values) (*http.Response, error) {
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s?%s", base, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	return doRequest(ctx, p.client, p.circuit, req)
}

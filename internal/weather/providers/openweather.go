package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var errNoLocations = errors.New("no matching locations")

// Endpoints are the OpenWeatherMap URLs the provider talks to.
type Endpoints struct {
	Current  string
	Forecast string
	Geocode  string
}

// DefaultEndpoints returns the public OpenWeatherMap endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Current:  "https://api.openweathermap.org/data/2.5/weather",
		Forecast: "https://api.openweathermap.org/data/2.5/forecast",
		Geocode:  "http://api.openweathermap.org/geo/1.0/direct",
	}
}

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name      string
	apiKey    string
	endpoints Endpoints
	client    *http.Client
}

var _ weather.Provider = (*OpenWeatherProvider)(nil)

// NewOpenWeatherProvider builds a provider. Empty endpoint URLs fall back to
// DefaultEndpoints. The client's Timeout bounds every call.
func NewOpenWeatherProvider(client *http.Client, apiKey string, endpoints Endpoints) *OpenWeatherProvider {
	def := DefaultEndpoints()
	if endpoints.Current == "" {
		endpoints.Current = def.Current
	}
	if endpoints.Forecast == "" {
		endpoints.Forecast = def.Forecast
	}
	if endpoints.Geocode == "" {
		endpoints.Geocode = def.Geocode
	}

	return &OpenWeatherProvider{
		name:      "openweathermap",
		apiKey:    apiKey,
		endpoints: endpoints,
		client:    client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// weatherRequest builds a metric-units request for q against baseURL.
func (p *OpenWeatherProvider) weatherRequest(baseURL string, q weather.Query) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		if lat, lon, ok := q.Coordinates(); ok {
			values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
			values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
		} else {
			values.Set("q", q.City())
		}

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}
}

// Current fetches and normalizes current conditions.
func (p *OpenWeatherProvider) Current(ctx context.Context, q weather.Query) (weather.CurrentWeather, error) {
	var payload currentPayload
	if err := getJSON(ctx, p.client, p.weatherRequest(p.endpoints.Current, q), &payload); err != nil {
		return weather.CurrentWeather{}, err
	}
	return normalizeCurrent(payload), nil
}

// Forecast fetches the 5-day/3-hour series and reduces it to up to days
// daily samples.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, q weather.Query, days int) ([]weather.ForecastDay, error) {
	var payload forecastPayload
	if err := getJSON(ctx, p.client, p.weatherRequest(p.endpoints.Forecast, q), &payload); err != nil {
		return nil, err
	}
	return normalizeForecast(payload, days)
}

// Locations resolves a city name to at most limit candidates.
func (p *OpenWeatherProvider) Locations(ctx context.Context, city string, limit int) ([]weather.LocationCandidate, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("limit", strconv.Itoa(limit))
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.endpoints.Geocode, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var locs []weather.LocationCandidate
	if err := getJSON(ctx, p.client, buildRequest, &locs); err != nil {
		return nil, err
	}
	if len(locs) == 0 {
		return nil, errNoLocations
	}
	return locs, nil
}

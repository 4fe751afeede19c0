package weather

import (
	"context"
)

// Provider abstracts the upstream weather/geocoding API (OpenWeatherMap).
// Implementations return an error for every failure mode; the Service turns
// those into absence.
type Provider interface {
	Name() string
	Current(ctx context.Context, q Query) (CurrentWeather, error)
	Forecast(ctx context.Context, q Query, days int) ([]ForecastDay, error)
	Locations(ctx context.Context, city string, limit int) ([]LocationCandidate, error)
}

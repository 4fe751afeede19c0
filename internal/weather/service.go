package weather

import (
	"context"
	"log"
)

const (
	// DefaultForecastDays is used when the caller does not ask for a day count.
	DefaultForecastDays = 5

	// LocationLimit caps the number of geocoding candidates requested.
	LocationLimit = 5
)

// Service runs lookups against a single provider and collapses every failure
// into absence (a nil result).
type Service struct {
	provider     Provider
	forecastDays int
}

// NewService creates a new Service. forecastDays <= 0 selects DefaultForecastDays.
func NewService(provider Provider, forecastDays int) *Service {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	return &Service{
		provider:     provider,
		forecastDays: forecastDays,
	}
}

// ForecastDays returns the default number of days used by Forecast.
func (s *Service) ForecastDays() int {
	return s.forecastDays
}

// CurrentConditions returns the normalized current weather for q, or nil when
// the provider could not deliver anything usable.
func (s *Service) CurrentConditions(ctx context.Context, q Query) *CurrentWeather {
	if s.provider == nil {
		log.Printf("ERROR: no provider configured for current lookup of %s", q)
		return nil
	}

	cw, err := s.provider.Current(ctx, q)
	if err != nil {
		log.Printf("provider %s current lookup failed for %s: %v", s.provider.Name(), q, err)
		return nil
	}
	return &cw
}

// Forecast returns up to days sampled forecast days for q, earliest first, or
// nil when the lookup failed or produced nothing.
func (s *Service) Forecast(ctx context.Context, q Query, days int) []ForecastDay {
	if days <= 0 {
		days = s.forecastDays
	}
	if s.provider == nil {
		log.Printf("ERROR: no provider configured for forecast lookup of %s", q)
		return nil
	}

	log.Printf("DEBUG: Forecast called for %s for %d days", q, days)

	forecast, err := s.provider.Forecast(ctx, q, days)
	if err != nil {
		log.Printf("provider %s forecast failed for %s: %v", s.provider.Name(), q, err)
		return nil
	}
	if len(forecast) == 0 {
		log.Printf("no forecast samples for %s", q)
		return nil
	}
	return forecast
}

// SearchLocations returns geocoding candidates for city, or nil when there
// are none or the lookup failed.
func (s *Service) SearchLocations(ctx context.Context, city string) []LocationCandidate {
	if s.provider == nil {
		log.Printf("ERROR: no provider configured for location search of %q", city)
		return nil
	}

	locs, err := s.provider.Locations(ctx, city, LocationLimit)
	if err != nil {
		log.Printf("provider %s location search failed for %q: %v", s.provider.Name(), city, err)
		return nil
	}
	if len(locs) == 0 {
		return nil
	}
	return locs
}

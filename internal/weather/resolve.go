package weather

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
)

// User-facing messages surfaced in error views.
const (
	MsgEnterCity          = "Please enter a city name."
	MsgNoLocations        = "No matching locations found."
	MsgInvalidCoordinates = "Invalid coordinates."
	MsgWeatherUnavailable = "Could not fetch weather for the selected location."
)

// ErrInvalidCoordinates is returned by ParseCoordinates for unparsable or
// out-of-range values.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// ViewState tells the caller what to render.
type ViewState string

const (
	StateIdle           ViewState = "idle"
	StateWeather        ViewState = "weather"
	StateSelectLocation ViewState = "select_location"
	StateError          ViewState = "error"
)

// FormInput is a raw form submission.
type FormInput struct {
	City string `json:"city" form:"city"`
	Lat  string `json:"lat" form:"lat"`
	Lon  string `json:"lon" form:"lon"`
}

// View is the outcome of resolving one FormInput.
type View struct {
	State     ViewState           `json:"state"`
	Error     string              `json:"error,omitempty"`
	Current   *CurrentWeather     `json:"current,omitempty"`
	Forecast  []ForecastDay       `json:"forecast,omitempty"`
	Locations []LocationCandidate `json:"locations,omitempty"`
}

func errorView(msg string) View {
	return View{State: StateError, Error: msg}
}

// ParseCoordinates turns form strings into a coordinate Query.
func ParseCoordinates(lat, lon string) (Query, error) {
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Query{}, ErrInvalidCoordinates
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return Query{}, ErrInvalidCoordinates
	}
	if la < -90 || la > 90 || lo < -180 || lo > 180 {
		return Query{}, ErrInvalidCoordinates
	}
	return ByCoordinates(la, lo), nil
}

// Resolve decides which lookups a submission needs and runs them.
//
// Coordinates win when both are present: current conditions and the forecast
// are fetched together and location search is skipped. A bare city name only
// triggers location search so the caller can pick one candidate and come back
// with its coordinates.
func (s *Service) Resolve(ctx context.Context, in FormInput) View {
	lat := strings.TrimSpace(in.Lat)
	lon := strings.TrimSpace(in.Lon)

	if lat != "" && lon != "" {
		q, err := ParseCoordinates(lat, lon)
		if err != nil {
			return errorView(MsgInvalidCoordinates)
		}
		return s.resolveWeather(ctx, q)
	}

	city := strings.TrimSpace(in.City)
	if city == "" {
		return errorView(MsgEnterCity)
	}

	locs := s.SearchLocations(ctx, city)
	if len(locs) == 0 {
		return errorView(MsgNoLocations)
	}
	return View{State: StateSelectLocation, Locations: locs}
}

func (s *Service) resolveWeather(ctx context.Context, q Query) View {
	var (
		wg       sync.WaitGroup
		current  *CurrentWeather
		forecast []ForecastDay
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current = s.CurrentConditions(ctx, q)
	}()
	go func() {
		defer wg.Done()
		forecast = s.Forecast(ctx, q, s.forecastDays)
	}()
	wg.Wait()

	if current == nil || forecast == nil {
		return errorView(MsgWeatherUnavailable)
	}

	return View{
		State:    StateWeather,
		Current:  current,
		Forecast: forecast,
	}
}

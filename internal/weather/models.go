package weather

import (
	"strconv"
	"time"
)

// Query identifies what to look up: either a free-text city name or a
// latitude/longitude pair. Build one with ByName or ByCoordinates.
type Query struct {
	city     string
	lat, lon float64
	byCoords bool
}

// ByName returns a Query for a free-text city name.
func ByName(city string) Query {
	return Query{city: city}
}

// ByCoordinates returns a Query for a latitude/longitude pair.
func ByCoordinates(lat, lon float64) Query {
	return Query{lat: lat, lon: lon, byCoords: true}
}

// Coordinates reports the lat/lon pair and whether the query is coordinate based.
func (q Query) Coordinates() (lat, lon float64, ok bool) {
	return q.lat, q.lon, q.byCoords
}

// City returns the city text. Empty for coordinate queries.
func (q Query) City() string {
	if q.byCoords {
		return ""
	}
	return q.city
}

// String returns a canonical representation for logging.
func (q Query) String() string {
	if q.byCoords {
		return strconv.FormatFloat(q.lat, 'f', -1, 64) + "," + strconv.FormatFloat(q.lon, 'f', -1, 64)
	}
	return q.city
}

// CurrentWeather is the normalized current-conditions view for one place.
// Numeric fields are nil when the provider omitted them.
type CurrentWeather struct {
	Name        string   `json:"name,omitempty"`
	Country     string   `json:"country,omitempty"`
	Temp        *int     `json:"temp"`
	FeelsLike   *int     `json:"feels_like"`
	Min         *int     `json:"min"`
	Max         *int     `json:"max"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Humidity    *int     `json:"humidity"`
	Wind        *float64 `json:"wind"`
}

// ForecastDay is one sampled day of a multi-day forecast.
type ForecastDay struct {
	Date        string    `json:"date"` // short weekday, e.g. "Mon"
	Time        time.Time `json:"time"`
	Temp        int       `json:"temp"`
	Min         *int      `json:"min"`
	Max         *int      `json:"max"`
	FeelsLike   *int      `json:"feels_like"`
	Humidity    *int      `json:"humidity"`
	Wind        *float64  `json:"wind"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
}

// LocationCandidate is a geocoding match as returned by the provider.
type LocationCandidate struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

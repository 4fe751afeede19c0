package providers

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// dtTxtLayout is the format of the forecast "dt_txt" field.
const dtTxtLayout = "2006-01-02 15:04:05"

// noonSuffix marks the representative sample of a forecast day.
const noonSuffix = "12:00:00"

// samplesPerDay is the number of 3-hour samples in one day.
const samplesPerDay = 8

var errMalformedForecast = errors.New("malformed forecast item")

// OpenWeatherMap payload shapes. Every nested object and value is a pointer
// so that a missing (or null) field decodes to nil instead of a zero value.

type owmMain struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Humidity  *int     `json:"humidity"`
}

type owmCondition struct {
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type owmWind struct {
	Speed *float64 `json:"speed"`
}

type currentPayload struct {
	Name *string `json:"name"`
	Sys  *struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main    *owmMain       `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    *owmWind       `json:"wind"`
}

type forecastItem struct {
	DtTxt   *string        `json:"dt_txt"`
	Main    *owmMain       `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    *owmWind       `json:"wind"`
}

type forecastPayload struct {
	List []forecastItem `json:"list"`
}

// roundTemp rounds a provider temperature to the nearest integer, ties to
// even. Absent input stays absent.
func roundTemp(v *float64) *int {
	if v == nil {
		return nil
	}
	n := int(math.RoundToEven(*v))
	return &n
}

// titleCase capitalizes the first letter of each word, lower-casing the rest.
// A Caser is stateful so a fresh one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func windSpeed(w *owmWind) *float64 {
	if w == nil {
		return nil
	}
	return w.Speed
}

// normalizeCurrent maps a current-weather payload onto CurrentWeather.
// Missing nested objects leave every field they would have filled absent.
func normalizeCurrent(p currentPayload) weather.CurrentWeather {
	cw := weather.CurrentWeather{
		Name: deref(p.Name),
		Wind: windSpeed(p.Wind),
	}

	if p.Sys != nil {
		cw.Country = deref(p.Sys.Country)
	}

	if m := p.Main; m != nil {
		cw.Temp = roundTemp(m.Temp)
		cw.FeelsLike = roundTemp(m.FeelsLike)
		cw.Min = roundTemp(m.TempMin)
		cw.Max = roundTemp(m.TempMax)
		cw.Humidity = m.Humidity
	}

	if len(p.Weather) > 0 {
		cw.Description = titleCase(deref(p.Weather[0].Description))
		cw.Icon = deref(p.Weather[0].Icon)
	}

	return cw
}

func isNoon(it forecastItem) bool {
	return it.DtTxt != nil && strings.HasSuffix(*it.DtTxt, noonSuffix)
}

// selectDailySamples picks one representative sample per day: the first
// days noon samples in series order, or when the series has none, every
// eighth sample starting at index 0 and never past min(len, days*8).
func selectDailySamples(items []forecastItem, days int) []forecastItem {
	if days <= 0 {
		return nil
	}

	var noon []forecastItem
	for _, it := range items {
		if isNoon(it) {
			noon = append(noon, it)
		}
	}

	if len(noon) > 0 {
		if len(noon) > days {
			noon = noon[:days]
		}
		return noon
	}

	limit := min(len(items), days*samplesPerDay)
	picked := make([]forecastItem, 0, days)
	for i := 0; i < limit; i += samplesPerDay {
		picked = append(picked, items[i])
	}
	return picked
}

// normalizeForecastItem maps one selected sample onto ForecastDay. The
// timestamp, main.temp and weather[0].description are mandatory; anything
// else may be absent.
func normalizeForecastItem(it forecastItem) (weather.ForecastDay, error) {
	if it.DtTxt == nil {
		return weather.ForecastDay{}, fmt.Errorf("%w: missing dt_txt", errMalformedForecast)
	}
	ts, err := time.Parse(dtTxtLayout, *it.DtTxt)
	if err != nil {
		return weather.ForecastDay{}, fmt.Errorf("%w: dt_txt %q: %v", errMalformedForecast, *it.DtTxt, err)
	}
	if it.Main == nil || it.Main.Temp == nil {
		return weather.ForecastDay{}, fmt.Errorf("%w: missing main.temp at %s", errMalformedForecast, *it.DtTxt)
	}
	if len(it.Weather) == 0 || it.Weather[0].Description == nil {
		return weather.ForecastDay{}, fmt.Errorf("%w: missing weather description at %s", errMalformedForecast, *it.DtTxt)
	}

	m := it.Main
	return weather.ForecastDay{
		Date:        ts.Format("Mon"),
		Time:        ts,
		Temp:        *roundTemp(m.Temp),
		Min:         roundTemp(m.TempMin),
		Max:         roundTemp(m.TempMax),
		FeelsLike:   roundTemp(m.FeelsLike),
		Humidity:    m.Humidity,
		Wind:        windSpeed(it.Wind),
		Description: titleCase(*it.Weather[0].Description),
		Icon:        deref(it.Weather[0].Icon),
	}, nil
}

// normalizeForecast selects the daily samples and normalizes each one. The
// first bad sample fails the whole forecast.
func normalizeForecast(p forecastPayload, days int) ([]weather.ForecastDay, error) {
	samples := selectDailySamples(p.List, days)

	forecast := make([]weather.ForecastDay, 0, len(samples))
	for _, it := range samples {
		day, err := normalizeForecastItem(it)
		if err != nil {
			return nil, err
		}
		forecast = append(forecast, day)
	}
	return forecast, nil
}

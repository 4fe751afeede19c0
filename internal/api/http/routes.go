package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

const maxForecastDays = 5

var errMissingLocation = errors.New("city or both lat and lon are required")

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	// Form flow: resolve a name to candidates, then coordinates to weather.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(weather.View{State: weather.StateIdle})
	})

	app.Post("/", func(c *fiber.Ctx) error {
		in := weather.FormInput{
			City: c.FormValue("city"),
			Lat:  c.FormValue("lat"),
			Lon:  c.FormValue("lon"),
		}

		view := service.Resolve(c.UserContext(), in)
		return c.Status(viewStatus(view)).JSON(view)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		locReq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		q, err := locReq.toQuery()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		current := service.CurrentConditions(c.UserContext(), q)
		if current == nil {
			return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
		}

		return c.JSON(current)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		req := forecastQuery{Days: service.ForecastDays()}
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		q, err := req.Location.toQuery()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast := service.Forecast(c.UserContext(), q, req.Days)
		if forecast == nil {
			return fiber.NewError(fiber.StatusNotFound, "no forecast data for requested location")
		}

		return c.JSON(fiber.Map{
			"query":    q.String(),
			"days":     req.Days,
			"forecast": forecast,
		})
	})

	v1.Get("/locations", func(c *fiber.Ctx) error {
		city := strings.TrimSpace(c.Query("city"))
		if city == "" {
			return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
		}

		locs := service.SearchLocations(c.UserContext(), city)
		if locs == nil {
			return fiber.NewError(fiber.StatusNotFound, "no matching locations found")
		}

		return c.JSON(locs)
	})
}

// viewStatus maps a resolved view onto an HTTP status.
func viewStatus(v weather.View) int {
	if v.State != weather.StateError {
		return fiber.StatusOK
	}
	switch v.Error {
	case weather.MsgNoLocations:
		return fiber.StatusNotFound
	case weather.MsgWeatherUnavailable:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusBadRequest
	}
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	City string
	Lat  string `validate:"omitempty,latitude"`
	Lon  string `validate:"omitempty,longitude"`
}

// toQuery prefers coordinates when both are present.
func (l locationQuery) toQuery() (weather.Query, error) {
	if l.Lat != "" && l.Lon != "" {
		return weather.ParseCoordinates(l.Lat, l.Lon)
	}
	if l.City != "" {
		return weather.ByName(l.City), nil
	}
	return weather.Query{}, errMissingLocation
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.City = strings.TrimSpace(c.Query("city"))
	q.Lat = strings.TrimSpace(c.Query("lat"))
	q.Lon = strings.TrimSpace(c.Query("lon"))

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Location locationQuery
	Days     int `validate:"min=1,max=5"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	f.Location = loc

	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return errors.New("days must be an integer between 1 and " + strconv.Itoa(maxForecastDays))
		}
		f.Days = days
	}

	return nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const maxForecastDays = 5

type AppConfig struct {
	// OpenWeatherAPIKey is sent as appid on every call. It is not validated
	// here; a missing key surfaces as failed lookups.
	OpenWeatherAPIKey string

	CurrentURL  string
	ForecastURL string
	GeocodeURL  string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// ForecastDays is the default number of sampled forecast days (1-5).
	ForecastDays int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OWM_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	}

	cfg.CurrentURL = getenvDefault("OWM_CURRENT_URL", "https://api.openweathermap.org/data/2.5/weather")
	cfg.ForecastURL = getenvDefault("OWM_FORECAST_URL", "https://api.openweathermap.org/data/2.5/forecast")
	cfg.GeocodeURL = getenvDefault("OWM_GEOCODE_URL", "http://api.openweathermap.org/geo/1.0/direct")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "6s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", maxForecastDays)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > maxForecastDays {
		return nil, fmt.Errorf("invalid FORECAST_DAYS: must be between 1 and %d, got %d", maxForecastDays, cfg.ForecastDays)
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

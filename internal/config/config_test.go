package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so the host environment does not
// leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OWM_API_KEY", "OPENWEATHER_API_KEY",
		"OWM_CURRENT_URL", "OWM_FORECAST_URL", "OWM_GEOCODE_URL",
		"HTTP_TIMEOUT", "FORECAST_DAYS", "PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenWeatherAPIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.CurrentURL != "https://api.openweathermap.org/data/2.5/weather" {
		t.Fatalf("unexpected current url %q", cfg.CurrentURL)
	}
	if cfg.ForecastURL != "https://api.openweathermap.org/data/2.5/forecast" {
		t.Fatalf("unexpected forecast url %q", cfg.ForecastURL)
	}
	if cfg.GeocodeURL != "http://api.openweathermap.org/geo/1.0/direct" {
		t.Fatalf("unexpected geocode url %q", cfg.GeocodeURL)
	}
	if cfg.HTTPTimeout != 6*time.Second {
		t.Fatalf("expected 6s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.ForecastDays != 5 {
		t.Fatalf("expected 5 forecast days, got %d", cfg.ForecastDays)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("OPENWEATHER_API_KEY", "fallback-key")
	t.Setenv("OWM_CURRENT_URL", "http://localhost:9000/weather")
	t.Setenv("HTTP_TIMEOUT", "2500ms")
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "fallback-key" {
		t.Fatalf("expected fallback api key, got %q", cfg.OpenWeatherAPIKey)
	}
	if cfg.CurrentURL != "http://localhost:9000/weather" {
		t.Fatalf("unexpected current url %q", cfg.CurrentURL)
	}
	if cfg.HTTPTimeout != 2500*time.Millisecond {
		t.Fatalf("expected 2.5s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.ForecastDays != 3 {
		t.Fatalf("expected 3 forecast days, got %d", cfg.ForecastDays)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}

	t.Setenv("OWM_API_KEY", "primary-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "primary-key" {
		t.Fatalf("expected OWM_API_KEY to win, got %q", cfg.OpenWeatherAPIKey)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad timeout":   {"HTTP_TIMEOUT": "soon"},
		"zero timeout":  {"HTTP_TIMEOUT": "0s"},
		"too many days": {"FORECAST_DAYS": "6"},
		"zero days":     {"FORECAST_DAYS": "0"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

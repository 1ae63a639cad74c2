// Package config loads process configuration from the environment.
//
// Configuration is read once at startup into an explicit Config struct that is
// passed into the components that need it; request handling code never reads
// the environment directly.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration for the CityAir API.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Environment is the deployment environment name (development, production).
	Environment string

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	OTLPEndpoint string

	// TelemetryEnabled enables OTLP trace and metric export.
	TelemetryEnabled bool

	// OpenWeatherAPIKey authenticates geocoding and weather calls (required).
	OpenWeatherAPIKey string

	// WAQIToken authenticates air quality feed calls (required).
	WAQIToken string

	// ProviderTimeout bounds each upstream provider call.
	ProviderTimeout time.Duration
}

// Load builds a Config from the process environment.
// Missing provider secrets are a startup error, not a per-request failure.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("APP_PORT", "8080"),
		Environment:       getEnv("APP_ENV", "development"),
		OTLPEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled:  os.Getenv("OTEL_ENABLED") == "true",
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		WAQIToken:         os.Getenv("WAQI_API_TOKEN"),
		ProviderTimeout:   10 * time.Second,
	}

	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing PROVIDER_TIMEOUT: %w", err)
		}
		cfg.ProviderTimeout = timeout
	}

	var missing []string
	if cfg.OpenWeatherAPIKey == "" {
		missing = append(missing, "OPENWEATHER_API_KEY")
	}
	if cfg.WAQIToken == "" {
		missing = append(missing, "WAQI_API_TOKEN")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a fallback when unset.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package main provides the entrypoint for the CityAir API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/airquality"
	"github.com/cityair/cityair/internal/airquality/waqi"
	"github.com/cityair/cityair/internal/api"
	"github.com/cityair/cityair/internal/api/middleware"
	"github.com/cityair/cityair/internal/config"
	"github.com/cityair/cityair/internal/environment"
	"github.com/cityair/cityair/internal/geocoding"
	owmgeo "github.com/cityair/cityair/internal/geocoding/openweathermap"
	"github.com/cityair/cityair/internal/provider/resilience"
	"github.com/cityair/cityair/internal/telemetry"
	"github.com/cityair/cityair/internal/weather"
	owmweather "github.com/cityair/cityair/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "cityair-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting CityAir API")

	// Local runs keep secrets in a .env file; deployed environments inject them directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Upstream provider clients share a health registry surfaced via /v1/ops/status.
	providers := resilience.NewRegistry()

	geoClient := owmgeo.NewClient(owmgeo.ClientConfig{
		APIKey: cfg.OpenWeatherAPIKey,
		HTTPClient: resilience.NewClient(resilience.ClientConfig{
			Name:     owmgeo.ProviderName,
			Timeout:  cfg.ProviderTimeout,
			Registry: providers,
		}),
		Logger: log,
	})

	weatherClient := owmweather.NewClient(owmweather.ClientConfig{
		APIKey: cfg.OpenWeatherAPIKey,
		HTTPClient: resilience.NewClient(resilience.ClientConfig{
			Name:     owmweather.ProviderName,
			Timeout:  cfg.ProviderTimeout,
			Registry: providers,
		}),
		Logger: log,
	})

	waqiClient := waqi.NewClient(waqi.ClientConfig{
		Token: cfg.WAQIToken,
		HTTPClient: resilience.NewClient(resilience.ClientConfig{
			Name:     waqi.ProviderName,
			Timeout:  cfg.ProviderTimeout,
			Registry: providers,
		}),
		Logger: log,
	})

	geocoder := geocoding.NewService(geocoding.ServiceConfig{
		Provider: geoClient,
		Logger:   log,
	})
	log.Info().Str("provider", geoClient.Name()).Msg("geocoding service initialized")

	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: weatherClient,
		Logger:   log,
	})
	log.Info().Str("provider", weatherClient.Name()).Msg("weather service initialized")

	airQualityService := airquality.NewService(airquality.ServiceConfig{
		Provider: waqiClient,
		Logger:   log,
	})
	log.Info().Str("provider", waqiClient.Name()).Msg("air quality service initialized")

	environmentService := environment.NewService(environment.ServiceConfig{
		Geocoder:   geocoder,
		Weather:    weatherService,
		AirQuality: airQualityService,
		Logger:     log,
	})
	log.Info().Msg("environment service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		BuildTime:   BuildTime,
		Logger:      log,
		ServiceName: serviceName,
		Metrics:     metrics,
		Environment: environmentService,
		Providers:   providers,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// Package environment aggregates weather and air quality data for a city.
//
// A lookup runs as a two-stage pipeline: the city is geocoded first, then the
// weather and air quality fetches fan out concurrently, since both only need
// the resolved coordinates. Either fetch failing degrades that part of the
// report to absence; only a failed resolution fails the lookup itself.
package environment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cityair/cityair/internal/airquality"
	"github.com/cityair/cityair/internal/geocoding"
	"github.com/cityair/cityair/internal/weather"
)

// ErrCityNotFound is returned when geocoding yields no candidates.
var ErrCityNotFound = errors.New("city not found")

// Geocoder resolves a city name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, city string) (*geocoding.Coordinates, error)
}

// WeatherFetcher fetches current weather for resolved coordinates.
type WeatherFetcher interface {
	Current(ctx context.Context, coords geocoding.Coordinates) (*weather.Snapshot, error)
}

// AirQualityFetcher fetches air quality for a city and/or coordinates.
type AirQualityFetcher interface {
	Snapshot(ctx context.Context, city string, coords *geocoding.Coordinates) (*airquality.Snapshot, error)
}

// Report is the merged result of one environment lookup.
// Weather and AirQuality are independently optional.
type Report struct {
	City       string
	Weather    *weather.Snapshot
	AirQuality *airquality.Snapshot
}

// ServiceConfig holds configuration for the environment service.
type ServiceConfig struct {
	Geocoder   Geocoder
	Weather    WeatherFetcher
	AirQuality AirQualityFetcher

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service orchestrates the environment lookup pipeline.
type Service struct {
	geocoder   Geocoder
	weather    WeatherFetcher
	airQuality AirQualityFetcher
	logger     zerolog.Logger
}

// NewService creates a new environment service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		geocoder:   cfg.Geocoder,
		weather:    cfg.Weather,
		airQuality: cfg.AirQuality,
		logger:     cfg.Logger,
	}
}

// Lookup resolves the city and gathers its weather and air quality.
//
// Returns ErrCityNotFound when geocoding has no match; in that case neither
// fetcher is invoked. A geocoding transport failure is returned as a wrapped
// error so the handler can report "could not determine" instead of "no such
// city". Weather and air quality failures never fail the lookup.
func (s *Service) Lookup(ctx context.Context, city string) (*Report, error) {
	coords, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", city, err)
	}
	if coords == nil {
		return nil, ErrCityNotFound
	}

	report := &Report{City: city}

	// Fan out: neither fetch depends on the other's result.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snapshot, weatherErr := s.weather.Current(gctx, *coords)
		if weatherErr != nil {
			s.logger.Warn().Err(weatherErr).
				Str("city", city).
				Msg("weather unavailable, returning report without it")
			return nil
		}
		report.Weather = snapshot
		return nil
	})

	g.Go(func() error {
		snapshot, aqErr := s.airQuality.Snapshot(gctx, city, coords)
		if aqErr != nil {
			s.logger.Warn().Err(aqErr).
				Str("city", city).
				Msg("air quality unavailable, returning report without it")
			return nil
		}
		report.AirQuality = snapshot
		return nil
	})

	// Goroutines swallow their errors; Wait only joins them.
	_ = g.Wait()

	return report, nil
}

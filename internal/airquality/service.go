package airquality

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/geocoding"
)

// Provider defines the interface for air quality data providers.
type Provider interface {
	// Feed fetches air quality for a location locator.
	// A nil snapshot with a nil error means the provider reported no data
	// or a non-success status.
	Feed(ctx context.Context, locator string) (*Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the air quality service.
type ServiceConfig struct {
	// Provider is the air quality data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service provides air quality lookups by city name or coordinates.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new air quality service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Snapshot returns air quality for a city name, a coordinate pair, or both.
// Coordinates take precedence when available. With neither, no upstream call
// is made and the result is simply absent.
func (s *Service) Snapshot(ctx context.Context, city string, coords *geocoding.Coordinates) (*Snapshot, error) {
	locator := Locator(city, coords)
	if locator == "" {
		return nil, nil
	}

	snapshot, err := s.provider.Feed(ctx, locator)
	if err != nil {
		s.logger.Error().Err(err).
			Str("locator", locator).
			Str("provider", s.provider.Name()).
			Msg("air quality request failed")
		return nil, ErrProviderUnavailable
	}

	if snapshot == nil {
		s.logger.Warn().
			Str("locator", locator).
			Str("provider", s.provider.Name()).
			Msg("air quality response carried no data")
		return nil, nil
	}

	return snapshot, nil
}

// Locator builds the provider location locator: "geo:<lat>;<lon>" when
// coordinates are present, the city name otherwise, empty when neither is.
func Locator(city string, coords *geocoding.Coordinates) string {
	if coords != nil {
		return "geo:" + strconv.FormatFloat(coords.Lat, 'f', -1, 64) +
			";" + strconv.FormatFloat(coords.Lon, 'f', -1, 64)
	}
	return city
}

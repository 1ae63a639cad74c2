package weather

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/geocoding"
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// Current fetches current weather for a location.
	// A nil snapshot with a nil error means the provider answered but the
	// response carried no usable weather data.
	Current(ctx context.Context, lat, lon float64) (*Snapshot, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service provides current weather lookups.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Current returns the current weather for resolved coordinates.
// Absence of data (nil, nil) and transport failure (nil, err) are kept
// distinct so callers can log the difference, even though both end up as an
// empty weather block in the response.
func (s *Service) Current(ctx context.Context, coords geocoding.Coordinates) (*Snapshot, error) {
	snapshot, err := s.provider.Current(ctx, coords.Lat, coords.Lon)
	if err != nil {
		s.logger.Error().Err(err).
			Float64("lat", coords.Lat).
			Float64("lon", coords.Lon).
			Str("provider", s.provider.Name()).
			Msg("weather request failed")
		return nil, ErrProviderUnavailable
	}

	if snapshot == nil {
		s.logger.Warn().
			Float64("lat", coords.Lat).
			Float64("lon", coords.Lon).
			Str("provider", s.provider.Name()).
			Msg("weather response carried no usable data")
		return nil, nil
	}

	return snapshot, nil
}

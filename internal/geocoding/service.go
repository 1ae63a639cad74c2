package geocoding

import (
	"context"

	"github.com/rs/zerolog"
)

// Provider defines the interface for geocoding providers.
type Provider interface {
	// Geocode resolves a place name to candidate coordinates, at most limit
	// results. An empty slice means no match; an error means the provider
	// could not answer.
	Geocode(ctx context.Context, city string, limit int) ([]Coordinates, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the geocoding service.
type ServiceConfig struct {
	// Provider is the geocoding provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves city names to coordinates.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new geocoding service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Resolve returns the coordinates of the best candidate for the city name.
// A nil result with a nil error means the provider had no match; an
// ErrProviderUnavailable error means it could not be determined at all.
func (s *Service) Resolve(ctx context.Context, city string) (*Coordinates, error) {
	candidates, err := s.provider.Geocode(ctx, city, 1)
	if err != nil {
		s.logger.Error().Err(err).
			Str("city", city).
			Str("provider", s.provider.Name()).
			Msg("geocoding request failed")
		return nil, ErrProviderUnavailable
	}

	if len(candidates) == 0 {
		s.logger.Debug().
			Str("city", city).
			Msg("no geocoding candidates")
		return nil, nil
	}

	coords := candidates[0]
	return &coords, nil
}

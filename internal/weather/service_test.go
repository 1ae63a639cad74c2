package weather_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityair/cityair/internal/geocoding"
	"github.com/cityair/cityair/internal/weather"
)

type stubProvider struct {
	snapshot *weather.Snapshot
	err      error
	lastLat  float64
	lastLon  float64
}

func (p *stubProvider) Current(_ context.Context, lat, lon float64) (*weather.Snapshot, error) {
	p.lastLat, p.lastLon = lat, lon
	return p.snapshot, p.err
}

func (p *stubProvider) Name() string { return "stub" }

func newTestService(p *stubProvider) *weather.Service {
	return weather.NewService(weather.ServiceConfig{
		Provider: p,
		Logger:   zerolog.New(io.Discard),
	})
}

func TestService_Current(t *testing.T) {
	provider := &stubProvider{
		snapshot: &weather.Snapshot{Temperature: 15.2, Humidity: 70, Description: "clear sky"},
	}
	svc := newTestService(provider)

	snapshot, err := svc.Current(context.Background(), geocoding.Coordinates{Lat: 51.5, Lon: -0.12})
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, 15.2, snapshot.Temperature)
	assert.Equal(t, 51.5, provider.lastLat)
	assert.Equal(t, -0.12, provider.lastLon)
}

func TestService_Current_NoUsableData(t *testing.T) {
	svc := newTestService(&stubProvider{})

	snapshot, err := svc.Current(context.Background(), geocoding.Coordinates{Lat: 51.5, Lon: -0.12})
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestService_Current_ProviderError(t *testing.T) {
	svc := newTestService(&stubProvider{err: errors.New("timeout")})

	snapshot, err := svc.Current(context.Background(), geocoding.Coordinates{Lat: 51.5, Lon: -0.12})
	require.ErrorIs(t, err, weather.ErrProviderUnavailable)
	assert.Nil(t, snapshot)
}

package openweathermap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityair/cityair/internal/geocoding/openweathermap"
	"github.com/cityair/cityair/internal/provider/resilience"
)

func TestClient_Geocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/direct", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "****", r.URL.Query().Get("appid"))

		response := []map[string]interface{}{
			{
				"name":    "London",
				"lat":     51.5,
				"lon":     -0.12,
				"country": "GB",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	candidates, err := client.Geocode(context.Background(), "London", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, 51.5, candidates[0].Lat)
	assert.Equal(t, -0.12, candidates[0].Lon)
}

func TestClient_Geocode_EscapesCityName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Den Haag", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Den Haag","lat":52.07,"lon":4.3}]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	candidates, err := client.Geocode(context.Background(), "Den Haag", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
}

func TestClient_Geocode_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	candidates, err := client.Geocode(context.Background(), "Atlantis", 1)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestClient_Geocode_ZeroCoordinatesAreValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Null Island","lat":0,"lon":0}]`))
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	candidates, err := client.Geocode(context.Background(), "Null Island", 1)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 0.0, candidates[0].Lat)
	assert.Equal(t, 0.0, candidates[0].Lon)
}

func TestClient_Geocode_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	_, err := client.Geocode(context.Background(), "London", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Geocode_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Geocode(ctx, "London", 1)
	require.Error(t, err)
}

func TestClient_Name(t *testing.T) {
	client := openweathermap.NewClient(openweathermap.ClientConfig{APIKey: "****"})
	assert.Equal(t, "openweathermap-geo", client.Name())
}

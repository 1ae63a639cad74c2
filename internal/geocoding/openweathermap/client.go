// Package openweathermap provides a client for the OpenWeather Geocoding API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/geocoding"
	"github.com/cityair/cityair/internal/provider/resilience"
)

const (
	// ProviderName identifies this geocoding provider.
	ProviderName = "openweathermap-geo"

	// DefaultBaseURL is the OpenWeather Geocoding API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/geo/1.0"
)

// ClientConfig holds configuration for the geocoding client.
type ClientConfig struct {
	// APIKey is the OpenWeather API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the Geocoding API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a guarded client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeather Geocoding API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new geocoding client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Geocode resolves a city name to candidate coordinates.
// An empty result set is not an error; it means the provider has no match.
func (c *Client) Geocode(ctx context.Context, city string, limit int) ([]geocoding.Coordinates, error) {
	reqURL := fmt.Sprintf("%s/direct?q=%s&limit=%d&appid=%s",
		c.baseURL, url.QueryEscape(city), limit, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	candidates := make([]geocoding.Coordinates, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, geocoding.Coordinates{
			Lat: r.Lat,
			Lon: r.Lon,
		})
	}

	return candidates, nil
}

// OpenWeather Geocoding API response structure.

type geocodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

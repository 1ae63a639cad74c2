// Package openweathermap provides a client for the OpenWeather current weather API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/provider/resilience"
	"github.com/cityair/cityair/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeather current weather API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// ClientConfig holds configuration for the OpenWeather client.
type ClientConfig struct {
	// APIKey is the OpenWeather API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the OpenWeather API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a guarded client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenWeather current weather API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new OpenWeather client.
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

// Current fetches current weather for a location in metric units.
// A response without the main conditions block yields (nil, nil): the caller
// already owns the coordinates, so downstream lookups can still proceed.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*weather.Snapshot, error) {
	url := fmt.Sprintf("%s/weather?lat=%.6f&lon=%.6f&appid=%s&units=metric",
		c.baseURL, lat, lon, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
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

	var owmResp currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owmResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if owmResp.Main == nil {
		c.logger.Warn().
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("weather response missing main conditions block")
		return nil, nil
	}

	return c.toSnapshot(&owmResp), nil
}

// toSnapshot converts an OpenWeather response to the domain model.
func (c *Client) toSnapshot(resp *currentWeatherResponse) *weather.Snapshot {
	snapshot := &weather.Snapshot{
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
	}

	if len(resp.Weather) > 0 {
		snapshot.Description = resp.Weather[0].Description
	}

	return snapshot
}

// OpenWeather API response structures.
// Main is a pointer so its absence is distinguishable from a zero block.

type currentWeatherResponse struct {
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Name string `json:"name"`
}

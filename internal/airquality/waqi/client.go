// Package waqi provides a client for the World Air Quality Index feed API.
package waqi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cityair/cityair/internal/airquality"
	"github.com/cityair/cityair/internal/provider/resilience"
)

const (
	// ProviderName identifies this air quality provider.
	ProviderName = "waqi"

	// DefaultBaseURL is the WAQI API base URL.
	DefaultBaseURL = "https://api.waqi.info"

	// statusOK is the success marker in WAQI feed responses.
	statusOK = "ok"
)

// ClientConfig holds configuration for the WAQI client.
type ClientConfig struct {
	// Token is the WAQI access token (required).
	Token string

	// BaseURL is the API base URL (optional, defaults to the WAQI API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a guarded client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a WAQI feed API client.
type Client struct {
	token      string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new WAQI client.
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
		token:      cfg.Token,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Feed fetches air quality for a locator ("geo:<lat>;<lon>" or a place name).
// A non-success status or an undecodable data block yields (nil, nil); only
// transport-level failures are errors.
func (c *Client) Feed(ctx context.Context, locator string) (*airquality.Snapshot, error) {
	reqURL := fmt.Sprintf("%s/feed/%s/?token=%s", c.baseURL, url.PathEscape(locator), c.token)

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

	var feedResp feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feedResp); err != nil {
		c.logger.Warn().Err(err).
			Str("locator", locator).
			Msg("undecodable air quality response")
		return nil, nil
	}

	if feedResp.Status != statusOK {
		c.logger.Warn().
			Str("locator", locator).
			Str("status", feedResp.Status).
			Msg("air quality feed reported non-success status")
		return nil, nil
	}

	// On error statuses the data block is a plain string, so it is only
	// decoded once the status is known to be a success.
	var data feedData
	if err := json.Unmarshal(feedResp.Data, &data); err != nil {
		c.logger.Warn().Err(err).
			Str("locator", locator).
			Msg("undecodable air quality data block")
		return nil, nil
	}

	return toSnapshot(&data), nil
}

// toSnapshot converts a WAQI data block to the domain model.
func toSnapshot(data *feedData) *airquality.Snapshot {
	snapshot := &airquality.Snapshot{
		DominantPollutant: data.DominentPol,
		Pollutants:        make(map[string]float64, len(data.IAQI)),
	}

	// The feed reports "-" instead of a number when no index is available.
	var aqi float64
	if err := json.Unmarshal(data.AQI, &aqi); err == nil {
		snapshot.AQI = &aqi
	}

	for code, sub := range data.IAQI {
		if sub.V != nil {
			snapshot.Pollutants[code] = *sub.V
		}
	}

	return snapshot
}

// WAQI API response structures.

type feedResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type feedData struct {
	AQI         json.RawMessage     `json:"aqi"`
	DominentPol *string             `json:"dominentpol"`
	IAQI        map[string]subIndex `json:"iaqi"`
}

type subIndex struct {
	V *float64 `json:"v"`
}

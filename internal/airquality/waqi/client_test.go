package waqi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityair/cityair/internal/airquality/waqi"
	"github.com/cityair/cityair/internal/provider/resilience"
)

func newTestClient(serverURL string) *waqi.Client {
	return waqi.NewClient(waqi.ClientConfig{
		Token:      "****",
		BaseURL:    serverURL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})
}

func TestClient_Feed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/geo:51.5;-0.12/", r.URL.Path)
		assert.Equal(t, "****", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"data": {
				"aqi": 42,
				"dominentpol": "pm25",
				"iaqi": {
					"pm25": {"v": 42},
					"o3": {"v": 10}
				}
			}
		}`))
	}))
	defer server.Close()

	snapshot, err := newTestClient(server.URL).Feed(context.Background(), "geo:51.5;-0.12")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	require.NotNil(t, snapshot.AQI)
	assert.Equal(t, 42.0, *snapshot.AQI)
	require.NotNil(t, snapshot.DominantPollutant)
	assert.Equal(t, "pm25", *snapshot.DominantPollutant)
	assert.Equal(t, map[string]float64{"pm25": 42, "o3": 10}, snapshot.Pollutants)
}

func TestClient_Feed_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","data":"Invalid key"}`))
	}))
	defer server.Close()

	snapshot, err := newTestClient(server.URL).Feed(context.Background(), "London")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestClient_Feed_NonNumericAQI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","data":{"aqi":"-","dominentpol":"pm10","iaqi":{"pm10":{"v":7}}}}`))
	}))
	defer server.Close()

	snapshot, err := newTestClient(server.URL).Feed(context.Background(), "London")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	// A "-" index becomes a null AQI; the rest of the snapshot survives.
	assert.Nil(t, snapshot.AQI)
	assert.Equal(t, map[string]float64{"pm10": 7}, snapshot.Pollutants)
}

func TestClient_Feed_SubIndexWithoutValueOmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","data":{"aqi":42,"iaqi":{"pm25":{"v":42},"no2":{}}}}`))
	}))
	defer server.Close()

	snapshot, err := newTestClient(server.URL).Feed(context.Background(), "London")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, map[string]float64{"pm25": 42}, snapshot.Pollutants)
	assert.NotContains(t, snapshot.Pollutants, "no2")
	assert.Nil(t, snapshot.DominantPollutant)
}

func TestClient_Feed_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	snapshot, err := newTestClient(server.URL).Feed(context.Background(), "London")
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestClient_Feed_CityLocatorEscaped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/Den Haag/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","data":{"aqi":12,"iaqi":{}}}`))
	}))
	defer server.Close()

	snapshot, err := newTestClient(server.URL).Feed(context.Background(), "Den Haag")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	require.NotNil(t, snapshot.AQI)
	assert.Equal(t, 12.0, *snapshot.AQI)
}

func TestClient_Feed_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Feed(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Name(t *testing.T) {
	client := waqi.NewClient(waqi.ClientConfig{Token: "****"})
	assert.Equal(t, "waqi", client.Name())
}

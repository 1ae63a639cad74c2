package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityair/cityair/internal/airquality"
	"github.com/cityair/cityair/internal/api/models"
	"github.com/cityair/cityair/internal/environment"
	"github.com/cityair/cityair/internal/weather"
)

func TestNewEnvironmentReport(t *testing.T) {
	aqi := 42.0
	dominant := "pm25"
	report := models.NewEnvironmentReport(&environment.Report{
		City: "London",
		Weather: &weather.Snapshot{
			Temperature: 15.2,
			Humidity:    70,
			Description: "clear sky",
		},
		AirQuality: &airquality.Snapshot{
			AQI:               &aqi,
			DominantPollutant: &dominant,
			Pollutants:        map[string]float64{"pm25": 42, "o3": 10},
		},
	})

	body, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"city": "London",
		"weather_data": {"temperature": 15.2, "humidity": 70, "weather": "clear sky"},
		"aqi_data": {"aqi_us": 42, "dominant_pollutant": "pm25", "pollutants": {"pm25": 42, "o3": 10}}
	}`, string(body))
}

func TestNewEnvironmentReport_AbsentBlocksRenderAsEmptyObjects(t *testing.T) {
	report := models.NewEnvironmentReport(&environment.Report{City: "London"})

	body, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{"city": "London", "weather_data": {}, "aqi_data": {}}`, string(body))
}

func TestNewEnvironmentReport_NullAQIFieldsPreserved(t *testing.T) {
	// A station can report sub-indices without an overall AQI.
	report := models.NewEnvironmentReport(&environment.Report{
		City: "London",
		AirQuality: &airquality.Snapshot{
			Pollutants: map[string]float64{"o3": 10},
		},
	})

	body, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"city": "London",
		"weather_data": {},
		"aqi_data": {"aqi_us": null, "dominant_pollutant": null, "pollutants": {"o3": 10}}
	}`, string(body))
}

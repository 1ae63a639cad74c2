package models

import (
	"github.com/cityair/cityair/internal/environment"
)

// emptyObject renders as {} for absent upstream data blocks.
var emptyObject = struct{}{}

// EnvironmentReport is the merged response for GET /environment.
// WeatherData and AQIData hold either their typed payload or an empty object;
// absent upstream data is never null.
type EnvironmentReport struct {
	City        string `json:"city"`
	WeatherData any    `json:"weather_data"`
	AQIData     any    `json:"aqi_data"`
}

// WeatherData is the weather block of an environment report.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Weather     string  `json:"weather"`
}

// AirQualityData is the air quality block of an environment report.
type AirQualityData struct {
	AQIUS             *float64           `json:"aqi_us"`
	DominantPollutant *string            `json:"dominant_pollutant"`
	Pollutants        map[string]float64 `json:"pollutants"`
}

// NewEnvironmentReport shapes a domain report into the response payload.
func NewEnvironmentReport(report *environment.Report) EnvironmentReport {
	out := EnvironmentReport{
		City:        report.City,
		WeatherData: emptyObject,
		AQIData:     emptyObject,
	}

	if report.Weather != nil {
		out.WeatherData = WeatherData{
			Temperature: report.Weather.Temperature,
			Humidity:    report.Weather.Humidity,
			Weather:     report.Weather.Description,
		}
	}

	if report.AirQuality != nil {
		out.AQIData = AirQualityData{
			AQIUS:             report.AirQuality.AQI,
			DominantPollutant: report.AirQuality.DominantPollutant,
			Pollutants:        report.AirQuality.Pollutants,
		}
	}

	return out
}

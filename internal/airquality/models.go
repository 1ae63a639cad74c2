// Package airquality provides air quality index data access.
package airquality

import "errors"

// Air quality errors.
var (
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
)

// Snapshot represents current air quality at a location.
// A nil *Snapshot means no air quality data is available; that is never a
// fatal condition for the request that asked for it.
type Snapshot struct {
	// AQI is the overall US AQI value. Nil when the provider has no index
	// (the live feed reports "-" in that case).
	AQI *float64

	// DominantPollutant is the pollutant code driving the current AQI,
	// e.g. "pm25". Nil when not reported.
	DominantPollutant *string

	// Pollutants maps pollutant codes to their individual sub-index values.
	// Sub-indices without a value are omitted, never defaulted to zero.
	Pollutants map[string]float64
}

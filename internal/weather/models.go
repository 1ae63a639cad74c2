// Package weather provides current weather data access.
package weather

import "errors"

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
)

// Snapshot represents current weather conditions at a point.
// A nil *Snapshot means the provider returned no usable weather data.
type Snapshot struct {
	// Temperature in Celsius (metric units requested upstream, no local conversion).
	Temperature float64

	// Humidity percentage (0-100).
	Humidity float64

	// Description is the human-readable condition, e.g. "clear sky".
	// Empty when the provider reported no condition list.
	Description string
}

// Package geocoding resolves free-text city names to geographic coordinates.
package geocoding

import "errors"

// Geocoding errors.
var (
	// ErrProviderUnavailable indicates the geocoding provider could not be
	// reached or returned an unusable response. This is distinct from "no
	// match": the city may well exist, we just could not determine it.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Coordinates is a resolved geographic position.
// A nil *Coordinates signals "no match"; zero values for Lat or Lon are valid
// positions (equator, prime meridian) and never mean absence.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"
)

// Position is a single resolved geographic fix. It is a value type and is never mutated after creation.
type Position struct {
	// Latitude and Longitude are in degrees.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Address is filled by reverse geocoding and may be empty.
	Address string `json:"address,omitempty"`

	// Accuracy is the reported accuracy radius in metres, zero when unknown.
	Accuracy float64 `json:"accuracy,omitempty"`
}

// WithAddress returns a copy of the position carrying the given address.
func (p Position) WithAddress(address string) Position {
	p.Address = address

	return p
}

// Coordinates formats the position as "lat, lng".
func (p Position) Coordinates() string {
	return fmt.Sprintf("%.6f, %.6f", p.Latitude, p.Longitude)
}

// MapsURL returns a Google Maps link for the position.
func (p Position) MapsURL() string {
	return fmt.Sprintf("https://maps.google.com/?q=%.6f,%.6f", p.Latitude, p.Longitude)
}

// LocationText is the human readable location embedded in outgoing messages.
func (p Position) LocationText() string {
	if p.Address != "" {
		return fmt.Sprintf("%s (%s)", p.Address, p.MapsURL())
	}

	return fmt.Sprintf("%s (%s)", p.Coordinates(), p.MapsURL())
}

// PositionCacheEntry is the last successfully resolved position for a cache scope.
type PositionCacheEntry struct {
	Position   Position  `json:"position"`
	CapturedAt time.Time `json:"captured_at"`
}

// FreshAt reports whether the entry is strictly younger than maxAge at now.
func (e *PositionCacheEntry) FreshAt(now time.Time, maxAge time.Duration) bool {
	if e == nil {
		return false
	}

	return now.Sub(e.CapturedAt) < maxAge
}

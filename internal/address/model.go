package address

import (
	"errors"
	"time"
)

var (
	// ErrNotFound covers both a missing address and one owned by another
	// user.
	ErrNotFound = errors.New("address not found")

	ErrStreetRequired = errors.New("street is required")
	ErrCityRequired   = errors.New("city is required")
)

// Address is a client-owned location where home-visit services take place.
// Coordinates are optional; they come from a geocoding lookup done by the
// client application, not by this service.
type Address struct {
	ID        string
	OwnerID   string
	Street    string
	Number    string
	Unit      *string
	City      string
	Region    string
	Notes     *string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

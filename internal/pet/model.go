package pet

import (
	"errors"
	"time"
)

var (
	// ErrNotFound covers both a missing pet and a pet owned by someone
	// else; callers cannot tell the two apart.
	ErrNotFound = errors.New("pet not found")

	ErrNameRequired   = errors.New("name is required")
	ErrInvalidSpecies = errors.New("invalid species")
)

// Species of a pet profile. The marketplace only matches dogs and cats with
// sitters; anything else is informational.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// ValidSpecies reports whether s is a known species value.
func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Pet is a client-owned animal profile referenced by bookings.
type Pet struct {
	ID          string
	OwnerID     string
	Name        string
	Species     Species
	Breed       *string
	HealthNotes *string
	PhotoID     *string // media file id
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

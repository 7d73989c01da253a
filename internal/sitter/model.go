package sitter

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "sitter profile not found")
	ErrInvalidService = apperror.New(http.StatusBadRequest, "invalid service type")
	ErrInvalidRate    = apperror.New(http.StatusBadRequest, "rate must be zero or positive")
	ErrInvalidDate    = apperror.New(http.StatusBadRequest, "invalid search date")
	ErrNotApproved    = apperror.New(http.StatusForbidden, "sitter profile is not approved yet")
)

// Profile is a sitter's public offering, keyed by the user id. A profile
// exists only for users with the sitter role.
type Profile struct {
	UserID      string
	DisplayName string
	Bio         *string
	Services    []string
	NightlyRate *int
	CaresDogs   bool
	CaresCats   bool
	HasYard     bool
	City        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SearchFilter narrows the sitter search. Date is required: only sitters
// who marked that day available are returned.
type SearchFilter struct {
	Service  string
	Date     time.Time
	City     string
	Page     int
	PageSize int
}

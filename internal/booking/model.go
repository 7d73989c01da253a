package booking

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "start date must not be after end date")
	ErrStartDatePast     = apperror.New(http.StatusBadRequest, "cannot create a booking in the past")
	ErrInvalidService    = apperror.New(http.StatusBadRequest, "invalid service type")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking status does not allow this action")
	ErrAlreadyAssigned   = apperror.New(http.StatusConflict, "booking already has a sitter")
	ErrOwnBooking        = apperror.New(http.StatusBadRequest, "cannot act on your own booking request")
	ErrNoPets            = apperror.New(http.StatusBadRequest, "at least one pet is required")
	ErrPetNotOwned       = apperror.New(http.StatusBadRequest, "pet not found or not permitted")
	ErrAddressNotOwned   = apperror.New(http.StatusBadRequest, "address not found or not permitted")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

// Status is the booking lifecycle state. A booking is never deleted in the
// normal flow; it only moves through these states.
type Status string

const (
	// StatusPublished: created by a client, visible to sitters, no sitter assigned.
	StatusPublished Status = "published"
	// StatusReserved: a sitter has been matched (claim or accepted application).
	StatusReserved Status = "reserved"
	// StatusConfirmed: the sitter explicitly confirmed the engagement.
	StatusConfirmed Status = "confirmed"
	// StatusCompleted: the service was delivered.
	StatusCompleted Status = "completed"
	// StatusCancelled: terminated by the client or an admin.
	StatusCancelled Status = "cancelled"
)

// transitions is the allowed edge set of the lifecycle. Cancellation is
// reachable from every non-terminal state.
var transitions = map[Status][]Status{
	StatusPublished: {StatusReserved, StatusCancelled},
	StatusReserved:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether moving from -> to is a legal lifecycle step.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPublished, StatusReserved, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ServiceType is the kind of care requested.
type ServiceType string

const (
	ServiceBoarding  ServiceType = "boarding"   // pets stay at the sitter's home
	ServiceHomeVisit ServiceType = "home_visit" // sitter visits the client's home
	ServiceWalk      ServiceType = "walk"
	ServiceDaycare   ServiceType = "daycare"
)

// ValidService reports whether s is a known service type.
func ValidService(s ServiceType) bool {
	switch s {
	case ServiceBoarding, ServiceHomeVisit, ServiceWalk, ServiceDaycare:
		return true
	}
	return false
}

// Booking is a client's request for a care service over a date range.
// EndDate is nil for single-day services such as walks.
type Booking struct {
	ID         string
	ClientID   string
	ClientName string
	SitterID   *string
	SitterName *string
	Service    ServiceType
	StartDate  time.Time
	EndDate    *time.Time
	Status     Status
	PetIDs     []string
	AddressID  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ClientID        string
	SitterID        string
	Unassigned      bool      // only bookings without a sitter
	ExcludeClientID string    // hide a client's own requests (open-opportunity browsing)
	Status          Status    // single status filter
	StartFrom       time.Time // only bookings starting on or after this date
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

package application

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "application not found")
	ErrAlreadyApplied  = apperror.New(http.StatusConflict, "you have already applied to this booking")
	ErrBookingClosed   = apperror.New(http.StatusConflict, "booking is no longer accepting applications")
	ErrOwnBooking      = apperror.New(http.StatusBadRequest, "cannot apply to your own booking request")
	ErrMessageRequired = apperror.New(http.StatusBadRequest, "message is required")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "offered price must be zero or positive")
	ErrNotPending      = apperror.New(http.StatusConflict, "application has already been decided")
	ErrNotBookingOwner = apperror.New(http.StatusForbidden, "only the booking's client may decide applications")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application is a sitter's offer to take a published booking. At most one
// application per (booking, sitter) pair exists; the pair is unique in the
// database.
type Application struct {
	ID           string
	BookingID    string
	SitterID     string
	SitterName   string
	Message      string
	OfferedPrice *int
	Status       Status
	CreatedAt    time.Time
}

// BookingSummary carries the booking fields an application listing needs
// without loading the full booking aggregate.
type BookingSummary struct {
	ID         string
	ClientID   string
	ClientName string
	Service    string
	StartDate  time.Time
	EndDate    *time.Time
	Status     string
}

// WithBooking is an application joined with its booking summary, used by
// sitter-facing listings and the agenda projection.
type WithBooking struct {
	Application
	Booking BookingSummary
}

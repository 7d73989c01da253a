package http

import (
	"fmt"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/availability"
)

const dateLayout = "2006-01-02"

// AvailabilityResponse is the calendar payload: the sitter's selected dates
// inside the current window.
type AvailabilityResponse struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

func NewAvailabilityResponse(dates []time.Time) AvailabilityResponse {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(dateLayout)
	}
	return AvailabilityResponse{Dates: out, Count: len(out)}
}

// SaveAvailabilityRequest replaces the stored selection with the given dates.
type SaveAvailabilityRequest struct {
	Dates []string `json:"dates" binding:"required"`
}

// ParseDates converts the request's date strings, rejecting malformed values
// before anything reaches the store.
func (r *SaveAvailabilityRequest) ParseDates() ([]time.Time, error) {
	out := make([]time.Time, 0, len(r.Dates))
	for _, s := range r.Dates {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
		out = append(out, d)
	}
	return out, nil
}

// BulkSelectRequest applies a calendar shortcut on top of the stored
// selection and saves the result.
type BulkSelectRequest struct {
	Op    string `json:"op" binding:"required,oneof=next_days toggle_month"`
	Days  int    `json:"days" binding:"omitempty,min=1,max=366"`
	Month string `json:"month"` // YYYY-MM, required for toggle_month
}

// Validate checks op-specific fields.
func (r *BulkSelectRequest) Validate() error {
	switch r.Op {
	case "next_days":
		if r.Days == 0 {
			return fmt.Errorf("days is required for next_days")
		}
	case "toggle_month":
		if _, err := time.Parse("2006-01", r.Month); err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", r.Month)
		}
	}
	return nil
}

// Apply runs the requested shortcut against the current selection.
func (r *BulkSelectRequest) Apply(selection availability.DateSet, today time.Time) availability.DateSet {
	switch r.Op {
	case "next_days":
		return availability.Merge(selection, availability.NextDays(today, r.Days))
	case "toggle_month":
		month, _ := time.Parse("2006-01", r.Month)
		return availability.ToggleMonth(selection, today, month)
	}
	return selection
}

package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/application"
)

const dateLayout = "2006-01-02"

type ApplicationResponse struct {
	ID           string    `json:"id"`
	BookingID    string    `json:"booking_id"`
	SitterID     string    `json:"sitter_id"`
	SitterName   string    `json:"sitter_name,omitempty"`
	Message      string    `json:"message"`
	OfferedPrice *int      `json:"offered_price,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewApplicationResponse(a *application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		BookingID:    a.BookingID,
		SitterID:     a.SitterID,
		SitterName:   a.SitterName,
		Message:      a.Message,
		OfferedPrice: a.OfferedPrice,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

type BookingSummaryResponse struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
	Service    string  `json:"service"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     string  `json:"status"`
}

type ApplicationWithBookingResponse struct {
	ApplicationResponse
	Booking BookingSummaryResponse `json:"booking"`
}

func NewApplicationWithBookingResponse(w *application.WithBooking) ApplicationWithBookingResponse {
	resp := ApplicationWithBookingResponse{
		ApplicationResponse: NewApplicationResponse(&w.Application),
		Booking: BookingSummaryResponse{
			ID:         w.Booking.ID,
			ClientID:   w.Booking.ClientID,
			ClientName: w.Booking.ClientName,
			Service:    w.Booking.Service,
			StartDate:  w.Booking.StartDate.Format(dateLayout),
			Status:     w.Booking.Status,
		},
	}
	if w.Booking.EndDate != nil {
		end := w.Booking.EndDate.Format(dateLayout)
		resp.Booking.EndDate = &end
	}
	return resp
}

type ApplyRequest struct {
	Message      string `json:"message" binding:"required"`
	OfferedPrice *int   `json:"offered_price" binding:"required,min=0"`
}

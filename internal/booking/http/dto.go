package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/booking"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	SitterID   *string   `json:"sitter_id,omitempty"`
	SitterName *string   `json:"sitter_name,omitempty"`
	Service    string    `json:"service"`
	StartDate  string    `json:"start_date"`
	EndDate    *string   `json:"end_date,omitempty"`
	Status     string    `json:"status"`
	PetIDs     []string  `json:"pet_ids"`
	AddressID  *string   `json:"address_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		ClientID:   b.ClientID,
		ClientName: b.ClientName,
		SitterID:   b.SitterID,
		SitterName: b.SitterName,
		Service:    string(b.Service),
		StartDate:  b.StartDate.Format(dateLayout),
		Status:     string(b.Status),
		PetIDs:     b.PetIDs,
		AddressID:  b.AddressID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if b.EndDate != nil {
		end := b.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	if resp.PetIDs == nil {
		resp.PetIDs = []string{}
	}
	return resp
}

func newBookingPage(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}

type CreateBookingRequest struct {
	Service   string   `json:"service" binding:"required,oneof=boarding home_visit walk daycare"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   *string  `json:"end_date"`
	PetIDs    []string `json:"pet_ids" binding:"required,min=1,dive,uuid"`
	AddressID *string  `json:"address_id" binding:"omitempty,uuid"`
}

// ToCreateRequest parses the date fields and converts to a service request.
func (r *CreateBookingRequest) ToCreateRequest() (booking.CreateRequest, error) {
	start, err := time.ParseInLocation(dateLayout, r.StartDate, time.UTC)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	var end *time.Time
	if r.EndDate != nil && *r.EndDate != "" {
		e, err := time.ParseInLocation(dateLayout, *r.EndDate, time.UTC)
		if err != nil {
			return booking.CreateRequest{}, err
		}
		end = &e
	}

	return booking.CreateRequest{
		Service:   booking.ServiceType(r.Service),
		StartDate: start,
		EndDate:   end,
		PetIDs:    r.PetIDs,
		AddressID: r.AddressID,
	}, nil
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=published reserved confirmed completed cancelled"`
}

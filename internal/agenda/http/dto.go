package http

import (
	"github.com/pawnecta/petsitting-backend/internal/agenda"
)

const dateLayout = "2006-01-02"

type AgendaItemResponse struct {
	BookingID      string  `json:"booking_id"`
	ClientID       string  `json:"client_id"`
	ClientName     string  `json:"client_name"`
	Service        string  `json:"service"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	Status         string  `json:"status"`
	DaysUntilStart int     `json:"days_until_start"`
	Bucket         string  `json:"bucket"`
	Source         string  `json:"source"`
}

func NewAgendaItemResponse(item agenda.Item) AgendaItemResponse {
	resp := AgendaItemResponse{
		BookingID:      item.BookingID,
		ClientID:       item.ClientID,
		ClientName:     item.ClientName,
		Service:        item.Service,
		StartDate:      item.StartDate.Format(dateLayout),
		Status:         string(item.Status),
		DaysUntilStart: item.DaysUntilStart,
		Bucket:         string(item.Bucket),
		Source:         string(item.Source),
	}
	if item.EndDate != nil {
		end := item.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	return resp
}

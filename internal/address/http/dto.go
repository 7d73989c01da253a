package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/address"
)

type AddressResponse struct {
	ID        string    `json:"id"`
	Street    string    `json:"street"`
	Number    string    `json:"number,omitempty"`
	Unit      *string   `json:"unit,omitempty"`
	City      string    `json:"city"`
	Region    string    `json:"region,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAddressResponse(a *address.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Street:    a.Street,
		Number:    a.Number,
		Unit:      a.Unit,
		City:      a.City,
		Region:    a.Region,
		Notes:     a.Notes,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		CreatedAt: a.CreatedAt,
	}
}

type CreateAddressRequest struct {
	Street    string   `json:"street" binding:"required"`
	Number    string   `json:"number"`
	Unit      string   `json:"unit"`
	City      string   `json:"city" binding:"required"`
	Region    string   `json:"region"`
	Notes     string   `json:"notes"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type UpdateAddressRequest struct {
	Street    *string  `json:"street"`
	Number    *string  `json:"number"`
	Unit      *string  `json:"unit"`
	City      *string  `json:"city"`
	Region    *string  `json:"region"`
	Notes     *string  `json:"notes"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

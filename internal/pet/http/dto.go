package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pet"
)

type PetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       *string   `json:"breed,omitempty"`
	HealthNotes *string   `json:"health_notes,omitempty"`
	PhotoID     *string   `json:"photo_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewPetResponse(p *pet.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     string(p.Species),
		Breed:       p.Breed,
		HealthNotes: p.HealthNotes,
		PhotoID:     p.PhotoID,
		CreatedAt:   p.CreatedAt,
	}
}

type CreatePetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Species     string  `json:"species" binding:"required,oneof=dog cat other"`
	Breed       string  `json:"breed"`
	HealthNotes string  `json:"health_notes"`
	PhotoID     *string `json:"photo_id" binding:"omitempty,uuid"`
}

type UpdatePetRequest struct {
	Name        *string `json:"name"`
	Species     *string `json:"species" binding:"omitempty,oneof=dog cat other"`
	Breed       *string `json:"breed"`
	HealthNotes *string `json:"health_notes"`
	PhotoID     *string `json:"photo_id" binding:"omitempty,uuid"`
}

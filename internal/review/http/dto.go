package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/review"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	SitterID   string    `json:"sitter_id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	PhotoIDs   []string  `json:"photo_ids,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		SitterID:   r.SitterID,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		PhotoIDs:   r.PhotoIDs,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

type CreateReviewRequest struct {
	Rating   int      `json:"rating" binding:"required,min=1,max=5"`
	Comment  string   `json:"comment" binding:"required"`
	PhotoIDs []string `json:"photo_ids" binding:"omitempty,dive,uuid"`
}

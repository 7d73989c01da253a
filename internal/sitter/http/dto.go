package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
	"github.com/pawnecta/petsitting-backend/internal/sitter"
)

const dateLayout = "2006-01-02"

type ProfileResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Bio         *string   `json:"bio,omitempty"`
	Services    []string  `json:"services"`
	NightlyRate *int      `json:"nightly_rate,omitempty"`
	CaresDogs   bool      `json:"cares_dogs"`
	CaresCats   bool      `json:"cares_cats"`
	HasYard     bool      `json:"has_yard"`
	City        *string   `json:"city,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProfileResponse(p *sitter.Profile) ProfileResponse {
	resp := ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Services:    p.Services,
		NightlyRate: p.NightlyRate,
		CaresDogs:   p.CaresDogs,
		CaresCats:   p.CaresCats,
		HasYard:     p.HasYard,
		City:        p.City,
		UpdatedAt:   p.UpdatedAt,
	}
	if resp.Services == nil {
		resp.Services = []string{}
	}
	return resp
}

type UpsertProfileRequest struct {
	Bio         string   `json:"bio"`
	Services    []string `json:"services" binding:"omitempty,dive,oneof=boarding home_visit walk daycare"`
	NightlyRate *int     `json:"nightly_rate" binding:"omitempty,min=0"`
	CaresDogs   bool     `json:"cares_dogs"`
	CaresCats   bool     `json:"cares_cats"`
	HasYard     bool     `json:"has_yard"`
	City        string   `json:"city"`
}

type SearchRequest struct {
	request.ListParams
	Service string `form:"service" binding:"omitempty,oneof=boarding home_visit walk daycare"`
	Date    string `form:"date" binding:"required"`
	City    string `form:"city"`
}

// ParseDate parses the required search date.
func (r *SearchRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation(dateLayout, r.Date, time.UTC)
}

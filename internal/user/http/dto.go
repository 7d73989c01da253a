package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
	"github.com/pawnecta/petsitting-backend/internal/user"
)

// ListUsersRequest defines query parameters for the admin user listing.
type ListUsersRequest struct {
	request.ListParams
	Email       string `form:"email"`
	DisplayName string `form:"display_name"`
	IsSitter    *bool  `form:"is_sitter"`
	IsActive    *bool  `form:"is_active"`
	SortBy      string `form:"sort_by" binding:"omitempty,oneof=email display_name created_at"`
}

// UserResponse is the shape of user data in admin responses.
type UserResponse struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	DisplayName    *string    `json:"display_name"`
	Phone          *string    `json:"phone,omitempty"`
	IsSitter       bool       `json:"is_sitter"`
	SitterApproved bool       `json:"sitter_approved"`
	IsAdmin        bool       `json:"is_admin"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// NewUserResponse converts a domain user to the admin API shape.
func NewUserResponse(u *user.User) UserResponse {
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		Phone:          u.Phone,
		IsSitter:       u.IsSitter,
		SitterApproved: u.SitterApproved,
		IsAdmin:        u.IsAdmin,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		LastLoginAt:    lastLoginAt,
	}
}

// UpdateUserRequest defines fields an admin may change via PATCH /users/:id.
// Pointers distinguish "field not sent" from "field sent as false/empty".
type UpdateUserRequest struct {
	DisplayName    *string `json:"display_name"`
	Phone          *string `json:"phone"`
	IsSitter       *bool   `json:"is_sitter"`
	SitterApproved *bool   `json:"sitter_approved"`
	IsActive       *bool   `json:"is_active"`
}

package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
)

// User represents an account in the marketplace. Every account can act as a
// client; accounts with IsSitter also offer care services once approved.
type User struct {
	ID             string // UUID
	Email          string
	PasswordHash   string
	DisplayName    *string
	Phone          *string
	IsSitter       bool
	SitterApproved bool
	IsAdmin        bool
	IsActive       bool
	CreatedAt      time.Time
	LastLoginAt    *time.Time
}

// Filter defines filter options for listing users (admin views).
type Filter struct {
	Email       string
	DisplayName string
	IsSitter    *bool // Pointer to distinguish false from not-set
	IsActive    *bool

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

package review

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "review not found")
	ErrInvalidRating   = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrCommentRequired = apperror.New(http.StatusBadRequest, "comment is required")
	ErrOwnProfile      = apperror.New(http.StatusBadRequest, "cannot review your own profile")
	ErrNotPending      = apperror.New(http.StatusConflict, "review has already been moderated")
)

// Status is the moderation state of a review. Reviews are created pending
// and only become publicly visible once an admin approves them.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Review is a client's rating of a sitter after an engagement.
type Review struct {
	ID         string
	SitterID   string
	ClientID   string
	ClientName string
	Rating     int // 1 to 5
	Comment    string
	PhotoIDs   []string // media file ids
	Status     Status
	CreatedAt  time.Time
}

package notification

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "notification not found")

type Type string

const (
	TypeMessage     Type = "message"
	TypeAcceptance  Type = "acceptance"
	TypeApplication Type = "application"
	TypeSystem      Type = "system"
)

// Notification is an in-app inbox row. Delivery channels beyond the inbox
// (email, push) are out of scope.
type Notification struct {
	ID        string
	UserID    string
	Type      Type
	Title     string
	Message   string
	Link      *string
	Read      bool
	CreatedAt time.Time
}

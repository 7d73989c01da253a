package chat

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "conversation not found")
	ErrNotParticipant = apperror.New(http.StatusForbidden, "not a participant of this conversation")
	ErrEmptyMessage   = apperror.New(http.StatusBadRequest, "message content is required")
	ErrSameUser       = apperror.New(http.StatusBadRequest, "cannot start a conversation with yourself")
)

// Conversation is the message thread between a client and a sitter. There
// is at most one per (client, sitter) pair.
type Conversation struct {
	ID        string
	ClientID  string
	SitterID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Filled for list views, relative to the requesting user.
	LastMessage *string
	UnreadCount int
}

type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	Content        string
	Read           bool
	CreatedAt      time.Time
}

// Participant reports whether userID is one of the conversation's two sides.
func (c *Conversation) Participant(userID string) bool {
	return c.ClientID == userID || c.SitterID == userID
}

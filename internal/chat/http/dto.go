package http

import (
	"time"

	"github.com/pawnecta/petsitting-backend/internal/chat"
)

type ConversationResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	SitterID    string    `json:"sitter_id"`
	LastMessage *string   `json:"last_message,omitempty"`
	UnreadCount int       `json:"unread_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewConversationResponse(c *chat.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:          c.ID,
		ClientID:    c.ClientID,
		SitterID:    c.SitterID,
		LastMessage: c.LastMessage,
		UnreadCount: c.UnreadCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewMessageResponse(m *chat.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

type StartConversationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

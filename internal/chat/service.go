package chat

import (
	"context"
	"strings"
)

type Service interface {
	// Start opens (or returns) the conversation between the caller and a
	// sitter. Either side may call it; the pair is normalized so both
	// reach the same thread.
	Start(ctx context.Context, callerID, otherID string, callerIsSitter bool) (*Conversation, error)

	// ListMine returns the caller's conversations, most recently active
	// first.
	ListMine(ctx context.Context, callerID string) ([]*Conversation, error)

	// Send appends a message to a conversation the caller takes part in.
	Send(ctx context.Context, conversationID, callerID, content string) (*Message, error)

	// Messages returns a conversation's history, oldest first. Only
	// participants may read it.
	Messages(ctx context.Context, conversationID, callerID string) ([]*Message, error)

	// MarkRead marks the other party's messages as read by the caller.
	MarkRead(ctx context.Context, conversationID, callerID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Start(ctx context.Context, callerID, otherID string, callerIsSitter bool) (*Conversation, error) {
	if callerID == otherID {
		return nil, ErrSameUser
	}

	clientID, sitterID := callerID, otherID
	if callerIsSitter {
		clientID, sitterID = otherID, callerID
	}
	return s.repo.GetOrCreateConversation(ctx, clientID, sitterID)
}

func (s *service) ListMine(ctx context.Context, callerID string) ([]*Conversation, error) {
	return s.repo.ListConversations(ctx, callerID)
}

func (s *service) load(ctx context.Context, conversationID, callerID string) (*Conversation, error) {
	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Participant(callerID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

func (s *service) Send(ctx context.Context, conversationID, callerID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.load(ctx, conversationID, callerID); err != nil {
		return nil, err
	}

	m := &Message{
		ConversationID: conversationID,
		SenderID:       callerID,
		Content:        content,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Messages(ctx context.Context, conversationID, callerID string) ([]*Message, error) {
	if _, err := s.load(ctx, conversationID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conversationID)
}

func (s *service) MarkRead(ctx context.Context, conversationID, callerID string) error {
	if _, err := s.load(ctx, conversationID, callerID); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, conversationID, callerID)
}

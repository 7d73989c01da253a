package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	conversations map[string]*Conversation
	messages      []*Message
	nextID        int
	clock         time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		conversations: make(map[string]*Conversation),
		clock:         time.Date(2026, 5, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeRepo) GetOrCreateConversation(_ context.Context, clientID, sitterID string) (*Conversation, error) {
	for _, c := range f.conversations {
		if c.ClientID == clientID && c.SitterID == sitterID {
			copied := *c
			return &copied, nil
		}
	}
	f.nextID++
	now := f.tick()
	c := &Conversation{
		ID:        fmt.Sprintf("conv-%d", f.nextID),
		ClientID:  clientID,
		SitterID:  sitterID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.conversations[c.ID] = c
	copied := *c
	return &copied, nil
}

func (f *fakeRepo) GetConversation(_ context.Context, id string) (*Conversation, error) {
	c, ok := f.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeRepo) ListConversations(_ context.Context, userID string) ([]*Conversation, error) {
	var out []*Conversation
	for _, c := range f.conversations {
		if !c.Participant(userID) {
			continue
		}
		copied := *c
		for i := len(f.messages) - 1; i >= 0; i-- {
			if f.messages[i].ConversationID == c.ID {
				content := f.messages[i].Content
				copied.LastMessage = &content
				break
			}
		}
		for _, m := range f.messages {
			if m.ConversationID == c.ID && m.SenderID != userID && !m.Read {
				copied.UnreadCount++
			}
		}
		out = append(out, &copied)
	}
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j].UpdatedAt.After(out[i].UpdatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateMessage(_ context.Context, m *Message) error {
	f.nextID++
	m.ID = fmt.Sprintf("msg-%d", f.nextID)
	m.CreatedAt = f.tick()
	stored := *m
	f.messages = append(f.messages, &stored)
	if c, ok := f.conversations[m.ConversationID]; ok {
		c.UpdatedAt = m.CreatedAt
	}
	return nil
}

func (f *fakeRepo) ListMessages(_ context.Context, conversationID string) ([]*Message, error) {
	var out []*Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, conversationID, readerID string) error {
	for _, m := range f.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID {
			m.Read = true
		}
	}
	return nil
}

func startConversation(t *testing.T, svc Service, clientID, sitterID string) *Conversation {
	t.Helper()
	conv, err := svc.Start(context.Background(), clientID, sitterID, false)
	require.NoError(t, err)
	return conv
}

func TestStartConversation(t *testing.T) {
	svc := NewService(newFakeRepo())

	conv := startConversation(t, svc, "client-1", "sitter-1")
	require.Equal(t, "client-1", conv.ClientID)
	require.Equal(t, "sitter-1", conv.SitterID)
}

func TestStartIsIdempotentAcrossSides(t *testing.T) {
	svc := NewService(newFakeRepo())

	first := startConversation(t, svc, "client-1", "sitter-1")

	// The sitter starting with the same client lands in the same thread.
	second, err := svc.Start(context.Background(), "sitter-1", "client-1", true)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestStartWithSelf(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Start(context.Background(), "user-1", "user-1", false)
	require.ErrorIs(t, err, ErrSameUser)
}

func TestSendAndReadMessages(t *testing.T) {
	svc := NewService(newFakeRepo())

	conv := startConversation(t, svc, "client-1", "sitter-1")

	m1, err := svc.Send(context.Background(), conv.ID, "client-1", "hi, is next week open?")
	require.NoError(t, err)
	require.False(t, m1.Read)

	_, err = svc.Send(context.Background(), conv.ID, "sitter-1", "yes, all week")
	require.NoError(t, err)

	msgs, err := svc.Messages(context.Background(), conv.ID, "client-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "hi, is next week open?", msgs[0].Content)
	require.Equal(t, "yes, all week", msgs[1].Content)
}

func TestSendValidation(t *testing.T) {
	svc := NewService(newFakeRepo())

	conv := startConversation(t, svc, "client-1", "sitter-1")

	_, err := svc.Send(context.Background(), conv.ID, "client-1", "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Send(context.Background(), "missing", "client-1", "hello")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOutsiderCannotAccessConversation(t *testing.T) {
	svc := NewService(newFakeRepo())

	conv := startConversation(t, svc, "client-1", "sitter-1")

	_, err := svc.Send(context.Background(), conv.ID, "stranger", "let me in")
	require.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.Messages(context.Background(), conv.ID, "stranger")
	require.ErrorIs(t, err, ErrNotParticipant)

	err = svc.MarkRead(context.Background(), conv.ID, "stranger")
	require.ErrorIs(t, err, ErrNotParticipant)
}

func TestMarkReadClearsUnreadCount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	conv := startConversation(t, svc, "client-1", "sitter-1")

	_, err := svc.Send(context.Background(), conv.ID, "sitter-1", "first")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), conv.ID, "sitter-1", "second")
	require.NoError(t, err)

	convs, err := svc.ListMine(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, convs, 1)
	require.Equal(t, 2, convs[0].UnreadCount)
	require.NotNil(t, convs[0].LastMessage)
	require.Equal(t, "second", *convs[0].LastMessage)

	require.NoError(t, svc.MarkRead(context.Background(), conv.ID, "client-1"))

	convs, err = svc.ListMine(context.Background(), "client-1")
	require.NoError(t, err)
	require.Equal(t, 0, convs[0].UnreadCount)

	// The sender's own view is unaffected.
	convs, err = svc.ListMine(context.Background(), "sitter-1")
	require.NoError(t, err)
	require.Equal(t, 0, convs[0].UnreadCount)
}

func TestListMineOrdersByActivity(t *testing.T) {
	svc := NewService(newFakeRepo())

	first := startConversation(t, svc, "client-1", "sitter-1")
	second := startConversation(t, svc, "client-1", "sitter-2")

	// Messaging the older thread bumps it to the top.
	_, err := svc.Send(context.Background(), first.ID, "client-1", "ping")
	require.NoError(t, err)

	convs, err := svc.ListMine(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	require.Equal(t, first.ID, convs[0].ID)
	require.Equal(t, second.ID, convs[1].ID)
}

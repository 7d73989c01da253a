package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// GetOrCreateConversation returns the thread between a client and a
	// sitter, creating it on first contact.
	GetOrCreateConversation(ctx context.Context, clientID, sitterID string) (*Conversation, error)

	GetConversation(ctx context.Context, id string) (*Conversation, error)

	// ListConversations returns every thread the user takes part in,
	// most recently active first, with last message preview and the
	// user's unread count filled in.
	ListConversations(ctx context.Context, userID string) ([]*Conversation, error)

	// CreateMessage appends a message and bumps the conversation's
	// updated_at in the same transaction.
	CreateMessage(ctx context.Context, m *Message) error

	// ListMessages returns a conversation's messages oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]*Message, error)

	// MarkRead marks every message sent by the other party as read.
	MarkRead(ctx context.Context, conversationID, readerID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetOrCreateConversation(ctx context.Context, clientID, sitterID string) (*Conversation, error) {
	const query = `
		INSERT INTO public.conversations (client_id, sitter_id)
		VALUES ($1, $2)
		ON CONFLICT (client_id, sitter_id)
		DO UPDATE SET client_id = EXCLUDED.client_id
		RETURNING id, client_id, sitter_id, created_at, updated_at
	`

	var c Conversation
	err := r.pool.QueryRow(ctx, query, clientID, sitterID).Scan(
		&c.ID, &c.ClientID, &c.SitterID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create conversation failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	const query = `
		SELECT id, client_id, sitter_id, created_at, updated_at
		FROM public.conversations
		WHERE id = $1
	`

	var c Conversation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ClientID, &c.SitterID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conversation failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) ListConversations(ctx context.Context, userID string) ([]*Conversation, error) {
	const query = `
		SELECT c.id, c.client_id, c.sitter_id, c.created_at, c.updated_at,
		       (SELECT m.content FROM public.messages m
		        WHERE m.conversation_id = c.id
		        ORDER BY m.created_at DESC LIMIT 1),
		       (SELECT count(*) FROM public.messages m
		        WHERE m.conversation_id = c.id AND m.sender_id <> $1 AND NOT m.read)
		FROM public.conversations c
		WHERE c.client_id = $1 OR c.sitter_id = $1
		ORDER BY c.updated_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations failed: %w", err)
	}
	defer rows.Close()

	var out []*Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(
			&c.ID, &c.ClientID, &c.SitterID, &c.CreatedAt, &c.UpdatedAt,
			&c.LastMessage, &c.UnreadCount,
		); err != nil {
			return nil, fmt.Errorf("scan conversation failed: %w", err)
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *pgxRepository) CreateMessage(ctx context.Context, m *Message) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin message tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO public.messages (conversation_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, read, created_at
	`
	err = tx.QueryRow(ctx, insert, m.ConversationID, m.SenderID, m.Content).
		Scan(&m.ID, &m.Read, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create message failed: %w", err)
	}

	const touch = `
		UPDATE public.conversations SET updated_at = now() WHERE id = $1
	`
	if _, err := tx.Exec(ctx, touch, m.ConversationID); err != nil {
		return fmt.Errorf("touch conversation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit message tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListMessages(ctx context.Context, conversationID string) ([]*Message, error) {
	const query = `
		SELECT id, conversation_id, sender_id, content, read, created_at
		FROM public.messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages failed: %w", err)
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.Read, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message failed: %w", err)
		}
		out = append(out, &m)
	}
	return out, nil
}

func (r *pgxRepository) MarkRead(ctx context.Context, conversationID, readerID string) error {
	const query = `
		UPDATE public.messages
		SET read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND NOT read
	`

	if _, err := r.pool.Exec(ctx, query, conversationID, readerID); err != nil {
		return fmt.Errorf("mark messages read failed: %w", err)
	}
	return nil
}

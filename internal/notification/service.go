package notification

import (
	"context"
	"strings"
)

type CreateRequest struct {
	UserID  string
	Type    Type
	Title   string
	Message string
	Link    *string
}

type Service interface {
	// Create stores a notification. Intended for internal callers reacting
	// to domain events, not exposed over HTTP.
	Create(ctx context.Context, req CreateRequest) (*Notification, error)

	List(ctx context.Context, userID string, page, pageSize int) ([]*Notification, int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Notification, error) {
	n := &Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Title:   strings.TrimSpace(req.Title),
		Message: strings.TrimSpace(req.Message),
		Link:    req.Link,
	}
	if n.Type == "" {
		n.Type = TypeSystem
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context, userID string, page, pageSize int) ([]*Notification, int, error) {
	return s.repo.ListByUser(ctx, userID, page, pageSize)
}

func (s *service) CountUnread(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

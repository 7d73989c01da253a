package review

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Rating   int
	Comment  string
	PhotoIDs []string
}

type Service interface {
	// Create files a pending review of a sitter by the calling client.
	// It becomes publicly visible once approved by a moderator.
	Create(ctx context.Context, sitterID, clientID string, req CreateRequest) (*Review, error)

	// ListForSitter returns a sitter's approved reviews, newest first.
	ListForSitter(ctx context.Context, sitterID string) ([]*Review, error)

	// ListPending returns the moderation queue. Admin only.
	ListPending(ctx context.Context, page, pageSize int) ([]*Review, int, error)

	// Approve publishes a pending review. Admin only.
	Approve(ctx context.Context, id string) (*Review, error)

	// Reject discards a pending review. Admin only.
	Reject(ctx context.Context, id string) (*Review, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, sitterID, clientID string, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, ErrCommentRequired
	}
	if sitterID == clientID {
		return nil, ErrOwnProfile
	}

	rv := &Review{
		SitterID: sitterID,
		ClientID: clientID,
		Rating:   req.Rating,
		Comment:  comment,
		PhotoIDs: req.PhotoIDs,
		Status:   StatusPending,
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) ListForSitter(ctx context.Context, sitterID string) ([]*Review, error) {
	return s.repo.ListForSitter(ctx, sitterID, StatusApproved)
}

func (s *service) ListPending(ctx context.Context, page, pageSize int) ([]*Review, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.ListByStatus(ctx, StatusPending, page, pageSize)
}

func (s *service) moderate(ctx context.Context, id string, to Status) (*Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.Status != StatusPending {
		return nil, ErrNotPending
	}

	if err := s.repo.SetStatus(ctx, id, to); err != nil {
		return nil, err
	}

	rv.Status = to
	return rv, nil
}

func (s *service) Approve(ctx context.Context, id string) (*Review, error) {
	return s.moderate(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id string) (*Review, error) {
	return s.moderate(ctx, id, StatusRejected)
}

package pet

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Species     Species
	Breed       string
	HealthNotes string
	PhotoID     *string
}

type UpdateRequest struct {
	Name        *string
	Species     *Species
	Breed       *string
	HealthNotes *string
	PhotoID     *string
}

// Service defines business logic for client-owned pet profiles. Every
// operation is scoped by the caller's identity: a pet that exists but belongs
// to someone else behaves exactly like a missing one.
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Pet, error)
	GetOwned(ctx context.Context, id, ownerID string) (*Pet, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Pet, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Pet, error)
	Delete(ctx context.Context, id, ownerID string) error

	// OwnedBy reports whether the pet exists and belongs to ownerID.
	OwnedBy(ctx context.Context, id, ownerID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Pet, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !ValidSpecies(req.Species) {
		return nil, ErrInvalidSpecies
	}

	p := &Pet{
		OwnerID:     ownerID,
		Name:        name,
		Species:     req.Species,
		Breed:       optionalString(req.Breed),
		HealthNotes: optionalString(req.HealthNotes),
		PhotoID:     req.PhotoID,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetOwned(ctx context.Context, id, ownerID string) (*Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) GetByIDs(ctx context.Context, ids []string) ([]*Pet, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Pet, error) {
	p, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		p.Name = name
	}
	if req.Species != nil {
		if !ValidSpecies(*req.Species) {
			return nil, ErrInvalidSpecies
		}
		p.Species = *req.Species
	}
	if req.Breed != nil {
		p.Breed = optionalString(*req.Breed)
	}
	if req.HealthNotes != nil {
		p.HealthNotes = optionalString(*req.HealthNotes)
	}
	if req.PhotoID != nil {
		p.PhotoID = req.PhotoID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.GetOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) OwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return p.OwnerID == ownerID, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

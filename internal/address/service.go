package address

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Street    string
	Number    string
	Unit      string
	City      string
	Region    string
	Notes     string
	Latitude  *float64
	Longitude *float64
}

type UpdateRequest struct {
	Street    *string
	Number    *string
	Unit      *string
	City      *string
	Region    *string
	Notes     *string
	Latitude  *float64
	Longitude *float64
}

// Service defines business logic for client service addresses. Addresses are
// owner-scoped the same way pets are: an address belonging to another user is
// indistinguishable from one that does not exist.
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Address, error)
	GetOwned(ctx context.Context, id, ownerID string) (*Address, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Address, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Address, error)
	Delete(ctx context.Context, id, ownerID string) error

	// OwnedBy reports whether the address exists and belongs to ownerID.
	OwnedBy(ctx context.Context, id, ownerID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Address, error) {
	street := strings.TrimSpace(req.Street)
	if street == "" {
		return nil, ErrStreetRequired
	}
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, ErrCityRequired
	}

	a := &Address{
		OwnerID:   ownerID,
		Street:    street,
		Number:    strings.TrimSpace(req.Number),
		Unit:      optionalString(req.Unit),
		City:      city,
		Region:    strings.TrimSpace(req.Region),
		Notes:     optionalString(req.Notes),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetOwned(ctx context.Context, id, ownerID string) (*Address, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Address, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Address, error) {
	a, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Street != nil {
		street := strings.TrimSpace(*req.Street)
		if street == "" {
			return nil, ErrStreetRequired
		}
		a.Street = street
	}
	if req.Number != nil {
		a.Number = strings.TrimSpace(*req.Number)
	}
	if req.Unit != nil {
		a.Unit = optionalString(*req.Unit)
	}
	if req.City != nil {
		city := strings.TrimSpace(*req.City)
		if city == "" {
			return nil, ErrCityRequired
		}
		a.City = city
	}
	if req.Region != nil {
		a.Region = strings.TrimSpace(*req.Region)
	}
	if req.Notes != nil {
		a.Notes = optionalString(*req.Notes)
	}
	if req.Latitude != nil {
		a.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		a.Longitude = req.Longitude
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.GetOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) OwnedBy(ctx context.Context, id, ownerID string) (bool, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return a.OwnerID == ownerID, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

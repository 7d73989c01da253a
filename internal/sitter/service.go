package sitter

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawnecta/petsitting-backend/internal/booking"
)

type UpsertRequest struct {
	Bio         string
	Services    []string
	NightlyRate *int
	CaresDogs   bool
	CaresCats   bool
	HasYard     bool
	City        string
}

type Service interface {
	// UpsertProfile creates or replaces the caller's sitter profile.
	UpsertProfile(ctx context.Context, userID string, req UpsertRequest) (*Profile, error)

	// Get returns a sitter's public profile.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Search finds approved sitters available on the requested date.
	Search(ctx context.Context, filter SearchFilter) ([]*Profile, int, error)
}

type service struct {
	repo  Repository
	cache *searchCache
}

func NewService(repo Repository, redisClient *redis.Client, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newSearchCache(redisClient, cacheTTL),
	}
}

func (s *service) UpsertProfile(ctx context.Context, userID string, req UpsertRequest) (*Profile, error) {
	services := make([]string, 0, len(req.Services))
	for _, svc := range req.Services {
		if !booking.ValidService(booking.ServiceType(svc)) {
			return nil, ErrInvalidService
		}
		services = append(services, svc)
	}
	if req.NightlyRate != nil && *req.NightlyRate < 0 {
		return nil, ErrInvalidRate
	}

	p := &Profile{
		UserID:      userID,
		Bio:         optionalString(req.Bio),
		Services:    services,
		NightlyRate: req.NightlyRate,
		CaresDogs:   req.CaresDogs,
		CaresCats:   req.CaresCats,
		HasYard:     req.HasYard,
		City:        optionalString(req.City),
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) Search(ctx context.Context, filter SearchFilter) ([]*Profile, int, error) {
	if filter.Date.IsZero() {
		return nil, 0, ErrInvalidDate
	}
	if filter.Service != "" && !booking.ValidService(booking.ServiceType(filter.Service)) {
		return nil, 0, ErrInvalidService
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}

	if cached, ok := s.cache.get(ctx, filter); ok {
		return cached.Profiles, cached.Total, nil
	}

	profiles, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	s.cache.set(ctx, filter, profiles, total)
	return profiles, total, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

package accommodation

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type AccommodationRepository interface {
	GetAccommodations(ctx context.Context) ([]Accommodation, error)
	GetAccommodationByID(ctx context.Context, id string) (Accommodation, error)
	InsertAccommodation(ctx context.Context, a Accommodation) (Accommodation, error)
	UpdateAccommodation(ctx context.Context, a Accommodation) error
	DeactivateAccommodation(ctx context.Context, id string) error
}

const listCacheKey = "accommodations"

// Service fronts the catalog repository with a short-lived read cache; the
// browsing front end hits the list endpoint far more often than the catalog
// changes.
type Service struct {
	repo  AccommodationRepository
	cache *cache.Cache
}

func NewService(repo AccommodationRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *Service) GetAccommodations(ctx context.Context) ([]Accommodation, error) {
	if cached, found := s.cache.Get(listCacheKey); found {
		return cached.([]Accommodation), nil
	}

	accommodations, err := s.repo.GetAccommodations(ctx)

	if err != nil {
		return nil, err
	}

	s.cache.Set(listCacheKey, accommodations, cache.DefaultExpiration)

	return accommodations, nil
}

func (s *Service) FindAccommodationByID(ctx context.Context, id string) (Accommodation, error) {
	if cached, found := s.cache.Get(id); found {
		return cached.(Accommodation), nil
	}

	a, err := s.repo.GetAccommodationByID(ctx, id)

	if err != nil {
		return Accommodation{}, err
	}

	s.cache.Set(id, a, cache.DefaultExpiration)

	return a, nil
}

func (s *Service) CreateAccommodation(ctx context.Context, a Accommodation) (Accommodation, error) {
	if _, err := ParseType(string(a.Type)); err != nil {
		return Accommodation{}, err
	}

	inserted, err := s.repo.InsertAccommodation(ctx, a)

	if err == nil {
		s.cache.Flush()
	}

	return inserted, err
}

func (s *Service) ModifyAccommodation(ctx context.Context, a Accommodation) error {
	if _, err := ParseType(string(a.Type)); err != nil {
		return err
	}

	err := s.repo.UpdateAccommodation(ctx, a)

	if err == nil {
		s.cache.Flush()
	}

	return err
}

func (s *Service) RetireAccommodation(ctx context.Context, id string) error {
	err := s.repo.DeactivateAccommodation(ctx, id)

	if err == nil {
		s.cache.Flush()
	}

	return err
}

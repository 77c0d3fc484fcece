package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
	"github.com/gympoint/api/internal/repository"
)

// NearbyRadiusMeters bounds the "gyms near me" search.
const NearbyRadiusMeters = 10_000

// GymService defines the interface for gym operations
type GymService interface {
	// Create registers a new gym
	Create(ctx context.Context, req *dto.CreateGymRequest) (*domain.Gym, error)
	// Get retrieves a gym by ID
	Get(ctx context.Context, id string) (*domain.Gym, error)
	// Search returns gyms whose title matches the query
	Search(ctx context.Context, query string, page int) ([]*domain.Gym, error)
	// Nearby returns gyms within NearbyRadiusMeters of the coordinate
	Nearby(ctx context.Context, from domain.Coordinate) ([]*domain.Gym, error)
}

// gymService implements GymService
type gymService struct {
	gymRepo repository.GymRepository
	now     func() time.Time
}

// NewGymService creates a new GymService
func NewGymService(gymRepo repository.GymRepository) GymService {
	return &gymService{
		gymRepo: gymRepo,
		now:     time.Now,
	}
}

// Create registers a new gym
func (s *gymService) Create(ctx context.Context, req *dto.CreateGymRequest) (*domain.Gym, error) {
	gym := &domain.Gym{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Phone:       req.Phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CreatedAt:   s.now(),
	}
	if err := s.gymRepo.Create(ctx, gym); err != nil {
		return nil, err
	}
	return gym, nil
}

// Get retrieves a gym by ID
func (s *gymService) Get(ctx context.Context, id string) (*domain.Gym, error) {
	gym, err := s.gymRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domain.ErrGymNotFound
	}
	return gym, nil
}

// Search returns gyms whose title matches the query
func (s *gymService) Search(ctx context.Context, query string, page int) ([]*domain.Gym, error) {
	return s.gymRepo.SearchByTitle(ctx, query, page)
}

// Nearby returns gyms within NearbyRadiusMeters of the coordinate
func (s *gymService) Nearby(ctx context.Context, from domain.Coordinate) ([]*domain.Gym, error) {
	return s.gymRepo.FindNearby(ctx, from, NearbyRadiusMeters)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
	"github.com/gympoint/api/internal/repository"
)

// CheckInService defines the interface for check-in operations
type CheckInService interface {
	// Create admits a check-in after the geofence and daily limit checks
	Create(ctx context.Context, req *dto.CreateCheckInRequest) (*domain.CheckIn, error)
	// Validate marks a check-in as validated if its window is still open
	Validate(ctx context.Context, checkInID string) (*domain.CheckIn, error)
	// History returns the user's check-ins, newest first
	History(ctx context.Context, userID string, page int) ([]*domain.CheckIn, error)
	// Metrics returns the user's total check-in count
	Metrics(ctx context.Context, userID string) (int64, error)
}

// checkInService implements CheckInService
type checkInService struct {
	checkInRepo repository.CheckInRepository
	gymRepo     repository.GymRepository
	now         func() time.Time
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(
	checkInRepo repository.CheckInRepository,
	gymRepo repository.GymRepository,
) CheckInService {
	return &checkInService{
		checkInRepo: checkInRepo,
		gymRepo:     gymRepo,
		now:         time.Now,
	}
}

// Create admits a check-in. Order matters: an unknown gym reports as not
// found before any distance or limit complaint, and being too far away
// reports before the daily limit.
func (s *checkInService) Create(ctx context.Context, req *dto.CreateCheckInRequest) (*domain.CheckIn, error) {
	gym, err := s.gymRepo.GetByID(ctx, req.GymID)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domain.ErrGymNotFound
	}

	userPos := domain.Coordinate{Latitude: req.UserLatitude, Longitude: req.UserLongitude}
	if domain.DistanceMeters(userPos, gym.Coordinate()) > domain.MaxCheckInDistanceMeters {
		return nil, domain.ErrTooFarFromGym
	}

	now := s.now()
	existing, err := s.checkInRepo.GetByUserIDOnDate(ctx, req.UserID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDailyCheckInLimit
	}

	checkIn := &domain.CheckIn{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		GymID:     req.GymID,
		CreatedAt: now,
	}
	// Two same-day requests can both pass the read above; the unique
	// index decides, and Create reports the loser as the daily limit.
	if err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		return nil, err
	}

	return checkIn, nil
}

// Validate marks a check-in as validated
func (s *checkInService) Validate(ctx context.Context, checkInID string) (*domain.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetByID(ctx, checkInID)
	if err != nil {
		return nil, err
	}
	if checkIn == nil {
		return nil, domain.ErrCheckInNotFound
	}

	if err := checkIn.Validate(s.now()); err != nil {
		return nil, err
	}

	if err := s.checkInRepo.Update(ctx, checkIn); err != nil {
		return nil, err
	}

	return checkIn, nil
}

// History returns the user's check-ins, newest first
func (s *checkInService) History(ctx context.Context, userID string, page int) ([]*domain.CheckIn, error) {
	return s.checkInRepo.ListByUserID(ctx, userID, page)
}

// Metrics returns the user's total check-in count
func (s *checkInService) Metrics(ctx context.Context, userID string) (int64, error) {
	return s.checkInRepo.CountByUserID(ctx, userID)
}

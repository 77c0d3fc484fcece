package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
)

// metersPerLatDegree converts a due-north offset in meters to degrees of
// latitude, matching the haversine's earth radius exactly.
const metersPerLatDegree = 6371000 * math.Pi / 180

// mockGymRepository is a mock implementation of repository.GymRepository
type mockGymRepository struct {
	gyms map[string]*domain.Gym
}

func newMockGymRepository() *mockGymRepository {
	return &mockGymRepository{gyms: make(map[string]*domain.Gym)}
}

func (r *mockGymRepository) Create(ctx context.Context, gym *domain.Gym) error {
	r.gyms[gym.ID] = gym
	return nil
}

func (r *mockGymRepository) GetByID(ctx context.Context, id string) (*domain.Gym, error) {
	return r.gyms[id], nil
}

func (r *mockGymRepository) SearchByTitle(ctx context.Context, query string, page int) ([]*domain.Gym, error) {
	var result []*domain.Gym
	for _, gym := range r.gyms {
		result = append(result, gym)
	}
	return result, nil
}

func (r *mockGymRepository) FindNearby(ctx context.Context, from domain.Coordinate, radiusMeters float64) ([]*domain.Gym, error) {
	var result []*domain.Gym
	for _, gym := range r.gyms {
		if domain.DistanceMeters(from, gym.Coordinate()) <= radiusMeters {
			result = append(result, gym)
		}
	}
	return result, nil
}

// mockCheckInRepository is a mock implementation of repository.CheckInRepository
type mockCheckInRepository struct {
	checkIns map[string]*domain.CheckIn
}

func newMockCheckInRepository() *mockCheckInRepository {
	return &mockCheckInRepository{checkIns: make(map[string]*domain.CheckIn)}
}

func (r *mockCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	day := checkIn.CreatedAt.UTC().Truncate(24 * time.Hour)
	for _, existing := range r.checkIns {
		if existing.UserID == checkIn.UserID && existing.CreatedAt.UTC().Truncate(24*time.Hour).Equal(day) {
			return domain.ErrDailyCheckInLimit
		}
	}
	r.checkIns[checkIn.ID] = checkIn
	return nil
}

func (r *mockCheckInRepository) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	return r.checkIns[id], nil
}

func (r *mockCheckInRepository) GetByUserIDOnDate(ctx context.Context, userID string, at time.Time) (*domain.CheckIn, error) {
	day := at.UTC().Truncate(24 * time.Hour)
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID && checkIn.CreatedAt.UTC().Truncate(24*time.Hour).Equal(day) {
			return checkIn, nil
		}
	}
	return nil, nil
}

func (r *mockCheckInRepository) ListByUserID(ctx context.Context, userID string, page int) ([]*domain.CheckIn, error) {
	var result []*domain.CheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID {
			result = append(result, checkIn)
		}
	}
	return result, nil
}

func (r *mockCheckInRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *mockCheckInRepository) Update(ctx context.Context, checkIn *domain.CheckIn) error {
	r.checkIns[checkIn.ID] = checkIn
	return nil
}

func seedGym(gymRepo *mockGymRepository, id string, lat, lon float64) *domain.Gym {
	gym := &domain.Gym{
		ID:        id,
		Title:     "Test Gym",
		Latitude:  lat,
		Longitude: lon,
		CreatedAt: time.Now(),
	}
	gymRepo.gyms[gym.ID] = gym
	return gym
}

func newTestCheckInService(checkInRepo *mockCheckInRepository, gymRepo *mockGymRepository, now time.Time) CheckInService {
	svc := NewCheckInService(checkInRepo, gymRepo).(*checkInService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckInService_Create(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)

	t.Run("user next to the gym", func(t *testing.T) {
		gymRepo := newMockGymRepository()
		checkInRepo := newMockCheckInRepository()
		seedGym(gymRepo, "gym-1", -27.2092052, -49.6401091)
		svc := newTestCheckInService(checkInRepo, gymRepo, now)

		checkIn, err := svc.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  -27.2092052,
			UserLongitude: -49.6401091,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if checkIn.ID == "" {
			t.Error("Create() checkIn.ID is empty")
		}
		if !checkIn.CreatedAt.Equal(now) {
			t.Errorf("Create() CreatedAt = %v, want %v", checkIn.CreatedAt, now)
		}
		if checkInRepo.checkIns[checkIn.ID] == nil {
			t.Error("Create() did not persist the check-in")
		}
	})

	t.Run("unknown gym", func(t *testing.T) {
		svc := newTestCheckInService(newMockCheckInRepository(), newMockGymRepository(), now)

		_, err := svc.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID: "user-1",
			GymID:  "no-such-gym",
		})
		if err != domain.ErrGymNotFound {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrGymNotFound)
		}
	})

	t.Run("user too far from the gym", func(t *testing.T) {
		gymRepo := newMockGymRepository()
		checkInRepo := newMockCheckInRepository()
		// Kilometers away from the user position below
		seedGym(gymRepo, "gym-1", -27.0747279, -49.4889672)
		svc := newTestCheckInService(checkInRepo, gymRepo, now)

		_, err := svc.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  -27.2092052,
			UserLongitude: -49.6401091,
		})
		if err != domain.ErrTooFarFromGym {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrTooFarFromGym)
		}
		if len(checkInRepo.checkIns) != 0 {
			t.Error("Create() persisted a check-in despite the distance")
		}
	})

	t.Run("just inside the distance limit", func(t *testing.T) {
		gymRepo := newMockGymRepository()
		checkInRepo := newMockCheckInRepository()
		gym := seedGym(gymRepo, "gym-1", -27.2092052, -49.6401091)
		svc := newTestCheckInService(checkInRepo, gymRepo, now)

		// 99 m due north of the gym
		_, err := svc.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  gym.Latitude + 99.0/metersPerLatDegree,
			UserLongitude: gym.Longitude,
		})
		if err != nil {
			t.Errorf("Create() error = %v, want nil", err)
		}
	})

	t.Run("just outside the distance limit", func(t *testing.T) {
		gymRepo := newMockGymRepository()
		checkInRepo := newMockCheckInRepository()
		gym := seedGym(gymRepo, "gym-1", -27.2092052, -49.6401091)
		svc := newTestCheckInService(checkInRepo, gymRepo, now)

		// 101 m due north of the gym. The limit itself still admits;
		// rejection starts strictly past it.
		_, err := svc.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  gym.Latitude + 101.0/metersPerLatDegree,
			UserLongitude: gym.Longitude,
		})
		if err != domain.ErrTooFarFromGym {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrTooFarFromGym)
		}
		if len(checkInRepo.checkIns) != 0 {
			t.Error("Create() persisted a check-in despite the distance")
		}
	})

	t.Run("second check-in on the same day", func(t *testing.T) {
		gymRepo := newMockGymRepository()
		checkInRepo := newMockCheckInRepository()
		seedGym(gymRepo, "gym-1", -27.2092052, -49.6401091)
		seedGym(gymRepo, "gym-2", -27.2092052, -49.6401091)

		first := newTestCheckInService(checkInRepo, gymRepo, time.Date(2022, 1, 20, 5, 0, 0, 0, time.UTC))
		if _, err := first.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  -27.2092052,
			UserLongitude: -49.6401091,
		}); err != nil {
			t.Fatalf("Create() first check-in error = %v", err)
		}

		// Late the same day, at a different gym
		second := newTestCheckInService(checkInRepo, gymRepo, time.Date(2022, 1, 20, 23, 59, 0, 0, time.UTC))
		_, err := second.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-2",
			UserLatitude:  -27.2092052,
			UserLongitude: -49.6401091,
		})
		if err != domain.ErrDailyCheckInLimit {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrDailyCheckInLimit)
		}
	})

	t.Run("next day is a fresh slate", func(t *testing.T) {
		gymRepo := newMockGymRepository()
		checkInRepo := newMockCheckInRepository()
		seedGym(gymRepo, "gym-1", -27.2092052, -49.6401091)

		day1 := newTestCheckInService(checkInRepo, gymRepo, time.Date(2022, 1, 20, 23, 0, 0, 0, time.UTC))
		if _, err := day1.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  -27.2092052,
			UserLongitude: -49.6401091,
		}); err != nil {
			t.Fatalf("Create() first check-in error = %v", err)
		}

		day2 := newTestCheckInService(checkInRepo, gymRepo, time.Date(2022, 1, 21, 0, 1, 0, 0, time.UTC))
		if _, err := day2.Create(context.Background(), &dto.CreateCheckInRequest{
			UserID:        "user-1",
			GymID:         "gym-1",
			UserLatitude:  -27.2092052,
			UserLongitude: -49.6401091,
		}); err != nil {
			t.Errorf("Create() next-day error = %v, want nil", err)
		}
	})
}

func TestCheckInService_Validate(t *testing.T) {
	createdAt := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)

	seed := func(repo *mockCheckInRepository) *domain.CheckIn {
		checkIn := &domain.CheckIn{
			ID:        "check-in-1",
			UserID:    "user-1",
			GymID:     "gym-1",
			CreatedAt: createdAt,
		}
		repo.checkIns[checkIn.ID] = checkIn
		return checkIn
	}

	t.Run("inside the window", func(t *testing.T) {
		checkInRepo := newMockCheckInRepository()
		seed(checkInRepo)
		svc := newTestCheckInService(checkInRepo, newMockGymRepository(), createdAt.Add(10*time.Minute))

		checkIn, err := svc.Validate(context.Background(), "check-in-1")
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if checkIn.ValidatedAt == nil {
			t.Fatal("Validate() left ValidatedAt nil")
		}
		if !checkIn.ValidatedAt.Equal(createdAt.Add(10 * time.Minute)) {
			t.Errorf("Validate() ValidatedAt = %v, want %v", checkIn.ValidatedAt, createdAt.Add(10*time.Minute))
		}
	})

	t.Run("after the window", func(t *testing.T) {
		checkInRepo := newMockCheckInRepository()
		seed(checkInRepo)
		svc := newTestCheckInService(checkInRepo, newMockGymRepository(), createdAt.Add(21*time.Minute))

		_, err := svc.Validate(context.Background(), "check-in-1")
		if err != domain.ErrLateCheckInValidation {
			t.Errorf("Validate() error = %v, want %v", err, domain.ErrLateCheckInValidation)
		}
	})

	t.Run("already validated", func(t *testing.T) {
		checkInRepo := newMockCheckInRepository()
		checkIn := seed(checkInRepo)
		validatedAt := createdAt.Add(5 * time.Minute)
		checkIn.ValidatedAt = &validatedAt
		svc := newTestCheckInService(checkInRepo, newMockGymRepository(), createdAt.Add(10*time.Minute))

		_, err := svc.Validate(context.Background(), "check-in-1")
		if err != domain.ErrCheckInAlreadyValidated {
			t.Errorf("Validate() error = %v, want %v", err, domain.ErrCheckInAlreadyValidated)
		}
		if !checkIn.ValidatedAt.Equal(validatedAt) {
			t.Errorf("Validate() overwrote ValidatedAt: %v, want %v", checkIn.ValidatedAt, validatedAt)
		}
	})

	t.Run("unknown check-in", func(t *testing.T) {
		svc := newTestCheckInService(newMockCheckInRepository(), newMockGymRepository(), createdAt)

		_, err := svc.Validate(context.Background(), "no-such-check-in")
		if err != domain.ErrCheckInNotFound {
			t.Errorf("Validate() error = %v, want %v", err, domain.ErrCheckInNotFound)
		}
	})
}

func TestCheckInService_Metrics(t *testing.T) {
	checkInRepo := newMockCheckInRepository()
	for i, day := range []int{10, 11, 12} {
		checkInRepo.checkIns[string(rune('a'+i))] = &domain.CheckIn{
			ID:        string(rune('a' + i)),
			UserID:    "user-1",
			GymID:     "gym-1",
			CreatedAt: time.Date(2022, 1, day, 8, 0, 0, 0, time.UTC),
		}
	}
	svc := newTestCheckInService(checkInRepo, newMockGymRepository(), time.Now())

	count, err := svc.Metrics(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Metrics() = %v, want 3", count)
	}

	count, err = svc.Metrics(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Metrics() = %v, want 0", count)
	}
}

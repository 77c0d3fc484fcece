package service

import (
	"context"
	"testing"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
)

func TestGymService_Create(t *testing.T) {
	gymRepo := newMockGymRepository()
	svc := NewGymService(gymRepo)

	description := "24/7 lifting and cardio"
	gym, err := svc.Create(context.Background(), &dto.CreateGymRequest{
		Title:       "Iron Temple",
		Description: &description,
		Latitude:    -27.2092052,
		Longitude:   -49.6401091,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if gym.ID == "" {
		t.Error("Create() gym.ID is empty")
	}
	if gymRepo.gyms[gym.ID] == nil {
		t.Error("Create() did not persist the gym")
	}
}

func TestGymService_Get(t *testing.T) {
	gymRepo := newMockGymRepository()
	seedGym(gymRepo, "gym-1", -27.2092052, -49.6401091)
	svc := NewGymService(gymRepo)

	t.Run("existing gym", func(t *testing.T) {
		gym, err := svc.Get(context.Background(), "gym-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if gym.ID != "gym-1" {
			t.Errorf("Get() gym.ID = %v, want gym-1", gym.ID)
		}
	})

	t.Run("unknown gym", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "no-such-gym")
		if err != domain.ErrGymNotFound {
			t.Errorf("Get() error = %v, want %v", err, domain.ErrGymNotFound)
		}
	})
}

func TestGymService_Nearby(t *testing.T) {
	gymRepo := newMockGymRepository()
	// Within 10 km of the search position
	seedGym(gymRepo, "near-gym", -27.2092052, -49.6401091)
	// About 20 km away
	seedGym(gymRepo, "far-gym", -27.0610928, -49.5229501)
	svc := NewGymService(gymRepo)

	gyms, err := svc.Nearby(context.Background(), domain.Coordinate{
		Latitude:  -27.2092052,
		Longitude: -49.6401091,
	})
	if err != nil {
		t.Fatalf("Nearby() error = %v", err)
	}
	if len(gyms) != 1 {
		t.Fatalf("Nearby() returned %d gyms, want 1", len(gyms))
	}
	if gyms[0].ID != "near-gym" {
		t.Errorf("Nearby() gym.ID = %v, want near-gym", gyms[0].ID)
	}
}

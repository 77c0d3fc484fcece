package dto

import (
	"time"

	"github.com/gympoint/api/internal/domain"
)

// CreateGymRequest represents a gym registration request
type CreateGymRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Validate collects every violation in the request.
func (r *CreateGymRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if r.Title == "" {
		errs.Add("title", "Title is required.")
	}
	validateLatitude(errs, "latitude", r.Latitude)
	validateLongitude(errs, "longitude", r.Longitude)

	return errs.ErrOrNil()
}

// SearchGymsQuery represents a title search request
type SearchGymsQuery struct {
	Query string `form:"q" binding:"required"`
	Page  int    `form:"page,default=1"`
}

// NearbyGymsQuery represents a proximity search request
type NearbyGymsQuery struct {
	Latitude  float64 `form:"latitude"`
	Longitude float64 `form:"longitude"`
}

// Validate collects every violation in the request.
func (r *NearbyGymsQuery) Validate() error {
	errs := &domain.ValidationErrors{}
	validateLatitude(errs, "latitude", r.Latitude)
	validateLongitude(errs, "longitude", r.Longitude)
	return errs.ErrOrNil()
}

// GymResponse represents gym data in responses
type GymResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CreatedAt   string  `json:"created_at"`
}

// ToGymResponse maps a domain gym to its response shape.
func ToGymResponse(gym *domain.Gym) GymResponse {
	return GymResponse{
		ID:          gym.ID,
		Title:       gym.Title,
		Description: gym.Description,
		Phone:       gym.Phone,
		Latitude:    gym.Latitude,
		Longitude:   gym.Longitude,
		CreatedAt:   gym.CreatedAt.Format(time.RFC3339),
	}
}

// ToGymResponses maps a slice of domain gyms.
func ToGymResponses(gyms []*domain.Gym) []GymResponse {
	out := make([]GymResponse, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, ToGymResponse(g))
	}
	return out
}

func validateLatitude(errs *domain.ValidationErrors, field string, value float64) {
	if value < -90 || value > 90 {
		errs.Add(field, "Latitude must be between -90 and 90.")
	}
}

func validateLongitude(errs *domain.ValidationErrors, field string, value float64) {
	if value < -180 || value > 180 {
		errs.Add(field, "Longitude must be between -180 and 180.")
	}
}

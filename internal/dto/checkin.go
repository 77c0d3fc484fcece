package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/gympoint/api/internal/domain"
)

// CreateCheckInRequest carries the gym id from the route plus the user's
// reported coordinates from the body.
type CreateCheckInRequest struct {
	UserID        string  `json:"-"`
	GymID         string  `json:"-"`
	UserLatitude  float64 `json:"user_latitude"`
	UserLongitude float64 `json:"user_longitude"`
}

// Validate collects every violation in the request.
func (r *CreateCheckInRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if uuid.Validate(r.UserID) != nil {
		errs.Add("user_id", "Invalid ID format (UUID expected).")
	}
	if uuid.Validate(r.GymID) != nil {
		errs.Add("gym_id", "Invalid ID format (UUID expected).")
	}
	validateLatitude(errs, "user_latitude", r.UserLatitude)
	validateLongitude(errs, "user_longitude", r.UserLongitude)

	return errs.ErrOrNil()
}

// ValidateCheckInRequest identifies the check-in to validate.
type ValidateCheckInRequest struct {
	CheckInID string
}

// Validate collects every violation in the request.
func (r *ValidateCheckInRequest) Validate() error {
	errs := &domain.ValidationErrors{}
	if uuid.Validate(r.CheckInID) != nil {
		errs.Add("check_in_id", "Invalid ID format (UUID expected).")
	}
	return errs.ErrOrNil()
}

// CheckInResponse represents check-in data in responses
type CheckInResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	GymID       string  `json:"gym_id"`
	CreatedAt   string  `json:"created_at"`
	ValidatedAt *string `json:"validated_at,omitempty"`
}

// UserMetricsResponse reports profile metrics.
type UserMetricsResponse struct {
	CheckInsCount int64 `json:"check_ins_count"`
}

// ToCheckInResponse maps a domain check-in to its response shape.
func ToCheckInResponse(checkIn *domain.CheckIn) CheckInResponse {
	resp := CheckInResponse{
		ID:        checkIn.ID,
		UserID:    checkIn.UserID,
		GymID:     checkIn.GymID,
		CreatedAt: checkIn.CreatedAt.Format(time.RFC3339),
	}
	if checkIn.ValidatedAt != nil {
		validated := checkIn.ValidatedAt.Format(time.RFC3339)
		resp.ValidatedAt = &validated
	}
	return resp
}

// ToCheckInResponses maps a slice of domain check-ins.
func ToCheckInResponses(checkIns []*domain.CheckIn) []CheckInResponse {
	out := make([]CheckInResponse, 0, len(checkIns))
	for _, c := range checkIns {
		out = append(out, ToCheckInResponse(c))
	}
	return out
}

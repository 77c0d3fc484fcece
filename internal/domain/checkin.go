package domain

import "time"

// ValidationWindow is how long after creation a check-in may still be
// validated. Validation is meant to happen at the moment of arrival
// (scanned by staff), not after the fact.
const ValidationWindow = 20 * time.Minute

// MaxCheckInDistanceMeters is how close a user must be to a gym to check
// in. GPS accuracy on phones is roughly 5 to 20 m, so 100 m tolerates
// noise without admitting people across the street.
const MaxCheckInDistanceMeters = 100.0

// CheckIn represents a user's visit to a gym. At most one check-in per
// user per UTC calendar day; ValidatedAt is write-once.
type CheckIn struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	GymID       string     `json:"gym_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
}

// IsValidated reports whether the check-in has already been validated.
func (c *CheckIn) IsValidated() bool {
	return c.ValidatedAt != nil
}

// CanValidateAt reports whether the check-in is still inside its
// validation window at the given instant.
func (c *CheckIn) CanValidateAt(now time.Time) bool {
	return now.Sub(c.CreatedAt) <= ValidationWindow
}

// Validate marks the check-in as validated at the given instant.
func (c *CheckIn) Validate(now time.Time) error {
	if c.IsValidated() {
		return ErrCheckInAlreadyValidated
	}
	if !c.CanValidateAt(now) {
		return ErrLateCheckInValidation
	}
	c.ValidatedAt = &now
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/gympoint/api/internal/domain"
)

// DefaultPageSize is the fixed page size for paginated listings.
const DefaultPageSize = 20

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email, nil when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines the interface for refresh token data access.
// A token row existing is what makes the credential valid; expiry is judged
// by the caller so that stale rows can be revoked defensively.
type RefreshTokenRepository interface {
	// Create stores a new refresh token
	Create(ctx context.Context, token *domain.RefreshToken) error
	// GetByToken retrieves a refresh token by its opaque value, nil when
	// absent. Does not filter on expiry.
	GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	// Delete deletes a single refresh token by ID
	Delete(ctx context.Context, id string) error
	// DeleteByUserID deletes all refresh tokens for a user
	DeleteByUserID(ctx context.Context, userID string) error
	// DeleteExpired deletes all expired refresh tokens
	DeleteExpired(ctx context.Context) error
}

// GymRepository defines the interface for gym data access
type GymRepository interface {
	// Create creates a new gym
	Create(ctx context.Context, gym *domain.Gym) error
	// GetByID retrieves a gym by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Gym, error)
	// SearchByTitle returns gyms whose title contains the query,
	// paginated with DefaultPageSize
	SearchByTitle(ctx context.Context, query string, page int) ([]*domain.Gym, error)
	// FindNearby returns gyms within the given radius (meters) of the
	// coordinate, closest first
	FindNearby(ctx context.Context, from domain.Coordinate, radiusMeters float64) ([]*domain.Gym, error)
}

// CheckInRepository defines the interface for check-in data access
type CheckInRepository interface {
	// Create stores a new check-in. Returns domain.ErrDailyCheckInLimit
	// when the user already checked in on the same UTC calendar day.
	Create(ctx context.Context, checkIn *domain.CheckIn) error
	// GetByID retrieves a check-in by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.CheckIn, error)
	// GetByUserIDOnDate retrieves the user's check-in on the UTC calendar
	// day containing the given instant, nil when absent
	GetByUserIDOnDate(ctx context.Context, userID string, at time.Time) (*domain.CheckIn, error)
	// ListByUserID returns the user's check-in history, newest first,
	// paginated with DefaultPageSize
	ListByUserID(ctx context.Context, userID string, page int) ([]*domain.CheckIn, error)
	// CountByUserID returns the user's total check-in count
	CountByUserID(ctx context.Context, userID string) (int64, error)
	// Update persists a mutated check-in (validation timestamp)
	Update(ctx context.Context, checkIn *domain.CheckIn) error
}

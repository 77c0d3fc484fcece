package domain

import (
	"time"
)

// User represents a registered user. PasswordHash never leaves this package
// boundary in a response payload.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is a stored, single-use session credential. A token is valid
// iff it still exists and ExpiresAt is in the future; rotation, logout, and
// expiry detection all remove rows.
type RefreshToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpiredAt reports whether the token is expired at the given instant.
func (t *RefreshToken) IsExpiredAt(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

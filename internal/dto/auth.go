package dto

import (
	"regexp"
	"time"
	"unicode"

	"github.com/gympoint/api/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate collects every violation in the request.
func (r *RegisterRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if r.Name == "" {
		errs.Add("name", "Name is required.")
	}
	if !emailRegex.MatchString(r.Email) {
		errs.Add("email", "Invalid email format.")
	}

	if len(r.Password) < 6 {
		errs.Add("password", "Password must be at least 6 characters long.")
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, c := range r.Password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasDigit || !hasSpecial {
		errs.Add("password", "Password must contain at least one uppercase letter, one number, and one special character.")
	}

	return errs.ErrOrNil()
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Validate collects every violation in the request.
func (r *LoginRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if !emailRegex.MatchString(r.Email) {
		errs.Add("email", "Invalid email format.")
	}
	if r.Password == "" {
		errs.Add("password", "Password is required.")
	}

	return errs.ErrOrNil()
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse carries the signed access token, the refresh token, and
// the user's public profile. Never the password hash.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

// RefreshResponse carries the rotated credential pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// ToUserResponse maps a domain user to its public profile.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/internal/dto"
	"github.com/gympoint/api/internal/repository"
	"github.com/gympoint/api/internal/security"
	"github.com/gympoint/api/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register registers a new user
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies credentials and opens a session, returning
	// the user and a stored refresh token
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*domain.User, *domain.RefreshToken, error)
	// Refresh rotates a refresh token, returning the user and the
	// replacement token
	Refresh(ctx context.Context, token string) (*domain.User, *domain.RefreshToken, error)
	// Logout revokes every refresh token the user holds
	Logout(ctx context.Context, userID string) error
	// PurgeExpiredTokens deletes refresh tokens past their expiry
	PurgeExpiredTokens(ctx context.Context) error
	// Profile retrieves the user behind an authenticated request
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.RefreshTokenRepository
	hasher     security.PasswordHasher
	refreshTTL time.Duration
	log        *logger.Logger
	now        func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	hasher security.PasswordHasher,
	refreshTTL time.Duration,
	log *logger.Logger,
) AuthService {
	if refreshTTL == 0 {
		refreshTTL = 30 * 24 * time.Hour
	}
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		hasher:     hasher,
		refreshTTL: refreshTTL,
		log:        log,
		now:        time.Now,
	}
}

// Register registers a new user
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyInUse
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index still backstops the existence check above, so a
	// concurrent registration surfaces as ErrEmailAlreadyInUse here too.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials and opens a session. Unknown email and
// wrong password return the same error.
func (s *authService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*domain.User, *domain.RefreshToken, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, token, nil
}

// Refresh rotates a refresh token. The presented token is deleted before
// its replacement is stored, so each token admits at most one refresh.
func (s *authService) Refresh(ctx context.Context, token string) (*domain.User, *domain.RefreshToken, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if stored == nil {
		return nil, nil, domain.ErrInvalidRefreshToken
	}

	if stored.IsExpiredAt(s.now()) {
		// An expired token being presented means the session is stale
		// or the token leaked after rotation stopped. Revoke everything
		// this user holds rather than just the stale row.
		if err := s.tokenRepo.DeleteByUserID(ctx, stored.UserID); err != nil {
			s.log.Error("failed to revoke sessions for expired refresh token",
				zap.String("user_id", stored.UserID), zap.Error(err))
		}
		return nil, nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		// Orphaned token; its user is gone
		if err := s.tokenRepo.Delete(ctx, stored.ID); err != nil {
			s.log.Warn("failed to delete orphaned refresh token",
				zap.String("token_id", stored.ID), zap.Error(err))
		}
		return nil, nil, domain.ErrUserNotFound
	}

	if err := s.tokenRepo.Delete(ctx, stored.ID); err != nil {
		return nil, nil, err
	}

	fresh, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		// The old token is already gone, so the user has no session
		// left and must log in again.
		s.log.Error("failed to store rotated refresh token, session lost",
			zap.String("user_id", user.ID), zap.Error(err))
		return nil, nil, err
	}

	return user, fresh, nil
}

// Logout revokes every refresh token the user holds, ending all of
// their sessions. It never fails from the caller's point of view; a
// delete that does not go through still leaves the client logged out.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Warn("failed to delete refresh tokens during logout",
			zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

// PurgeExpiredTokens deletes refresh tokens past their expiry. Expired
// tokens are already revoked when a client presents one; this sweep clears
// the rows nobody presents again.
func (s *authService) PurgeExpiredTokens(ctx context.Context) error {
	return s.tokenRepo.DeleteExpired(ctx)
}

// Profile retrieves the user behind an authenticated request
func (s *authService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// issueRefreshToken stores a new opaque session credential for the user
func (s *authService) issueRefreshToken(ctx context.Context, userID string) (*domain.RefreshToken, error) {
	value, err := security.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	token := &domain.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     value,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

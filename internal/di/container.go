package di

import (
	"github.com/gympoint/api/internal/handler"
	"github.com/gympoint/api/internal/repository"
	"github.com/gympoint/api/internal/security"
	"github.com/gympoint/api/internal/service"
	"github.com/gympoint/api/pkg/config"
	"github.com/gympoint/api/pkg/database"
	"github.com/gympoint/api/pkg/logger"
	"github.com/gympoint/api/pkg/redis"
)

// Container holds all dependencies for the API
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache *redis.Client

	// Security
	Hasher security.PasswordHasher
	Signer security.TokenSigner

	// Repositories
	UserRepo    repository.UserRepository
	TokenRepo   repository.RefreshTokenRepository
	GymRepo     repository.GymRepository
	CheckInRepo repository.CheckInRepository

	// Services
	AuthService    service.AuthService
	GymService     service.GymService
	CheckInService service.CheckInService

	// Handlers
	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	GymHandler     *handler.GymHandler
	CheckInHandler *handler.CheckInHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB    *database.PostgresDB
	Cache *redis.Client
	Auth  *config.AuthConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Cache: cfg.Cache,
	}

	// Security primitives
	c.Hasher = security.NewBcryptHasher(cfg.Auth.BcryptCost)
	c.Signer = security.NewJWTSigner(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Repositories. Gym reads go through the Redis cache.
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())
	c.TokenRepo = repository.NewPostgresRefreshTokenRepository(c.DB.Pool())
	c.GymRepo = repository.NewCachedGymRepository(
		repository.NewPostgresGymRepository(c.DB.Pool()),
		c.Cache,
	)
	c.CheckInRepo = repository.NewPostgresCheckInRepository(c.DB.Pool())

	// Services
	c.AuthService = service.NewAuthService(
		c.UserRepo,
		c.TokenRepo,
		c.Hasher,
		cfg.Auth.RefreshTokenTTL,
		logger.Get(),
	)
	c.GymService = service.NewGymService(c.GymRepo)
	c.CheckInService = service.NewCheckInService(c.CheckInRepo, c.GymRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Cache)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, c.Signer)
	c.GymHandler = handler.NewGymHandler(c.GymService)
	c.CheckInHandler = handler.NewCheckInHandler(c.CheckInService)

	return c
}

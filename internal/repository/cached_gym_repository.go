package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gympoint/api/internal/domain"
	"github.com/gympoint/api/pkg/redis"
)

const (
	// Cache key prefixes
	gymDetailKeyPrefix = "gym:detail:"
	gymSearchKeyPrefix = "gym:search:"

	// Default TTL for gym caches
	gymCacheTTL = 5 * time.Minute
)

// CachedGymRepository wraps GymRepository with Redis caching. Gyms are
// immutable after creation, so detail entries only ever need TTL expiry;
// search pages are invalidated when a gym is created.
type CachedGymRepository struct {
	repo  GymRepository
	cache *redis.Client
}

// NewCachedGymRepository creates a new CachedGymRepository
func NewCachedGymRepository(repo GymRepository, cache *redis.Client) *CachedGymRepository {
	return &CachedGymRepository{
		repo:  repo,
		cache: cache,
	}
}

// Create creates a new gym and invalidates search caches
func (r *CachedGymRepository) Create(ctx context.Context, gym *domain.Gym) error {
	if err := r.repo.Create(ctx, gym); err != nil {
		return err
	}
	r.invalidateSearchCaches(ctx)
	return nil
}

// GetByID retrieves a gym by ID with caching
func (r *CachedGymRepository) GetByID(ctx context.Context, id string) (*domain.Gym, error) {
	cacheKey := gymDetailKeyPrefix + id
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var gym domain.Gym
		if err := json.Unmarshal([]byte(cached), &gym); err == nil {
			return &gym, nil
		}
	}

	// Cache miss - get from database
	gym, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, nil
	}

	r.cacheGym(ctx, cacheKey, gym)

	return gym, nil
}

// SearchByTitle returns gyms matching the query with caching
func (r *CachedGymRepository) SearchByTitle(ctx context.Context, query string, page int) ([]*domain.Gym, error) {
	cacheKey := fmt.Sprintf("%s%s:%d", gymSearchKeyPrefix, query, page)
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var gyms []*domain.Gym
		if err := json.Unmarshal([]byte(cached), &gyms); err == nil {
			return gyms, nil
		}
	}

	// Cache miss - get from database
	gyms, err := r.repo.SearchByTitle(ctx, query, page)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(gyms); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), gymCacheTTL)
	}

	return gyms, nil
}

// FindNearby bypasses the cache. Every caller position produces a distinct
// key, so cached entries would almost never be hit again.
func (r *CachedGymRepository) FindNearby(ctx context.Context, from domain.Coordinate, radiusMeters float64) ([]*domain.Gym, error) {
	return r.repo.FindNearby(ctx, from, radiusMeters)
}

// --- Helper functions ---

func (r *CachedGymRepository) cacheGym(ctx context.Context, key string, gym *domain.Gym) {
	data, err := json.Marshal(gym)
	if err != nil {
		return
	}
	r.cache.Set(ctx, key, string(data), gymCacheTTL)
}

func (r *CachedGymRepository) invalidateSearchCaches(ctx context.Context) {
	// SCAN instead of KEYS so invalidation never blocks the server
	iter := r.cache.Client().Scan(ctx, 0, gymSearchKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		r.cache.Del(ctx, iter.Val())
	}
}

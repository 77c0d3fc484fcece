package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gympoint/api/internal/domain"
)

// PostgresGymRepository implements GymRepository using PostgreSQL
type PostgresGymRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGymRepository creates a new PostgresGymRepository
func NewPostgresGymRepository(pool *pgxpool.Pool) *PostgresGymRepository {
	return &PostgresGymRepository{pool: pool}
}

// Create creates a new gym
func (r *PostgresGymRepository) Create(ctx context.Context, gym *domain.Gym) error {
	query := `
		INSERT INTO gyms (id, title, description, phone, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		gym.ID,
		gym.Title,
		gym.Description,
		gym.Phone,
		gym.Latitude,
		gym.Longitude,
		gym.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create gym: %w", err)
	}
	return nil
}

// GetByID retrieves a gym by ID
func (r *PostgresGymRepository) GetByID(ctx context.Context, id string) (*domain.Gym, error) {
	query := `
		SELECT id, title, description, phone, latitude, longitude, created_at
		FROM gyms
		WHERE id = $1
	`
	gym := &domain.Gym{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&gym.ID,
		&gym.Title,
		&gym.Description,
		&gym.Phone,
		&gym.Latitude,
		&gym.Longitude,
		&gym.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return gym, nil
}

// SearchByTitle returns gyms whose title contains the query, case
// insensitive, paginated with DefaultPageSize
func (r *PostgresGymRepository) SearchByTitle(ctx context.Context, query string, page int) ([]*domain.Gym, error) {
	if page < 1 {
		page = 1
	}
	sql := `
		SELECT id, title, description, phone, latitude, longitude, created_at
		FROM gyms
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, sql, query, DefaultPageSize, (page-1)*DefaultPageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGyms(rows)
}

// FindNearby returns gyms within radiusMeters of the coordinate using the
// haversine great-circle distance, closest first.
func (r *PostgresGymRepository) FindNearby(ctx context.Context, from domain.Coordinate, radiusMeters float64) ([]*domain.Gym, error) {
	sql := `
		SELECT id, title, description, phone, latitude, longitude, created_at
		FROM (
			SELECT *,
				6371000 * acos(
					least(1.0,
						cos(radians($1)) * cos(radians(latitude)) *
						cos(radians(longitude) - radians($2)) +
						sin(radians($1)) * sin(radians(latitude))
					)
				) AS distance
			FROM gyms
		) g
		WHERE g.distance <= $3
		ORDER BY g.distance ASC
	`
	rows, err := r.pool.Query(ctx, sql, from.Latitude, from.Longitude, radiusMeters)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGyms(rows)
}

func scanGyms(rows pgx.Rows) ([]*domain.Gym, error) {
	var gyms []*domain.Gym
	for rows.Next() {
		gym := &domain.Gym{}
		err := rows.Scan(
			&gym.ID,
			&gym.Title,
			&gym.Description,
			&gym.Phone,
			&gym.Latitude,
			&gym.Longitude,
			&gym.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		gyms = append(gyms, gym)
	}
	return gyms, rows.Err()
}

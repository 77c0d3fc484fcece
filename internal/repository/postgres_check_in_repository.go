package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gympoint/api/internal/domain"
)

// PostgresCheckInRepository implements CheckInRepository using PostgreSQL
type PostgresCheckInRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCheckInRepository creates a new PostgresCheckInRepository
func NewPostgresCheckInRepository(pool *pgxpool.Pool) *PostgresCheckInRepository {
	return &PostgresCheckInRepository{pool: pool}
}

// Create stores a new check-in. The unique index on
// (user_id, UTC calendar day) is the arbiter of the daily limit, so two
// concurrent requests cannot both get through.
func (r *PostgresCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	query := `
		INSERT INTO check_ins (id, user_id, gym_id, created_at, validated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.GymID,
		checkIn.CreatedAt,
		checkIn.ValidatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return domain.ErrDailyCheckInLimit
		}
		return fmt.Errorf("failed to create check-in: %w", err)
	}
	return nil
}

// GetByID retrieves a check-in by ID
func (r *PostgresCheckInRepository) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	query := `
		SELECT id, user_id, gym_id, created_at, validated_at
		FROM check_ins
		WHERE id = $1
	`
	return r.scanCheckIn(r.pool.QueryRow(ctx, query, id))
}

// GetByUserIDOnDate retrieves the user's check-in on the UTC calendar day
// containing the given instant
func (r *PostgresCheckInRepository) GetByUserIDOnDate(ctx context.Context, userID string, at time.Time) (*domain.CheckIn, error) {
	dayStart := at.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
		SELECT id, user_id, gym_id, created_at, validated_at
		FROM check_ins
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`
	return r.scanCheckIn(r.pool.QueryRow(ctx, query, userID, dayStart, dayEnd))
}

// ListByUserID returns the user's check-in history, newest first,
// paginated with DefaultPageSize
func (r *PostgresCheckInRepository) ListByUserID(ctx context.Context, userID string, page int) ([]*domain.CheckIn, error) {
	if page < 1 {
		page = 1
	}
	query := `
		SELECT id, user_id, gym_id, created_at, validated_at
		FROM check_ins
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, userID, DefaultPageSize, (page-1)*DefaultPageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkIns []*domain.CheckIn
	for rows.Next() {
		checkIn := &domain.CheckIn{}
		err := rows.Scan(
			&checkIn.ID,
			&checkIn.UserID,
			&checkIn.GymID,
			&checkIn.CreatedAt,
			&checkIn.ValidatedAt,
		)
		if err != nil {
			return nil, err
		}
		checkIns = append(checkIns, checkIn)
	}
	return checkIns, rows.Err()
}

// CountByUserID returns the user's total check-in count
func (r *PostgresCheckInRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM check_ins WHERE user_id = $1`
	var count int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

// Update persists the validation timestamp
func (r *PostgresCheckInRepository) Update(ctx context.Context, checkIn *domain.CheckIn) error {
	query := `UPDATE check_ins SET validated_at = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, checkIn.ID, checkIn.ValidatedAt)
	return err
}

func (r *PostgresCheckInRepository) scanCheckIn(row pgx.Row) (*domain.CheckIn, error) {
	checkIn := &domain.CheckIn{}
	err := row.Scan(
		&checkIn.ID,
		&checkIn.UserID,
		&checkIn.GymID,
		&checkIn.CreatedAt,
		&checkIn.ValidatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return checkIn, nil
}

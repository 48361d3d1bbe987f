package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*domain.User
	query := `SELECT * FROM users WHERE id = ANY($1)`
	err := r.db.SelectContext(ctx, &users, query, pq.Array(ids))
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $1, name = $2, age = $3, gender = $4, bio = $5,
		    vehicle_type = $6, build_status = $7, avatar_url = $8,
		    rig_photo_url = $9, onboarding_completed = $10,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Username, user.Name, user.Age, user.Gender, user.Bio,
		user.VehicleType, user.BuildStatus, user.AvatarURL,
		user.RigPhotoURL, user.OnboardingCompleted,
		user.ID,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *userRepository) UpdateLocation(ctx context.Context, id string, lat, lon float64, at time.Time) error {
	query := `
		UPDATE users
		SET last_latitude = $1, last_longitude = $2, last_location_at = $3,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query, lat, lon, at, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) ListOnboardedWithLocation(ctx context.Context, excludeID string) ([]*domain.User, error) {
	var users []*domain.User
	query := `
		SELECT * FROM users
		WHERE id != $1
		  AND onboarding_completed = true
		  AND last_latitude IS NOT NULL
		  AND last_longitude IS NOT NULL
	`
	err := r.db.SelectContext(ctx, &users, query, excludeID)
	return users, err
}

func (r *userRepository) ListRecent(ctx context.Context, excludeIDs []string, limit int) ([]*domain.User, error) {
	var users []*domain.User
	query := `
		SELECT * FROM users
		WHERE NOT (id = ANY($1))
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &users, query, pq.Array(excludeIDs), limit)
	return users, err
}

func (r *userRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	var users []*domain.User
	q := `
		SELECT * FROM users
		WHERE onboarding_completed = true
		  AND (username ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &users, q, query, limit)
	return users, err
}

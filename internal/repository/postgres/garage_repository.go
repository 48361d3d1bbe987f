package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type garageProRepository struct {
	db *sqlx.DB
}

func NewGarageProRepository(db *sqlx.DB) repository.GarageProRepository {
	return &garageProRepository{db: db}
}

func (r *garageProRepository) Create(ctx context.Context, pro *domain.GaragePro) error {
	query := `
		INSERT INTO garage_pros (
			id, user_id, name, title, specialty, rate, verified, category,
			image_url, phone_number, email, website, location, latitude, longitude
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		pro.ID, pro.UserID, pro.Name, pro.Title, pro.Specialty, pro.Rate,
		pro.Verified, pro.Category, pro.ImageURL, pro.PhoneNumber, pro.Email,
		pro.Website, pro.Location, pro.Latitude, pro.Longitude,
	).Scan(&pro.CreatedAt, &pro.UpdatedAt)
}

func (r *garageProRepository) GetByID(ctx context.Context, id string) (*domain.GaragePro, error) {
	var pro domain.GaragePro
	query := `SELECT * FROM garage_pros WHERE id = $1`
	err := r.db.GetContext(ctx, &pro, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGarageProNotFound
		}
		return nil, err
	}
	return &pro, nil
}

func (r *garageProRepository) GetByUserID(ctx context.Context, userID string) (*domain.GaragePro, error) {
	var pro domain.GaragePro
	query := `SELECT * FROM garage_pros WHERE user_id = $1`
	err := r.db.GetContext(ctx, &pro, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGarageProNotFound
		}
		return nil, err
	}
	return &pro, nil
}

func (r *garageProRepository) Update(ctx context.Context, pro *domain.GaragePro) error {
	query := `
		UPDATE garage_pros
		SET name = $1, title = $2, specialty = $3, rate = $4, category = $5,
		    image_url = $6, phone_number = $7, email = $8, website = $9,
		    location = $10, latitude = $11, longitude = $12,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $13
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		pro.Name, pro.Title, pro.Specialty, pro.Rate, pro.Category,
		pro.ImageURL, pro.PhoneNumber, pro.Email, pro.Website,
		pro.Location, pro.Latitude, pro.Longitude,
		pro.ID,
	).Scan(&pro.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrGarageProNotFound
	}
	return err
}

func (r *garageProRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM garage_pros WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGarageProNotFound
	}
	return nil
}

func (r *garageProRepository) List(ctx context.Context, category, excludeUserID string) ([]*domain.GaragePro, error) {
	var pros []*domain.GaragePro

	query := `SELECT * FROM garage_pros WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if category != "" && category != "ALL" {
		query += fmt.Sprintf(" AND category ILIKE $%d", argCount)
		args = append(args, category)
		argCount++
	}
	if excludeUserID != "" {
		query += fmt.Sprintf(" AND user_id != $%d", argCount)
		args = append(args, excludeUserID)
		argCount++
	}

	query += " ORDER BY name ASC"

	err := r.db.SelectContext(ctx, &pros, query, args...)
	return pros, err
}

func (r *garageProRepository) ListWithCoordinates(ctx context.Context) ([]*domain.GaragePro, error) {
	var pros []*domain.GaragePro
	query := `
		SELECT * FROM garage_pros
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	`
	err := r.db.SelectContext(ctx, &pros, query)
	return pros, err
}

func (r *garageProRepository) Search(ctx context.Context, query string, limit int) ([]*domain.GaragePro, error) {
	var pros []*domain.GaragePro
	q := `
		SELECT * FROM garage_pros
		WHERE name ILIKE '%' || $1 || '%' OR title ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &pros, q, query, limit)
	return pros, err
}

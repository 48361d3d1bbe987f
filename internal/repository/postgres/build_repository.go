package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type buildRepository struct {
	db *sqlx.DB
}

func NewBuildRepository(db *sqlx.DB) repository.BuildRepository {
	return &buildRepository{db: db}
}

func (r *buildRepository) Create(ctx context.Context, build *domain.Build) error {
	query := `
		INSERT INTO builds (id, user_id, name, model, description, image_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		build.ID, build.UserID, build.Name, build.Model, build.Description,
		build.ImageURL, pq.Array(build.Tags),
	).Scan(&build.CreatedAt, &build.UpdatedAt)
}

func (r *buildRepository) GetByID(ctx context.Context, id string) (*domain.Build, error) {
	var build domain.Build
	query := `
		SELECT id, user_id, name, model, description, image_url, tags,
		       created_at, updated_at
		FROM builds WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&build.ID, &build.UserID, &build.Name, &build.Model, &build.Description,
		&build.ImageURL, pq.Array(&build.Tags), &build.CreatedAt, &build.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBuildNotFound
		}
		return nil, err
	}
	return &build, nil
}

func (r *buildRepository) Update(ctx context.Context, build *domain.Build) error {
	query := `
		UPDATE builds
		SET name = $1, model = $2, description = $3, image_url = $4, tags = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		build.Name, build.Model, build.Description, build.ImageURL,
		pq.Array(build.Tags), build.ID,
	).Scan(&build.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrBuildNotFound
	}
	return err
}

func (r *buildRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM builds WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBuildNotFound
	}
	return nil
}

func (r *buildRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]*domain.Build, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []*domain.Build
	for rows.Next() {
		var build domain.Build
		if err := rows.Scan(
			&build.ID, &build.UserID, &build.Name, &build.Model, &build.Description,
			&build.ImageURL, pq.Array(&build.Tags), &build.CreatedAt, &build.UpdatedAt,
		); err != nil {
			return nil, err
		}
		builds = append(builds, &build)
	}
	return builds, rows.Err()
}

const buildColumns = `id, user_id, name, model, description, image_url, tags, created_at, updated_at`

func (r *buildRepository) ListAll(ctx context.Context, excludeUserID string) ([]*domain.Build, error) {
	if excludeUserID != "" {
		return r.listQuery(ctx,
			`SELECT `+buildColumns+` FROM builds WHERE user_id != $1 ORDER BY created_at DESC`,
			excludeUserID)
	}
	return r.listQuery(ctx,
		`SELECT `+buildColumns+` FROM builds ORDER BY created_at DESC`)
}

func (r *buildRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Build, error) {
	return r.listQuery(ctx,
		`SELECT `+buildColumns+` FROM builds WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
}

func (r *buildRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Build, error) {
	return r.listQuery(ctx,
		`SELECT `+buildColumns+` FROM builds
		 WHERE name ILIKE '%' || $1 || '%' OR model ILIKE '%' || $1 || '%'
		 ORDER BY created_at DESC
		 LIMIT $2`,
		query, limit)
}

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type roadNewsRepository struct {
	db *sqlx.DB
}

func NewRoadNewsRepository(db *sqlx.DB) repository.RoadNewsRepository {
	return &roadNewsRepository{db: db}
}

func (r *roadNewsRepository) ListLatest(ctx context.Context, limit int) ([]*domain.RoadNews, error) {
	var items []*domain.RoadNews
	query := `
		SELECT * FROM road_news
		ORDER BY timestamp DESC
		LIMIT $1
	`
	err := r.db.SelectContext(ctx, &items, query, limit)
	return items, err
}

func (r *roadNewsRepository) ListWithCoordinates(ctx context.Context, limit int) ([]*domain.RoadNews, error) {
	var items []*domain.RoadNews
	query := `
		SELECT * FROM road_news
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY timestamp DESC
		LIMIT $1
	`
	err := r.db.SelectContext(ctx, &items, query, limit)
	return items, err
}

package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type RoadNewsRepository interface {
	// ListLatest returns the newest items regardless of coordinates.
	ListLatest(ctx context.Context, limit int) ([]*domain.RoadNews, error)
	// ListWithCoordinates returns the newest geo-tagged items only.
	ListWithCoordinates(ctx context.Context, limit int) ([]*domain.RoadNews, error)
}

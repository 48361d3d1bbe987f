package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type GarageProRepository interface {
	Create(ctx context.Context, pro *domain.GaragePro) error
	GetByID(ctx context.Context, id string) (*domain.GaragePro, error)
	GetByUserID(ctx context.Context, userID string) (*domain.GaragePro, error)
	Update(ctx context.Context, pro *domain.GaragePro) error
	Delete(ctx context.Context, id string) error
	// List returns pros ordered by name. category filters case-insensitively
	// when non-empty; excludeUserID drops the given owner's listing.
	List(ctx context.Context, category, excludeUserID string) ([]*domain.GaragePro, error)
	// ListWithCoordinates returns only pros that carry both coordinates.
	ListWithCoordinates(ctx context.Context) ([]*domain.GaragePro, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.GaragePro, error)
}

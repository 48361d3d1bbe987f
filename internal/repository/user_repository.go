package repository

import (
	"context"
	"time"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLocation(ctx context.Context, id string, lat, lon float64, at time.Time) error
	// ListOnboardedWithLocation returns onboarded users with a known last
	// position, excluding the given user.
	ListOnboardedWithLocation(ctx context.Context, excludeID string) ([]*domain.User, error)
	// ListRecent returns the newest users not in excludeIDs, for the
	// dashboard rails.
	ListRecent(ctx context.Context, excludeIDs []string, limit int) ([]*domain.User, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.User, error)
}

package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type BuildRepository interface {
	Create(ctx context.Context, build *domain.Build) error
	GetByID(ctx context.Context, id string) (*domain.Build, error)
	Update(ctx context.Context, build *domain.Build) error
	Delete(ctx context.Context, id string) error
	// ListAll returns builds newest first, optionally excluding one owner.
	ListAll(ctx context.Context, excludeUserID string) ([]*domain.Build, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Build, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Build, error)
}

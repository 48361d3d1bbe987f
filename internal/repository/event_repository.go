package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	// ListByHost returns the host's events, soonest first.
	ListByHost(ctx context.Context, hostUserID string) ([]*domain.Event, error)
	// ListUpcoming returns events whose start date has not passed yet.
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
}

type PinRepository interface {
	// Pin is idempotent; repeat pins are absorbed.
	Pin(ctx context.Context, userID, eventID string) error
	Unpin(ctx context.Context, userID, eventID string) error
	ListEventIDs(ctx context.Context, userID string) ([]string, error)
}

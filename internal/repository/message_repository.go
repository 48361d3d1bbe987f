package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// ListBetween returns the full thread between two users, oldest first.
	ListBetween(ctx context.Context, userID, otherID string) ([]*domain.Message, error)
	// ListReceived returns messages addressed to userID, newest first.
	ListReceived(ctx context.Context, userID string) ([]*domain.Message, error)
	// ListInvolving returns messages sent or received by userID, newest first.
	ListInvolving(ctx context.Context, userID string) ([]*domain.Message, error)
}

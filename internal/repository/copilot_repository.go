package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type CoPilotRepository interface {
	// Upsert creates the profile on first write and updates it afterwards;
	// there is at most one per user.
	Upsert(ctx context.Context, profile *domain.CoPilotProfile) error
	GetByUserID(ctx context.Context, userID string) (*domain.CoPilotProfile, error)
	// ListFeedCandidates returns active profiles excluding the viewer,
	// anyone the viewer already swiped (either action), and anyone with
	// messages between the pair in either direction.
	ListFeedCandidates(ctx context.Context, viewerID string) ([]*domain.CoPilotProfile, error)
}

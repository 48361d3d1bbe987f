package repository

import (
	"context"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type SwipeRepository interface {
	// Create inserts the swipe and reports whether a row was written.
	// A conflict on the (swiper_id, target_id) unique index is not an
	// error: it returns created=false so callers can answer
	// "already swiped" idempotently.
	Create(ctx context.Context, swipe *domain.Swipe) (created bool, err error)
	// HasLike reports whether swiperID recorded a LIKE on targetID.
	HasLike(ctx context.Context, swiperID, targetID string) (bool, error)
	// ListMutualLikesReceived returns the LIKE swipes pointing at userID
	// whose reverse LIKE also exists, i.e. one swipe per match. The swipe's
	// creation time doubles as the match time.
	ListMutualLikesReceived(ctx context.Context, userID string) ([]*domain.Swipe, error)
}

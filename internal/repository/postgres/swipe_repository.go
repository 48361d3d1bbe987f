package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Create(ctx context.Context, swipe *domain.Swipe) (bool, error) {
	// The unique index on (swiper_id, target_id) makes concurrent duplicate
	// submissions safe: the losing insert hits the conflict and is treated
	// as "already swiped" rather than an error.
	query := `
		INSERT INTO swipes (id, swiper_id, target_id, action)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (swiper_id, target_id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, swipe.ID, swipe.SwiperID, swipe.TargetID, swipe.Action)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *swipeRepository) HasLike(ctx context.Context, swiperID, targetID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_id = $1 AND target_id = $2 AND action = 'LIKE'
		)
	`
	err := r.db.GetContext(ctx, &exists, query, swiperID, targetID)
	return exists, err
}

func (r *swipeRepository) ListMutualLikesReceived(ctx context.Context, userID string) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT s.* FROM swipes s
		WHERE s.target_id = $1
		  AND s.action = 'LIKE'
		  AND EXISTS (
			SELECT 1 FROM swipes m
			WHERE m.swiper_id = $1
			  AND m.target_id = s.swiper_id
			  AND m.action = 'LIKE'
		  )
		ORDER BY s.created_at DESC
	`
	err := r.db.SelectContext(ctx, &swipes, query, userID)
	return swipes, err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type copilotRepository struct {
	db *sqlx.DB
}

func NewCoPilotRepository(db *sqlx.DB) repository.CoPilotRepository {
	return &copilotRepository{db: db}
}

func (r *copilotRepository) Upsert(ctx context.Context, profile *domain.CoPilotProfile) error {
	query := `
		INSERT INTO copilot_profiles (
			id, user_id, is_active, identity, seeking, relationship_style,
			seat_belt_rule, tagline, photos, rig_photos, prompts
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			is_active = EXCLUDED.is_active,
			identity = EXCLUDED.identity,
			seeking = EXCLUDED.seeking,
			relationship_style = EXCLUDED.relationship_style,
			seat_belt_rule = EXCLUDED.seat_belt_rule,
			tagline = EXCLUDED.tagline,
			photos = EXCLUDED.photos,
			rig_photos = EXCLUDED.rig_photos,
			prompts = EXCLUDED.prompts,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.IsActive, profile.Identity,
		profile.Seeking, profile.RelationshipStyle, profile.SeatBeltRule,
		profile.Tagline, pq.Array(profile.Photos), pq.Array(profile.RigPhotos),
		pq.Array(profile.Prompts),
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *copilotRepository) GetByUserID(ctx context.Context, userID string) (*domain.CoPilotProfile, error) {
	var profile domain.CoPilotProfile
	query := `
		SELECT id, user_id, is_active, identity, seeking, relationship_style,
		       seat_belt_rule, tagline, photos, rig_photos, prompts,
		       created_at, updated_at
		FROM copilot_profiles WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.IsActive, &profile.Identity,
		&profile.Seeking, &profile.RelationshipStyle, &profile.SeatBeltRule,
		&profile.Tagline, pq.Array(&profile.Photos), pq.Array(&profile.RigPhotos),
		pq.Array(&profile.Prompts), &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *copilotRepository) ListFeedCandidates(ctx context.Context, viewerID string) ([]*domain.CoPilotProfile, error) {
	query := `
		SELECT p.id, p.user_id, p.is_active, p.identity, p.seeking,
		       p.relationship_style, p.seat_belt_rule, p.tagline,
		       p.photos, p.rig_photos, p.prompts, p.created_at, p.updated_at
		FROM copilot_profiles p
		WHERE p.user_id != $1
		  AND p.is_active = true
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s
			WHERE s.swiper_id = $1 AND s.target_id = p.user_id
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM messages m
			WHERE (m.sender_id = $1 AND m.receiver_id = p.user_id)
			   OR (m.sender_id = p.user_id AND m.receiver_id = $1)
		  )
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.CoPilotProfile
	for rows.Next() {
		var profile domain.CoPilotProfile
		if err := rows.Scan(
			&profile.ID, &profile.UserID, &profile.IsActive, &profile.Identity,
			&profile.Seeking, &profile.RelationshipStyle, &profile.SeatBeltRule,
			&profile.Tagline, pq.Array(&profile.Photos), pq.Array(&profile.RigPhotos),
			pq.Array(&profile.Prompts), &profile.CreatedAt, &profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			id, title, description, location, latitude, longitude,
			start_date, end_date, image_url, category, host_user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		event.ID, event.Title, event.Description, event.Location,
		event.Latitude, event.Longitude, event.StartDate, event.EndDate,
		event.ImageURL, event.Category, event.HostUserID,
	).Scan(&event.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1`
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) ListByHost(ctx context.Context, hostUserID string) ([]*domain.Event, error) {
	var events []*domain.Event
	query := `
		SELECT * FROM events
		WHERE host_user_id = $1
		ORDER BY start_date ASC
	`
	err := r.db.SelectContext(ctx, &events, query, hostUserID)
	return events, err
}

func (r *eventRepository) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	query := `
		SELECT * FROM events
		WHERE start_date >= CURRENT_TIMESTAMP
		ORDER BY start_date ASC
	`
	err := r.db.SelectContext(ctx, &events, query)
	return events, err
}

type pinRepository struct {
	db *sqlx.DB
}

func NewPinRepository(db *sqlx.DB) repository.PinRepository {
	return &pinRepository{db: db}
}

func (r *pinRepository) Pin(ctx context.Context, userID, eventID string) error {
	query := `
		INSERT INTO pinned_events (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *pinRepository) Unpin(ctx context.Context, userID, eventID string) error {
	query := `DELETE FROM pinned_events WHERE user_id = $1 AND event_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *pinRepository) ListEventIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	query := `SELECT event_id FROM pinned_events WHERE user_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

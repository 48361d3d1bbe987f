package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type EventUseCase struct {
	eventRepo repository.EventRepository
}

func NewEventUseCase(eventRepo repository.EventRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo}
}

// CreateEventRequest carries the event form. Dates arrive as RFC3339
// strings and are validated here, not at the binding layer.
type CreateEventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     *string  `json:"endDate"`
	ImageURL    *string  `json:"imageUrl"`
	Category    *string  `json:"category"`
}

// Create stores a new event hosted by hostUserID.
func (uc *EventUseCase) Create(ctx context.Context, hostUserID string, req *CreateEventRequest) (*domain.Event, error) {
	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate", domain.ErrInvalidInput)
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate", domain.ErrInvalidInput)
		}
		endDate = &parsed
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		StartDate:   startDate,
		EndDate:     endDate,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		HostUserID:  hostUserID,
	}
	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// ListMine returns the caller's hosted events, soonest first.
func (uc *EventUseCase) ListMine(ctx context.Context, hostUserID string) ([]*domain.Event, error) {
	return uc.eventRepo.ListByHost(ctx, hostUserID)
}

// Delete removes an event. Only the host may delete it.
func (uc *EventUseCase) Delete(ctx context.Context, userID, eventID string) error {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.HostUserID != userID {
		return domain.ErrNotOwner
	}
	return uc.eventRepo.Delete(ctx, eventID)
}

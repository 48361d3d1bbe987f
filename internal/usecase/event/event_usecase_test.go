package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	e.CreatedAt = time.Now()
	r.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) ListByHost(_ context.Context, hostUserID string) ([]*domain.Event, error) {
	var result []*domain.Event
	for _, e := range r.events {
		if e.HostUserID == hostUserID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEventRepo) ListUpcoming(context.Context) ([]*domain.Event, error) { return nil, nil }

func ptr(v float64) *float64 { return &v }

func validRequest() *CreateEventRequest {
	return &CreateEventRequest{
		Title:     "Desert Meetup",
		Location:  "Joshua Tree",
		Latitude:  ptr(34.05),
		Longitude: ptr(-118.2),
		StartDate: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeEventRepo()
	uc := NewEventUseCase(repo)

	event, err := uc.Create(context.Background(), "host-1", validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "host-1", event.HostUserID)
	assert.Len(t, repo.events, 1)
}

func TestCreate_RejectsBadDates(t *testing.T) {
	uc := NewEventUseCase(newFakeEventRepo())

	req := validRequest()
	req.StartDate = "next friday"
	_, err := uc.Create(context.Background(), "host-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = validRequest()
	bad := "whenever"
	req.EndDate = &bad
	_, err = uc.Create(context.Background(), "host-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_HostOnly(t *testing.T) {
	repo := newFakeEventRepo()
	uc := NewEventUseCase(repo)
	ctx := context.Background()

	event, err := uc.Create(ctx, "host-1", validRequest())
	require.NoError(t, err)

	err = uc.Delete(ctx, "someone-else", event.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Len(t, repo.events, 1)

	err = uc.Delete(ctx, "host-1", event.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.events)
}

func TestDelete_Missing(t *testing.T) {
	uc := NewEventUseCase(newFakeEventRepo())
	err := uc.Delete(context.Background(), "host-1", "nope")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

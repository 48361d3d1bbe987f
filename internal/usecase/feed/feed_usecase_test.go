package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }

func (r *fakeUserRepo) UpdateLocation(_ context.Context, _ string, _, _ float64, _ time.Time) error {
	return nil
}

func (r *fakeUserRepo) ListOnboardedWithLocation(_ context.Context, excludeID string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.ID != excludeID && u.HasLocation() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListRecent(_ context.Context, excludeIDs []string, limit int) ([]*domain.User, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	out := []*domain.User{}
	for _, u := range r.users {
		if excluded[u.ID] {
			continue
		}
		out = append(out, u)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Search(_ context.Context, _ string, _ int) ([]*domain.User, error) {
	return nil, nil
}

type fakeEventRepo struct {
	events []*domain.Event
}

func (r *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (r *fakeEventRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeEventRepo) ListByHost(_ context.Context, _ string) ([]*domain.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListUpcoming(_ context.Context) ([]*domain.Event, error) {
	return r.events, nil
}

type fakeNewsRepo struct {
	items []*domain.RoadNews
}

func (r *fakeNewsRepo) ListLatest(_ context.Context, limit int) ([]*domain.RoadNews, error) {
	if len(r.items) > limit {
		return r.items[:limit], nil
	}
	return r.items, nil
}

func (r *fakeNewsRepo) ListWithCoordinates(_ context.Context, _ int) ([]*domain.RoadNews, error) {
	return nil, nil
}

type fakePinRepo struct {
	pins map[string]map[string]bool
}

func newFakePinRepo() *fakePinRepo {
	return &fakePinRepo{pins: make(map[string]map[string]bool)}
}

func (r *fakePinRepo) Pin(_ context.Context, userID, eventID string) error {
	if r.pins[userID] == nil {
		r.pins[userID] = make(map[string]bool)
	}
	r.pins[userID][eventID] = true
	return nil
}

func (r *fakePinRepo) Unpin(_ context.Context, userID, eventID string) error {
	delete(r.pins[userID], eventID)
	return nil
}

func (r *fakePinRepo) ListEventIDs(_ context.Context, userID string) ([]string, error) {
	var out []string
	for id := range r.pins[userID] {
		out = append(out, id)
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func locatedUser(id string, lat, lon float64) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:            id,
		Name:          ptr("User " + id),
		LastLatitude:  ptr(lat),
		LastLongitude: ptr(lon),
		CreatedAt:     now,
	}
}

func newTestUseCase() (*FeedUseCase, *fakeUserRepo, *fakeEventRepo, *fakeNewsRepo, *fakePinRepo) {
	users := &fakeUserRepo{}
	events := &fakeEventRepo{}
	news := &fakeNewsRepo{}
	pins := newFakePinRepo()
	return NewFeedUseCase(users, events, news, pins), users, events, news, pins
}

func TestGet_NearbyEventsWithinFixedRadius(t *testing.T) {
	uc, users, events, _, _ := newTestUseCase()

	viewer := locatedUser("viewer", 34.0522, -118.2437)
	users.users = []*domain.User{viewer}

	// ~5.5 km north of the viewer.
	events.events = []*domain.Event{
		{ID: "close", Title: "Sunset Meetup", Location: "Griffith Park", Latitude: 34.1016, Longitude: -118.2437, StartDate: time.Now().Add(24 * time.Hour)},
		// ~550 km away.
		{ID: "far", Title: "Desert Rally", Location: "Sedona", Latitude: 34.8697, Longitude: -111.7610, StartDate: time.Now().Add(48 * time.Hour)},
	}

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	require.Len(t, feed.NearbyEvents, 1)
	assert.Equal(t, "close", feed.NearbyEvents[0].ID)
	assert.Contains(t, feed.NearbyEvents[0].Distance, "km away")
}

func TestGet_NoLocationSkipsNearbyEvents(t *testing.T) {
	uc, users, events, _, _ := newTestUseCase()

	users.users = []*domain.User{{ID: "viewer", CreatedAt: time.Now()}}
	events.events = []*domain.Event{
		{ID: "e1", Title: "Meetup", Latitude: 34.1, Longitude: -118.2, StartDate: time.Now().Add(time.Hour)},
	}

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	assert.Empty(t, feed.NearbyEvents)
}

func TestGet_ViewerExcludedFromRails(t *testing.T) {
	uc, users, _, _, _ := newTestUseCase()

	users.users = []*domain.User{
		locatedUser("viewer", 34.0, -118.0),
		locatedUser("a", 34.0, -118.0),
		locatedUser("b", 34.0, -118.0),
	}

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)

	for _, c := range feed.Caravans {
		assert.NotEqual(t, "viewer", c.ID)
	}
	for _, c := range feed.Travelers {
		assert.NotEqual(t, "viewer", c.ID)
	}
}

func TestGet_RailsDoNotOverlap(t *testing.T) {
	uc, users, _, _, _ := newTestUseCase()

	users.users = []*domain.User{locatedUser("viewer", 34.0, -118.0)}
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		users.users = append(users.users, locatedUser(id, 34.0, -118.0))
	}

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	require.Len(t, feed.Caravans, 5)

	caravanIDs := make(map[string]bool)
	for _, c := range feed.Caravans {
		caravanIDs[c.ID] = true
	}
	for _, c := range feed.Travelers {
		assert.False(t, caravanIDs[c.ID], "traveler %s also appears in caravans", c.ID)
	}
}

func TestGet_NewsUsesRelativeTimestamps(t *testing.T) {
	uc, users, _, news, _ := newTestUseCase()

	users.users = []*domain.User{{ID: "viewer", CreatedAt: time.Now()}}
	news.items = []*domain.RoadNews{
		{ID: "n1", Type: domain.RoadNewsAlert, Title: "Rockslide on I-70", Timestamp: time.Now().Add(-30 * time.Minute)},
		{ID: "n2", Type: domain.RoadNewsTraffic, Title: "Slow traffic", Timestamp: time.Now().Add(-5 * time.Hour)},
		{ID: "n3", Type: domain.RoadNewsInfo, Title: "New rest stop", Timestamp: time.Now().Add(-72 * time.Hour)},
	}

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	require.Len(t, feed.News, 3)
	assert.Equal(t, "30m ago", feed.News[0].Timestamp)
	assert.Equal(t, "5h ago", feed.News[1].Timestamp)
	assert.Equal(t, "3d ago", feed.News[2].Timestamp)
}

func TestPinEvent_ReflectedInFeed(t *testing.T) {
	uc, users, events, _, _ := newTestUseCase()

	users.users = []*domain.User{locatedUser("viewer", 34.0522, -118.2437)}
	events.events = []*domain.Event{
		{ID: "e1", Title: "Meetup", Latitude: 34.0522, Longitude: -118.2437, StartDate: time.Now().Add(time.Hour)},
	}

	require.NoError(t, uc.PinEvent(context.Background(), "viewer", "e1"))
	// Repeat pin is absorbed.
	require.NoError(t, uc.PinEvent(context.Background(), "viewer", "e1"))

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	require.Len(t, feed.NearbyEvents, 1)
	assert.True(t, feed.NearbyEvents[0].IsPinned)

	require.NoError(t, uc.UnpinEvent(context.Background(), "viewer", "e1"))
	feed, err = uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	assert.False(t, feed.NearbyEvents[0].IsPinned)
}

func TestPinEvent_UnknownEvent(t *testing.T) {
	uc, users, _, _, _ := newTestUseCase()
	users.users = []*domain.User{{ID: "viewer", CreatedAt: time.Now()}}

	err := uc.PinEvent(context.Background(), "viewer", "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestGet_NearbyEventsSortedByStartDate(t *testing.T) {
	uc, users, events, _, _ := newTestUseCase()

	users.users = []*domain.User{locatedUser("viewer", 34.0522, -118.2437)}
	base := time.Now()
	events.events = []*domain.Event{
		{ID: "later", Title: "Later", Latitude: 34.0522, Longitude: -118.2437, StartDate: base.Add(72 * time.Hour)},
		{ID: "sooner", Title: "Sooner", Latitude: 34.0530, Longitude: -118.2440, StartDate: base.Add(2 * time.Hour)},
	}

	feed, err := uc.Get(context.Background(), "viewer")
	require.NoError(t, err)
	require.Len(t, feed.NearbyEvents, 2)
	assert.Equal(t, "sooner", feed.NearbyEvents[0].ID)
	assert.Equal(t, "later", feed.NearbyEvents[1].ID)
}

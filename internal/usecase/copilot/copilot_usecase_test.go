package copilot

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

// fakeStore backs all fake repositories so exclusion rules can span swipes
// and messages the way the SQL does.
type fakeStore struct {
	users    map[string]*domain.User
	profiles map[string]*domain.CoPilotProfile
	swipes   []*domain.Swipe
	messages []*domain.Message
	clock    time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]*domain.User),
		profiles: make(map[string]*domain.CoPilotProfile),
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *fakeStore) addUser(id string) {
	name := "user-" + id
	s.users[id] = &domain.User{ID: id, Name: &name, OnboardingCompleted: true}
}

func (s *fakeStore) addProfile(userID string, active bool) {
	s.profiles[userID] = &domain.CoPilotProfile{
		ID: "p-" + userID, UserID: userID, IsActive: active,
		Photos: []string{}, RigPhotos: []string{}, Prompts: []string{},
	}
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	var users []*domain.User
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }

func (r *fakeUserRepo) UpdateLocation(context.Context, string, float64, float64, time.Time) error {
	return nil
}

func (r *fakeUserRepo) ListOnboardedWithLocation(context.Context, string) ([]*domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListRecent(context.Context, []string, int) ([]*domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Search(context.Context, string, int) ([]*domain.User, error) {
	return nil, nil
}

type fakeSwipeRepo struct{ s *fakeStore }

func (r *fakeSwipeRepo) Create(_ context.Context, swipe *domain.Swipe) (bool, error) {
	for _, existing := range r.s.swipes {
		if existing.SwiperID == swipe.SwiperID && existing.TargetID == swipe.TargetID {
			return false, nil
		}
	}
	swipe.CreatedAt = r.s.tick()
	r.s.swipes = append(r.s.swipes, swipe)
	return true, nil
}

func (r *fakeSwipeRepo) HasLike(_ context.Context, swiperID, targetID string) (bool, error) {
	for _, s := range r.s.swipes {
		if s.SwiperID == swiperID && s.TargetID == targetID && s.Action == domain.SwipeActionLike {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSwipeRepo) ListMutualLikesReceived(ctx context.Context, userID string) ([]*domain.Swipe, error) {
	var result []*domain.Swipe
	for _, s := range r.s.swipes {
		if s.TargetID != userID || s.Action != domain.SwipeActionLike {
			continue
		}
		reverse, _ := r.HasLike(ctx, userID, s.SwiperID)
		if reverse {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type fakeMessageRepo struct{ s *fakeStore }

func (r *fakeMessageRepo) Create(_ context.Context, m *domain.Message) error {
	m.CreatedAt = r.s.tick()
	r.s.messages = append(r.s.messages, m)
	return nil
}

func (r *fakeMessageRepo) ListBetween(_ context.Context, userID, otherID string) ([]*domain.Message, error) {
	var result []*domain.Message
	for _, m := range r.s.messages {
		if (m.SenderID == userID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == userID) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeMessageRepo) ListReceived(_ context.Context, userID string) ([]*domain.Message, error) {
	var result []*domain.Message
	for _, m := range r.s.messages {
		if m.ReceiverID == userID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeMessageRepo) ListInvolving(_ context.Context, userID string) ([]*domain.Message, error) {
	var result []*domain.Message
	for _, m := range r.s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

type fakeCoPilotRepo struct{ s *fakeStore }

func (r *fakeCoPilotRepo) Upsert(_ context.Context, p *domain.CoPilotProfile) error {
	r.s.profiles[p.UserID] = p
	return nil
}

func (r *fakeCoPilotRepo) GetByUserID(_ context.Context, userID string) (*domain.CoPilotProfile, error) {
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeCoPilotRepo) ListFeedCandidates(_ context.Context, viewerID string) ([]*domain.CoPilotProfile, error) {
	swiped := make(map[string]bool)
	for _, s := range r.s.swipes {
		if s.SwiperID == viewerID {
			swiped[s.TargetID] = true
		}
	}
	messaged := make(map[string]bool)
	for _, m := range r.s.messages {
		if m.SenderID == viewerID {
			messaged[m.ReceiverID] = true
		}
		if m.ReceiverID == viewerID {
			messaged[m.SenderID] = true
		}
	}

	var result []*domain.CoPilotProfile
	for _, p := range r.s.profiles {
		if p.UserID == viewerID || !p.IsActive || swiped[p.UserID] || messaged[p.UserID] {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func newTestUseCase(s *fakeStore) *CoPilotUseCase {
	return NewCoPilotUseCase(
		&fakeCoPilotRepo{s: s},
		&fakeSwipeRepo{s: s},
		&fakeMessageRepo{s: s},
		&fakeUserRepo{s: s},
	)
}

func TestUpsertProfile_Defaults(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	uc := newTestUseCase(s)

	profile, err := uc.UpsertProfile(context.Background(), "a", &UpsertProfileRequest{IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Male", profile.Identity)
	assert.Equal(t, "Women", profile.Seeking)
	assert.Equal(t, "Monogamous", profile.RelationshipStyle)
	assert.Equal(t, []string{}, profile.Photos)
	assert.Equal(t, []string{}, profile.RigPhotos)
	assert.Equal(t, []string{}, profile.Prompts)
}

func TestSwipe_Idempotent(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	first, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.False(t, first.AlreadySwiped)

	second, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	assert.True(t, second.AlreadySwiped)
	assert.False(t, second.Success)
	assert.Len(t, s.swipes, 1)
}

func TestSwipe_Validation(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "a", Action: domain.SwipeActionLike})
	assert.ErrorIs(t, err, domain.ErrCannotSwipeSelf)

	_, err = uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: "SUPERLIKE"})
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestSwipe_MatchDetection(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	first, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	assert.False(t, first.IsMatch)

	second, err := uc.Swipe(ctx, "b", &SwipeRequest{TargetID: "a", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	assert.True(t, second.IsMatch)
}

func TestSwipe_PassNeverMatches(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)

	result, err := uc.Swipe(ctx, "b", &SwipeRequest{TargetID: "a", Action: domain.SwipeActionPass})
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
}

func TestSendMessage_GatedByMatch(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "a", &MessageRequest{TargetID: "b", Content: "hey"})
	assert.ErrorIs(t, err, domain.ErrNotMatched)
	assert.Empty(t, s.messages)

	_, err = uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	_, err = uc.Swipe(ctx, "b", &SwipeRequest{TargetID: "a", Action: domain.SwipeActionLike})
	require.NoError(t, err)

	msg, err := uc.SendMessage(ctx, "a", &MessageRequest{TargetID: "b", Content: "hey"})
	require.NoError(t, err)
	assert.Equal(t, "a", msg.SenderID)
	assert.Equal(t, "b", msg.ReceiverID)
	assert.Len(t, s.messages, 1)
}

func TestSendMessage_OneDirectionalLikeIsNotEnough(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "a", &MessageRequest{TargetID: "b", Content: "hello?"})
	assert.ErrorIs(t, err, domain.ErrNotMatched)
}

func TestListMessages_GatedByMatch(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.ListMessages(ctx, "a", "b")
	assert.ErrorIs(t, err, domain.ErrNotMatched)
}

func matchUsers(t *testing.T, uc *CoPilotUseCase, a, b string) {
	t.Helper()
	ctx := context.Background()
	_, err := uc.Swipe(ctx, a, &SwipeRequest{TargetID: b, Action: domain.SwipeActionLike})
	require.NoError(t, err)
	_, err = uc.Swipe(ctx, b, &SwipeRequest{TargetID: a, Action: domain.SwipeActionLike})
	require.NoError(t, err)
}

func TestListChats_PlaceholderForFreshMatch(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	s.addUser("c")
	uc := newTestUseCase(s)
	ctx := context.Background()

	// a<->b matched first, then a<->c matched and c messaged a.
	matchUsers(t, uc, "a", "b")
	matchUsers(t, uc, "a", "c")
	_, err := uc.SendMessage(ctx, "c", &MessageRequest{TargetID: "a", Content: "road trip?"})
	require.NoError(t, err)

	chats, err := uc.ListChats(ctx, "a")
	require.NoError(t, err)
	require.Len(t, chats, 2)

	// The messaged thread is newest and leads; the message-less match
	// carries the placeholder and sorts by its match time.
	assert.Equal(t, "c", chats[0].ID)
	assert.Equal(t, "message", chats[0].Type)
	assert.Equal(t, "road trip?", chats[0].LastMessage)

	assert.Equal(t, "b", chats[1].ID)
	assert.Equal(t, "match", chats[1].Type)
	assert.Equal(t, ChatPlaceholder, chats[1].LastMessage)
	assert.True(t, chats[0].SentAt.After(chats[1].SentAt))
}

func TestListInbox_DedupesBySender(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	uc := newTestUseCase(s)
	ctx := context.Background()

	matchUsers(t, uc, "a", "b")
	_, err := uc.SendMessage(ctx, "b", &MessageRequest{TargetID: "a", Content: "first"})
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, "b", &MessageRequest{TargetID: "a", Content: "second"})
	require.NoError(t, err)

	inbox, err := uc.ListInbox(ctx, "a")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "b", inbox[0].SenderID)
	assert.Equal(t, "second", inbox[0].LastMessage)
}

func TestListMatches(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	s.addUser("c")
	uc := newTestUseCase(s)
	ctx := context.Background()

	matchUsers(t, uc, "a", "b")
	// One-directional like must not show up.
	_, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "c", Action: domain.SwipeActionLike})
	require.NoError(t, err)

	matches, err := uc.ListMatches(ctx, "a")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)
}

func TestFeed_Exclusions(t *testing.T) {
	s := newFakeStore()
	for _, id := range []string{"me", "swiped", "messaged", "inactive", "fresh"} {
		s.addUser(id)
	}
	s.addProfile("me", true)
	s.addProfile("swiped", true)
	s.addProfile("messaged", true)
	s.addProfile("inactive", false)
	s.addProfile("fresh", true)
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.Swipe(ctx, "me", &SwipeRequest{TargetID: "swiped", Action: domain.SwipeActionPass})
	require.NoError(t, err)

	matchUsers(t, uc, "messaged", "fresh") // unrelated pair, must not affect me
	s.messages = append(s.messages, &domain.Message{
		ID: "m1", SenderID: "messaged", ReceiverID: "me", Content: "hi", CreatedAt: s.tick(),
	})

	cards, err := uc.Feed(ctx, "me")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "fresh", cards[0].ID)
}

func TestEndToEnd_SwipeMatchMessage(t *testing.T) {
	s := newFakeStore()
	s.addUser("a")
	s.addUser("b")
	s.addUser("c")
	uc := newTestUseCase(s)
	ctx := context.Background()

	first, err := uc.Swipe(ctx, "a", &SwipeRequest{TargetID: "b", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	assert.False(t, first.IsMatch)

	second, err := uc.Swipe(ctx, "b", &SwipeRequest{TargetID: "a", Action: domain.SwipeActionLike})
	require.NoError(t, err)
	assert.True(t, second.IsMatch)

	_, err = uc.SendMessage(ctx, "a", &MessageRequest{TargetID: "b", Content: "we matched"})
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "c", &MessageRequest{TargetID: "a", Content: "hello stranger"})
	assert.ErrorIs(t, err, domain.ErrNotMatched)
}

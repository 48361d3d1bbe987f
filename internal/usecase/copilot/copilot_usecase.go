// Package copilot implements the swipe -> mutual match -> messaging
// lifecycle. A "match" is never stored: it is the derived state where both
// directions of a user pair carry a LIKE swipe, recomputed on every read
// that depends on it.
package copilot

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

// ChatPlaceholder is shown for matches that have no messages yet.
const ChatPlaceholder = "Start a message"

type CoPilotUseCase struct {
	copilotRepo repository.CoPilotRepository
	swipeRepo   repository.SwipeRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewCoPilotUseCase(
	copilotRepo repository.CoPilotRepository,
	swipeRepo repository.SwipeRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *CoPilotUseCase {
	return &CoPilotUseCase{
		copilotRepo: copilotRepo,
		swipeRepo:   swipeRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SwipeRequest records a directional preference.
type SwipeRequest struct {
	TargetID string             `json:"targetId" binding:"required"`
	Action   domain.SwipeAction `json:"action" binding:"required,swipeaction"`
}

// SwipeResult reports the swipe outcome. AlreadySwiped means the pair was
// resolved before and nothing was written.
type SwipeResult struct {
	Success       bool `json:"success"`
	IsMatch       bool `json:"isMatch"`
	AlreadySwiped bool `json:"-"`
}

// MessageRequest appends a message to a matched pair's thread.
type MessageRequest struct {
	TargetID string `json:"targetId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// MatchEntry is another user the caller is mutually matched with.
type MatchEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatarUrl"`
	MatchedAt time.Time `json:"matchedAt"`
}

// InboxEntry is the newest message per distinct sender.
type InboxEntry struct {
	SenderID    string    `json:"senderId"`
	Name        string    `json:"name"`
	AvatarURL   *string   `json:"avatarUrl"`
	LastMessage string    `json:"lastMessage"`
	SentAt      time.Time `json:"sentAt"`
	MessageID   string    `json:"messageId"`
}

// ChatEntry is one conversation in the chat list: either a message thread
// or a fresh match that has no messages yet.
type ChatEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AvatarURL   *string   `json:"avatarUrl"`
	LastMessage string    `json:"lastMessage"`
	SentAt      time.Time `json:"sentAt"`
	Type        string    `json:"type"`
}

// FeedCard is the discovery-feed projection of a copilot profile.
type FeedCard struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Age      *int     `json:"age"`
	Vehicle  string   `json:"vehicle"`
	Distance string   `json:"distance"`
	Image    string   `json:"image"`
	RigImage string   `json:"rigImage"`
	Photos   []string `json:"photos"`
	Vibe     *string  `json:"vibe"`
}

// UpsertProfileRequest creates or replaces the caller's copilot profile.
type UpsertProfileRequest struct {
	IsActive          bool     `json:"isActive"`
	Identity          string   `json:"identity"`
	Seeking           string   `json:"seeking"`
	RelationshipStyle string   `json:"relationshipStyle"`
	SeatBeltRule      bool     `json:"seatBeltRule"`
	Tagline           *string  `json:"tagline"`
	Photos            []string `json:"photos"`
	RigPhotos         []string `json:"rigPhotos"`
	Prompts           []string `json:"prompts"`
}

// Swipe records actorID's preference on targetID and reports whether the
// pair just became a match. Duplicate swipes are a no-op that reports
// AlreadySwiped rather than an error.
func (uc *CoPilotUseCase) Swipe(ctx context.Context, actorID string, req *SwipeRequest) (*SwipeResult, error) {
	if !req.Action.Valid() {
		return nil, domain.ErrInvalidAction
	}
	if actorID == req.TargetID {
		return nil, domain.ErrCannotSwipeSelf
	}

	swipe := &domain.Swipe{
		ID:       uuid.NewString(),
		SwiperID: actorID,
		TargetID: req.TargetID,
		Action:   req.Action,
	}

	created, err := uc.swipeRepo.Create(ctx, swipe)
	if err != nil {
		return nil, fmt.Errorf("failed to create swipe: %w", err)
	}
	if !created {
		return &SwipeResult{AlreadySwiped: true}, nil
	}

	result := &SwipeResult{Success: true}
	if req.Action == domain.SwipeActionLike {
		reverse, err := uc.swipeRepo.HasLike(ctx, req.TargetID, actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check reverse like: %w", err)
		}
		result.IsMatch = reverse
	}
	return result, nil
}

// SendMessage appends a message after re-deriving the match state. It does
// not verify that targetID still denotes a live user; the original system
// tolerated stale targets and that behavior is kept.
func (uc *CoPilotUseCase) SendMessage(ctx context.Context, actorID string, req *MessageRequest) (*domain.Message, error) {
	matched, err := uc.isMutualMatch(ctx, actorID, req.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check match: %w", err)
	}
	if !matched {
		return nil, domain.ErrNotMatched
	}

	message := &domain.Message{
		ID:         uuid.NewString(),
		SenderID:   actorID,
		ReceiverID: req.TargetID,
		Content:    req.Content,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// ListMessages returns the thread with otherID, oldest first. Reading a
// thread is gated the same way as writing to it.
func (uc *CoPilotUseCase) ListMessages(ctx context.Context, userID, otherID string) ([]*domain.Message, error) {
	matched, err := uc.isMutualMatch(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to check match: %w", err)
	}
	if !matched {
		return nil, domain.ErrNotMatched
	}
	return uc.messageRepo.ListBetween(ctx, userID, otherID)
}

// ListMatches returns the caller's mutual likes, newest first.
func (uc *CoPilotUseCase) ListMatches(ctx context.Context, userID string) ([]*MatchEntry, error) {
	swipes, err := uc.swipeRepo.ListMutualLikesReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	users, err := uc.usersByID(ctx, swiperIDs(swipes))
	if err != nil {
		return nil, err
	}

	entries := make([]*MatchEntry, 0, len(swipes))
	for _, s := range swipes {
		other, ok := users[s.SwiperID]
		if !ok {
			continue
		}
		entries = append(entries, &MatchEntry{
			ID:        other.ID,
			Name:      other.DisplayName(),
			AvatarURL: other.AvatarURL,
			MatchedAt: s.CreatedAt,
		})
	}
	return entries, nil
}

// ListInbox returns the newest message per distinct sender.
func (uc *CoPilotUseCase) ListInbox(ctx context.Context, userID string) ([]*InboxEntry, error) {
	messages, err := uc.messageRepo.ListReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	senderIDs := make([]string, 0, len(messages))
	seen := make(map[string]bool)
	for _, m := range messages {
		if !seen[m.SenderID] {
			seen[m.SenderID] = true
			senderIDs = append(senderIDs, m.SenderID)
		}
	}

	users, err := uc.usersByID(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	inbox := make([]*InboxEntry, 0, len(senderIDs))
	taken := make(map[string]bool)
	for _, m := range messages {
		if taken[m.SenderID] {
			continue
		}
		taken[m.SenderID] = true
		sender, ok := users[m.SenderID]
		if !ok {
			continue
		}
		inbox = append(inbox, &InboxEntry{
			SenderID:    m.SenderID,
			Name:        sender.DisplayName(),
			AvatarURL:   sender.AvatarURL,
			LastMessage: m.Content,
			SentAt:      m.CreatedAt,
			MessageID:   m.ID,
		})
	}
	return inbox, nil
}

// ListChats unions message threads with message-less matches, one entry per
// other party, newest activity first. Fresh matches sort by their match
// time and carry the placeholder text.
func (uc *CoPilotUseCase) ListChats(ctx context.Context, userID string) ([]*ChatEntry, error) {
	messages, err := uc.messageRepo.ListInvolving(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	matches, err := uc.swipeRepo.ListMutualLikesReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	otherIDs := make([]string, 0, len(messages)+len(matches))
	seen := make(map[string]bool)
	addID := func(id string) {
		if !seen[id] {
			seen[id] = true
			otherIDs = append(otherIDs, id)
		}
	}
	for _, m := range messages {
		if m.SenderID == userID {
			addID(m.ReceiverID)
		} else {
			addID(m.SenderID)
		}
	}
	for _, s := range matches {
		addID(s.SwiperID)
	}

	users, err := uc.usersByID(ctx, otherIDs)
	if err != nil {
		return nil, err
	}

	chatMap := make(map[string]*ChatEntry)
	// Messages are newest first, so the first one seen per party is the
	// thread's latest.
	for _, m := range messages {
		otherID := m.ReceiverID
		if m.ReceiverID == userID {
			otherID = m.SenderID
		}
		if _, ok := chatMap[otherID]; ok {
			continue
		}
		other, ok := users[otherID]
		if !ok {
			continue
		}
		chatMap[otherID] = &ChatEntry{
			ID:          other.ID,
			Name:        other.DisplayName(),
			AvatarURL:   other.AvatarURL,
			LastMessage: m.Content,
			SentAt:      m.CreatedAt,
			Type:        "message",
		}
	}

	for _, s := range matches {
		if _, ok := chatMap[s.SwiperID]; ok {
			continue
		}
		other, ok := users[s.SwiperID]
		if !ok {
			continue
		}
		chatMap[s.SwiperID] = &ChatEntry{
			ID:          other.ID,
			Name:        other.DisplayName(),
			AvatarURL:   other.AvatarURL,
			LastMessage: ChatPlaceholder,
			SentAt:      s.CreatedAt,
			Type:        "match",
		}
	}

	chats := make([]*ChatEntry, 0, len(chatMap))
	for _, c := range chatMap {
		chats = append(chats, c)
	}
	sort.Slice(chats, func(i, j int) bool {
		return chats[i].SentAt.After(chats[j].SentAt)
	})
	return chats, nil
}

// Feed returns discovery candidates: active profiles the viewer has not
// swiped and has no message history with.
func (uc *CoPilotUseCase) Feed(ctx context.Context, viewerID string) ([]*FeedCard, error) {
	profiles, err := uc.copilotRepo.ListFeedCandidates(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed candidates: %w", err)
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := uc.usersByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]*FeedCard, 0, len(profiles))
	for _, p := range profiles {
		user, ok := users[p.UserID]
		if !ok {
			continue
		}
		cards = append(cards, &FeedCard{
			ID:       p.UserID,
			Name:     user.DisplayName(),
			Age:      user.Age,
			Vehicle:  vehicleOf(user),
			Distance: "Nearby",
			Image:    firstOr(p.Photos, strOr(user.AvatarURL)),
			RigImage: firstOr(p.RigPhotos, ""),
			Photos:   p.Photos,
			Vibe:     p.Tagline,
		})
	}
	return cards, nil
}

// UpsertProfile creates or replaces the caller's copilot profile.
func (uc *CoPilotUseCase) UpsertProfile(ctx context.Context, userID string, req *UpsertProfileRequest) (*domain.CoPilotProfile, error) {
	profile := &domain.CoPilotProfile{
		ID:                uuid.NewString(),
		UserID:            userID,
		IsActive:          req.IsActive,
		Identity:          defaultStr(req.Identity, "Male"),
		Seeking:           defaultStr(req.Seeking, "Women"),
		RelationshipStyle: defaultStr(req.RelationshipStyle, "Monogamous"),
		SeatBeltRule:      req.SeatBeltRule,
		Tagline:           req.Tagline,
		Photos:            emptyIfNil(req.Photos),
		RigPhotos:         emptyIfNil(req.RigPhotos),
		Prompts:           emptyIfNil(req.Prompts),
	}
	if err := uc.copilotRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert copilot profile: %w", err)
	}
	return profile, nil
}

// GetProfile returns the caller's own copilot profile, or nil when none
// exists yet.
func (uc *CoPilotUseCase) GetProfile(ctx context.Context, userID string) (*domain.CoPilotProfile, error) {
	profile, err := uc.copilotRepo.GetByUserID(ctx, userID)
	if err == domain.ErrProfileNotFound {
		return nil, nil
	}
	return profile, err
}

// DeepDiveCard is the full detail view of a copilot profile.
type DeepDiveCard struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Age               *int     `json:"age"`
	Vehicle           string   `json:"vehicle"`
	Distance          string   `json:"distance"`
	Image             string   `json:"image"`
	RigImage          string   `json:"rigImage"`
	Photos            []string `json:"photos"`
	RigPhotos         []string `json:"rigPhotos"`
	Vibe              *string  `json:"vibe"`
	Prompts           []string `json:"prompts"`
	Identity          string   `json:"identity"`
	RelationshipStyle string   `json:"relationshipStyle"`
	Seeking           string   `json:"seeking"`
}

// DeepDive returns the full profile view for one user.
func (uc *CoPilotUseCase) DeepDive(ctx context.Context, targetUserID string) (*DeepDiveCard, error) {
	profile, err := uc.copilotRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return &DeepDiveCard{
		ID:                profile.UserID,
		Name:              user.DisplayName(),
		Age:               user.Age,
		Vehicle:           vehicleOf(user),
		Distance:          "Nearby",
		Image:             firstOr(profile.Photos, strOr(user.AvatarURL)),
		RigImage:          firstOr(profile.RigPhotos, ""),
		Photos:            profile.Photos,
		RigPhotos:         profile.RigPhotos,
		Vibe:              profile.Tagline,
		Prompts:           profile.Prompts,
		Identity:          profile.Identity,
		RelationshipStyle: profile.RelationshipStyle,
		Seeking:           profile.Seeking,
	}, nil
}

// isMutualMatch derives the match state from the two directional likes.
func (uc *CoPilotUseCase) isMutualMatch(ctx context.Context, userID, otherID string) (bool, error) {
	mine, err := uc.swipeRepo.HasLike(ctx, userID, otherID)
	if err != nil {
		return false, err
	}
	if !mine {
		return false, nil
	}
	return uc.swipeRepo.HasLike(ctx, otherID, userID)
}

func (uc *CoPilotUseCase) usersByID(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func swiperIDs(swipes []*domain.Swipe) []string {
	ids := make([]string, 0, len(swipes))
	for _, s := range swipes {
		ids = append(ids, s.SwiperID)
	}
	return ids
}

func vehicleOf(u *domain.User) string {
	if u.VehicleType != nil && *u.VehicleType != "" {
		return *u.VehicleType
	}
	return "Van"
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return fallback
}

func strOr(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

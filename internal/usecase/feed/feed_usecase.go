package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/geo"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

// nearbyEventsRadiusKm is the dashboard's fixed cutoff for the "happening
// near you" rail; the map screen uses its own client-chosen radius.
const nearbyEventsRadiusKm = 10.0

const (
	newsLimit = 10
	railLimit = 5
)

type FeedUseCase struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	newsRepo  repository.RoadNewsRepository
	pinRepo   repository.PinRepository
}

func NewFeedUseCase(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	newsRepo repository.RoadNewsRepository,
	pinRepo repository.PinRepository,
) *FeedUseCase {
	return &FeedUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		newsRepo:  newsRepo,
		pinRepo:   pinRepo,
	}
}

type WeatherCard struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Location    string `json:"location"`
	Alert       string `json:"alert"`
}

type NewsItem struct {
	ID          string              `json:"id"`
	Type        domain.RoadNewsType `json:"type"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Timestamp   string              `json:"timestamp"`
}

type TravelerCard struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Distance  string  `json:"distance"`
}

type NearbyEventCard struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Distance string  `json:"distance"`
	Date     string  `json:"date"`
	ImageURL *string `json:"imageUrl"`
	IsPinned bool    `json:"isPinned"`
}

type DashboardFeed struct {
	Weather      WeatherCard        `json:"weather"`
	News         []*NewsItem        `json:"news"`
	Caravans     []*TravelerCard    `json:"caravans"`
	Travelers    []*TravelerCard    `json:"travelers"`
	NearbyEvents []*NearbyEventCard `json:"nearbyEvents"`
}

// Get assembles the dashboard feed for one viewer. Nearby events are cut
// at a fixed radius around the viewer's last-known position and the rail
// stays empty when the viewer never shared one.
func (uc *FeedUseCase) Get(ctx context.Context, viewerID string) (*DashboardFeed, error) {
	viewer, err := uc.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}

	newsItems, err := uc.newsRepo.ListLatest(ctx, newsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list road news: %w", err)
	}

	caravanUsers, err := uc.userRepo.ListRecent(ctx, []string{viewerID}, railLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list caravans: %w", err)
	}

	excludeIDs := []string{viewerID}
	for _, u := range caravanUsers {
		excludeIDs = append(excludeIDs, u.ID)
	}
	travelerUsers, err := uc.userRepo.ListRecent(ctx, excludeIDs, railLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list travelers: %w", err)
	}

	nearbyEvents, err := uc.nearbyEvents(ctx, viewer)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	news := make([]*NewsItem, 0, len(newsItems))
	for _, item := range newsItems {
		news = append(news, &NewsItem{
			ID:          item.ID,
			Type:        item.Type,
			Title:       item.Title,
			Description: item.Description,
			Timestamp:   relativeTime(now, item.Timestamp),
		})
	}

	return &DashboardFeed{
		// No weather provider is integrated yet; the client renders this
		// block verbatim.
		Weather: WeatherCard{
			Temperature: "72°",
			Condition:   "Partly Cloudy",
			Location:    "Mojave Desert, CA",
			Alert:       "High Wind Warning",
		},
		News:         news,
		Caravans:     travelerCards(caravanUsers, "Nearby"),
		Travelers:    travelerCards(travelerUsers, "On the road"),
		NearbyEvents: nearbyEvents,
	}, nil
}

func (uc *FeedUseCase) nearbyEvents(ctx context.Context, viewer *domain.User) ([]*NearbyEventCard, error) {
	cards := []*NearbyEventCard{}
	if !viewer.HasLocation() {
		return cards, nil
	}
	center := geo.Point{Lat: *viewer.LastLatitude, Lon: *viewer.LastLongitude}

	events, err := uc.eventRepo.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	pinnedIDs, err := uc.pinRepo.ListEventIDs(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pins: %w", err)
	}
	pinned := make(map[string]bool, len(pinnedIDs))
	for _, id := range pinnedIDs {
		pinned[id] = true
	}

	within := geo.FilterWithinRadius(events, center, nearbyEventsRadiusKm, func(e *domain.Event) (geo.Point, bool) {
		return geo.Point{Lat: e.Latitude, Lon: e.Longitude}, true
	})
	sort.Slice(within, func(i, j int) bool {
		return within[i].Item.StartDate.Before(within[j].Item.StartDate)
	})

	for _, w := range within {
		e := w.Item
		cards = append(cards, &NearbyEventCard{
			ID:       e.ID,
			Title:    e.Title,
			Location: e.Location,
			Distance: fmt.Sprintf("%.1f km away", w.DistanceKm),
			Date:     e.StartDate.Format("Mon, Jan 2 • 3:04 PM"),
			ImageURL: e.ImageURL,
			IsPinned: pinned[e.ID],
		})
	}
	return cards, nil
}

// PinEvent saves an event to the viewer's dashboard; repeats are absorbed.
func (uc *FeedUseCase) PinEvent(ctx context.Context, userID, eventID string) error {
	if _, err := uc.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	return uc.pinRepo.Pin(ctx, userID, eventID)
}

// UnpinEvent removes a saved event; unpinning a never-pinned event is fine.
func (uc *FeedUseCase) UnpinEvent(ctx context.Context, userID, eventID string) error {
	return uc.pinRepo.Unpin(ctx, userID, eventID)
}

func travelerCards(users []*domain.User, distance string) []*TravelerCard {
	cards := make([]*TravelerCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, &TravelerCard{
			ID:        u.ID,
			Name:      u.DisplayName(),
			AvatarURL: u.AvatarURL,
			Distance:  distance,
		})
	}
	return cards
}

func relativeTime(now, at time.Time) string {
	diff := now.Sub(at)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

// Package nearby answers "what is around this point" across the four
// geo-tagged record kinds, sharing one radius filter instead of the
// per-endpoint distance math it replaces.
package nearby

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/geo"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

// DefaultRadiusKm applies when the client omits the radius parameter.
const DefaultRadiusKm = 25.0

// safetyFetchLimit caps how many road-news rows are considered per query.
const safetyFetchLimit = 50

type Kind string

const (
	KindEvents Kind = "EVENTS"
	KindPeople Kind = "PEOPLE"
	KindWork   Kind = "WORK"
	KindSafety Kind = "SAFETY"
)

type NearbyUseCase struct {
	eventRepo  repository.EventRepository
	userRepo   repository.UserRepository
	garageRepo repository.GarageProRepository
	newsRepo   repository.RoadNewsRepository
}

func NewNearbyUseCase(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	garageRepo repository.GarageProRepository,
	newsRepo repository.RoadNewsRepository,
) *NearbyUseCase {
	return &NearbyUseCase{
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		garageRepo: garageRepo,
		newsRepo:   newsRepo,
	}
}

// EventResult is an upcoming event within radius, soonest first.
type EventResult struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Location    string            `json:"location"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     *time.Time        `json:"endDate"`
	ImageURL    *string           `json:"imageUrl"`
	Category    *string           `json:"category"`
	DistanceKm  float64           `json:"distanceKm"`
	Host        *domain.EventHost `json:"host"`
}

// PersonResult is another traveler's last-known position within radius.
type PersonResult struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Username    *string `json:"username"`
	AvatarURL   *string `json:"avatarUrl"`
	VehicleType *string `json:"vehicleType"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DistanceKm  float64 `json:"distanceKm"`
}

// WorkResult is a garage pro within radius.
type WorkResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Title      *string `json:"title"`
	Specialty  *string `json:"specialty"`
	Rate       *string `json:"rate"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distanceKm"`
}

// SafetyResult is a geo-tagged road-news item within radius.
type SafetyResult struct {
	ID          string              `json:"id"`
	Type        domain.RoadNewsType `json:"type"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	Timestamp   time.Time           `json:"timestamp"`
	DistanceKm  float64             `json:"distanceKm"`
}

// Result groups the four kinds; kinds not requested stay empty.
type Result struct {
	Events []*EventResult  `json:"events"`
	People []*PersonResult `json:"people"`
	Work   []*WorkResult   `json:"work"`
	Safety []*SafetyResult `json:"safety"`
}

// Nearby runs the requested kind queries around center. viewerID is
// excluded from PEOPLE results.
func (uc *NearbyUseCase) Nearby(ctx context.Context, viewerID string, center geo.Point, radiusKm float64, include []Kind) (*Result, error) {
	wanted := make(map[Kind]bool, len(include))
	for _, k := range include {
		wanted[k] = true
	}

	result := &Result{
		Events: []*EventResult{},
		People: []*PersonResult{},
		Work:   []*WorkResult{},
		Safety: []*SafetyResult{},
	}

	if wanted[KindEvents] {
		events, err := uc.NearbyEvents(ctx, center, radiusKm)
		if err != nil {
			return nil, err
		}
		result.Events = events
	}

	if wanted[KindPeople] {
		people, err := uc.nearbyPeople(ctx, viewerID, center, radiusKm)
		if err != nil {
			return nil, err
		}
		result.People = people
	}

	if wanted[KindWork] {
		work, err := uc.nearbyWork(ctx, center, radiusKm)
		if err != nil {
			return nil, err
		}
		result.Work = work
	}

	if wanted[KindSafety] {
		safety, err := uc.nearbySafety(ctx, center, radiusKm)
		if err != nil {
			return nil, err
		}
		result.Safety = safety
	}

	return result, nil
}

// NearbyEvents returns upcoming events within radius, sorted by start date
// ascending, with their hosts attached. It also backs GET /events/nearby.
func (uc *NearbyUseCase) NearbyEvents(ctx context.Context, center geo.Point, radiusKm float64) ([]*EventResult, error) {
	events, err := uc.eventRepo.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	within := geo.FilterWithinRadius(events, center, radiusKm, func(e *domain.Event) (geo.Point, bool) {
		return geo.Point{Lat: e.Latitude, Lon: e.Longitude}, true
	})
	sort.Slice(within, func(i, j int) bool {
		return within[i].Item.StartDate.Before(within[j].Item.StartDate)
	})

	hostIDs := make([]string, 0, len(within))
	for _, w := range within {
		hostIDs = append(hostIDs, w.Item.HostUserID)
	}
	hosts, err := uc.userRepo.GetByIDs(ctx, hostIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load event hosts: %w", err)
	}
	hostByID := make(map[string]*domain.User, len(hosts))
	for _, h := range hosts {
		hostByID[h.ID] = h
	}

	results := make([]*EventResult, 0, len(within))
	for _, w := range within {
		e := w.Item
		var host *domain.EventHost
		if h, ok := hostByID[e.HostUserID]; ok {
			host = &domain.EventHost{ID: h.ID, Name: h.Name, Username: h.Username, AvatarURL: h.AvatarURL}
		}
		results = append(results, &EventResult{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Location:    e.Location,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			ImageURL:    e.ImageURL,
			Category:    e.Category,
			DistanceKm:  geo.Round1(w.DistanceKm),
			Host:        host,
		})
	}
	return results, nil
}

func (uc *NearbyUseCase) nearbyPeople(ctx context.Context, viewerID string, center geo.Point, radiusKm float64) ([]*PersonResult, error) {
	users, err := uc.userRepo.ListOnboardedWithLocation(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	within := geo.FilterWithinRadius(users, center, radiusKm, func(u *domain.User) (geo.Point, bool) {
		if !u.HasLocation() {
			return geo.Point{}, false
		}
		return geo.Point{Lat: *u.LastLatitude, Lon: *u.LastLongitude}, true
	})

	results := make([]*PersonResult, 0, len(within))
	for _, w := range within {
		u := w.Item
		results = append(results, &PersonResult{
			ID:          u.ID,
			Name:        u.DisplayName(),
			Username:    u.Username,
			AvatarURL:   u.AvatarURL,
			VehicleType: u.VehicleType,
			Latitude:    *u.LastLatitude,
			Longitude:   *u.LastLongitude,
			DistanceKm:  geo.Round1(w.DistanceKm),
		})
	}
	return results, nil
}

func (uc *NearbyUseCase) nearbyWork(ctx context.Context, center geo.Point, radiusKm float64) ([]*WorkResult, error) {
	pros, err := uc.garageRepo.ListWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list garage pros: %w", err)
	}

	within := geo.FilterWithinRadius(pros, center, radiusKm, func(p *domain.GaragePro) (geo.Point, bool) {
		if p.Latitude == nil || p.Longitude == nil {
			return geo.Point{}, false
		}
		return geo.Point{Lat: *p.Latitude, Lon: *p.Longitude}, true
	})

	results := make([]*WorkResult, 0, len(within))
	for _, w := range within {
		p := w.Item
		results = append(results, &WorkResult{
			ID:         p.ID,
			Name:       p.Name,
			Title:      p.Title,
			Specialty:  p.Specialty,
			Rate:       p.Rate,
			Latitude:   *p.Latitude,
			Longitude:  *p.Longitude,
			DistanceKm: geo.Round1(w.DistanceKm),
		})
	}
	return results, nil
}

func (uc *NearbyUseCase) nearbySafety(ctx context.Context, center geo.Point, radiusKm float64) ([]*SafetyResult, error) {
	items, err := uc.newsRepo.ListWithCoordinates(ctx, safetyFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list road news: %w", err)
	}

	within := geo.FilterWithinRadius(items, center, radiusKm, func(n *domain.RoadNews) (geo.Point, bool) {
		if n.Latitude == nil || n.Longitude == nil {
			return geo.Point{}, false
		}
		return geo.Point{Lat: *n.Latitude, Lon: *n.Longitude}, true
	})

	results := make([]*SafetyResult, 0, len(within))
	for _, w := range within {
		n := w.Item
		results = append(results, &SafetyResult{
			ID:          n.ID,
			Type:        n.Type,
			Title:       n.Title,
			Description: n.Description,
			Latitude:    *n.Latitude,
			Longitude:   *n.Longitude,
			Timestamp:   n.Timestamp,
			DistanceKm:  geo.Round1(w.DistanceKm),
		})
	}
	return results, nil
}

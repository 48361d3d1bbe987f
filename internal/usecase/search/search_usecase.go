package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

// perKindLimit caps each result bucket so one noisy kind cannot crowd out
// the others.
const perKindLimit = 5

const (
	KindUser   = "user"
	KindBuild  = "build"
	KindGarage = "garage"
)

type SearchUseCase struct {
	userRepo   repository.UserRepository
	buildRepo  repository.BuildRepository
	garageRepo repository.GarageProRepository
}

func NewSearchUseCase(
	userRepo repository.UserRepository,
	buildRepo repository.BuildRepository,
	garageRepo repository.GarageProRepository,
) *SearchUseCase {
	return &SearchUseCase{
		userRepo:   userRepo,
		buildRepo:  buildRepo,
		garageRepo: garageRepo,
	}
}

// Result is the uniform projection every kind is flattened to.
type Result struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	ImageURL *string `json:"imageUrl"`
}

// Search runs the query against users, builds and garage pros. A blank
// query returns an empty list rather than everything.
func (uc *SearchUseCase) Search(ctx context.Context, query string) ([]*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*Result{}, nil
	}

	users, err := uc.userRepo.Search(ctx, query, perKindLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	builds, err := uc.buildRepo.Search(ctx, query, perKindLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search builds: %w", err)
	}
	pros, err := uc.garageRepo.Search(ctx, query, perKindLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search garage pros: %w", err)
	}

	results := make([]*Result, 0, len(users)+len(builds)+len(pros))
	for _, u := range users {
		results = append(results, userResult(u))
	}
	for _, b := range builds {
		results = append(results, buildResult(b))
	}
	for _, p := range pros {
		results = append(results, garageResult(p))
	}
	return results, nil
}

func userResult(u *domain.User) *Result {
	return &Result{
		ID:       u.ID,
		Type:     KindUser,
		Title:    u.DisplayName(),
		Subtitle: u.VehicleType,
		ImageURL: u.AvatarURL,
	}
}

func buildResult(b *domain.Build) *Result {
	return &Result{
		ID:       b.ID,
		Type:     KindBuild,
		Title:    b.Name,
		Subtitle: b.Model,
		ImageURL: b.ImageURL,
	}
}

func garageResult(p *domain.GaragePro) *Result {
	return &Result{
		ID:       p.ID,
		Type:     KindGarage,
		Title:    p.Name,
		Subtitle: p.Title,
		ImageURL: p.ImageURL,
	}
}

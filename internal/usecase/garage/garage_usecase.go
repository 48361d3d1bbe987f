package garage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type GarageUseCase struct {
	garageRepo repository.GarageProRepository
}

func NewGarageUseCase(garageRepo repository.GarageProRepository) *GarageUseCase {
	return &GarageUseCase{garageRepo: garageRepo}
}

// ProRequest carries the listing form for both create and update.
type ProRequest struct {
	Name        string   `json:"name" binding:"required"`
	Title       *string  `json:"title"`
	Specialty   *string  `json:"specialty"`
	Rate        *string  `json:"rate"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	PhoneNumber *string  `json:"phoneNumber"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Create registers the caller's listing. A user may own at most one.
func (uc *GarageUseCase) Create(ctx context.Context, userID string, req *ProRequest) (*domain.GaragePro, error) {
	if _, err := uc.garageRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.ErrGarageProExists
	} else if err != domain.ErrGarageProNotFound {
		return nil, fmt.Errorf("failed to check existing listing: %w", err)
	}

	pro := &domain.GaragePro{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Title:       req.Title,
		Specialty:   req.Specialty,
		Rate:        req.Rate,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Website:     req.Website,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := uc.garageRepo.Create(ctx, pro); err != nil {
		return nil, fmt.Errorf("failed to create garage pro: %w", err)
	}
	return pro, nil
}

// Update edits a listing. Only the owner may touch it.
func (uc *GarageUseCase) Update(ctx context.Context, userID, proID string, req *ProRequest) (*domain.GaragePro, error) {
	pro, err := uc.garageRepo.GetByID(ctx, proID)
	if err != nil {
		return nil, err
	}
	if pro.UserID != userID {
		return nil, domain.ErrNotOwner
	}

	pro.Name = req.Name
	pro.Title = req.Title
	pro.Specialty = req.Specialty
	pro.Rate = req.Rate
	pro.Category = req.Category
	pro.ImageURL = req.ImageURL
	pro.PhoneNumber = req.PhoneNumber
	pro.Email = req.Email
	pro.Website = req.Website
	pro.Location = req.Location
	pro.Latitude = req.Latitude
	pro.Longitude = req.Longitude

	if err := uc.garageRepo.Update(ctx, pro); err != nil {
		return nil, fmt.Errorf("failed to update garage pro: %w", err)
	}
	return pro, nil
}

// Delete removes a listing. Only the owner may delete it.
func (uc *GarageUseCase) Delete(ctx context.Context, userID, proID string) error {
	pro, err := uc.garageRepo.GetByID(ctx, proID)
	if err != nil {
		return err
	}
	if pro.UserID != userID {
		return domain.ErrNotOwner
	}
	return uc.garageRepo.Delete(ctx, proID)
}

func (uc *GarageUseCase) GetByID(ctx context.Context, id string) (*domain.GaragePro, error) {
	return uc.garageRepo.GetByID(ctx, id)
}

func (uc *GarageUseCase) GetMine(ctx context.Context, userID string) (*domain.GaragePro, error) {
	return uc.garageRepo.GetByUserID(ctx, userID)
}

func (uc *GarageUseCase) List(ctx context.Context, category, excludeUserID string) ([]*domain.GaragePro, error) {
	return uc.garageRepo.List(ctx, category, excludeUserID)
}

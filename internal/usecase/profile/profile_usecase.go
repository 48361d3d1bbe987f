package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type ProfileUseCase struct {
	userRepo    repository.UserRepository
	copilotRepo repository.CoPilotRepository
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	copilotRepo repository.CoPilotRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:    userRepo,
		copilotRepo: copilotRepo,
	}
}

// MeResponse is the user record plus the copilot activation flag the
// client uses to decide which tabs to show.
type MeResponse struct {
	*domain.User
	CoPilotActive bool `json:"copilotActive"`
}

// CompleteOnboardingRequest carries the one-time onboarding payload. The
// copilot block is optional; when present and active the dating profile is
// created in the same call.
type CompleteOnboardingRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Age         *int    `json:"age" binding:"omitempty,min=18,max=120"`
	Gender      *string `json:"gender" binding:"omitempty,max=50"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	VehicleType *string `json:"vehicleType" binding:"omitempty,max=100"`
	BuildStatus *string `json:"buildStatus" binding:"omitempty,max=100"`
	AvatarURL   *string `json:"avatarUrl" binding:"omitempty,url"`
	RigPhotoURL *string `json:"rigPhotoUrl" binding:"omitempty,url"`

	CoPilot *OnboardingCoPilot `json:"copilot" binding:"omitempty"`
}

type OnboardingCoPilot struct {
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

// UpdateLocationRequest is the map screen's periodic position report.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required,latitude"`
	Longitude float64 `json:"longitude" binding:"required,longitude"`
}

// GetMe returns the caller's user record with the copilot flag attached.
func (uc *ProfileUseCase) GetMe(ctx context.Context, userID string) (*MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	active := false
	copilot, err := uc.copilotRepo.GetByUserID(ctx, userID)
	if err != nil && err != domain.ErrProfileNotFound {
		return nil, fmt.Errorf("failed to load copilot profile: %w", err)
	}
	if copilot != nil {
		active = copilot.IsActive
	}

	return &MeResponse{User: user, CoPilotActive: active}, nil
}

// CompleteOnboarding fills in the profile fields and marks the account
// onboarded. Calling it again simply overwrites the fields.
func (uc *ProfileUseCase) CompleteOnboarding(ctx context.Context, userID string, req *CompleteOnboardingRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := req.Name
	user.Name = &name
	user.Age = req.Age
	user.Gender = req.Gender
	user.Bio = req.Bio
	user.VehicleType = req.VehicleType
	user.BuildStatus = req.BuildStatus
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.RigPhotoURL != nil {
		user.RigPhotoURL = req.RigPhotoURL
	}
	user.OnboardingCompleted = true

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if req.CoPilot != nil {
		profile := &domain.CoPilotProfile{
			ID:                uuid.NewString(),
			UserID:            userID,
			IsActive:          req.CoPilot.IsActive,
			Identity:          defaultStr(req.CoPilot.Identity, "Male"),
			Seeking:           defaultStr(req.CoPilot.Seeking, "Women"),
			RelationshipStyle: defaultStr(req.CoPilot.RelationshipStyle, "Monogamous"),
			SeatBeltRule:      req.CoPilot.SeatBeltRule,
			Tagline:           req.CoPilot.Tagline,
			Photos:            emptyIfNil(req.CoPilot.Photos),
			RigPhotos:         emptyIfNil(req.CoPilot.RigPhotos),
			Prompts:           emptyIfNil(req.CoPilot.Prompts),
		}
		if err := uc.copilotRepo.Upsert(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to upsert copilot profile: %w", err)
		}
	}

	return user, nil
}

// UpdateLocation records the caller's last-known position.
func (uc *ProfileUseCase) UpdateLocation(ctx context.Context, userID string, req *UpdateLocationRequest) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := uc.userRepo.UpdateLocation(ctx, userID, req.Latitude, req.Longitude, time.Now()); err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
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

package build

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rovyapp/rovy-backend/internal/domain"
	"github.com/rovyapp/rovy-backend/internal/repository"
)

type BuildUseCase struct {
	buildRepo repository.BuildRepository
}

func NewBuildUseCase(buildRepo repository.BuildRepository) *BuildUseCase {
	return &BuildUseCase{buildRepo: buildRepo}
}

type CreateBuildRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=120"`
	Model       *string  `json:"model" binding:"omitempty,max=120"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,url"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
}

type UpdateBuildRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=120"`
	Model       *string   `json:"model" binding:"omitempty,max=120"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string   `json:"imageUrl" binding:"omitempty,url"`
	Tags        *[]string `json:"tags" binding:"omitempty,max=10"`
}

func (uc *BuildUseCase) Create(ctx context.Context, userID string, req *CreateBuildRequest) (*domain.Build, error) {
	build := &domain.Build{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Model:       req.Model,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}
	if build.Tags == nil {
		build.Tags = []string{}
	}
	if err := uc.buildRepo.Create(ctx, build); err != nil {
		return nil, fmt.Errorf("failed to create build: %w", err)
	}
	return build, nil
}

func (uc *BuildUseCase) GetByID(ctx context.Context, id string) (*domain.Build, error) {
	return uc.buildRepo.GetByID(ctx, id)
}

// List returns all builds newest first, omitting the caller's own when a
// caller is known.
func (uc *BuildUseCase) List(ctx context.Context, excludeUserID string) ([]*domain.Build, error) {
	return uc.buildRepo.ListAll(ctx, excludeUserID)
}

func (uc *BuildUseCase) ListMine(ctx context.Context, userID string) ([]*domain.Build, error) {
	return uc.buildRepo.ListByUser(ctx, userID)
}

// Update applies the provided fields. Only the owner may update.
func (uc *BuildUseCase) Update(ctx context.Context, userID, id string, req *UpdateBuildRequest) (*domain.Build, error) {
	build, err := uc.buildRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if build.UserID != userID {
		return nil, domain.ErrNotOwner
	}

	if req.Name != nil {
		build.Name = *req.Name
	}
	if req.Model != nil {
		build.Model = req.Model
	}
	if req.Description != nil {
		build.Description = req.Description
	}
	if req.ImageURL != nil {
		build.ImageURL = req.ImageURL
	}
	if req.Tags != nil {
		build.Tags = *req.Tags
	}

	if err := uc.buildRepo.Update(ctx, build); err != nil {
		return nil, fmt.Errorf("failed to update build: %w", err)
	}
	return build, nil
}

// Delete removes the build. Only the owner may delete.
func (uc *BuildUseCase) Delete(ctx context.Context, userID, id string) error {
	build, err := uc.buildRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if build.UserID != userID {
		return domain.ErrNotOwner
	}
	return uc.buildRepo.Delete(ctx, id)
}

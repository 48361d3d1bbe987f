package garage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovyapp/rovy-backend/internal/domain"
)

type fakeGarageRepo struct {
	pros []*domain.GaragePro
}

func (r *fakeGarageRepo) Create(_ context.Context, pro *domain.GaragePro) error {
	r.pros = append(r.pros, pro)
	return nil
}

func (r *fakeGarageRepo) GetByID(_ context.Context, id string) (*domain.GaragePro, error) {
	for _, p := range r.pros {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrGarageProNotFound
}

func (r *fakeGarageRepo) GetByUserID(_ context.Context, userID string) (*domain.GaragePro, error) {
	for _, p := range r.pros {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domain.ErrGarageProNotFound
}

func (r *fakeGarageRepo) Update(_ context.Context, pro *domain.GaragePro) error {
	for i, p := range r.pros {
		if p.ID == pro.ID {
			r.pros[i] = pro
			return nil
		}
	}
	return domain.ErrGarageProNotFound
}

func (r *fakeGarageRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.pros {
		if p.ID == id {
			r.pros = append(r.pros[:i], r.pros[i+1:]...)
			return nil
		}
	}
	return domain.ErrGarageProNotFound
}

func (r *fakeGarageRepo) List(_ context.Context, category, excludeUserID string) ([]*domain.GaragePro, error) {
	out := []*domain.GaragePro{}
	for _, p := range r.pros {
		if excludeUserID != "" && p.UserID == excludeUserID {
			continue
		}
		if category != "" {
			if p.Category == nil || !strings.EqualFold(*p.Category, category) {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeGarageRepo) ListWithCoordinates(_ context.Context) ([]*domain.GaragePro, error) {
	var out []*domain.GaragePro
	for _, p := range r.pros {
		if p.Latitude != nil && p.Longitude != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeGarageRepo) Search(_ context.Context, _ string, _ int) ([]*domain.GaragePro, error) {
	return nil, nil
}

func TestCreate_OneListingPerUser(t *testing.T) {
	repo := &fakeGarageRepo{}
	uc := NewGarageUseCase(repo)

	_, err := uc.Create(context.Background(), "u1", &ProRequest{Name: "Desert Diesel"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "u1", &ProRequest{Name: "Second Shop"})
	assert.ErrorIs(t, err, domain.ErrGarageProExists)

	// A different user is unaffected.
	_, err = uc.Create(context.Background(), "u2", &ProRequest{Name: "Solar Sam"})
	assert.NoError(t, err)
}

func TestUpdate_OwnerOnly(t *testing.T) {
	repo := &fakeGarageRepo{}
	uc := NewGarageUseCase(repo)

	pro, err := uc.Create(context.Background(), "u1", &ProRequest{Name: "Desert Diesel"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), "intruder", pro.ID, &ProRequest{Name: "Hijacked"})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	updated, err := uc.Update(context.Background(), "u1", pro.ID, &ProRequest{Name: "Desert Diesel & Sons"})
	require.NoError(t, err)
	assert.Equal(t, "Desert Diesel & Sons", updated.Name)
}

func TestDelete_OwnerOnly(t *testing.T) {
	repo := &fakeGarageRepo{}
	uc := NewGarageUseCase(repo)

	pro, err := uc.Create(context.Background(), "u1", &ProRequest{Name: "Desert Diesel"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(context.Background(), "intruder", pro.ID), domain.ErrNotOwner)
	require.NoError(t, uc.Delete(context.Background(), "u1", pro.ID))

	_, err = uc.GetByID(context.Background(), pro.ID)
	assert.ErrorIs(t, err, domain.ErrGarageProNotFound)
}

func TestDelete_Missing(t *testing.T) {
	uc := NewGarageUseCase(&fakeGarageRepo{})
	err := uc.Delete(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, domain.ErrGarageProNotFound)
}

func TestList_CategoryFilter(t *testing.T) {
	repo := &fakeGarageRepo{}
	uc := NewGarageUseCase(repo)

	mech := "Mechanic"
	solar := "Solar"
	_, err := uc.Create(context.Background(), "u1", &ProRequest{Name: "Desert Diesel", Category: &mech})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "u2", &ProRequest{Name: "Solar Sam", Category: &solar})
	require.NoError(t, err)

	pros, err := uc.List(context.Background(), "mechanic", "")
	require.NoError(t, err)
	require.Len(t, pros, 1)
	assert.Equal(t, "Desert Diesel", pros[0].Name)

	pros, err = uc.List(context.Background(), "", "u1")
	require.NoError(t, err)
	require.Len(t, pros, 1)
	assert.Equal(t, "Solar Sam", pros[0].Name)
}

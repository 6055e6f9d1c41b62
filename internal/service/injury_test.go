package service

import (
	"context"
	"testing"
	"time"

	"github.com/athlia/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInjuryRepo struct {
	injuries []model.Injury
}

func (f *fakeInjuryRepo) ProfileIDForAccount(ctx context.Context, accountID string) (*string, error) {
	return nil, nil
}

func (f *fakeInjuryRepo) CreateInjury(ctx context.Context, i *model.Injury) error {
	f.injuries = append(f.injuries, *i)
	return nil
}

func (f *fakeInjuryRepo) ListInjuries(ctx context.Context, accountID string) ([]model.Injury, error) {
	var out []model.Injury
	for i := len(f.injuries) - 1; i >= 0; i-- {
		if f.injuries[i].AccountID == accountID {
			out = append(out, f.injuries[i])
		}
	}
	return out, nil
}

func (f *fakeInjuryRepo) ResolveInjury(ctx context.Context, accountID, injuryID string) error {
	for i := range f.injuries {
		if f.injuries[i].ID == injuryID && f.injuries[i].AccountID == accountID {
			f.injuries[i].IsActive = false
			return nil
		}
	}
	return pgx.ErrNoRows
}

func TestInjuryLifecycle(t *testing.T) {
	repo := &fakeInjuryRepo{}
	svc := NewInjuryService(repo)
	svc.now = func() time.Time { return testNow }
	ctx := context.Background()

	knee, err := svc.Create(ctx, "acc-1", model.InjuryRequest{MuscleGroup: "genou", PainLevel: ptr(5)})
	require.NoError(t, err)
	assert.True(t, knee.IsActive)

	_, err = svc.Create(ctx, "acc-1", model.InjuryRequest{MuscleGroup: "epaule", PainLevel: ptr(3)})
	require.NoError(t, err)

	_, err = svc.List(ctx, "acc-1", "acc-2")
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := svc.List(ctx, "acc-1", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "epaule", list[0].MuscleGroup)

	resolved, err := svc.Resolve(ctx, "acc-1", knee.ID)
	require.NoError(t, err)
	assert.False(t, resolved.IsActive)
	assert.False(t, repo.injuries[0].IsActive)

	_, err = svc.Resolve(ctx, "acc-2", knee.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateInjuryForeignAccount(t *testing.T) {
	svc := NewInjuryService(&fakeInjuryRepo{})
	_, err := svc.Create(context.Background(), "acc-1", model.InjuryRequest{AccountID: "acc-9", MuscleGroup: "dos", PainLevel: ptr(2)})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateInjuryMissingPain(t *testing.T) {
	repo := &fakeInjuryRepo{}
	svc := NewInjuryService(repo)
	_, err := svc.Create(context.Background(), "acc-1", model.InjuryRequest{MuscleGroup: "dos"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.injuries)
}

package service

import (
	"context"
	"time"

	"github.com/athlia/backend/internal/db"
	"github.com/athlia/backend/internal/model"
	"github.com/google/uuid"
)

type InjuryRepo interface {
	ProfileIDForAccount(ctx context.Context, accountID string) (*string, error)
	CreateInjury(ctx context.Context, i *model.Injury) error
	ListInjuries(ctx context.Context, accountID string) ([]model.Injury, error)
	ResolveInjury(ctx context.Context, accountID, injuryID string) error
}

type InjuryService struct {
	repo InjuryRepo
	now  func() time.Time
}

func NewInjuryService(repo InjuryRepo) *InjuryService {
	return &InjuryService{repo: repo, now: time.Now}
}

func (s *InjuryService) Create(ctx context.Context, accountID string, req model.InjuryRequest) (*model.InjuryResponse, error) {
	if err := ensureOwner(accountID, req.AccountID); err != nil {
		return nil, err
	}
	if req.PainLevel == nil {
		return nil, ErrInvalidInput
	}

	profileID, err := s.repo.ProfileIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	injury := &model.Injury{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		ProfileID:   profileID,
		MuscleGroup: req.MuscleGroup,
		PainLevel:   *req.PainLevel,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateInjury(ctx, injury); err != nil {
		return nil, err
	}

	resp := model.NewInjuryResponse(injury)
	return &resp, nil
}

func (s *InjuryService) List(ctx context.Context, accountID, claimedID string) ([]model.InjuryResponse, error) {
	if err := ensureOwner(accountID, claimedID); err != nil {
		return nil, err
	}
	injuries, err := s.repo.ListInjuries(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]model.InjuryResponse, 0, len(injuries))
	for i := range injuries {
		out = append(out, model.NewInjuryResponse(&injuries[i]))
	}
	return out, nil
}

func (s *InjuryService) Resolve(ctx context.Context, accountID, injuryID string) (*model.InjuryResolveResponse, error) {
	if err := s.repo.ResolveInjury(ctx, accountID, injuryID); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.InjuryResolveResponse{ID: injuryID, IsActive: false}, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/athlia/backend/internal/model"
	"github.com/google/uuid"
)

type ProfileRepo interface {
	UpsertProfile(ctx context.Context, p *model.UserProfile) (bool, error)
}

type ProfileService struct {
	repo ProfileRepo
}

func NewProfileService(repo ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Upsert(ctx context.Context, accountID string, req model.UserProfileRequest) (*model.UserProfileResponse, error) {
	if err := ensureOwner(accountID, req.IDAccount); err != nil {
		return nil, err
	}

	var birthdate *time.Time
	if req.Birthdate != nil && strings.TrimSpace(*req.Birthdate) != "" {
		parsed, err := parseBirthdate(*req.Birthdate)
		if err != nil {
			return nil, err
		}
		birthdate = &parsed
	}

	profile := &model.UserProfile{
		ID:                 uuid.NewString(),
		AccountID:          accountID,
		Gender:             req.Gender,
		Birthdate:          birthdate,
		HeightCM:           req.HeightCM,
		WeightKG:           req.WeightKG,
		TrainingExperience: req.TrainingExperience,
		Sport:              req.Sport,
		MainGoal:           req.MainGoal,
		WeekAvailability:   req.WeekAvailability,
		Equipment:          req.Equipment,
		Health:             req.Health,
		Sleep:              req.Sleep,
		Stress:             req.Stress,
		Load:               req.Load,
		Recovery:           req.Recovery,
	}

	created, err := s.repo.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	resp := model.NewUserProfileResponse(profile, created)
	return &resp, nil
}

// parseBirthdate accepts a calendar date or a full RFC 3339 timestamp.
func parseBirthdate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(model.DateLayout, raw); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid birthdate format", ErrInvalidInput)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

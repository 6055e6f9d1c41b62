package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/athlia/backend/internal/adaptation"
	"github.com/athlia/backend/internal/db"
	"github.com/athlia/backend/internal/model"
	"github.com/google/uuid"
)

const coachTimeout = 8 * time.Second

type ReadinessRepo interface {
	ProfileIDForAccount(ctx context.Context, accountID string) (*string, error)
	SaveReadiness(ctx context.Context, log *model.ReadinessLog, adjust func(planned int) int) (int, error)
	LatestReadiness(ctx context.Context, accountID string) (*model.ReadinessLog, error)
}

// CoachClient writes a short personalised note for a check-in.
type CoachClient interface {
	CoachNote(ctx context.Context, checkIn model.ReadinessLog) (string, error)
}

type ReadinessService struct {
	repo  ReadinessRepo
	coach CoachClient
	now   func() time.Time
}

// NewReadinessService accepts a nil coach; responses then carry only the
// canned advice.
func NewReadinessService(repo ReadinessRepo, coach CoachClient) *ReadinessService {
	return &ReadinessService{repo: repo, coach: coach, now: time.Now}
}

func (s *ReadinessService) Submit(ctx context.Context, accountID string, req model.ReadinessRequest) (*model.ReadinessResponse, error) {
	if err := ensureOwner(accountID, req.AccountID); err != nil {
		return nil, err
	}
	if !req.Complete() {
		return nil, ErrInvalidInput
	}
	sleep, fatigue, stress, soreness, pain := *req.SleepHours, *req.Fatigue, *req.Stress, *req.Soreness, *req.PainLevel

	profileID, err := s.repo.ProfileIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	score := adaptation.ComputeReadinessScore(sleep, fatigue, stress, soreness, pain)
	entry := &model.ReadinessLog{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		ProfileID:      profileID,
		LogDate:        today(s.now()),
		SleepHours:     sleep,
		Fatigue:        fatigue,
		Stress:         stress,
		Soreness:       soreness,
		PainLevel:      pain,
		ReadinessScore: score,
		Advice:         adaptation.BuildAdvice(score, pain),
	}

	adjusted, err := s.repo.SaveReadiness(ctx, entry, func(planned int) int {
		return adaptation.SuggestIntensity(planned, score, pain)
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("readiness recorded", "account_id", accountID, "score", score, "sessions_adjusted", adjusted)

	return &model.ReadinessResponse{
		ReadinessScore: score,
		Advice:         entry.Advice,
		CoachNote:      s.coachNote(ctx, *entry),
	}, nil
}

func (s *ReadinessService) Latest(ctx context.Context, accountID, claimedID string) (*model.LatestReadinessResponse, error) {
	if err := ensureOwner(accountID, claimedID); err != nil {
		return nil, err
	}
	entry, err := s.repo.LatestReadiness(ctx, accountID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := model.NewLatestReadinessResponse(entry)
	return &resp, nil
}

func (s *ReadinessService) coachNote(ctx context.Context, entry model.ReadinessLog) string {
	if s.coach == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, coachTimeout)
	defer cancel()

	note, err := s.coach.CoachNote(ctx, entry)
	if err != nil {
		slog.Warn("coach note unavailable", "account_id", entry.AccountID, "error", err)
		return ""
	}
	return note
}

package service

import (
	"context"
	"math"
	"time"

	"github.com/athlia/backend/internal/adaptation"
	"github.com/athlia/backend/internal/model"
)

const weeklyWindowDays = 6

type AnalyticsRepo interface {
	ProgressStats(ctx context.Context, accountID string) (*model.ProgressStats, error)
	WeeklyStats(ctx context.Context, accountID string, since, today time.Time) (*model.WeeklyStats, error)
}

type AnalyticsService struct {
	repo AnalyticsRepo
	now  func() time.Time
}

func NewAnalyticsService(repo AnalyticsRepo) *AnalyticsService {
	return &AnalyticsService{repo: repo, now: time.Now}
}

func (s *AnalyticsService) Progress(ctx context.Context, callerID, accountID string) (*model.ProgressResponse, error) {
	if err := ensureOwner(callerID, accountID); err != nil {
		return nil, err
	}

	stats, err := s.repo.ProgressStats(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return &model.ProgressResponse{
		CompletedSessions: stats.CompletedSessions,
		CompletionRate:    completionRate(stats.CompletedSessions, stats.TotalSessions),
		AverageRPE:        round2(deref(stats.AverageRPE)),
		ReadinessAverage:  round2(deref(stats.ReadinessAverage)),
	}, nil
}

func (s *AnalyticsService) Weekly(ctx context.Context, callerID, accountID string) (*model.AnalyticsResponse, error) {
	if err := ensureOwner(callerID, accountID); err != nil {
		return nil, err
	}

	day := today(s.now())
	stats, err := s.repo.WeeklyStats(ctx, callerID, day.AddDate(0, 0, -weeklyWindowDays), day)
	if err != nil {
		return nil, err
	}

	resp := &model.AnalyticsResponse{
		WeeklySessionsDone:    stats.Done,
		WeeklySessionsPlanned: stats.Planned,
		NextSessionIntensity:  stats.NextSessionIntensity,
	}
	if latest := stats.LatestReadiness; latest != nil {
		resp.InjuryRiskFlag = adaptation.InjuryRisk(latest.ReadinessScore, latest.PainLevel)
	}
	return resp, nil
}

func completionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(done) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

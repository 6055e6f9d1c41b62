package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/athlia/backend/internal/db"
	"github.com/athlia/backend/internal/model"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type WorkoutRepo interface {
	SeedExercises(ctx context.Context, exercises []model.Exercise) error
	ListExercises(ctx context.Context) ([]model.Exercise, error)
	CreateProgram(ctx context.Context, program *model.WorkoutProgram, sessions []model.WorkoutSession) error
	GetSessionForDay(ctx context.Context, accountID string, day time.Time) (*model.WorkoutSession, error)
	ListSessions(ctx context.Context, accountID string) ([]model.WorkoutSession, error)
	CompleteSession(ctx context.Context, accountID, sessionID string, rpe int, notes *string) (*model.WorkoutSession, error)
}

type seedExercise struct {
	name, category, muscles, equipment string
	duration                           int
}

var defaultExercises = []seedExercise{
	{"Squat poids du corps", "strength", "legs", "bodyweight", 35},
	{"Pompes", "strength", "chest", "bodyweight", 30},
	{"Gainage", "core", "core", "mat", 20},
	{"Course footing", "cardio", "full_body", "none", 40},
	{"Mobilite hanches", "mobility", "hips", "mat", 15},
}

type WorkoutService struct {
	repo WorkoutRepo
	now  func() time.Time
}

func NewWorkoutService(repo WorkoutRepo) *WorkoutService {
	return &WorkoutService{repo: repo, now: time.Now}
}

func (s *WorkoutService) GenerateProgram(ctx context.Context, accountID string, req model.GenerateProgramRequest) (*model.ProgramResponse, error) {
	if err := ensureOwner(accountID, req.AccountID); err != nil {
		return nil, err
	}
	goal := strings.TrimSpace(req.Goal)
	if goal == "" || req.WeekAvailability < 1 || req.WeekAvailability > 7 {
		return nil, ErrInvalidInput
	}

	if err := s.repo.SeedExercises(ctx, catalog()); err != nil {
		return nil, fmt.Errorf("seed exercises: %w", err)
	}

	program, sessions := planProgram(accountID, goal, req.WeekAvailability, s.now())
	if err := s.repo.CreateProgram(ctx, program, sessions); err != nil {
		return nil, err
	}

	resp := &model.ProgramResponse{
		ID:       program.ID,
		Title:    program.Title,
		Goal:     program.Goal,
		Sessions: make([]model.SessionResponse, 0, len(sessions)),
	}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, model.NewSessionResponse(&sessions[i]))
	}
	return resp, nil
}

func (s *WorkoutService) TodaySession(ctx context.Context, accountID, claimedID string) (*model.SessionResponse, error) {
	if err := ensureOwner(accountID, claimedID); err != nil {
		return nil, err
	}
	session, err := s.repo.GetSessionForDay(ctx, accountID, today(s.now()))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := model.NewSessionResponse(session)
	return &resp, nil
}

func (s *WorkoutService) CompleteSession(ctx context.Context, accountID, sessionID string, req model.SessionFeedbackRequest) (*model.SessionCompleteResponse, error) {
	if req.RPEReported < 1 || req.RPEReported > 10 {
		return nil, ErrInvalidInput
	}

	session, err := s.repo.CompleteSession(ctx, accountID, sessionID, req.RPEReported, req.Notes)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.SessionCompleteResponse{
		ID:          session.ID,
		Status:      session.Status,
		RPEReported: session.RPEReported,
		Notes:       session.Notes,
	}, nil
}

func (s *WorkoutService) ListSessions(ctx context.Context, accountID, claimedID string) ([]model.SessionResponse, error) {
	if err := ensureOwner(accountID, claimedID); err != nil {
		return nil, err
	}
	sessions, err := s.repo.ListSessions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]model.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, model.NewSessionResponse(&sessions[i]))
	}
	return out, nil
}

func (s *WorkoutService) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	if err := s.repo.SeedExercises(ctx, catalog()); err != nil {
		return nil, fmt.Errorf("seed exercises: %w", err)
	}
	return s.repo.ListExercises(ctx)
}

func catalog() []model.Exercise {
	out := make([]model.Exercise, 0, len(defaultExercises))
	for _, e := range defaultExercises {
		out = append(out, model.Exercise{
			ID:           uuid.NewString(),
			Name:         e.name,
			Category:     e.category,
			MuscleGroups: &e.muscles,
			Equipment:    &e.equipment,
			DurationMin:  &e.duration,
		})
	}
	return out
}

// planProgram lays out one session per day starting today.
func planProgram(accountID, goal string, days int, now time.Time) (*model.WorkoutProgram, []model.WorkoutSession) {
	title := cases.Title(language.French).String(goal)
	key := strings.ToLower(goal)

	intensity := 5
	if key == "performance" || key == "muscle" {
		intensity = 6
	}
	duration := 35
	if key == "endurance" || key == "performance" {
		duration = 45
	}

	program := &model.WorkoutProgram{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Title:     fmt.Sprintf("Plan %s %dj/semaine", title, days),
		Goal:      goal,
		CreatedAt: now.UTC(),
		Active:    true,
	}

	start := today(now)
	sessions := make([]model.WorkoutSession, 0, days)
	for i := 0; i < days; i++ {
		sessions = append(sessions, model.WorkoutSession{
			ID:                 uuid.NewString(),
			ProgramID:          program.ID,
			AccountID:          accountID,
			Name:               fmt.Sprintf("Seance %d - %s", i+1, title),
			SessionDate:        start.AddDate(0, 0, i),
			PlannedDurationMin: duration,
			PlannedIntensity:   intensity,
			AdjustedIntensity:  intensity,
			Status:             model.SessionStatusPlanned,
		})
	}
	return program, sessions
}

// today is the calendar date of now, at midnight UTC.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

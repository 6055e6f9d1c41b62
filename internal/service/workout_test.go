package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/athlia/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkoutRepo struct {
	exercises []model.Exercise
	programs  []model.WorkoutProgram
	sessions  []model.WorkoutSession
	seedCalls int
	createErr error
}

func (f *fakeWorkoutRepo) SeedExercises(ctx context.Context, exercises []model.Exercise) error {
	f.seedCalls++
	if len(f.exercises) == 0 {
		f.exercises = append(f.exercises, exercises...)
	}
	return nil
}

func (f *fakeWorkoutRepo) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeWorkoutRepo) CreateProgram(ctx context.Context, program *model.WorkoutProgram, sessions []model.WorkoutSession) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.programs = append(f.programs, *program)
	f.sessions = append(f.sessions, sessions...)
	return nil
}

func (f *fakeWorkoutRepo) GetSessionForDay(ctx context.Context, accountID string, day time.Time) (*model.WorkoutSession, error) {
	for i := range f.sessions {
		s := f.sessions[i]
		if s.AccountID == accountID && s.SessionDate.Equal(day) {
			return &s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeWorkoutRepo) ListSessions(ctx context.Context, accountID string) ([]model.WorkoutSession, error) {
	var out []model.WorkoutSession
	for i := len(f.sessions) - 1; i >= 0; i-- {
		if f.sessions[i].AccountID == accountID {
			out = append(out, f.sessions[i])
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) CompleteSession(ctx context.Context, accountID, sessionID string, rpe int, notes *string) (*model.WorkoutSession, error) {
	for i := range f.sessions {
		s := &f.sessions[i]
		if s.ID == sessionID && s.AccountID == accountID {
			s.Status = model.SessionStatusDone
			s.RPEReported = &rpe
			s.Notes = notes
			done := *s
			return &done, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestWorkoutService(repo WorkoutRepo) *WorkoutService {
	svc := NewWorkoutService(repo)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestPlanProgram(t *testing.T) {
	tests := []struct {
		goal          string
		wantTitle     string
		wantSession   string
		wantIntensity int
		wantDuration  int
	}{
		{goal: "performance", wantTitle: "Plan Performance 3j/semaine", wantSession: "Seance 1 - Performance", wantIntensity: 6, wantDuration: 45},
		{goal: "muscle", wantTitle: "Plan Muscle 3j/semaine", wantSession: "Seance 1 - Muscle", wantIntensity: 6, wantDuration: 35},
		{goal: "Endurance", wantTitle: "Plan Endurance 3j/semaine", wantSession: "Seance 1 - Endurance", wantIntensity: 5, wantDuration: 45},
		{goal: "perte de poids", wantTitle: "Plan Perte De Poids 3j/semaine", wantSession: "Seance 1 - Perte De Poids", wantIntensity: 5, wantDuration: 35},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			program, sessions := planProgram("acc-1", tt.goal, 3, testNow)

			assert.Equal(t, tt.wantTitle, program.Title)
			assert.Equal(t, tt.goal, program.Goal)
			assert.True(t, program.Active)
			require.Len(t, sessions, 3)
			assert.Equal(t, tt.wantSession, sessions[0].Name)

			for i, s := range sessions {
				assert.Equal(t, program.ID, s.ProgramID)
				assert.Equal(t, "acc-1", s.AccountID)
				assert.Equal(t, tt.wantIntensity, s.PlannedIntensity)
				assert.Equal(t, s.PlannedIntensity, s.AdjustedIntensity)
				assert.Equal(t, tt.wantDuration, s.PlannedDurationMin)
				assert.Equal(t, model.SessionStatusPlanned, s.Status)
				assert.Equal(t, time.Date(2026, 3, 14+i, 0, 0, 0, 0, time.UTC), s.SessionDate)
			}
		})
	}
}

func TestGenerateProgram(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(repo)

	resp, err := svc.GenerateProgram(context.Background(), "acc-1", model.GenerateProgramRequest{
		AccountID:        "acc-1",
		Goal:             "endurance",
		WeekAvailability: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "Plan Endurance 4j/semaine", resp.Title)
	require.Len(t, resp.Sessions, 4)
	assert.Equal(t, "2026-03-14", resp.Sessions[0].SessionDate)
	assert.Equal(t, "2026-03-17", resp.Sessions[3].SessionDate)
	assert.Len(t, repo.exercises, len(defaultExercises))
	assert.Len(t, repo.sessions, 4)
}

func TestGenerateProgramRejects(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})
	ctx := context.Background()

	_, err := svc.GenerateProgram(ctx, "acc-1", model.GenerateProgramRequest{AccountID: "acc-2", Goal: "muscle", WeekAvailability: 3})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GenerateProgram(ctx, "acc-1", model.GenerateProgramRequest{Goal: "muscle", WeekAvailability: 8})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GenerateProgram(ctx, "acc-1", model.GenerateProgramRequest{Goal: "  ", WeekAvailability: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateProgramStoreFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := newTestWorkoutService(&fakeWorkoutRepo{createErr: boom})

	_, err := svc.GenerateProgram(context.Background(), "acc-1", model.GenerateProgramRequest{Goal: "muscle", WeekAvailability: 2})
	assert.ErrorIs(t, err, boom)
}

func TestTodaySessionAndComplete(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(repo)
	ctx := context.Background()

	_, err := svc.TodaySession(ctx, "acc-1", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GenerateProgram(ctx, "acc-1", model.GenerateProgramRequest{Goal: "muscle", WeekAvailability: 2})
	require.NoError(t, err)

	_, err = svc.TodaySession(ctx, "acc-1", "acc-2")
	assert.ErrorIs(t, err, ErrForbidden)

	today, err := svc.TodaySession(ctx, "acc-1", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Seance 1 - Muscle", today.Name)

	notes := "bonne seance"
	done, err := svc.CompleteSession(ctx, "acc-1", today.ID, model.SessionFeedbackRequest{RPEReported: 7, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, model.SessionStatusDone, done.Status)
	require.NotNil(t, done.RPEReported)
	assert.Equal(t, 7, *done.RPEReported)

	_, err = svc.CompleteSession(ctx, "acc-2", today.ID, model.SessionFeedbackRequest{RPEReported: 7})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CompleteSession(ctx, "acc-1", today.ID, model.SessionFeedbackRequest{RPEReported: 11})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListSessionsScopedToCaller(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(repo)
	ctx := context.Background()

	_, err := svc.GenerateProgram(ctx, "acc-1", model.GenerateProgramRequest{Goal: "muscle", WeekAvailability: 3})
	require.NoError(t, err)
	_, err = svc.GenerateProgram(ctx, "acc-2", model.GenerateProgramRequest{Goal: "muscle", WeekAvailability: 2})
	require.NoError(t, err)

	_, err = svc.ListSessions(ctx, "acc-1", "acc-2")
	assert.ErrorIs(t, err, ErrForbidden)

	sessions, err := svc.ListSessions(ctx, "acc-1", "")
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
}

func TestListExercisesSeedsCatalog(t *testing.T) {
	repo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(repo)

	exercises, err := svc.ListExercises(context.Background())
	require.NoError(t, err)
	require.Len(t, exercises, len(defaultExercises))
	assert.Equal(t, 1, repo.seedCalls)

	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		names = append(names, ex.Name)
		require.NotNil(t, ex.DurationMin)
	}
	assert.Contains(t, names, "Gainage")
}

package db

import (
	"context"
	"time"

	"github.com/athlia/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, program_id, account_id, name, session_date, planned_duration_min,
	planned_intensity, adjusted_intensity, status, rpe_reported, notes`

func scanSession(row rowScanner) (*model.WorkoutSession, error) {
	var s model.WorkoutSession
	err := row.Scan(
		&s.ID,
		&s.ProgramID,
		&s.AccountID,
		&s.Name,
		&s.SessionDate,
		&s.PlannedDurationMin,
		&s.PlannedIntensity,
		&s.AdjustedIntensity,
		&s.Status,
		&s.RPEReported,
		&s.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSessions(rows pgx.Rows) ([]model.WorkoutSession, error) {
	defer rows.Close()

	sessions := []model.WorkoutSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// SeedExercises inserts the catalog only when the table is empty.
func (db *Postgres) SeedExercises(ctx context.Context, exercises []model.Exercise) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Serialize concurrent seeders on the catalog table.
	if _, err := tx.Exec(ctx, `LOCK TABLE exercises IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return err
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return tx.Commit(ctx)
	}

	for _, ex := range exercises {
		if _, err := tx.Exec(ctx, `
			INSERT INTO exercises (id, name, category, muscle_groups, equipment, duration_min)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, ex.ID, ex.Name, ex.Category, ex.MuscleGroups, ex.Equipment, ex.DurationMin); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (db *Postgres) ListExercises(ctx context.Context) ([]model.Exercise, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, category, muscle_groups, equipment, duration_min
		FROM exercises
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []model.Exercise{}
	for rows.Next() {
		var ex model.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Category, &ex.MuscleGroups, &ex.Equipment, &ex.DurationMin); err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	return exercises, rows.Err()
}

func (db *Postgres) CreateProgram(ctx context.Context, program *model.WorkoutProgram, sessions []model.WorkoutSession) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO workout_programs (id, account_id, title, goal, created_at, active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, program.ID, program.AccountID, program.Title, program.Goal, program.CreatedAt, program.Active); err != nil {
		return err
	}

	for _, s := range sessions {
		if _, err = tx.Exec(ctx, `
			INSERT INTO workout_sessions (`+sessionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, s.ID, s.ProgramID, s.AccountID, s.Name, s.SessionDate, s.PlannedDurationMin,
			s.PlannedIntensity, s.AdjustedIntensity, s.Status, s.RPEReported, s.Notes); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (db *Postgres) GetSessionForDay(ctx context.Context, accountID string, day time.Time) (*model.WorkoutSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM workout_sessions
		WHERE account_id = $1 AND session_date = $2
		ORDER BY id ASC
		LIMIT 1
	`
	return scanSession(db.Pool.QueryRow(ctx, query, accountID, day))
}

func (db *Postgres) ListSessions(ctx context.Context, accountID string) ([]model.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_sessions
		WHERE account_id = $1
		ORDER BY session_date DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

func (db *Postgres) CompleteSession(ctx context.Context, accountID, sessionID string, rpe int, notes *string) (*model.WorkoutSession, error) {
	query := `
		UPDATE workout_sessions
		SET status = $3, rpe_reported = $4, notes = $5
		WHERE id = $1 AND account_id = $2
		RETURNING ` + sessionColumns
	return scanSession(db.Pool.QueryRow(ctx, query, sessionID, accountID, model.SessionStatusDone, rpe, notes))
}

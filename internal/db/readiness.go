package db

import (
	"context"

	"github.com/athlia/backend/internal/model"
)

// SaveReadiness stores log and rescales the adjusted intensity of every
// session the account has on log.LogDate, in one transaction. It returns the
// number of sessions adjusted.
func (db *Postgres) SaveReadiness(ctx context.Context, log *model.ReadinessLog, adjust func(planned int) int) (int, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO readiness_logs (
			id, account_id, profile_id, log_date, sleep_hours, fatigue, stress,
			soreness, pain_level, readiness_score, ai_advice
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, log.ID, log.AccountID, log.ProfileID, log.LogDate, log.SleepHours, log.Fatigue, log.Stress,
		log.Soreness, log.PainLevel, log.ReadinessScore, log.Advice); err != nil {
		return 0, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, planned_intensity
		FROM workout_sessions
		WHERE account_id = $1 AND session_date = $2
		FOR UPDATE
	`, log.AccountID, log.LogDate)
	if err != nil {
		return 0, err
	}

	type plannedSession struct {
		id      string
		planned int
	}
	var sessions []plannedSession
	for rows.Next() {
		var s plannedSession
		if err := rows.Scan(&s.id, &s.planned); err != nil {
			rows.Close()
			return 0, err
		}
		sessions = append(sessions, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, s := range sessions {
		if _, err := tx.Exec(ctx,
			`UPDATE workout_sessions SET adjusted_intensity = $2 WHERE id = $1`,
			s.id, adjust(s.planned),
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(sessions), nil
}

const readinessColumns = `id, account_id, profile_id, log_date, sleep_hours, fatigue, stress,
	soreness, pain_level, readiness_score, ai_advice`

func scanReadiness(row rowScanner) (*model.ReadinessLog, error) {
	var l model.ReadinessLog
	err := row.Scan(
		&l.ID,
		&l.AccountID,
		&l.ProfileID,
		&l.LogDate,
		&l.SleepHours,
		&l.Fatigue,
		&l.Stress,
		&l.Soreness,
		&l.PainLevel,
		&l.ReadinessScore,
		&l.Advice,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (db *Postgres) LatestReadiness(ctx context.Context, accountID string) (*model.ReadinessLog, error) {
	query := `
		SELECT ` + readinessColumns + `
		FROM readiness_logs
		WHERE account_id = $1
		ORDER BY log_date DESC, created_at DESC
		LIMIT 1
	`
	return scanReadiness(db.Pool.QueryRow(ctx, query, accountID))
}

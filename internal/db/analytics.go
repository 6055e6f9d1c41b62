package db

import (
	"context"
	"time"

	"github.com/athlia/backend/internal/model"
)

func (db *Postgres) ProgressStats(ctx context.Context, accountID string) (*model.ProgressStats, error) {
	var stats model.ProgressStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			AVG(rpe_reported)::DOUBLE PRECISION
		FROM workout_sessions
		WHERE account_id = $1
	`, accountID, model.SessionStatusDone).Scan(&stats.TotalSessions, &stats.CompletedSessions, &stats.AverageRPE)
	if err != nil {
		return nil, err
	}

	err = db.Pool.QueryRow(ctx, `
		SELECT AVG(readiness_score)::DOUBLE PRECISION
		FROM readiness_logs
		WHERE account_id = $1
	`, accountID).Scan(&stats.ReadinessAverage)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// WeeklyStats aggregates sessions dated from since onwards and looks up the
// next planned session from today.
func (db *Postgres) WeeklyStats(ctx context.Context, accountID string, since, today time.Time) (*model.WeeklyStats, error) {
	var stats model.WeeklyStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $3)
		FROM workout_sessions
		WHERE account_id = $1 AND session_date >= $2
	`, accountID, since, model.SessionStatusDone).Scan(&stats.Planned, &stats.Done)
	if err != nil {
		return nil, err
	}

	latest, err := db.LatestReadiness(ctx, accountID)
	if err != nil && !IsNoRows(err) {
		return nil, err
	}
	stats.LatestReadiness = latest

	var next int
	err = db.Pool.QueryRow(ctx, `
		SELECT adjusted_intensity
		FROM workout_sessions
		WHERE account_id = $1 AND session_date >= $2 AND status = $3
		ORDER BY session_date ASC
		LIMIT 1
	`, accountID, today, model.SessionStatusPlanned).Scan(&next)
	switch {
	case err == nil:
		stats.NextSessionIntensity = &next
	case !IsNoRows(err):
		return nil, err
	}

	return &stats, nil
}

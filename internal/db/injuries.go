package db

import (
	"context"

	"github.com/athlia/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

func (db *Postgres) CreateInjury(ctx context.Context, i *model.Injury) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO injuries (id, account_id, profile_id, muscle_group, pain_level, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, i.ID, i.AccountID, i.ProfileID, i.MuscleGroup, i.PainLevel, i.IsActive, i.CreatedAt)
	return err
}

func (db *Postgres) ListInjuries(ctx context.Context, accountID string) ([]model.Injury, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, account_id, profile_id, muscle_group, pain_level, is_active, created_at
		FROM injuries
		WHERE account_id = $1
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	injuries := []model.Injury{}
	for rows.Next() {
		var i model.Injury
		if err := rows.Scan(&i.ID, &i.AccountID, &i.ProfileID, &i.MuscleGroup, &i.PainLevel, &i.IsActive, &i.CreatedAt); err != nil {
			return nil, err
		}
		injuries = append(injuries, i)
	}
	return injuries, rows.Err()
}

// ResolveInjury returns pgx.ErrNoRows when the injury does not belong to accountID.
func (db *Postgres) ResolveInjury(ctx context.Context, accountID, injuryID string) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE injuries
		SET is_active = FALSE
		WHERE id = $1 AND account_id = $2
	`, injuryID, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package db

import (
	"context"

	"github.com/athlia/backend/internal/model"
)

// UpsertProfile inserts or replaces the profile of p.AccountID. p.ID is only
// used on insert; the stored id is written back into p.
func (db *Postgres) UpsertProfile(ctx context.Context, p *model.UserProfile) (bool, error) {
	query := `
		INSERT INTO user_profiles (
			id, account_id, gender, birthdate, height_cm, weight_kg, training_experience,
			sport, main_goal, week_availability, equipment, health, sleep, stress, load, recovery
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (account_id) DO UPDATE SET
			gender = EXCLUDED.gender,
			birthdate = EXCLUDED.birthdate,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			training_experience = EXCLUDED.training_experience,
			sport = EXCLUDED.sport,
			main_goal = EXCLUDED.main_goal,
			week_availability = EXCLUDED.week_availability,
			equipment = EXCLUDED.equipment,
			health = EXCLUDED.health,
			sleep = EXCLUDED.sleep,
			stress = EXCLUDED.stress,
			load = EXCLUDED.load,
			recovery = EXCLUDED.recovery
		RETURNING id, (xmax = 0) AS inserted
	`
	var created bool
	err := db.Pool.QueryRow(ctx, query,
		p.ID, p.AccountID, p.Gender, p.Birthdate, p.HeightCM, p.WeightKG, p.TrainingExperience,
		p.Sport, p.MainGoal, p.WeekAvailability, p.Equipment, p.Health, p.Sleep, p.Stress, p.Load, p.Recovery,
	).Scan(&p.ID, &created)
	if err != nil {
		return false, err
	}
	return created, nil
}

// ProfileIDForAccount returns nil when the account has no profile yet.
func (db *Postgres) ProfileIDForAccount(ctx context.Context, accountID string) (*string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `SELECT id FROM user_profiles WHERE account_id = $1`, accountID).Scan(&id)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &id, nil
}

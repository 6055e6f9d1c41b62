package db

import (
	"context"
	"time"

	"github.com/athlia/backend/internal/model"
)

const accountColumns = `id, username, mail, password_hash, avatar, statut_account, created_at, last_connection`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	var a model.Account
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Mail,
		&a.PasswordHash,
		&a.Avatar,
		&a.StatutAccount,
		&a.CreatedAt,
		&a.LastConnection,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *Postgres) CreateAccount(ctx context.Context, a *model.Account) error {
	query := `
		INSERT INTO accounts (id, username, mail, password_hash, avatar, statut_account, created_at, last_connection)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := db.Pool.Exec(ctx, query,
		a.ID, a.Username, a.Mail, a.PasswordHash, a.Avatar, a.StatutAccount, a.CreatedAt, a.LastConnection)
	return err
}

func (db *Postgres) GetAccountByMail(ctx context.Context, mail string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE mail = $1`
	return scanAccount(db.Pool.QueryRow(ctx, query, mail))
}

func (db *Postgres) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(db.Pool.QueryRow(ctx, query, id))
}

func (db *Postgres) TouchLastConnection(ctx context.Context, id string, at time.Time) (*model.Account, error) {
	query := `
		UPDATE accounts
		SET last_connection = $2
		WHERE id = $1
		RETURNING ` + accountColumns
	return scanAccount(db.Pool.QueryRow(ctx, query, id, at))
}

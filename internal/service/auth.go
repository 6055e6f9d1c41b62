package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/athlia/backend/internal/db"
	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/security"
	"github.com/google/uuid"
)

const accountStatusActive = "active"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrNotFound      = errors.New("not found")
	ErrMisconfigured = errors.New("service config invalid")
)

type AccountRepo interface {
	CreateAccount(ctx context.Context, a *model.Account) error
	GetAccountByMail(ctx context.Context, mail string) (*model.Account, error)
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)
	TouchLastConnection(ctx context.Context, id string, at time.Time) (*model.Account, error)
}

// ExternalIdentity is a user vouched for by a single sign-on provider.
type ExternalIdentity struct {
	Mail string
	Name string
}

type AuthService struct {
	repo   AccountRepo
	codec  *security.TokenCodec
	hasher *security.PasswordHasher
	now    func() time.Time
}

func NewAuthService(repo AccountRepo, codec *security.TokenCodec, hasher *security.PasswordHasher) (*AuthService, error) {
	if codec == nil || hasher == nil {
		return nil, fmt.Errorf("%w: token codec and password hasher are required", ErrMisconfigured)
	}
	return &AuthService{
		repo:   repo,
		codec:  codec,
		hasher: hasher,
		now:    time.Now,
	}, nil
}

// Register creates an account for a new mail. For a known mail with the
// right password it behaves like Login.
func (s *AuthService) Register(ctx context.Context, username, mail, password string) (*model.AuthResponse, error) {
	username = strings.TrimSpace(username)
	mail = normalizeMail(mail)
	if username == "" || mail == "" || password == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.GetAccountByMail(ctx, mail)
	switch {
	case err == nil:
		if !s.hasher.Verify(password, existing.PasswordHash) {
			return nil, ErrConflict
		}
		return s.signIn(ctx, existing.ID)
	case !db.IsNoRows(err):
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account, err := s.createAccount(ctx, username, mail, hash)
	if err != nil {
		return nil, err
	}
	return s.authResponse(account), nil
}

func (s *AuthService) Login(ctx context.Context, mail, password string) (*model.AuthResponse, error) {
	mail = normalizeMail(mail)
	if mail == "" || password == "" {
		return nil, ErrUnauthorized
	}

	account, err := s.repo.GetAccountByMail(ctx, mail)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, ErrUnauthorized
	}

	return s.signIn(ctx, account.ID)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	payload, err := s.codec.Verify(strings.TrimSpace(refreshToken))
	if err != nil || payload.Kind != security.KindRefresh {
		return nil, ErrUnauthorized
	}

	account, err := s.repo.GetAccountByID(ctx, payload.Subject)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	pair := s.codec.IssuePair(account.ID)
	return &model.TokenResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// Authenticate resolves an access token to its account id.
func (s *AuthService) Authenticate(token string) (string, error) {
	payload, err := s.codec.Verify(token)
	if err != nil || payload.Kind != security.KindAccess {
		return "", ErrUnauthorized
	}
	return payload.Subject, nil
}

func (s *AuthService) Me(ctx context.Context, accountID string) (*model.AccountResponse, error) {
	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	resp := model.NewAccountResponse(account)
	return &resp, nil
}

// LoginExternal signs in the account behind a verified external identity,
// creating it on first sight. Such accounts get an unguessable password.
func (s *AuthService) LoginExternal(ctx context.Context, ident ExternalIdentity) (*model.AuthResponse, error) {
	mail := normalizeMail(ident.Mail)
	if mail == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.GetAccountByMail(ctx, mail)
	if err == nil {
		return s.signIn(ctx, existing.ID)
	}
	if !db.IsNoRows(err) {
		return nil, err
	}

	secret, err := randomSecret()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(secret)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(ident.Name)
	if username == "" {
		username, _, _ = strings.Cut(mail, "@")
	}

	account, err := s.createAccount(ctx, username, mail, hash)
	if err != nil {
		return nil, err
	}
	return s.authResponse(account), nil
}

func (s *AuthService) createAccount(ctx context.Context, username, mail, passwordHash string) (*model.Account, error) {
	now := s.now().UTC()
	status := accountStatusActive
	account := &model.Account{
		ID:             uuid.NewString(),
		Username:       username,
		Mail:           mail,
		PasswordHash:   passwordHash,
		StatutAccount:  &status,
		CreatedAt:      now,
		LastConnection: &now,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return account, nil
}

func (s *AuthService) signIn(ctx context.Context, accountID string) (*model.AuthResponse, error) {
	account, err := s.repo.TouchLastConnection(ctx, accountID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return s.authResponse(account), nil
}

func (s *AuthService) authResponse(account *model.Account) *model.AuthResponse {
	pair := s.codec.IssuePair(account.ID)
	return &model.AuthResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Account:      model.NewAccountResponse(account),
	}
}

func normalizeMail(mail string) string {
	return strings.ToLower(strings.TrimSpace(mail))
}

func randomSecret() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// ensureOwner rejects a client-supplied account id that is not the caller's.
// An empty claim means the caller.
func ensureOwner(callerID, claimed string) error {
	claimed = strings.TrimSpace(claimed)
	if claimed != "" && claimed != callerID {
		return ErrForbidden
	}
	return nil
}

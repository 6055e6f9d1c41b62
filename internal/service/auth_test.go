package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/security"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fakeAccountRepo struct {
	byID map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: map[string]*model.Account{}}
}

func (f *fakeAccountRepo) CreateAccount(ctx context.Context, a *model.Account) error {
	for _, existing := range f.byID {
		if existing.Mail == a.Mail {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	stored := *a
	f.byID[a.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) GetAccountByMail(ctx context.Context, mail string) (*model.Account, error) {
	for _, a := range f.byID {
		if a.Mail == mail {
			found := *a
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAccountRepo) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *a
	return &found, nil
}

func (f *fakeAccountRepo) TouchLastConnection(ctx context.Context, id string, at time.Time) (*model.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	a.LastConnection = &at
	found := *a
	return &found, nil
}

func newTestAuthService(t *testing.T, repo AccountRepo) (*AuthService, *security.TokenCodec) {
	t.Helper()
	codec, err := security.NewTokenCodec(security.TokenConfig{
		Secret:     "service-test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}, security.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	hasher, err := security.NewPasswordHasher(security.ScryptParams{N: 1 << 10, R: 8, P: 1, KeyLen: 64, SaltLen: 16})
	require.NoError(t, err)

	svc, err := NewAuthService(repo, codec, hasher)
	require.NoError(t, err)
	svc.now = func() time.Time { return testNow }
	return svc, codec
}

func TestNewAuthServiceRequiresCollaborators(t *testing.T) {
	_, err := NewAuthService(newFakeAccountRepo(), nil, nil)
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestRegisterCreatesAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc, codec := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), " Lea ", "  Lea@Example.COM ", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "Lea", resp.Account.Username)
	assert.Equal(t, "lea@example.com", resp.Account.Mail)
	require.NotNil(t, resp.Account.StatutAccount)
	assert.Equal(t, "active", *resp.Account.StatutAccount)
	require.NotNil(t, resp.Account.LastConnection)
	assert.Equal(t, "2026-03-14T09:30:00Z", *resp.Account.LastConnection)

	stored := repo.byID[resp.Account.ID]
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "scrypt$"))
	assert.NotContains(t, stored.PasswordHash, "s3cret-pass")

	access, err := codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, security.KindAccess, access.Kind)
	assert.Equal(t, resp.Account.ID, access.Subject)

	refresh, err := codec.Verify(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, security.KindRefresh, refresh.Kind)
}

func TestRegisterExistingMail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	first, err := svc.Register(ctx, "lea", "lea@example.com", "s3cret-pass")
	require.NoError(t, err)

	again, err := svc.Register(ctx, "someone", "LEA@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, first.Account.ID, again.Account.ID)
	assert.Equal(t, "lea", again.Account.Username)
	assert.Len(t, repo.byID, 1)

	_, err = svc.Register(ctx, "lea", "lea@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeAccountRepo())

	_, err := svc.Register(context.Background(), "  ", "lea@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), "lea", "   ", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc, codec := newTestAuthService(t, repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "lea", "lea@example.com", "s3cret-pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		mail     string
		password string
		wantErr  error
	}{
		{name: "valid", mail: "Lea@Example.com", password: "s3cret-pass"},
		{name: "wrong password", mail: "lea@example.com", password: "nope-nope", wantErr: ErrUnauthorized},
		{name: "unknown mail", mail: "max@example.com", password: "s3cret-pass", wantErr: ErrUnauthorized},
		{name: "empty password", mail: "lea@example.com", password: "", wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, tt.mail, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.Account.ID, resp.Account.ID)
			payload, err := codec.Verify(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, registered.Account.ID, payload.Subject)
		})
	}
}

func TestRefresh(t *testing.T) {
	repo := newFakeAccountRepo()
	svc, codec := newTestAuthService(t, repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "lea", "lea@example.com", "s3cret-pass")
	require.NoError(t, err)

	pair, err := svc.Refresh(ctx, registered.RefreshToken)
	require.NoError(t, err)
	access, err := codec.Verify(pair.Token)
	require.NoError(t, err)
	assert.Equal(t, security.KindAccess, access.Kind)
	assert.Equal(t, registered.Account.ID, access.Subject)

	_, err = svc.Refresh(ctx, registered.Token)
	assert.ErrorIs(t, err, ErrUnauthorized, "access token must not refresh")

	_, err = svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	orphan := codec.Issue("deleted-account", security.KindRefresh, time.Hour)
	_, err = svc.Refresh(ctx, orphan)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate(t *testing.T) {
	svc, codec := newTestAuthService(t, newFakeAccountRepo())

	subject, err := svc.Authenticate(codec.Issue("acc-1", security.KindAccess, time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "acc-1", subject)

	_, err = svc.Authenticate(codec.Issue("acc-1", security.KindRefresh, time.Minute))
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate("")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe(t *testing.T) {
	svc, _ := newTestAuthService(t, newFakeAccountRepo())
	ctx := context.Background()

	registered, err := svc.Register(ctx, "lea", "lea@example.com", "s3cret-pass")
	require.NoError(t, err)

	me, err := svc.Me(ctx, registered.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, "lea@example.com", me.Mail)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginExternal(t *testing.T) {
	repo := newFakeAccountRepo()
	svc, _ := newTestAuthService(t, repo)
	ctx := context.Background()

	created, err := svc.LoginExternal(ctx, ExternalIdentity{Mail: "Max@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "max", created.Account.Username)
	assert.Equal(t, "max@example.com", created.Account.Mail)

	again, err := svc.LoginExternal(ctx, ExternalIdentity{Mail: "max@example.com", Name: "Max"})
	require.NoError(t, err)
	assert.Equal(t, created.Account.ID, again.Account.ID)
	assert.Len(t, repo.byID, 1)

	_, err = svc.LoginExternal(ctx, ExternalIdentity{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

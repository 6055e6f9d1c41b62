package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "PORT", "DEBUG", "TOKEN_SECRET", "ACCESS_TTL_SECONDS", "REFRESH_TTL_SECONDS",
		"DATABASE_URL", "PGHOST", "PGPORT", "PGSSLMODE", "CORS_ALLOWED_ORIGINS", "OIDC_ISSUER_URL", "AI_API_KEY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "Athlia API", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, DefaultTokenSecret, cfg.Auth.TokenSecret)
	assert.Equal(t, 3600, cfg.Auth.AccessTTLSeconds)
	assert.Equal(t, 2592000, cfg.Auth.RefreshTTLSeconds)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.OIDC.Enabled())
	assert.False(t, cfg.Coach.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "prod-secret")
	t.Setenv("ACCESS_TTL_SECONDS", "900")
	t.Setenv("REFRESH_TTL_SECONDS", "86400")
	t.Setenv("DEBUG", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081, https://app.athlia.fr ,")
	t.Setenv("OIDC_ISSUER_URL", "https://accounts.example.com")
	t.Setenv("AI_API_KEY", "key")

	cfg := Load()

	assert.Equal(t, "prod-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 900, cfg.Auth.AccessTTLSeconds)
	assert.Equal(t, 86400, cfg.Auth.RefreshTTLSeconds)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, []string{"http://localhost:8081", "https://app.athlia.fr"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.OIDC.Enabled())
	assert.True(t, cfg.Coach.Enabled())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ACCESS_TTL_SECONDS", "one hour")
	t.Setenv("DEBUG", "maybe")

	cfg := Load()

	assert.Equal(t, 3600, cfg.Auth.AccessTTLSeconds)
	assert.False(t, cfg.App.Debug)
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const DefaultTokenSecret = "athlia-dev-secret"

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	CORS     CORSConfig
	OIDC     OIDCConfig
	Coach    CoachConfig
}

type AppConfig struct {
	Name  string
	Port  string
	Debug bool
}

type AuthConfig struct {
	TokenSecret       string
	AccessTTLSeconds  int
	RefreshTTLSeconds int
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// OIDCConfig enables single sign-on when IssuerURL is set.
type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

func (c OIDCConfig) Enabled() bool {
	return strings.TrimSpace(c.IssuerURL) != ""
}

// CoachConfig enables generated coach notes when APIKey is set.
type CoachConfig struct {
	APIKey string
	Model  string
}

func (c CoachConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func Load() Config {
	return Config{
		App: AppConfig{
			Name:  getenv("APP_NAME", "Athlia API"),
			Port:  getenv("PORT", "8080"),
			Debug: getenvBool("DEBUG", false),
		},
		Auth: AuthConfig{
			TokenSecret:       getenv("TOKEN_SECRET", DefaultTokenSecret),
			AccessTTLSeconds:  getenvInt("ACCESS_TTL_SECONDS", 3600),
			RefreshTTLSeconds: getenvInt("REFRESH_TTL_SECONDS", 2592000),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
			AllowCredentials: getenvBool("CORS_ALLOW_CREDENTIALS", true),
		},
		OIDC: OIDCConfig{
			IssuerURL:    os.Getenv("OIDC_ISSUER_URL"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
		Coach: CoachConfig{
			APIKey: os.Getenv("AI_API_KEY"),
			Model:  getenv("AI_MODEL", "gemini-2.0-flash"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return val
}

func getenvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return val
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

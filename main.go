package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/athlia/backend/internal/client"
	"github.com/athlia/backend/internal/config"
	"github.com/athlia/backend/internal/db"
	"github.com/athlia/backend/internal/handler"
	"github.com/athlia/backend/internal/security"
	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Athlia API
// @version 1.0
// @description Fitness coaching backend: accounts, programs, readiness check-ins and injuries.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by an access token.
func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg.App.Debug)

	if cfg.Auth.TokenSecret == config.DefaultTokenSecret && !cfg.App.Debug {
		slog.Warn("TOKEN_SECRET is the development default; set a real secret")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		fatal("postgres connection failed", err)
	}
	defer pool.Close()

	store := db.NewPostgres(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		fatal("schema bootstrap failed", err)
	}

	codec, err := security.NewTokenCodec(security.TokenConfig{
		Secret:     cfg.Auth.TokenSecret,
		AccessTTL:  time.Duration(cfg.Auth.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.Auth.RefreshTTLSeconds) * time.Second,
	})
	if err != nil {
		fatal("token codec config invalid", err)
	}

	hasher, err := security.NewPasswordHasher(security.DefaultScryptParams)
	if err != nil {
		fatal("password hasher config invalid", err)
	}

	authService, err := service.NewAuthService(store, codec, hasher)
	if err != nil {
		fatal("auth service init failed", err)
	}

	var coach service.CoachClient
	if cfg.Coach.Enabled() {
		coachClient, err := client.NewCoachClient(context.Background(), cfg.Coach)
		if err != nil {
			slog.Warn("coach notes disabled", "error", err)
		} else {
			coach = coachClient
			slog.Info("coach notes enabled", "model", cfg.Coach.Model)
		}
	}

	var provider handler.IdentityProvider
	if cfg.OIDC.Enabled() {
		oidcClient, err := client.NewOIDCClient(context.Background(), cfg.OIDC)
		if err != nil {
			slog.Warn("single sign-on disabled", "error", err)
		} else {
			provider = oidcClient
			slog.Info("single sign-on enabled", "issuer", cfg.OIDC.IssuerURL)
		}
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(cfg, authService, handler.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		OIDC:      handler.NewOIDCHandler(provider, authService),
		Profile:   handler.NewProfileHandler(service.NewProfileService(store)),
		Workout:   handler.NewWorkoutHandler(service.NewWorkoutService(store)),
		Readiness: handler.NewReadinessHandler(service.NewReadinessService(store, coach)),
		Injury:    handler.NewInjuryHandler(service.NewInjuryService(store)),
		Analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(store)),
	})

	slog.Info("listening", "port", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		fatal("server stopped", err)
	}
}

func setupLogger(debug bool) {
	var h slog.Handler
	if debug {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

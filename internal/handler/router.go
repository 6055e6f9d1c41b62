package handler

import (
	"github.com/athlia/backend/internal/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth      *AuthHandler
	OIDC      *OIDCHandler
	Profile   *ProfileHandler
	Workout   *WorkoutHandler
	Readiness *ReadinessHandler
	Injury    *InjuryHandler
	Analytics *AnalyticsHandler
}

func NewRouter(cfg config.Config, auth Authenticator, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(), RequestLogger(), CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials))

	router.GET("/", Root(cfg.App.Name))
	router.GET("/health", Health)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPI)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.GET("/oidc/login", h.OIDC.Login)
	authGroup.GET("/oidc/callback", h.OIDC.Callback)

	protected := router.Group("/")
	protected.Use(AuthMiddleware(auth))
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/users", h.Profile.Upsert)

	workouts := protected.Group("/workouts")
	workouts.POST("/programs/generate", h.Workout.GenerateProgram)
	workouts.GET("/sessions/today", h.Workout.TodaySession)
	workouts.GET("/sessions", h.Workout.ListSessions)
	workouts.POST("/sessions/:id/complete", h.Workout.CompleteSession)
	workouts.GET("/exercises", h.Workout.ListExercises)

	protected.POST("/readiness", h.Readiness.Submit)
	protected.GET("/readiness/latest", h.Readiness.Latest)

	protected.POST("/injuries", h.Injury.Create)
	protected.GET("/injuries", h.Injury.List)
	protected.PATCH("/injuries/:id/resolve", h.Injury.Resolve)

	protected.GET("/progress/:account_id", h.Analytics.Progress)
	protected.GET("/analytics/:account_id", h.Analytics.Weekly)

	return router
}

package handler

import (
	"net/http"

	"github.com/athlia/backend/docs"
	"github.com/athlia/backend/internal/model"
	"github.com/gin-gonic/gin"
)

var publicEndpoints = []string{
	"/auth/register",
	"/auth/login",
	"/auth/refresh",
	"/auth/me",
	"/users",
	"/workouts/programs/generate",
	"/workouts/sessions/today",
	"/workouts/sessions",
	"/workouts/exercises",
	"/readiness",
	"/readiness/latest",
	"/injuries",
	"/progress/{account_id}",
	"/analytics/{account_id}",
	"/health",
	"/openapi.json",
}

// Root godoc
// @Summary Service index
// @Tags health
// @Produce json
// @Success 200 {object} model.RootResponse
// @Router / [get]
func Root(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, model.RootResponse{
			Name:      name,
			OK:        true,
			Docs:      "/openapi.json",
			Endpoints: publicEndpoints,
		})
	}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{OK: true})
}

// Ping godoc
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// OpenAPI godoc
// @Summary OpenAPI document
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Router /openapi.json [get]
func OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}

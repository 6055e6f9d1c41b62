package handler

import (
	"net/http"

	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	svc *service.WorkoutService
}

func NewWorkoutHandler(svc *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{svc: svc}
}

// GenerateProgram godoc
// @Summary Generate a weekly program
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.GenerateProgramRequest true "Goal and weekly availability"
// @Success 200 {object} model.ProgramResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /workouts/programs/generate [post]
func (h *WorkoutHandler) GenerateProgram(c *gin.Context) {
	var req model.GenerateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	resp, err := h.svc.GenerateProgram(c.Request.Context(), GetAccountID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TodaySession godoc
// @Summary Today's session
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param account_id query string false "Must match the caller when set"
// @Success 200 {object} model.SessionResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /workouts/sessions/today [get]
func (h *WorkoutHandler) TodaySession(c *gin.Context) {
	resp, err := h.svc.TodaySession(c.Request.Context(), GetAccountID(c), c.Query("account_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteSession godoc
// @Summary Mark a session done
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body model.SessionFeedbackRequest true "Perceived effort"
// @Success 200 {object} model.SessionCompleteResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /workouts/sessions/{id}/complete [post]
func (h *WorkoutHandler) CompleteSession(c *gin.Context) {
	var req model.SessionFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	resp, err := h.svc.CompleteSession(c.Request.Context(), GetAccountID(c), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSessions godoc
// @Summary List sessions, newest first
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param account_id query string false "Must match the caller when set"
// @Success 200 {array} model.SessionResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /workouts/sessions [get]
func (h *WorkoutHandler) ListSessions(c *gin.Context) {
	resp, err := h.svc.ListSessions(c.Request.Context(), GetAccountID(c), c.Query("account_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListExercises godoc
// @Summary Exercise catalog
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Exercise
// @Router /workouts/exercises [get]
func (h *WorkoutHandler) ListExercises(c *gin.Context) {
	resp, err := h.svc.ListExercises(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

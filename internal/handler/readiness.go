package handler

import (
	"net/http"

	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ReadinessHandler struct {
	svc *service.ReadinessService
}

func NewReadinessHandler(svc *service.ReadinessService) *ReadinessHandler {
	return &ReadinessHandler{svc: svc}
}

// Submit godoc
// @Summary Submit today's check-in
// @Description Scores the check-in and rescales the intensity of today's sessions.
// @Tags readiness
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ReadinessRequest true "Check-in"
// @Success 200 {object} model.ReadinessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /readiness [post]
func (h *ReadinessHandler) Submit(c *gin.Context) {
	var req model.ReadinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), GetAccountID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Latest godoc
// @Summary Most recent check-in
// @Tags readiness
// @Produce json
// @Security BearerAuth
// @Param account_id query string false "Must match the caller when set"
// @Success 200 {object} model.LatestReadinessResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /readiness/latest [get]
func (h *ReadinessHandler) Latest(c *gin.Context) {
	resp, err := h.svc.Latest(c.Request.Context(), GetAccountID(c), c.Query("account_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"net/http"

	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type InjuryHandler struct {
	svc *service.InjuryService
}

func NewInjuryHandler(svc *service.InjuryService) *InjuryHandler {
	return &InjuryHandler{svc: svc}
}

// Create godoc
// @Summary Report an injury
// @Tags injuries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.InjuryRequest true "Injury"
// @Success 200 {object} model.InjuryResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /injuries [post]
func (h *InjuryHandler) Create(c *gin.Context) {
	var req model.InjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), GetAccountID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List injuries, newest first
// @Tags injuries
// @Produce json
// @Security BearerAuth
// @Param account_id query string false "Must match the caller when set"
// @Success 200 {array} model.InjuryResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /injuries [get]
func (h *InjuryHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), GetAccountID(c), c.Query("account_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resolve godoc
// @Summary Mark an injury resolved
// @Tags injuries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Injury ID"
// @Success 200 {object} model.InjuryResolveResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /injuries/{id}/resolve [patch]
func (h *InjuryHandler) Resolve(c *gin.Context) {
	resp, err := h.svc.Resolve(c.Request.Context(), GetAccountID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

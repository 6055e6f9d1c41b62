package handler

import (
	"net/http"

	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Progress godoc
// @Summary Long-run progress
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param account_id path string true "Account ID"
// @Success 200 {object} model.ProgressResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /progress/{account_id} [get]
func (h *AnalyticsHandler) Progress(c *gin.Context) {
	resp, err := h.svc.Progress(c.Request.Context(), GetAccountID(c), c.Param("account_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Weekly godoc
// @Summary Last seven days
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param account_id path string true "Account ID"
// @Success 200 {object} model.AnalyticsResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /analytics/{account_id} [get]
func (h *AnalyticsHandler) Weekly(c *gin.Context) {
	resp, err := h.svc.Weekly(c.Request.Context(), GetAccountID(c), c.Param("account_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

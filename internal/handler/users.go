package handler

import (
	"net/http"

	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Upsert godoc
// @Summary Create or update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UserProfileRequest true "Profile"
// @Success 200 {object} model.UserProfileResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /users [post]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req model.UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	resp, err := h.svc.Upsert(c.Request.Context(), GetAccountID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/athlia/backend/internal/client"
	"github.com/athlia/backend/internal/model"
	"github.com/athlia/backend/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	oidcStateCookie = "athlia_oidc_state"
	oidcStateMaxAge = 600
)

// IdentityProvider is the single sign-on flow behind the /auth/oidc routes.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*client.Identity, error)
}

type OIDCHandler struct {
	provider IdentityProvider
	svc      *service.AuthService
}

// NewOIDCHandler accepts a nil provider; the routes then answer 404.
func NewOIDCHandler(provider IdentityProvider, svc *service.AuthService) *OIDCHandler {
	return &OIDCHandler{provider: provider, svc: svc}
}

// Login godoc
// @Summary Start single sign-on
// @Tags auth
// @Success 302
// @Failure 404 {object} model.ErrorResponse
// @Router /auth/oidc/login [get]
func (h *OIDCHandler) Login(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "sso disabled"})
		return
	}

	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		writeError(c, err)
		return
	}
	state := base64.RawURLEncoding.EncodeToString(raw)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oidcStateCookie, state, oidcStateMaxAge, "/auth/oidc", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback godoc
// @Summary Finish single sign-on
// @Tags auth
// @Produce json
// @Param state query string true "Opaque state"
// @Param code query string true "Authorization code"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /auth/oidc/callback [get]
func (h *OIDCHandler) Callback(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "sso disabled"})
		return
	}

	expected, err := c.Cookie(oidcStateCookie)
	state := c.Query("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.SetCookie(oidcStateCookie, "", -1, "/auth/oidc", "", c.Request.TLS != nil, true)

	ident, err := h.provider.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		slog.Warn("sso sign-in rejected", "error", err)
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
		return
	}

	resp, err := h.svc.LoginExternal(c.Request.Context(), service.ExternalIdentity{Mail: ident.Mail, Name: ident.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/athlia/backend/internal/config"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

var ErrIdentityRejected = errors.New("identity rejected")

// Identity is what the provider vouches for after a successful sign-in.
type Identity struct {
	Subject string
	Mail    string
	Name    string
}

type OIDCClient struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewOIDCClient discovers the provider configuration from cfg.IssuerURL.
func NewOIDCClient(ctx context.Context, cfg config.OIDCConfig) (*OIDCClient, error) {
	if !cfg.Enabled() || cfg.ClientID == "" {
		return nil, fmt.Errorf("missing OIDC_ISSUER_URL or OIDC_CLIENT_ID")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("discover oidc provider: %w", err)
	}

	return &OIDCClient{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

func (c *OIDCClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for a verified identity. Accounts
// are keyed by mail, so an unverified mail is rejected.
func (c *OIDCClient) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %v", ErrIdentityRejected, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: no id_token in response", ErrIdentityRejected)
	}

	idToken, err := c.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityRejected, err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified *bool  `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityRejected, err)
	}
	if claims.Email == "" || (claims.EmailVerified != nil && !*claims.EmailVerified) {
		return nil, fmt.Errorf("%w: mail missing or unverified", ErrIdentityRejected)
	}

	return &Identity{Subject: idToken.Subject, Mail: claims.Email, Name: claims.Name}, nil
}

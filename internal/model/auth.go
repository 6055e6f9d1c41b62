package model

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Mail     string `json:"mail" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

type LoginRequest struct {
	Mail     string `json:"mail" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type Account struct {
	ID             string
	Username       string
	Mail           string
	PasswordHash   string
	Avatar         *string
	StatutAccount  *string
	CreatedAt      time.Time
	LastConnection *time.Time
}

type AccountResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Mail           string  `json:"mail"`
	Avatar         *string `json:"avatar"`
	StatutAccount  *string `json:"statut_account"`
	LastConnection *string `json:"last_connection"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	Account      AccountResponse `json:"account"`
}

func NewAccountResponse(a *Account) AccountResponse {
	resp := AccountResponse{
		ID:            a.ID,
		Username:      a.Username,
		Mail:          a.Mail,
		Avatar:        a.Avatar,
		StatutAccount: a.StatutAccount,
	}
	if a.LastConnection != nil {
		formatted := a.LastConnection.UTC().Format(time.RFC3339)
		resp.LastConnection = &formatted
	}
	return resp
}

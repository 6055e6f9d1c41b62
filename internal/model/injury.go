package model

import "time"

type Injury struct {
	ID          string
	AccountID   string
	ProfileID   *string
	MuscleGroup string
	PainLevel   int
	IsActive    bool
	CreatedAt   time.Time
}

type InjuryRequest struct {
	AccountID   string `json:"account_id"`
	MuscleGroup string `json:"muscle_group" binding:"required,max=80"`
	PainLevel   *int   `json:"pain_level" binding:"required,min=0,max=10"`
}

type InjuryResponse struct {
	ID          string `json:"id"`
	MuscleGroup string `json:"muscle_group"`
	PainLevel   int    `json:"pain_level"`
	IsActive    bool   `json:"is_active"`
}

type InjuryResolveResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

func NewInjuryResponse(i *Injury) InjuryResponse {
	return InjuryResponse{
		ID:          i.ID,
		MuscleGroup: i.MuscleGroup,
		PainLevel:   i.PainLevel,
		IsActive:    i.IsActive,
	}
}

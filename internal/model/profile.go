package model

import "time"

type UserProfile struct {
	ID                 string
	AccountID          string
	Gender             *string
	Birthdate          *time.Time
	HeightCM           *int
	WeightKG           *float64
	TrainingExperience *string
	Sport              *string
	MainGoal           *string
	WeekAvailability   *int
	Equipment          *string
	Health             *string
	Sleep              *string
	Stress             *string
	Load               *string
	Recovery           *string
}

type UserProfileRequest struct {
	IDAccount          string   `json:"id_account" binding:"required"`
	Gender             *string  `json:"gender"`
	Birthdate          *string  `json:"birthdate"`
	HeightCM           *int     `json:"height_cm" binding:"omitempty,min=50,max=260"`
	WeightKG           *float64 `json:"weight_kg" binding:"omitempty,gt=0,max=400"`
	TrainingExperience *string  `json:"training_experience"`
	Sport              *string  `json:"sport"`
	MainGoal           *string  `json:"main_goal"`
	WeekAvailability   *int     `json:"week_availability" binding:"omitempty,min=1,max=7"`
	Equipment          *string  `json:"equipment"`
	Health             *string  `json:"health"`
	Sleep              *string  `json:"sleep"`
	Stress             *string  `json:"stress"`
	Load               *string  `json:"load"`
	Recovery           *string  `json:"recovery"`
}

type UserProfileResponse struct {
	ID                 string   `json:"id"`
	IDAccount          string   `json:"id_account"`
	Gender             *string  `json:"gender"`
	Birthdate          *string  `json:"birthdate"`
	HeightCM           *int     `json:"height_cm"`
	WeightKG           *float64 `json:"weight_kg"`
	TrainingExperience *string  `json:"training_experience"`
	Sport              *string  `json:"sport"`
	MainGoal           *string  `json:"main_goal"`
	WeekAvailability   *int     `json:"week_availability"`
	Equipment          *string  `json:"equipment"`
	Health             *string  `json:"health"`
	Sleep              *string  `json:"sleep"`
	Stress             *string  `json:"stress"`
	Load               *string  `json:"load"`
	Recovery           *string  `json:"recovery"`
	Created            bool     `json:"created"`
}

func NewUserProfileResponse(p *UserProfile, created bool) UserProfileResponse {
	resp := UserProfileResponse{
		ID:                 p.ID,
		IDAccount:          p.AccountID,
		Gender:             p.Gender,
		HeightCM:           p.HeightCM,
		WeightKG:           p.WeightKG,
		TrainingExperience: p.TrainingExperience,
		Sport:              p.Sport,
		MainGoal:           p.MainGoal,
		WeekAvailability:   p.WeekAvailability,
		Equipment:          p.Equipment,
		Health:             p.Health,
		Sleep:              p.Sleep,
		Stress:             p.Stress,
		Load:               p.Load,
		Recovery:           p.Recovery,
		Created:            created,
	}
	if p.Birthdate != nil {
		formatted := p.Birthdate.Format(DateLayout)
		resp.Birthdate = &formatted
	}
	return resp
}

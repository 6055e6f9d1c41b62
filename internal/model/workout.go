package model

import "time"

// DateLayout is the calendar-date format used in requests and responses.
const DateLayout = "2006-01-02"

const (
	SessionStatusPlanned = "planned"
	SessionStatusDone    = "done"
)

type Exercise struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	MuscleGroups *string `json:"muscle_groups"`
	Equipment    *string `json:"equipment"`
	DurationMin  *int    `json:"duration_min"`
}

type WorkoutProgram struct {
	ID        string
	AccountID string
	Title     string
	Goal      string
	CreatedAt time.Time
	Active    bool
}

type WorkoutSession struct {
	ID                 string
	ProgramID          string
	AccountID          string
	Name               string
	SessionDate        time.Time
	PlannedDurationMin int
	PlannedIntensity   int
	AdjustedIntensity  int
	Status             string
	RPEReported        *int
	Notes              *string
}

type GenerateProgramRequest struct {
	AccountID        string `json:"account_id"`
	Goal             string `json:"goal" binding:"required,max=120"`
	WeekAvailability int    `json:"week_availability" binding:"required,min=1,max=7"`
}

type SessionFeedbackRequest struct {
	RPEReported int     `json:"rpe_reported" binding:"required,min=1,max=10"`
	Notes       *string `json:"notes"`
}

type SessionResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	SessionDate        string `json:"session_date"`
	PlannedDurationMin int    `json:"planned_duration_min"`
	PlannedIntensity   int    `json:"planned_intensity"`
	AdjustedIntensity  int    `json:"adjusted_intensity"`
	Status             string `json:"status"`
	RPEReported        *int   `json:"rpe_reported"`
}

type ProgramResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Goal     string            `json:"goal"`
	Sessions []SessionResponse `json:"sessions"`
}

type SessionCompleteResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	RPEReported *int    `json:"rpe_reported"`
	Notes       *string `json:"notes"`
}

func NewSessionResponse(s *WorkoutSession) SessionResponse {
	return SessionResponse{
		ID:                 s.ID,
		Name:               s.Name,
		SessionDate:        s.SessionDate.Format(DateLayout),
		PlannedDurationMin: s.PlannedDurationMin,
		PlannedIntensity:   s.PlannedIntensity,
		AdjustedIntensity:  s.AdjustedIntensity,
		Status:             s.Status,
		RPEReported:        s.RPEReported,
	}
}

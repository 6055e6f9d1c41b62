package model

import "time"

type ReadinessLog struct {
	ID             string
	AccountID      string
	ProfileID      *string
	LogDate        time.Time
	SleepHours     float64
	Fatigue        int
	Stress         int
	Soreness       int
	PainLevel      int
	ReadinessScore int
	Advice         string
}

type ReadinessRequest struct {
	AccountID  string   `json:"account_id"`
	SleepHours *float64 `json:"sleep_hours" binding:"required,min=0,max=12"`
	Fatigue    *int     `json:"fatigue" binding:"required,min=0,max=10"`
	Stress     *int     `json:"stress" binding:"required,min=0,max=10"`
	Soreness   *int     `json:"soreness" binding:"required,min=0,max=10"`
	PainLevel  *int     `json:"pain_level" binding:"required,min=0,max=10"`
}

// Complete reports whether every check-in value is present. Zero is a
// valid answer, so absence is tracked with pointers.
func (r ReadinessRequest) Complete() bool {
	return r.SleepHours != nil && r.Fatigue != nil && r.Stress != nil && r.Soreness != nil && r.PainLevel != nil
}

type ReadinessResponse struct {
	ReadinessScore int    `json:"readiness_score"`
	Advice         string `json:"ai_advice"`
	CoachNote      string `json:"coach_note,omitempty"`
}

type LatestReadinessResponse struct {
	LogDate        string  `json:"log_date"`
	SleepHours     float64 `json:"sleep_hours"`
	Fatigue        int     `json:"fatigue"`
	Stress         int     `json:"stress"`
	Soreness       int     `json:"soreness"`
	PainLevel      int     `json:"pain_level"`
	ReadinessScore int     `json:"readiness_score"`
	Advice         string  `json:"ai_advice"`
}

func NewLatestReadinessResponse(l *ReadinessLog) LatestReadinessResponse {
	return LatestReadinessResponse{
		LogDate:        l.LogDate.Format(DateLayout),
		SleepHours:     l.SleepHours,
		Fatigue:        l.Fatigue,
		Stress:         l.Stress,
		Soreness:       l.Soreness,
		PainLevel:      l.PainLevel,
		ReadinessScore: l.ReadinessScore,
		Advice:         l.Advice,
	}
}

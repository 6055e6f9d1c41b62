package model

type ProgressResponse struct {
	CompletedSessions int     `json:"completed_sessions"`
	CompletionRate    float64 `json:"completion_rate"`
	AverageRPE        float64 `json:"average_rpe"`
	ReadinessAverage  float64 `json:"readiness_average"`
}

type AnalyticsResponse struct {
	WeeklySessionsDone    int  `json:"weekly_sessions_done"`
	WeeklySessionsPlanned int  `json:"weekly_sessions_planned"`
	InjuryRiskFlag        bool `json:"injury_risk_flag"`
	NextSessionIntensity  *int `json:"next_session_intensity"`
}

// ProgressStats are the raw aggregates behind ProgressResponse.
type ProgressStats struct {
	TotalSessions     int
	CompletedSessions int
	AverageRPE        *float64
	ReadinessAverage  *float64
}

// WeeklyStats are the raw aggregates behind AnalyticsResponse.
type WeeklyStats struct {
	Planned              int
	Done                 int
	LatestReadiness      *ReadinessLog
	NextSessionIntensity *int
}

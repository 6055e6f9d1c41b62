// Package adaptation turns a daily readiness check-in into a score, an
// intensity adjustment for planned sessions, and a piece of advice.
//
// Every function is total: inputs outside the documented ranges still yield
// in-range outputs.
package adaptation

import "math"

const (
	MinScore = 0
	MaxScore = 100

	MinIntensity = 1
	MaxIntensity = 10

	// PainOverride is the pain level from which readiness is ignored.
	PainOverride = 7

	highReadiness     = 75
	moderateReadiness = 50
	lowReadiness      = 30

	fullSleepHours = 8.0
	strainWeight   = 8
	scoreBaseline  = 40
)

// Tier is the outcome band shared by intensity and advice selection.
type Tier int

const (
	TierPain Tier = iota
	TierHigh
	TierModerate
	TierLow
	TierOverreached
)

// Classify picks the tier for a check-in. Pain wins over any readiness score.
func Classify(readinessScore, painLevel int) Tier {
	switch {
	case painLevel >= PainOverride:
		return TierPain
	case readinessScore >= highReadiness:
		return TierHigh
	case readinessScore >= moderateReadiness:
		return TierModerate
	case readinessScore >= lowReadiness:
		return TierLow
	default:
		return TierOverreached
	}
}

// ComputeReadinessScore combines sleep with the four strain inputs (each
// nominally 0..10) into a score in [0, 100].
func ComputeReadinessScore(sleepHours float64, fatigue, stress, soreness, painLevel int) int {
	if math.IsNaN(sleepHours) || math.IsInf(sleepHours, 0) {
		sleepHours = 0
	}
	sleepScore := clampFloat(math.Round(sleepHours/fullSleepHours*100), MinScore, MaxScore)

	strain := (float64(fatigue) + float64(stress) + float64(soreness) + float64(painLevel)) * strainWeight
	score := clampFloat(sleepScore-strain+scoreBaseline, MinScore, MaxScore)
	return int(score)
}

// SuggestIntensity scales a planned intensity for the day.
func SuggestIntensity(baseIntensity, readinessScore, painLevel int) int {
	base := float64(baseIntensity)
	switch Classify(readinessScore, painLevel) {
	case TierPain:
		return max(MinIntensity, int(math.Floor(base*0.5)))
	case TierHigh:
		return min(MaxIntensity, int(math.Floor(base*1.1)))
	case TierModerate:
		return baseIntensity
	case TierLow:
		return max(MinIntensity, int(math.Floor(base*0.8)))
	default:
		return max(MinIntensity, int(math.Floor(base*0.6)))
	}
}

var advice = map[Tier]string{
	TierPain:        "Douleur elevee detectee: reduis fortement l'intensite et privilegie mobilite/recuperation.",
	TierHigh:        "Excellente forme du jour: tu peux maintenir ou augmenter legerement la charge.",
	TierModerate:    "Etat correct: suis la seance planifiee avec un echauffement soigne.",
	TierLow:         "Fatigue perceptible: reduis l'intensite et focalise la technique.",
	TierOverreached: "Risque de surmenage: seance legere conseillee, priorite a la recuperation.",
}

func BuildAdvice(readinessScore, painLevel int) string {
	return advice[Classify(readinessScore, painLevel)]
}

// InjuryRisk flags a check-in that warrants caution on the next session.
func InjuryRisk(readinessScore, painLevel int) bool {
	return painLevel >= PainOverride || readinessScore < lowReadiness
}

func clampFloat(v float64, lo, hi int) float64 {
	return math.Max(float64(lo), math.Min(float64(hi), v))
}

package client

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/athlia/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCoachPrompt(t *testing.T) {
	prompt := coachPrompt(model.ReadinessLog{
		SleepHours:     6.5,
		Fatigue:        4,
		Stress:         2,
		Soreness:       3,
		PainLevel:      1,
		ReadinessScore: 41,
		Advice:         "Fatigue perceptible: reduis l'intensite et focalise la technique.",
	})

	assert.Contains(t, prompt, "Sommeil: 6.5 h")
	assert.Contains(t, prompt, "Fatigue: 4/10")
	assert.Contains(t, prompt, "Score de forme: 41/100")
	assert.Contains(t, prompt, "Fatigue perceptible")
}

func TestPlainNote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Bonne seance !", want: "Bonne seance !"},
		{name: "bold removed", input: "Garde une **allure facile** aujourd'hui.", want: "Garde une allure facile aujourd'hui."},
		{name: "heading removed", input: "### Conseil\nHydrate-toi bien.", want: "Conseil Hydrate-toi bien."},
		{name: "whitespace collapsed", input: "  Repos\n\n   actif  ", want: "Repos actif"},
		{name: "empty", input: " \n ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plainNote(tt.input))
		})
	}
}

func TestPlainNoteCapsLength(t *testing.T) {
	note := plainNote(strings.Repeat("é", maxCoachNoteRunes*2))
	assert.Equal(t, maxCoachNoteRunes, utf8.RuneCountInString(note))
	assert.True(t, strings.HasSuffix(note, "…"))
}

package client

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/athlia/backend/internal/config"
	"github.com/athlia/backend/internal/model"
	"google.golang.org/genai"
)

const maxCoachNoteRunes = 400

// CoachClient asks a generative model for a short note on a readiness check-in.
type CoachClient struct {
	client *genai.Client
	model  string
}

func NewCoachClient(ctx context.Context, cfg config.CoachConfig) (*CoachClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &CoachClient{client: client, model: cfg.Model}, nil
}

func (c *CoachClient) CoachNote(ctx context.Context, checkIn model.ReadinessLog) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(coachPrompt(checkIn)), nil)
	if err != nil {
		return "", err
	}
	note := plainNote(res.Text())
	if note == "" {
		return "", fmt.Errorf("empty coach note")
	}
	return note, nil
}

func coachPrompt(checkIn model.ReadinessLog) string {
	var b strings.Builder
	b.WriteString("Tu es un coach sportif bienveillant. ")
	b.WriteString("Ecris une note de deux phrases maximum, en francais, sans markdown, pour l'athlete suivant.\n")
	fmt.Fprintf(&b, "Sommeil: %.1f h\n", checkIn.SleepHours)
	fmt.Fprintf(&b, "Fatigue: %d/10\n", checkIn.Fatigue)
	fmt.Fprintf(&b, "Stress: %d/10\n", checkIn.Stress)
	fmt.Fprintf(&b, "Courbatures: %d/10\n", checkIn.Soreness)
	fmt.Fprintf(&b, "Douleur: %d/10\n", checkIn.PainLevel)
	fmt.Fprintf(&b, "Score de forme: %d/100\n", checkIn.ReadinessScore)
	fmt.Fprintf(&b, "Conseil deja donne: %s\n", checkIn.Advice)
	b.WriteString("Ne contredis pas le conseil et ne pose aucun diagnostic medical.")
	return b.String()
}

// plainNote strips markdown emphasis and headings, joins lines, and caps the
// length.
func plainNote(raw string) string {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "__", "")
		if line != "" {
			parts = append(parts, line)
		}
	}
	note := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")

	if utf8.RuneCountInString(note) <= maxCoachNoteRunes {
		return note
	}
	runes := []rune(note)
	return strings.TrimSpace(string(runes[:maxCoachNoteRunes-1])) + "…"
}

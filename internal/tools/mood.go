package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

var moodVibes = map[string][]string{
	"refresh":    {"quiet", "forest", "calm"},
	"heartbreak": {"healing", "mountains", "solitude"},
	"adventure":  {"thrill", "offroad"},
	"friends":    {"fun", "nightlife"},
	"family":     {"safe", "comfortable"},
	"luxury":     {"premium", "smooth"},
}

var moodPersonas = map[string]string{
	"refresh":    "Quiet Explorer",
	"heartbreak": "Healing Wanderer",
	"adventure":  "Trail Seeker",
	"friends":    "Social Voyager",
	"family":     "Comfort Guardian",
	"luxury":     "Premium Traveller",
}

// Mood maps a traveller's mood onto a persona and trip vibes. Pure lookup,
// no external calls.
type Mood struct{}

func (m *Mood) Name() string { return "analyze_roadtrip_mood" }
func (m *Mood) Description() string {
	return "Analyze the traveller's mood and derive a trip persona and vibes"
}

func (m *Mood) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mood": map[string]any{
				"type":        "string",
				"description": "The traveller's stated mood, e.g. heartbreak, adventure",
			},
		},
		"required":             []string{"mood"},
		"additionalProperties": false,
	}
}

func (m *Mood) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Mood string `json:"mood"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing mood input: %w", err)
	}

	mood := strings.ToLower(args.Mood)

	persona, ok := moodPersonas[mood]
	if !ok {
		persona = "Roadtrip Soul"
	}
	vibes, ok := moodVibes[mood]
	if !ok {
		vibes = []string{"scenic"}
	}

	return marshal(map[string]any{
		"mood":    mood,
		"persona": persona,
		"vibes":   vibes,
	})
}

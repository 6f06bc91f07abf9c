package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	defaultItineraryDays = 2
	defaultVibe          = "scenic"
)

// Itinerary drafts a day-by-day plan skeleton the model fleshes out.
type Itinerary struct{}

func (i *Itinerary) Name() string { return "generate_roadtrip_itinerary" }
func (i *Itinerary) Description() string {
	return "Generate a day-by-day roadtrip itinerary for a destination"
}

func (i *Itinerary) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"destination": map[string]any{
				"type":        "string",
				"description": "Trip destination",
			},
			"days": map[string]any{
				"type":        "number",
				"description": "Number of travel days (default 2)",
			},
			"vibe": map[string]any{
				"type":        "string",
				"description": "Trip vibe from mood analysis (default scenic)",
			},
		},
		"required":             []string{"destination", "days", "vibe"},
		"additionalProperties": false,
	}
}

func (i *Itinerary) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Destination string `json:"destination"`
		Days        int    `json:"days"`
		Vibe        string `json:"vibe"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing itinerary input: %w", err)
	}
	if args.Days <= 0 {
		args.Days = defaultItineraryDays
	}
	if args.Vibe == "" {
		args.Vibe = defaultVibe
	}

	days := make([]map[string]any, 0, args.Days)
	for d := 1; d <= args.Days; d++ {
		days = append(days, map[string]any{
			"day":       d,
			"theme":     args.Vibe,
			"morning":   fmt.Sprintf("Drive towards %s through peaceful roads.", args.Destination),
			"afternoon": "Stop at notable scenic points.",
			"evening":   fmt.Sprintf("Enjoy sunset overlooking %s.", args.Destination),
		})
	}

	return marshal(map[string]any{
		"destination": args.Destination,
		"itinerary":   days,
	})
}

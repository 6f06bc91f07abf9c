package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	bravesearch "github.com/cnosuke/go-brave-search"
)

// DestinationContext enriches a destination with travel knowledge: seasons,
// food, hidden gems and warnings. When a Brave Search key is configured the
// hidden gems are supplemented with live web results.
type DestinationContext struct {
	ts *Toolset
}

func (d *DestinationContext) Name() string { return "enhance_destination_context" }
func (d *DestinationContext) Description() string {
	return "Add best months, local food, hidden gems and warnings for a destination"
}

func (d *DestinationContext) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"destination": map[string]any{
				"type":        "string",
				"description": "Destination to enrich",
			},
		},
		"required":             []string{"destination"},
		"additionalProperties": false,
	}
}

func (d *DestinationContext) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing context input: %w", err)
	}

	hiddenGems := []string{"Secret viewpoint", "Forest trail"}
	hiddenGems = append(hiddenGems, d.searchGems(ctx, args.Destination)...)

	return marshal(map[string]any{
		"destination": args.Destination,
		"best_months": []string{"Oct", "Nov", "Dec", "Jan"},
		"local_food":  []string{"local thali", "filter coffee"},
		"hidden_gems": hiddenGems,
		"warnings":    []string{"Fog in early mornings", "Refuel before remote roads"},
	})
}

func (d *DestinationContext) searchGems(ctx context.Context, destination string) []string {
	if d.ts.brave == nil {
		return nil
	}

	resp, err := d.ts.brave.WebSearch(ctx, destination+" hidden gems", &bravesearch.WebSearchParams{
		Count: 3,
	})
	if err != nil {
		slog.Debug("hidden gems search failed", "destination", destination, "error", err)
		return nil
	}

	var gems []string
	for _, r := range resp.GetWebResults() {
		gems = append(gems, fmt.Sprintf("%s (%s)", r.Title, r.URL))
	}
	return gems
}

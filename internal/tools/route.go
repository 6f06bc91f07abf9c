package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Route plans a driving route between two places via the Google Directions
// API. An unroutable pair is not an error: the status comes back in the
// payload so the model can replan.
type Route struct {
	ts *Toolset
}

func (r *Route) Name() string { return "plan_route" }
func (r *Route) Description() string {
	return "Plan a driving route and return distance, duration and endpoints"
}

func (r *Route) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"origin": map[string]any{
				"type":        "string",
				"description": "Starting point of the trip",
			},
			"destination": map[string]any{
				"type":        "string",
				"description": "Destination of the trip",
			},
		},
		"required":             []string{"origin", "destination"},
		"additionalProperties": false,
	}
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
			StartLocation latLng `json:"start_location"`
			EndLocation   latLng `json:"end_location"`
		} `json:"legs"`
	} `json:"routes"`
}

func (r *Route) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing route input: %w", err)
	}

	params := url.Values{
		"origin":      {args.Origin},
		"destination": {args.Destination},
		"mode":        {"driving"},
		"key":         {r.ts.cfg.MapsAPIKey},
	}

	var resp directionsResponse
	if err := getJSON(ctx, r.ts.client, r.ts.cfg.MapsBaseURL+"/maps/api/directions/json", params, &resp); err != nil {
		return "", err
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		status := resp.Status
		if status == "" {
			status = "Unable to find route"
		}
		return marshal(map[string]any{"error": status})
	}

	leg := resp.Routes[0].Legs[0]
	return marshal(map[string]any{
		"origin":         args.Origin,
		"destination":    args.Destination,
		"distance_km":    float64(leg.Distance.Value) / 1000,
		"duration_hours": float64(leg.Duration.Value) / 3600,
		"start_location": leg.StartLocation,
		"end_location":   leg.EndLocation,
	})
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Weather fetches the current conditions at a point from Open-Meteo. The
// provider payload passes through untouched.
type Weather struct {
	ts *Toolset
}

func (w *Weather) Name() string { return "get_weather_on_route" }
func (w *Weather) Description() string {
	return "Get current weather at a point on the route"
}

func (w *Weather) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lat": map[string]any{
				"type":        "number",
				"description": "Latitude of the point",
			},
			"lng": map[string]any{
				"type":        "number",
				"description": "Longitude of the point",
			},
		},
		"required":             []string{"lat", "lng"},
		"additionalProperties": false,
	}
}

func (w *Weather) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing weather input: %w", err)
	}

	params := url.Values{
		"latitude":  {strconv.FormatFloat(args.Lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(args.Lng, 'f', -1, 64)},
		"current":   {"temperature_2m,weather_code"},
	}

	body, err := getRaw(ctx, w.ts.client, w.ts.cfg.WeatherBaseURL, params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

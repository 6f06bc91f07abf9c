package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

const (
	scenicKeyword = "scenic viewpoint OR waterfall OR lake OR forest"
	foodKeyword   = "highway cafe OR dhaba OR restaurant OR tea stall"

	defaultScenicRadius = 8000
	foodRadius          = 2000
)

// ScenicSpots finds viewpoints, waterfalls, lakes and forests near a point
// via Places nearby search. The provider payload passes through untouched.
type ScenicSpots struct {
	ts *Toolset
}

func (s *ScenicSpots) Name() string { return "find_scenic_spots" }
func (s *ScenicSpots) Description() string {
	return "Find scenic stops (viewpoints, waterfalls, lakes) near a location"
}

func (s *ScenicSpots) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lat": map[string]any{
				"type":        "number",
				"description": "Latitude to search around",
			},
			"lng": map[string]any{
				"type":        "number",
				"description": "Longitude to search around",
			},
			"radius": map[string]any{
				"type":        "number",
				"description": "Search radius in meters (default 8000)",
			},
		},
		"required":             []string{"lat", "lng", "radius"},
		"additionalProperties": false,
	}
}

func (s *ScenicSpots) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Lat    float64 `json:"lat"`
		Lng    float64 `json:"lng"`
		Radius int     `json:"radius"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing scenic input: %w", err)
	}
	if args.Radius <= 0 {
		args.Radius = defaultScenicRadius
	}

	return s.ts.nearbySearch(ctx, args.Lat, args.Lng, args.Radius, scenicKeyword)
}

// FoodStops finds highway cafes, dhabas and tea stalls near a point.
type FoodStops struct {
	ts *Toolset
}

func (f *FoodStops) Name() string { return "find_food_rest_stops" }
func (f *FoodStops) Description() string {
	return "Find food and rest stops (cafes, dhabas, tea stalls) near a location"
}

func (f *FoodStops) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lat": map[string]any{
				"type":        "number",
				"description": "Latitude to search around",
			},
			"lng": map[string]any{
				"type":        "number",
				"description": "Longitude to search around",
			},
		},
		"required":             []string{"lat", "lng"},
		"additionalProperties": false,
	}
}

func (f *FoodStops) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing food input: %w", err)
	}

	return f.ts.nearbySearch(ctx, args.Lat, args.Lng, foodRadius, foodKeyword)
}

func (t *Toolset) nearbySearch(ctx context.Context, lat, lng float64, radius int, keyword string) (string, error) {
	params := url.Values{
		"location": {formatLatLng(lat, lng)},
		"radius":   {strconv.Itoa(radius)},
		"keyword":  {keyword},
		"key":      {t.cfg.MapsAPIKey},
	}

	body, err := getRaw(ctx, t.client, t.cfg.MapsBaseURL+"/maps/api/place/nearbysearch/json", params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

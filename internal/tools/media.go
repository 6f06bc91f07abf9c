package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
)

const defaultMediaStyle = "cinematic landscape"

// TripMedia assembles destination imagery: real photos from Google Custom
// Search plus a generated cinematic preview URL. Search failures degrade to
// an empty image list; the preview URL needs no network call at all.
type TripMedia struct {
	ts *Toolset
}

func (m *TripMedia) Name() string { return "generate_trip_media" }
func (m *TripMedia) Description() string {
	return "Collect real destination photos and an AI-generated cinematic preview"
}

func (m *TripMedia) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"destination": map[string]any{
				"type":        "string",
				"description": "Destination to illustrate",
			},
			"style": map[string]any{
				"type":        "string",
				"description": "Visual style for the preview (default cinematic landscape)",
			},
		},
		"required":             []string{"destination", "style"},
		"additionalProperties": false,
	}
}

type cseResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
		Image struct {
			ThumbnailLink string `json:"thumbnailLink"`
			ContextLink   string `json:"contextLink"`
		} `json:"image"`
	} `json:"items"`
}

func (m *TripMedia) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Destination string `json:"destination"`
		Style       string `json:"style"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing media input: %w", err)
	}
	if args.Style == "" {
		args.Style = defaultMediaStyle
	}

	realImages := m.searchImages(ctx, args.Destination)

	prompt := fmt.Sprintf(
		"%s scenic road trip, wide angle drone shot, cinematic, ultra detailed, %s, volumetric lighting, atmospheric perspective, 4k HD",
		args.Destination, args.Style,
	)
	preview := m.ts.cfg.PollinationsBaseURL + url.PathEscape(prompt)

	return marshal(map[string]any{
		"destination":          args.Destination,
		"style":                args.Style,
		"real_images":          realImages,
		"ai_generated_preview": preview,
	})
}

func (m *TripMedia) searchImages(ctx context.Context, query string) []map[string]any {
	realImages := []map[string]any{}
	if m.ts.cfg.CSEKey == "" || m.ts.cfg.CSEID == "" {
		return realImages
	}

	params := url.Values{
		"key":        {m.ts.cfg.CSEKey},
		"cx":         {m.ts.cfg.CSEID},
		"searchType": {"image"},
		"q":          {query},
		"num":        {"1"},
		"safe":       {"active"},
	}

	var resp cseResponse
	if err := getJSON(ctx, m.ts.client, m.ts.cfg.CSEBaseURL, params, &resp); err != nil {
		slog.Debug("image search failed", "query", query, "error", err)
		return realImages
	}

	for _, item := range resp.Items {
		realImages = append(realImages, map[string]any{
			"title":     item.Title,
			"url":       item.Link,
			"thumbnail": item.Image.ThumbnailLink,
			"context":   item.Image.ContextLink,
		})
	}
	return realImages
}

// Package tools implements the trip-planning toolset the agent calls.
// Every tool is stateless: one structured input, at most one external HTTP
// call, a trivial transformation, one structured output. Data-level
// failures (no route found, empty search) are returned inside the payload
// as {"error": ...} so the model can reason about them; a Go error means
// the call itself could not be made.
package tools

import (
	"context"
	"net/http"
	"sync"
	"time"

	bravesearch "github.com/cnosuke/go-brave-search"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	MapsAPIKey  string
	CSEID       string
	CSEKey      string
	BraveAPIKey string

	// Base URLs are overridable for tests; zero values mean production.
	MapsBaseURL         string
	CSEBaseURL          string
	WeatherBaseURL      string
	PollinationsBaseURL string
}

const (
	defaultMapsBaseURL         = "https://maps.googleapis.com"
	defaultCSEBaseURL          = "https://www.googleapis.com/customsearch/v1"
	defaultWeatherBaseURL      = "https://api.open-meteo.com/v1/forecast"
	defaultPollinationsBaseURL = "https://image.pollinations.ai/prompt/"
)

// Toolset owns the single HTTP client shared by all tools. It is closed
// exactly once at the end of a top-level run; overlapping runs sharing one
// Toolset would race on that close, which is a known limitation.
type Toolset struct {
	cfg    Config
	client *http.Client
	brave  *bravesearch.Client

	closeOnce sync.Once
}

func New(cfg Config) *Toolset {
	if cfg.MapsBaseURL == "" {
		cfg.MapsBaseURL = defaultMapsBaseURL
	}
	if cfg.CSEBaseURL == "" {
		cfg.CSEBaseURL = defaultCSEBaseURL
	}
	if cfg.WeatherBaseURL == "" {
		cfg.WeatherBaseURL = defaultWeatherBaseURL
	}
	if cfg.PollinationsBaseURL == "" {
		cfg.PollinationsBaseURL = defaultPollinationsBaseURL
	}

	ts := &Toolset{
		cfg: cfg,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	if cfg.BraveAPIKey != "" {
		ts.brave, _ = bravesearch.NewClient(cfg.BraveAPIKey)
	}
	return ts
}

// Tool matches the agent package's tool contract.
type Tool interface {
	Name() string
	Description() string
	InputSchema() any
	Execute(ctx context.Context, input string) (string, error)
}

// All returns the complete trip toolset.
func (t *Toolset) All() []Tool {
	return []Tool{
		&Mood{},
		&Route{ts: t},
		&Fuel{},
		&ScenicSpots{ts: t},
		&FoodStops{ts: t},
		&Weather{ts: t},
		&TripMedia{ts: t},
		&Itinerary{},
		&DestinationContext{ts: t},
	}
}

// Close releases the shared connections. Safe to call more than once; only
// the first call does anything.
func (t *Toolset) Close() error {
	t.closeOnce.Do(func() {
		t.client.CloseIdleConnections()
	})
	return nil
}

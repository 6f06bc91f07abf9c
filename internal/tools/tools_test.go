package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, tool Tool, input string) map[string]any {
	t.Helper()
	out, err := tool.Execute(context.Background(), input)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestMoodKnownMood(t *testing.T) {
	result := execute(t, &Mood{}, `{"mood":"Heartbreak"}`)

	assert.Equal(t, "heartbreak", result["mood"])
	assert.Equal(t, "Healing Wanderer", result["persona"])
	assert.Equal(t, []any{"healing", "mountains", "solitude"}, result["vibes"])
}

func TestMoodUnknownMoodFallsBack(t *testing.T) {
	result := execute(t, &Mood{}, `{"mood":"melancholic"}`)

	assert.Equal(t, "Roadtrip Soul", result["persona"])
	assert.Equal(t, []any{"scenic"}, result["vibes"])
}

func TestFuelEstimate(t *testing.T) {
	result := execute(t, &Fuel{}, `{"distance_km":180,"mileage_kmpl":18,"fuel_price":110}`)

	assert.Equal(t, 180.0, result["distance_km"])
	assert.Equal(t, 10.0, result["liters_required"])
	assert.Equal(t, 1100.0, result["total_cost"])
}

func TestFuelDefaults(t *testing.T) {
	result := execute(t, &Fuel{}, `{"distance_km":90}`)

	// 90 km / 18 kmpl = 5 l, 5 l * 110 = 550
	assert.Equal(t, 5.0, result["liters_required"])
	assert.Equal(t, 550.0, result["total_cost"])
}

func TestItineraryShape(t *testing.T) {
	result := execute(t, &Itinerary{}, `{"destination":"Coorg","days":2,"vibe":"healing"}`)

	assert.Equal(t, "Coorg", result["destination"])
	days, ok := result["itinerary"].([]any)
	require.True(t, ok)
	require.Len(t, days, 2)

	for i, raw := range days {
		day := raw.(map[string]any)
		assert.Equal(t, float64(i+1), day["day"])
		assert.Equal(t, "healing", day["theme"])
		assert.Contains(t, day["morning"], "Coorg")
		assert.NotEmpty(t, day["afternoon"])
		assert.Contains(t, day["evening"], "Coorg")
	}
}

func TestItineraryDefaults(t *testing.T) {
	result := execute(t, &Itinerary{}, `{"destination":"Nandi Hills"}`)

	days := result["itinerary"].([]any)
	require.Len(t, days, 2)
	assert.Equal(t, "scenic", days[0].(map[string]any)["theme"])
}

func TestRoutePlansDrivingRoute(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"origin":      r.URL.Query().Get("origin"),
			"destination": r.URL.Query().Get("destination"),
			"mode":        r.URL.Query().Get("mode"),
			"key":         r.URL.Query().Get("key"),
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"routes": []any{map[string]any{
				"legs": []any{map[string]any{
					"distance":       map[string]any{"value": 250000},
					"duration":       map[string]any{"value": 21600},
					"start_location": map[string]any{"lat": 12.97, "lng": 77.59},
					"end_location":   map[string]any{"lat": 12.42, "lng": 75.74},
				}},
			}},
		})
	}))
	defer srv.Close()

	ts := New(Config{MapsAPIKey: "test-key", MapsBaseURL: srv.URL})
	result := execute(t, &Route{ts: ts}, `{"origin":"Bangalore","destination":"Coorg"}`)

	assert.Equal(t, "driving", gotQuery["mode"])
	assert.Equal(t, "test-key", gotQuery["key"])
	assert.Equal(t, "Bangalore", gotQuery["origin"])

	assert.Equal(t, 250.0, result["distance_km"])
	assert.Equal(t, 6.0, result["duration_hours"])
	start := result["start_location"].(map[string]any)
	assert.Equal(t, 12.97, start["lat"])
}

func TestRouteNoRouteIsPayloadNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "routes": []any{}})
	}))
	defer srv.Close()

	ts := New(Config{MapsAPIKey: "test-key", MapsBaseURL: srv.URL})
	result := execute(t, &Route{ts: ts}, `{"origin":"Bangalore","destination":"Atlantis"}`)

	assert.Equal(t, "ZERO_RESULTS", result["error"])
}

func TestScenicSpotsPassThrough(t *testing.T) {
	payload := `{"results":[{"name":"Abbey Falls"}],"status":"OK"}`
	var gotRadius, gotKeyword string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRadius = r.URL.Query().Get("radius")
		gotKeyword = r.URL.Query().Get("keyword")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	ts := New(Config{MapsAPIKey: "test-key", MapsBaseURL: srv.URL})
	out, err := (&ScenicSpots{ts: ts}).Execute(context.Background(), `{"lat":12.42,"lng":75.74}`)
	require.NoError(t, err)

	assert.JSONEq(t, payload, out)
	assert.Equal(t, "8000", gotRadius)
	assert.Contains(t, gotKeyword, "waterfall")
}

func TestFoodStopsUsesTighterRadius(t *testing.T) {
	var gotRadius string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRadius = r.URL.Query().Get("radius")
		w.Write([]byte(`{"results":[],"status":"OK"}`))
	}))
	defer srv.Close()

	ts := New(Config{MapsAPIKey: "test-key", MapsBaseURL: srv.URL})
	_, err := (&FoodStops{ts: ts}).Execute(context.Background(), `{"lat":12.42,"lng":75.74}`)
	require.NoError(t, err)

	assert.Equal(t, "2000", gotRadius)
}

func TestWeatherPassThrough(t *testing.T) {
	payload := `{"current":{"temperature_2m":21.5,"weather_code":3}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature_2m,weather_code", r.URL.Query().Get("current"))
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	ts := New(Config{WeatherBaseURL: srv.URL})
	out, err := (&Weather{ts: ts}).Execute(context.Background(), `{"lat":12.42,"lng":75.74}`)
	require.NoError(t, err)

	assert.JSONEq(t, payload, out)
}

func TestTripMediaWithImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "image", r.URL.Query().Get("searchType"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{map[string]any{
				"title": "Coorg hills",
				"link":  "https://example.com/coorg.jpg",
				"image": map[string]any{
					"thumbnailLink": "https://example.com/thumb.jpg",
					"contextLink":   "https://example.com/page",
				},
			}},
		})
	}))
	defer srv.Close()

	ts := New(Config{CSEID: "cx", CSEKey: "key", CSEBaseURL: srv.URL})
	result := execute(t, &TripMedia{ts: ts}, `{"destination":"Coorg","style":"sunset golden hour"}`)

	images := result["real_images"].([]any)
	require.Len(t, images, 1)
	assert.Equal(t, "Coorg hills", images[0].(map[string]any)["title"])

	preview := result["ai_generated_preview"].(string)
	assert.Contains(t, preview, "Coorg")
	assert.Contains(t, preview, "sunset%20golden%20hour")
	assert.NotContains(t, preview, " ")
}

func TestTripMediaDegradesWithoutSearchCreds(t *testing.T) {
	ts := New(Config{})
	result := execute(t, &TripMedia{ts: ts}, `{"destination":"Coorg"}`)

	assert.Equal(t, "cinematic landscape", result["style"])
	assert.Empty(t, result["real_images"])
	assert.NotEmpty(t, result["ai_generated_preview"])
}

func TestDestinationContextStaticShape(t *testing.T) {
	ts := New(Config{})
	result := execute(t, &DestinationContext{ts: ts}, `{"destination":"Coorg"}`)

	assert.Equal(t, []any{"Oct", "Nov", "Dec", "Jan"}, result["best_months"])
	assert.Equal(t, []any{"local thali", "filter coffee"}, result["local_food"])
	assert.Equal(t, []any{"Secret viewpoint", "Forest trail"}, result["hidden_gems"])
	assert.Len(t, result["warnings"], 2)
}

func TestToolsetCloseIsIdempotent(t *testing.T) {
	ts := New(Config{})
	assert.NoError(t, ts.Close())
	assert.NoError(t, ts.Close())
}

func TestToolsetAllNames(t *testing.T) {
	ts := New(Config{})

	var names []string
	for _, tool := range ts.All() {
		names = append(names, tool.Name())
	}

	assert.Equal(t, []string{
		"analyze_roadtrip_mood",
		"plan_route",
		"estimate_fuel_cost",
		"find_scenic_spots",
		"find_food_rest_stops",
		"get_weather_on_route",
		"generate_trip_media",
		"generate_roadtrip_itinerary",
		"enhance_destination_context",
	}, names)
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

const (
	defaultMileageKmpl = 18
	defaultFuelPrice   = 110
)

// Fuel estimates fuel usage and cost for a given distance. Pure arithmetic.
type Fuel struct{}

func (f *Fuel) Name() string { return "estimate_fuel_cost" }
func (f *Fuel) Description() string {
	return "Estimate liters of fuel required and total cost for a distance"
}

func (f *Fuel) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"distance_km": map[string]any{
				"type":        "number",
				"description": "Trip distance in kilometers",
			},
			"mileage_kmpl": map[string]any{
				"type":        "number",
				"description": "Vehicle mileage in km per liter (default 18)",
			},
			"fuel_price": map[string]any{
				"type":        "number",
				"description": "Fuel price per liter (default 110)",
			},
		},
		"required":             []string{"distance_km", "mileage_kmpl", "fuel_price"},
		"additionalProperties": false,
	}
}

func (f *Fuel) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		DistanceKm  float64 `json:"distance_km"`
		MileageKmpl float64 `json:"mileage_kmpl"`
		FuelPrice   float64 `json:"fuel_price"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing fuel input: %w", err)
	}

	if args.MileageKmpl <= 0 {
		args.MileageKmpl = defaultMileageKmpl
	}
	if args.FuelPrice <= 0 {
		args.FuelPrice = defaultFuelPrice
	}

	liters := args.DistanceKm / args.MileageKmpl
	cost := liters * args.FuelPrice

	return marshal(map[string]any{
		"distance_km":     args.DistanceKm,
		"liters_required": round2(liters),
		"total_cost":      round2(cost),
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

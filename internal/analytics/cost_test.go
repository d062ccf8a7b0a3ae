package analytics_test

import (
	"strings"
	"testing"

	"fleet-analytics-service/internal/analytics"
	"fleet-analytics-service/internal/model"
)

func TestOptimizeCostsPercentages(t *testing.T) {
	aggregate := model.VehicleAnalytics{
		TotalFuelCost:        7500,
		TotalMaintenanceCost: 2500,
		TotalOperatingCost:   10000,
	}

	result := analytics.OptimizeCosts(aggregate, nil)
	if result.FuelCostPercentage != 75 {
		t.Errorf("fuel share = %v, want 75", result.FuelCostPercentage)
	}
	if result.MaintenanceCostPercentage != 25 {
		t.Errorf("maintenance share = %v, want 25", result.MaintenanceCostPercentage)
	}
}

func TestOptimizeCostsZeroOperatingCost(t *testing.T) {
	result := analytics.OptimizeCosts(model.VehicleAnalytics{}, nil)
	if result.FuelCostPercentage != 0 || result.MaintenanceCostPercentage != 0 {
		t.Errorf("shares = %v/%v, want 0/0 when total operating cost is 0",
			result.FuelCostPercentage, result.MaintenanceCostPercentage)
	}
}

func TestOptimizeCostsStationRanking(t *testing.T) {
	fuel := []model.FuelRecord{
		{Station: "Shell", Liters: 10, Cost: 1900},
		{Station: "Shell", Liters: 10, Cost: 2100},
		{Station: "Total", Liters: 20, Cost: 3600},
		{Station: "Rubis", Liters: 10, Cost: 2200},
		{Station: "", Liters: 10, Cost: 1000},  // no station
		{Station: "Shell", Liters: 0, Cost: 5}, // no liters
		{Station: "Total", Liters: 10, Cost: 0}, // no cost
	}

	result := analytics.OptimizeCosts(model.VehicleAnalytics{}, fuel)
	if len(result.StationAnalysis) != 3 {
		t.Fatalf("station count = %d, want 3", len(result.StationAnalysis))
	}
	// Cheapest first: Total 180/L, Shell 200/L, Rubis 220/L.
	if result.StationAnalysis[0].Station != "Total" || result.StationAnalysis[0].AvgCostPerLiter != 180 {
		t.Errorf("cheapest = %+v, want Total at 180/L", result.StationAnalysis[0])
	}
	if result.StationAnalysis[1].Station != "Shell" || result.StationAnalysis[1].AvgCostPerLiter != 200 {
		t.Errorf("second = %+v, want Shell at 200/L", result.StationAnalysis[1])
	}
	if result.StationAnalysis[2].Station != "Rubis" || result.StationAnalysis[2].AvgCostPerLiter != 220 {
		t.Errorf("priciest = %+v, want Rubis at 220/L", result.StationAnalysis[2])
	}
	if result.StationAnalysis[1].FillCount != 2 {
		t.Errorf("Shell fill count = %d, want 2 (ineligible records skipped)", result.StationAnalysis[1].FillCount)
	}
}

func TestOptimizeCostsRecommendations(t *testing.T) {
	t.Run("fuel share flag", func(t *testing.T) {
		aggregate := model.VehicleAnalytics{
			TotalFuelCost:      9000,
			TotalOperatingCost: 10000,
		}
		result := analytics.OptimizeCosts(aggregate, nil)
		if !containsPhrase(result.Recommendations, "Fuel accounts") {
			t.Errorf("expected a fuel-share flag, got %v", result.Recommendations)
		}
	})

	t.Run("maintenance share flag", func(t *testing.T) {
		aggregate := model.VehicleAnalytics{
			TotalFuelCost:        6000,
			TotalMaintenanceCost: 4000,
			TotalOperatingCost:   10000,
		}
		result := analytics.OptimizeCosts(aggregate, nil)
		if !containsPhrase(result.Recommendations, "Maintenance accounts") {
			t.Errorf("expected a maintenance-share flag, got %v", result.Recommendations)
		}
	})

	t.Run("station gap suggestion", func(t *testing.T) {
		fuel := []model.FuelRecord{
			{Station: "Cheap Fuels", Liters: 10, Cost: 1800},
			{Station: "Pricey Petrol", Liters: 10, Cost: 1900},
		}
		result := analytics.OptimizeCosts(model.VehicleAnalytics{}, fuel)
		if !containsPhrase(result.Recommendations, "shifting fuel purchases") {
			t.Errorf("expected a station-shift suggestion, got %v", result.Recommendations)
		}
	})

	t.Run("no station gap under threshold", func(t *testing.T) {
		fuel := []model.FuelRecord{
			{Station: "A", Liters: 10, Cost: 1800},
			{Station: "B", Liters: 10, Cost: 1840},
		}
		result := analytics.OptimizeCosts(model.VehicleAnalytics{}, fuel)
		if containsPhrase(result.Recommendations, "shifting fuel purchases") {
			t.Errorf("gap of 4/L must not trigger the suggestion, got %v", result.Recommendations)
		}
	})
}

func containsPhrase(recommendations []string, phrase string) bool {
	for _, rec := range recommendations {
		if strings.Contains(rec, phrase) {
			return true
		}
	}
	return false
}

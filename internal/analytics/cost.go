package analytics

import (
	"fmt"
	"sort"

	"fleet-analytics-service/internal/model"
)

const (
	fuelShareFlagPct        = 80.0
	maintenanceShareFlagPct = 30.0
	stationGapPerLiter      = 5.0
)

// OptimizeCosts computes the fuel/maintenance share of total operating cost
// and ranks fuel stations by average cost per liter, cheapest first.
// Maintenance totals arrive inside the aggregate, so only fuel records are
// needed for the per-station breakdown.
func OptimizeCosts(aggregate model.VehicleAnalytics, fuel []model.FuelRecord) model.CostOptimization {
	result := model.CostOptimization{}

	if aggregate.TotalOperatingCost > 0 {
		result.FuelCostPercentage = round2(aggregate.TotalFuelCost / aggregate.TotalOperatingCost * 100)
		result.MaintenanceCostPercentage = round2(aggregate.TotalMaintenanceCost / aggregate.TotalOperatingCost * 100)
	}

	result.StationAnalysis = analyzeStations(fuel)

	if result.FuelCostPercentage > fuelShareFlagPct {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf(
			"Fuel accounts for %.0f%% of operating costs - review efficiency and fuel purchasing", result.FuelCostPercentage))
	}
	if result.MaintenanceCostPercentage > maintenanceShareFlagPct {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf(
			"Maintenance accounts for %.0f%% of operating costs - this vehicle may be nearing end of life", result.MaintenanceCostPercentage))
	}

	if len(result.StationAnalysis) >= 2 {
		cheapest := result.StationAnalysis[0]
		priciest := result.StationAnalysis[len(result.StationAnalysis)-1]
		if priciest.AvgCostPerLiter-cheapest.AvgCostPerLiter > stationGapPerLiter {
			result.Recommendations = append(result.Recommendations, fmt.Sprintf(
				"%s averages %.2f/L less than %s - consider shifting fuel purchases",
				cheapest.Station, priciest.AvgCostPerLiter-cheapest.AvgCostPerLiter, priciest.Station))
		}
	}

	return result
}

// analyzeStations groups fill-ups by station name. Records missing a station,
// cost, or liters carry no price signal and are skipped.
func analyzeStations(fuel []model.FuelRecord) []model.StationCost {
	byStation := make(map[string]*model.StationCost)
	for _, rec := range fuel {
		if rec.Station == "" || rec.Cost <= 0 || rec.Liters <= 0 {
			continue
		}
		entry, ok := byStation[rec.Station]
		if !ok {
			entry = &model.StationCost{Station: rec.Station}
			byStation[rec.Station] = entry
		}
		entry.FillCount++
		entry.TotalLiters += rec.Liters
		entry.TotalCost += rec.Cost
	}

	stations := make([]model.StationCost, 0, len(byStation))
	for _, entry := range byStation {
		entry.AvgCostPerLiter = round2(entry.TotalCost / entry.TotalLiters)
		entry.TotalLiters = round2(entry.TotalLiters)
		entry.TotalCost = round2(entry.TotalCost)
		stations = append(stations, *entry)
	}

	sort.Slice(stations, func(i, j int) bool {
		if stations[i].AvgCostPerLiter != stations[j].AvgCostPerLiter {
			return stations[i].AvgCostPerLiter < stations[j].AvgCostPerLiter
		}
		return stations[i].Station < stations[j].Station
	})

	return stations
}

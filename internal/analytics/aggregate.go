package analytics

import (
	"math"

	"fleet-analytics-service/internal/model"
)

// Aggregate rolls reconstructed fuel records and maintenance records up into
// summary statistics. Efficiency averages are computed over eligible records
// only; every ratio with a zero denominator comes back 0, never NaN.
func Aggregate(derived []model.DerivedFuelRecord, maintenance []model.MaintenanceRecord) model.VehicleAnalytics {
	var a model.VehicleAnalytics

	var efficiencySum float64
	var efficiencyCount int

	for _, d := range derived {
		a.FuelUpCount++
		a.TotalLiters += d.Liters
		a.TotalFuelCost += d.Cost

		if d.IsIncomplete {
			a.IncompleteRecords++
		} else {
			a.CompleteRecords++
			if d.DistanceSinceLastFuel != nil {
				a.TotalDistance += *d.DistanceSinceLastFuel
			}
		}
		if d.IsPartialFill {
			a.PartialFillRecords++
		} else {
			a.FullTankRecords++
		}

		if d.IsIncomplete || d.IsPartialFill || d.FuelEfficiency == nil || *d.FuelEfficiency <= 0 {
			continue
		}
		eff := *d.FuelEfficiency
		efficiencySum += eff
		efficiencyCount++
		if a.BestEfficiency == 0 || eff > a.BestEfficiency {
			a.BestEfficiency = eff
		}
		if a.WorstEfficiency == 0 || eff < a.WorstEfficiency {
			a.WorstEfficiency = eff
		}
	}

	if efficiencyCount > 0 {
		a.AverageEfficiency = efficiencySum / float64(efficiencyCount)
	}

	for _, m := range maintenance {
		a.MaintenanceCount++
		a.TotalMaintenanceCost += m.Cost
	}

	a.TotalOperatingCost = a.TotalFuelCost + a.TotalMaintenanceCost
	if a.TotalDistance > 0 {
		a.CostPerKm = a.TotalOperatingCost / a.TotalDistance
	}
	if a.TotalLiters > 0 {
		a.CostPerLiter = a.TotalFuelCost / a.TotalLiters
	}

	a.TotalLiters = round2(a.TotalLiters)
	a.TotalFuelCost = round2(a.TotalFuelCost)
	a.TotalMaintenanceCost = round2(a.TotalMaintenanceCost)
	a.TotalOperatingCost = round2(a.TotalOperatingCost)
	a.TotalDistance = math.Round(a.TotalDistance)
	a.AverageEfficiency = round2(a.AverageEfficiency)
	a.BestEfficiency = round2(a.BestEfficiency)
	a.WorstEfficiency = round2(a.WorstEfficiency)
	a.CostPerKm = round2(a.CostPerKm)
	a.CostPerLiter = round2(a.CostPerLiter)

	return a
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

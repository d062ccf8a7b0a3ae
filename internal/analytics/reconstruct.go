package analytics

import (
	"sort"

	"fleet-analytics-service/internal/model"
)

// Reconstruct sorts one vehicle's fuel records ascending by date and
// annotates each with the distance driven since the previous fill and, where
// eligible, the km/L efficiency. The input slice is left untouched.
//
// A record's distance depends only on the record immediately before it in
// date order. Efficiency is computed only for full-tank fills with positive
// liters and a positive odometer delta; everything else carries a diagnostic
// status instead.
func Reconstruct(records []model.FuelRecord) []model.DerivedFuelRecord {
	sorted := make([]model.FuelRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	derived := make([]model.DerivedFuelRecord, 0, len(sorted))
	for i, rec := range sorted {
		d := model.DerivedFuelRecord{
			FuelRecord:    rec,
			IsPartialFill: !rec.IsFullTank,
		}

		if i == 0 {
			// Nothing to diff against: the first fill is always distance 0.
			zero := 0.0
			d.DistanceSinceLastFuel = &zero
			if hasOdometer(rec.Odometer) {
				d.EfficiencyStatus = model.StatusNoPreviousData
			} else {
				d.IsIncomplete = true
				d.EfficiencyStatus = model.StatusIncomplete
			}
			derived = append(derived, d)
			continue
		}

		prev := sorted[i-1]
		switch {
		case !hasOdometer(rec.Odometer):
			d.IsIncomplete = true
			d.EfficiencyStatus = model.StatusMissingCurrentOdometer
		case !hasOdometer(prev.Odometer):
			d.IsIncomplete = true
			d.EfficiencyStatus = model.StatusMissingPreviousOdometer
		default:
			distance := *rec.Odometer - *prev.Odometer
			if distance <= 0 {
				// Odometer rollback or duplicate entry. Data error, never a
				// negative distance.
				d.IsIncomplete = true
				d.EfficiencyStatus = model.StatusInvalidDistance
			} else {
				d.DistanceSinceLastFuel = &distance
				if rec.IsFullTank && rec.Liters > 0 {
					efficiency := distance / rec.Liters
					d.FuelEfficiency = &efficiency
					d.EfficiencyStatus = model.StatusComplete
				} else {
					d.EfficiencyStatus = model.StatusPartialFill
				}
			}
		}
		derived = append(derived, d)
	}

	return derived
}

// EligibleForEfficiency filters a derived set down to the records whose
// efficiency figures feed averages and trends: complete data, full tank,
// positive efficiency.
func EligibleForEfficiency(derived []model.DerivedFuelRecord) []model.DerivedFuelRecord {
	eligible := make([]model.DerivedFuelRecord, 0, len(derived))
	for _, d := range derived {
		if d.IsIncomplete || d.IsPartialFill {
			continue
		}
		if d.FuelEfficiency == nil || *d.FuelEfficiency <= 0 {
			continue
		}
		eligible = append(eligible, d)
	}
	return eligible
}

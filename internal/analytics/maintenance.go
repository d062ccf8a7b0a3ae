package analytics

import (
	"math"
	"sort"
	"time"

	"fleet-analytics-service/internal/model"
)

const (
	// defaultServiceIntervalKm is the fallback interval when history yields
	// no usable odometer deltas.
	defaultServiceIntervalKm = 5000.0

	serviceSoonKm      = 500.0
	servicePlanAheadKm = 1000.0
	intervalShortKm    = 3000.0
	intervalLongKm     = 15000.0

	// projectionServices caps how many recent services feed the km/day rate
	// used to estimate the next due date.
	projectionServices = 3
)

// PredictMaintenance derives the vehicle's average service interval from its
// maintenance history and projects the next service point in km and, when the
// history supports it, in calendar time.
func PredictMaintenance(records []model.MaintenanceRecord, currentOdometer float64) model.MaintenancePrediction {
	serviced := make([]model.MaintenanceRecord, 0, len(records))
	for _, m := range records {
		if hasOdometer(m.Odometer) && hasDate(m.Date) {
			serviced = append(serviced, m)
		}
	}

	if len(serviced) == 0 {
		return model.MaintenancePrediction{
			Recommendations: []string{
				"Add odometer readings to maintenance records to enable service predictions",
			},
		}
	}

	sort.SliceStable(serviced, func(i, j int) bool {
		return *serviced[i].Odometer < *serviced[j].Odometer
	})

	var deltaSum float64
	var deltaCount int
	for i := 1; i < len(serviced); i++ {
		delta := *serviced[i].Odometer - *serviced[i-1].Odometer
		if delta > 0 {
			deltaSum += delta
			deltaCount++
		}
	}

	interval := defaultServiceIntervalKm
	if deltaCount > 0 {
		interval = deltaSum / float64(deltaCount)
	}

	lastServiceKm := *serviced[len(serviced)-1].Odometer
	nextServiceKm := lastServiceKm + interval
	kmUntilService := math.Max(0, nextServiceKm-currentOdometer)

	prediction := model.MaintenancePrediction{
		AverageKmInterval: math.Round(interval),
		NextServiceKm:     roundPtr(nextServiceKm),
		NextServiceDue:    projectDueDate(serviced, kmUntilService),
		KmUntilService:    math.Round(kmUntilService),
	}

	if currentOdometer > nextServiceKm {
		prediction.OverdueServices = append(prediction.OverdueServices, model.OverdueService{
			NextServiceKm: math.Round(nextServiceKm),
			KmOverdue:     math.Round(currentOdometer - nextServiceKm),
		})
	}

	prediction.Recommendations = maintenanceRecommendations(prediction, interval, currentOdometer > nextServiceKm)

	return prediction
}

// projectDueDate estimates a calendar date for the next service from the
// average km/day across the most recent services. Pairs with a non-positive
// day or km difference are skipped.
func projectDueDate(serviced []model.MaintenanceRecord, kmUntilService float64) *time.Time {
	if len(serviced) < 2 {
		return nil
	}

	window := serviced
	if len(window) > projectionServices {
		window = window[len(window)-projectionServices:]
	}

	var rateSum float64
	var rateCount int
	for i := 1; i < len(window); i++ {
		days := window[i].Date.Sub(window[i-1].Date).Hours() / 24
		km := *window[i].Odometer - *window[i-1].Odometer
		if days <= 0 || km <= 0 {
			continue
		}
		rateSum += km / days
		rateCount++
	}
	if rateCount == 0 {
		return nil
	}

	kmPerDay := rateSum / float64(rateCount)
	due := time.Now().AddDate(0, 0, int(math.Ceil(kmUntilService/kmPerDay)))
	return &due
}

func maintenanceRecommendations(p model.MaintenancePrediction, interval float64, overdue bool) []string {
	var recs []string

	switch {
	case overdue:
		recs = append(recs, "Service is overdue - schedule maintenance immediately")
	case p.KmUntilService <= serviceSoonKm:
		recs = append(recs, "Service is due soon - book an appointment")
	case p.KmUntilService <= servicePlanAheadKm:
		recs = append(recs, "Service is approaching - plan ahead for the next maintenance")
	}

	if interval < intervalShortKm {
		recs = append(recs, "Service interval seems short - verify maintenance records or investigate recurring issues")
	}
	if interval > intervalLongKm {
		recs = append(recs, "Service interval seems long - confirm services are being recorded")
	}

	return recs
}

func roundPtr(v float64) *float64 {
	rounded := math.Round(v)
	return &rounded
}

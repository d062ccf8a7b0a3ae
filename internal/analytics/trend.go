package analytics

import (
	"fmt"

	"fleet-analytics-service/internal/model"
)

const (
	// trendWindow is the number of records in each comparison window. With
	// fewer than twice this many records the recent and old windows overlap,
	// weakening the signal; the behavior is kept for compatibility with
	// historical figures.
	trendWindow = 6

	// improvementThresholdPct separates improving/declining from stable.
	improvementThresholdPct = 2.0

	// lowEfficiencyKmPerLiter triggers the driver-training suggestion.
	lowEfficiencyKmPerLiter = 8.0
)

// AnalyzeTrend compares the recent efficiency window against the oldest one
// and classifies the direction. Input must be the efficiency-eligible records
// for one vehicle, sorted ascending by date (see EligibleForEfficiency).
func AnalyzeTrend(eligible []model.DerivedFuelRecord) model.EfficiencyTrend {
	values := make([]float64, 0, len(eligible))
	for _, d := range eligible {
		if d.FuelEfficiency != nil {
			values = append(values, *d.FuelEfficiency)
		}
	}

	if len(values) == 0 {
		return model.EfficiencyTrend{
			Trend: model.TrendNoData,
			Recommendations: []string{
				"Add full-tank fill-ups with odometer readings to start tracking efficiency",
			},
		}
	}

	best := values[0]
	worst := values[0]
	sum := 0.0
	for _, v := range values {
		if v > best {
			best = v
		}
		if v < worst {
			worst = v
		}
		sum += v
	}
	average := sum / float64(len(values))

	recent := values[maxInt(0, len(values)-trendWindow):]
	old := values[:minInt(trendWindow, len(values))]
	recentAvg := mean(recent)
	oldAvg := mean(old)

	improvementRate := (recentAvg - oldAvg) / oldAvg * 100

	trend := model.TrendStable
	switch {
	case improvementRate > improvementThresholdPct:
		trend = model.TrendImproving
	case improvementRate < -improvementThresholdPct:
		trend = model.TrendDeclining
	}

	var recommendations []string
	switch trend {
	case model.TrendImproving:
		recommendations = append(recommendations,
			"Fuel efficiency is improving - keep up the current driving and maintenance habits")
	case model.TrendDeclining:
		recommendations = append(recommendations,
			"Fuel efficiency is declining - check tire pressure and consider a service inspection")
	default:
		recommendations = append(recommendations,
			"Fuel efficiency is stable")
	}
	if average < lowEfficiencyKmPerLiter {
		recommendations = append(recommendations, fmt.Sprintf(
			"Average efficiency is %.1f km/L - consider driver training on economical driving", average))
	}

	return model.EfficiencyTrend{
		Trend:             trend,
		BestEfficiency:    round2(best),
		WorstEfficiency:   round2(worst),
		AverageEfficiency: round2(average),
		ImprovementRate:   round2(improvementRate),
		IsImproving:       trend == model.TrendImproving,
		Recommendations:   recommendations,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

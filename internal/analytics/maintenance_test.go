package analytics_test

import (
	"strings"
	"testing"
	"time"

	"fleet-analytics-service/internal/analytics"
	"fleet-analytics-service/internal/model"
)

func service(n int, odometer *float64) model.MaintenanceRecord {
	return model.MaintenanceRecord{Date: day(n), Odometer: odometer, IsService: true}
}

func TestPredictMaintenanceNoOdometerData(t *testing.T) {
	records := []model.MaintenanceRecord{
		service(1, nil),
		service(10, nil),
	}

	p := analytics.PredictMaintenance(records, 28000)
	if p.AverageKmInterval != 0 {
		t.Errorf("average_km_interval = %v, want 0", p.AverageKmInterval)
	}
	if p.NextServiceKm != nil {
		t.Errorf("next_service_km = %v, want nil", *p.NextServiceKm)
	}
	if len(p.Recommendations) == 0 || !strings.Contains(p.Recommendations[0], "odometer") {
		t.Errorf("expected an add-odometer-readings recommendation, got %v", p.Recommendations)
	}
}

func TestPredictMaintenanceSingleRecordDefaultInterval(t *testing.T) {
	p := analytics.PredictMaintenance([]model.MaintenanceRecord{service(1, floatPtr(20000))}, 28000)

	if p.AverageKmInterval != 5000 {
		t.Errorf("average_km_interval = %v, want default 5000", p.AverageKmInterval)
	}
	if p.NextServiceKm == nil || *p.NextServiceKm != 25000 {
		t.Errorf("next_service_km = %v, want 25000", p.NextServiceKm)
	}
	if p.KmUntilService != 0 {
		t.Errorf("km_until_service = %v, want 0 (clamped)", p.KmUntilService)
	}
	if len(p.OverdueServices) != 1 {
		t.Fatalf("overdue_services = %d entries, want 1", len(p.OverdueServices))
	}
	if p.OverdueServices[0].KmOverdue != 3000 {
		t.Errorf("km_overdue = %v, want 3000", p.OverdueServices[0].KmOverdue)
	}
	if p.NextServiceDue != nil {
		t.Errorf("next_service_due = %v, want nil with a single record", p.NextServiceDue)
	}
}

func TestPredictMaintenanceAveragesIntervals(t *testing.T) {
	records := []model.MaintenanceRecord{
		service(1, floatPtr(10000)),
		service(30, floatPtr(16000)),
		service(60, floatPtr(20000)),
	}

	p := analytics.PredictMaintenance(records, 21000)
	if p.AverageKmInterval != 5000 {
		t.Errorf("average_km_interval = %v, want (6000+4000)/2 = 5000", p.AverageKmInterval)
	}
	if p.NextServiceKm == nil || *p.NextServiceKm != 25000 {
		t.Errorf("next_service_km = %v, want 25000", p.NextServiceKm)
	}
	if p.KmUntilService != 4000 {
		t.Errorf("km_until_service = %v, want 4000", p.KmUntilService)
	}
	if len(p.OverdueServices) != 0 {
		t.Errorf("overdue_services = %v, want none", p.OverdueServices)
	}
	if p.NextServiceDue == nil {
		t.Fatal("next_service_due = nil, want a projected date")
	}
	// Interval deltas average ~172 km/day; 4000 km out lands roughly 3-4
	// weeks ahead.
	if p.NextServiceDue.Before(time.Now()) {
		t.Errorf("next_service_due = %v, want a future date", p.NextServiceDue)
	}
}

func TestPredictMaintenanceSkipsBadProjectionPairs(t *testing.T) {
	// Same-day duplicate entries produce a zero day delta; the projection
	// must skip them rather than divide by zero.
	records := []model.MaintenanceRecord{
		service(1, floatPtr(10000)),
		service(1, floatPtr(14000)),
	}

	p := analytics.PredictMaintenance(records, 15000)
	if p.NextServiceDue != nil {
		t.Errorf("next_service_due = %v, want nil when no usable rate pair exists", p.NextServiceDue)
	}
	if p.AverageKmInterval != 4000 {
		t.Errorf("average_km_interval = %v, want 4000", p.AverageKmInterval)
	}
}

func TestPredictMaintenanceRecommendationBands(t *testing.T) {
	cases := []struct {
		name            string
		currentOdometer float64
		wantPhrase      string
	}{
		{"overdue", 26000, "immediately"},
		{"due soon", 24600, "due soon"},
		{"plan ahead", 24100, "plan ahead"},
	}

	history := []model.MaintenanceRecord{
		service(1, floatPtr(10000)),
		service(40, floatPtr(15000)),
		service(80, floatPtr(20000)),
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := analytics.PredictMaintenance(history, tc.currentOdometer)
			joined := strings.Join(p.Recommendations, " | ")
			if !strings.Contains(joined, tc.wantPhrase) {
				t.Errorf("recommendations %q missing %q", joined, tc.wantPhrase)
			}
		})
	}
}

func TestPredictMaintenanceIntervalSanityFlags(t *testing.T) {
	t.Run("short interval", func(t *testing.T) {
		records := []model.MaintenanceRecord{
			service(1, floatPtr(10000)),
			service(20, floatPtr(11000)),
		}
		p := analytics.PredictMaintenance(records, 11500)
		joined := strings.Join(p.Recommendations, " | ")
		if !strings.Contains(joined, "short") {
			t.Errorf("recommendations %q missing short-interval flag", joined)
		}
	})

	t.Run("long interval", func(t *testing.T) {
		records := []model.MaintenanceRecord{
			service(1, floatPtr(10000)),
			service(300, floatPtr(30000)),
		}
		p := analytics.PredictMaintenance(records, 31000)
		joined := strings.Join(p.Recommendations, " | ")
		if !strings.Contains(joined, "long") {
			t.Errorf("recommendations %q missing long-interval flag", joined)
		}
	})
}

func TestPredictMaintenanceSortsByOdometer(t *testing.T) {
	// Records arrive date-ordered but with shuffled odometer values; the
	// predictor orders by odometer before computing deltas.
	records := []model.MaintenanceRecord{
		service(1, floatPtr(20000)),
		service(30, floatPtr(10000)),
		service(60, floatPtr(15000)),
	}

	p := analytics.PredictMaintenance(records, 20500)
	if p.AverageKmInterval != 5000 {
		t.Errorf("average_km_interval = %v, want 5000 after odometer sort", p.AverageKmInterval)
	}
	if p.NextServiceKm == nil || *p.NextServiceKm != 25000 {
		t.Errorf("next_service_km = %v, want 25000", p.NextServiceKm)
	}
}

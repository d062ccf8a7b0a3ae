package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-analytics-service/internal/analytics"
	"fleet-analytics-service/internal/model"
)

func TestResolveFullTank(t *testing.T) {
	cases := []struct {
		name       string
		isFullTank any
		fillType   string
		want       bool
	}{
		{"explicit bool true", true, "", true},
		{"explicit bool false", false, "", false},
		{"string true", "true", "", true},
		{"string false", "false", "", false},
		{"string true mixed case", "True", "", true},
		{"fill type full", nil, "full", true},
		{"fill type full tank legacy", nil, "Full Tank", true},
		{"fill type partial", nil, "partial", false},
		{"fill type partial mixed case", nil, "Partial", false},
		{"bool false but fill type full", false, "full", true},
		{"both absent defaults to full", nil, "", true},
		{"unrecognized values default to full", "yes", "topup", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := analytics.ResolveFullTank(tc.isFullTank, tc.fillType)
			if got != tc.want {
				t.Errorf("ResolveFullTank(%v, %q) = %v, want %v", tc.isFullTank, tc.fillType, got, tc.want)
			}
		})
	}
}

func TestNormalizeFuelRecord(t *testing.T) {
	vehicleID := uuid.New()
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("numeric strings are coerced", func(t *testing.T) {
		rec := analytics.NormalizeFuelRecord(vehicleID, model.RawFuelRecord{
			Date:     date,
			Liters:   "42.5",
			Cost:     "6800",
			Odometer: "120500",
			Station:  "  Shell Westlands ",
		})
		if rec.VehicleID != vehicleID {
			t.Errorf("vehicle id = %v, want %v", rec.VehicleID, vehicleID)
		}
		if rec.Liters != 42.5 {
			t.Errorf("liters = %v, want 42.5", rec.Liters)
		}
		if rec.Cost != 6800 {
			t.Errorf("cost = %v, want 6800", rec.Cost)
		}
		if rec.Odometer == nil || *rec.Odometer != 120500 {
			t.Errorf("odometer = %v, want 120500", rec.Odometer)
		}
		if rec.Station != "Shell Westlands" {
			t.Errorf("station = %q, want trimmed name", rec.Station)
		}
	})

	t.Run("missing values fall back", func(t *testing.T) {
		rec := analytics.NormalizeFuelRecord(vehicleID, model.RawFuelRecord{Date: date})
		if rec.Liters != 0 || rec.Cost != 0 {
			t.Errorf("liters/cost = %v/%v, want 0/0", rec.Liters, rec.Cost)
		}
		if rec.Odometer != nil {
			t.Errorf("odometer = %v, want nil", *rec.Odometer)
		}
		if !rec.IsFullTank {
			t.Error("absent fill type must default to full tank")
		}
	})

	t.Run("unparseable values fall back", func(t *testing.T) {
		rec := analytics.NormalizeFuelRecord(vehicleID, model.RawFuelRecord{
			Date:     date,
			Liters:   "forty",
			Cost:     struct{}{},
			Odometer: "n/a",
		})
		if rec.Liters != 0 || rec.Cost != 0 || rec.Odometer != nil {
			t.Errorf("got liters=%v cost=%v odometer=%v, want zero values", rec.Liters, rec.Cost, rec.Odometer)
		}
	})
}

func TestGroupByVehicle(t *testing.T) {
	v1 := uuid.New()
	v2 := uuid.New()
	records := []model.FuelRecord{
		{VehicleID: v1},
		{VehicleID: v2},
		{VehicleID: v1},
	}

	grouped := analytics.GroupByVehicle(records)
	if len(grouped) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grouped))
	}
	if len(grouped[v1]) != 2 || len(grouped[v2]) != 1 {
		t.Errorf("group sizes = %d/%d, want 2/1", len(grouped[v1]), len(grouped[v2]))
	}
}

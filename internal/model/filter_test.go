package model_test

import (
	"testing"
	"time"

	"fleet-analytics-service/internal/model"
)

func TestDateRangeClamp(t *testing.T) {
	t.Run("zero range gets the default span", func(t *testing.T) {
		rng := model.DateRange{}.Clamp(90, 730)
		if rng.To.IsZero() || rng.From.IsZero() {
			t.Fatal("clamp must fill both endpoints")
		}
		span := rng.To.Sub(rng.From)
		if span < 89*24*time.Hour || span > 91*24*time.Hour {
			t.Errorf("span = %v, want ~90 days", span)
		}
	})

	t.Run("inverted range is corrected", func(t *testing.T) {
		to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		rng := model.DateRange{From: to.AddDate(0, 0, 10), To: to}.Clamp(90, 730)
		if rng.To.Before(rng.From) {
			t.Errorf("range still inverted: %v..%v", rng.From, rng.To)
		}
	})

	t.Run("oversized range is capped", func(t *testing.T) {
		to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		rng := model.DateRange{From: to.AddDate(-10, 0, 0), To: to}.Clamp(90, 730)
		if rng.To.Sub(rng.From) > 730*24*time.Hour {
			t.Errorf("span = %v, want at most 730 days", rng.To.Sub(rng.From))
		}
	})
}

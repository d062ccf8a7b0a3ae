package model

import "time"

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Clamp fills missing endpoints with the default span and caps the range at
// maxDays, both measured in days.
func (r DateRange) Clamp(defaultDays, maxDays int) DateRange {
	if r.To.IsZero() {
		r.To = time.Now()
	}
	if r.From.IsZero() {
		r.From = r.To.AddDate(0, 0, -defaultDays)
	}
	if r.To.Before(r.From) {
		r.From = r.To.Add(-24 * time.Hour)
	}
	maxSpan := time.Duration(maxDays) * 24 * time.Hour
	if r.To.Sub(r.From) > maxSpan {
		r.From = r.To.Add(-maxSpan)
	}
	return r
}

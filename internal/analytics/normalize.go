// Package analytics implements the fuel-efficiency and cost computation core.
// Every function is pure: inputs are never mutated (sorting happens on
// copies), no I/O is performed, and data-quality problems surface as status
// values rather than errors.
package analytics

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleet-analytics-service/internal/model"
)

// NormalizeFuelRecord coerces a raw fill-up payload into the canonical
// record. Liters and cost fall back to 0 when missing or unparseable, the
// odometer reading stays nil, and the fill type is resolved from whichever
// legacy spelling the payload carries.
func NormalizeFuelRecord(vehicleID uuid.UUID, raw model.RawFuelRecord) model.FuelRecord {
	rec := model.FuelRecord{
		VehicleID:  vehicleID,
		Date:       raw.Date,
		Station:    strings.TrimSpace(raw.Station),
		IsFullTank: ResolveFullTank(raw.IsFullTank, raw.FillType),
	}
	if v, ok := toFloat(raw.Liters); ok {
		rec.Liters = v
	}
	if v, ok := toFloat(raw.Cost); ok {
		rec.Cost = v
	}
	if v, ok := toFloat(raw.Odometer); ok {
		rec.Odometer = &v
	}
	return rec
}

// ResolveFullTank maps the historical fill-type spellings onto one boolean.
// Priority: explicit true beats everything, then a "full" fillType, then an
// explicit false or "partial". Records carrying neither field predate the
// fill-type feature and are treated as full tanks; changing that default
// would shift historical efficiency figures.
func ResolveFullTank(isFullTank any, fillType string) bool {
	explicitFalse := false
	switch v := isFullTank.(type) {
	case bool:
		if v {
			return true
		}
		explicitFalse = true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			explicitFalse = true
		}
	}

	switch strings.ToLower(strings.TrimSpace(fillType)) {
	case "full", "full tank":
		return true
	case "partial":
		return false
	}

	return !explicitFalse
}

// toFloat coerces the value shapes the legacy store produced: JSON numbers,
// numeric strings, and the integer types a decoder may hand back.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// GroupByVehicle splits a mixed collection into per-vehicle slices. Grouping
// is an explicit step at the call site: Reconstruct only makes sense over one
// vehicle's records.
func GroupByVehicle(records []model.FuelRecord) map[uuid.UUID][]model.FuelRecord {
	grouped := make(map[uuid.UUID][]model.FuelRecord)
	for _, rec := range records {
		grouped[rec.VehicleID] = append(grouped[rec.VehicleID], rec)
	}
	return grouped
}

// GroupMaintenanceByVehicle is the maintenance-record counterpart of
// GroupByVehicle.
func GroupMaintenanceByVehicle(records []model.MaintenanceRecord) map[uuid.UUID][]model.MaintenanceRecord {
	grouped := make(map[uuid.UUID][]model.MaintenanceRecord)
	for _, rec := range records {
		grouped[rec.VehicleID] = append(grouped[rec.VehicleID], rec)
	}
	return grouped
}

func hasOdometer(reading *float64) bool {
	return reading != nil && *reading > 0
}

func hasDate(t time.Time) bool {
	return !t.IsZero()
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// FuelRecord is the canonical fill-up record. Legacy field spellings are
// resolved at ingestion (see analytics.NormalizeFuelRecord); everything past
// that boundary sees a single boolean fill-type.
type FuelRecord struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID  uuid.UUID `json:"vehicle_id" gorm:"type:uuid;index;not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	Liters     float64   `json:"liters"`
	Cost       float64   `json:"cost"`
	Odometer   *float64  `json:"odometer_reading,omitempty"`
	IsFullTank bool      `json:"is_full_tank"`
	Station    string    `json:"station,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (FuelRecord) TableName() string {
	return "fuel_records"
}

// RawFuelRecord is the ingestion shape. Numeric fields may arrive as numbers
// or numeric strings, and the fill type under either of its historical
// spellings: a boolean (or stringified boolean) "isFullTank", or a "fillType"
// enum with mixed casing.
type RawFuelRecord struct {
	Date     time.Time `json:"date" binding:"required"`
	Liters   any       `json:"liters"`
	Cost     any       `json:"cost"`
	Odometer any       `json:"odometerReading"`

	IsFullTank any    `json:"isFullTank"`
	FillType   string `json:"fillType"`

	Station string `json:"station"`
}

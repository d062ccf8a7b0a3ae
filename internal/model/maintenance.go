package model

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceRecord struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID       uuid.UUID `json:"vehicle_id" gorm:"type:uuid;index;not null"`
	Date            time.Time `json:"date" gorm:"index;not null"`
	Cost            float64   `json:"cost"`
	Description     string    `json:"description"`
	ServiceProvider string    `json:"service_provider,omitempty"`
	Odometer        *float64  `json:"odometer_reading,omitempty"`
	IsService       bool      `json:"is_service"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

type MaintenanceRecordInput struct {
	Date            time.Time `json:"date" binding:"required"`
	Cost            float64   `json:"cost"`
	Description     string    `json:"description" binding:"required"`
	ServiceProvider string    `json:"service_provider"`
	Odometer        *float64  `json:"odometer_reading"`
	IsService       bool      `json:"is_service"`
}

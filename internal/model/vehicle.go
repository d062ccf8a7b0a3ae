package model

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `json:"name" gorm:"not null"`
	PlateNumber     string    `json:"plate_number" gorm:"uniqueIndex;not null"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	Year            int       `json:"year"`
	FuelType        string    `json:"fuel_type"`
	CurrentOdometer float64   `json:"current_odometer"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

type VehicleInput struct {
	Name            string  `json:"name" binding:"required"`
	PlateNumber     string  `json:"plate_number" binding:"required"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	FuelType        string  `json:"fuel_type"`
	CurrentOdometer float64 `json:"current_odometer"`
	Notes           string  `json:"notes"`
}

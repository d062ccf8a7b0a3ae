package model

import (
	"time"

	"github.com/google/uuid"
)

// EfficiencyStatus classifies the data quality of a derived fuel record.
// Statuses are mutually exclusive; the UI maps them to badges.
type EfficiencyStatus string

const (
	StatusIncomplete              EfficiencyStatus = "incomplete"
	StatusNoPreviousData          EfficiencyStatus = "no_previous_data"
	StatusMissingCurrentOdometer  EfficiencyStatus = "missing_current_odometer"
	StatusMissingPreviousOdometer EfficiencyStatus = "missing_previous_odometer"
	StatusInvalidDistance         EfficiencyStatus = "invalid_distance"
	StatusComplete                EfficiencyStatus = "complete"
	StatusPartialFill             EfficiencyStatus = "partial_fill"
)

// DerivedFuelRecord is a FuelRecord annotated with the distance driven since
// the previous fill and the km/L efficiency, when the data allows computing
// them. Nil means "not computable", never zero.
type DerivedFuelRecord struct {
	FuelRecord
	DistanceSinceLastFuel *float64         `json:"distance_since_last_fuel"`
	FuelEfficiency        *float64         `json:"fuel_efficiency"`
	IsIncomplete          bool             `json:"is_incomplete"`
	IsPartialFill         bool             `json:"is_partial_fill"`
	EfficiencyStatus      EfficiencyStatus `json:"efficiency_status"`
}

// VehicleAnalytics is the aggregate rollup over one vehicle's records, or
// over a whole fleet when the caller merges per-vehicle derived records.
type VehicleAnalytics struct {
	TotalLiters       float64 `json:"total_liters"`
	TotalFuelCost     float64 `json:"total_fuel_cost"`
	FuelUpCount       int     `json:"fuel_up_count"`
	TotalDistance     float64 `json:"total_distance_km"`
	AverageEfficiency float64 `json:"average_efficiency"`
	BestEfficiency    float64 `json:"best_efficiency"`
	WorstEfficiency   float64 `json:"worst_efficiency"`

	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
	MaintenanceCount     int     `json:"maintenance_count"`
	TotalOperatingCost   float64 `json:"total_operating_cost"`
	CostPerKm            float64 `json:"cost_per_km"`
	CostPerLiter         float64 `json:"cost_per_liter"`

	CompleteRecords    int `json:"complete_records"`
	IncompleteRecords  int `json:"incomplete_records"`
	FullTankRecords    int `json:"full_tank_records"`
	PartialFillRecords int `json:"partial_fill_records"`
}

type VehicleReport struct {
	Vehicle   Vehicle             `json:"vehicle"`
	Analytics VehicleAnalytics    `json:"analytics"`
	Records   []DerivedFuelRecord `json:"records"`
	Range     DateRange           `json:"range"`
}

type VehicleSummary struct {
	VehicleID   uuid.UUID        `json:"vehicle_id"`
	Name        string           `json:"name"`
	PlateNumber string           `json:"plate_number"`
	Analytics   VehicleAnalytics `json:"analytics"`
}

type FleetAnalytics struct {
	Fleet        VehicleAnalytics `json:"fleet"`
	VehicleCount int              `json:"vehicle_count"`
	Vehicles     []VehicleSummary `json:"vehicles"`
	GeneratedFor DateRange        `json:"generated_for"`
}

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
	TrendNoData    TrendDirection = "no-data"
)

type EfficiencyTrend struct {
	Trend             TrendDirection `json:"trend"`
	BestEfficiency    float64        `json:"best_efficiency"`
	WorstEfficiency   float64        `json:"worst_efficiency"`
	AverageEfficiency float64        `json:"average_efficiency"`
	ImprovementRate   float64        `json:"improvement_rate"`
	IsImproving       bool           `json:"is_improving"`
	Recommendations   []string       `json:"recommendations"`
}

type OverdueService struct {
	NextServiceKm float64 `json:"next_service_km"`
	KmOverdue     float64 `json:"km_overdue"`
}

type MaintenancePrediction struct {
	AverageKmInterval float64          `json:"average_km_interval"`
	NextServiceKm     *float64         `json:"next_service_km"`
	NextServiceDue    *time.Time       `json:"next_service_due"`
	KmUntilService    float64          `json:"km_until_service"`
	OverdueServices   []OverdueService `json:"overdue_services"`
	Recommendations   []string         `json:"recommendations"`
}

type StationCost struct {
	Station         string  `json:"station"`
	FillCount       int     `json:"fill_count"`
	TotalLiters     float64 `json:"total_liters"`
	TotalCost       float64 `json:"total_cost"`
	AvgCostPerLiter float64 `json:"avg_cost_per_liter"`
}

type CostOptimization struct {
	FuelCostPercentage        float64       `json:"fuel_cost_percentage"`
	MaintenanceCostPercentage float64       `json:"maintenance_cost_percentage"`
	StationAnalysis           []StationCost `json:"station_analysis"`
	Recommendations           []string      `json:"recommendations"`
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-analytics-service/internal/analytics"
	"fleet-analytics-service/internal/model"
	"fleet-analytics-service/internal/repository"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
)

// AnalyticsService fetches raw records through the repositories and runs the
// pure computation core over them. Nothing computed here is persisted;
// every request recomputes from the latest records.
type AnalyticsService struct {
	vehicles     *repository.VehicleRepository
	fuel         *repository.FuelRepository
	maintenance  *repository.MaintenanceRepository
	defaultRange int
	maxRange     int
}

func NewAnalyticsService(
	vehicles *repository.VehicleRepository,
	fuel *repository.FuelRepository,
	maintenance *repository.MaintenanceRepository,
	defaultRange, maxRange int,
) *AnalyticsService {
	return &AnalyticsService{
		vehicles:     vehicles,
		fuel:         fuel,
		maintenance:  maintenance,
		defaultRange: defaultRange,
		maxRange:     maxRange,
	}
}

func (s *AnalyticsService) GetFleetAnalytics(ctx context.Context, rng model.DateRange) (*model.FleetAnalytics, error) {
	normalized := rng.Clamp(s.defaultRange, s.maxRange)

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	fuelRecords, err := s.fuel.ListAll(ctx, normalized)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.ListAll(ctx, normalized)
	if err != nil {
		return nil, err
	}

	fuelByVehicle := analytics.GroupByVehicle(fuelRecords)
	maintenanceByVehicle := analytics.GroupMaintenanceByVehicle(maintenanceRecords)

	result := &model.FleetAnalytics{
		VehicleCount: len(vehicles),
		Vehicles:     make([]model.VehicleSummary, 0, len(vehicles)),
		GeneratedFor: normalized,
	}

	var fleetDerived []model.DerivedFuelRecord
	for _, vehicle := range vehicles {
		derived := analytics.Reconstruct(fuelByVehicle[vehicle.ID])
		fleetDerived = append(fleetDerived, derived...)

		result.Vehicles = append(result.Vehicles, model.VehicleSummary{
			VehicleID:   vehicle.ID,
			Name:        vehicle.Name,
			PlateNumber: vehicle.PlateNumber,
			Analytics:   analytics.Aggregate(derived, maintenanceByVehicle[vehicle.ID]),
		})
	}

	result.Fleet = analytics.Aggregate(fleetDerived, maintenanceRecords)
	return result, nil
}

func (s *AnalyticsService) GetVehicleReport(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) (*model.VehicleReport, error) {
	normalized := rng.Clamp(s.defaultRange, s.maxRange)

	vehicle, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	fuelRecords, err := s.fuel.ListByVehicle(ctx, vehicleID, normalized)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.ListByVehicle(ctx, vehicleID, normalized)
	if err != nil {
		return nil, err
	}

	derived := analytics.Reconstruct(fuelRecords)

	return &model.VehicleReport{
		Vehicle:   *vehicle,
		Analytics: analytics.Aggregate(derived, maintenanceRecords),
		Records:   derived,
		Range:     normalized,
	}, nil
}

func (s *AnalyticsService) GetEfficiencyTrend(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) (*model.EfficiencyTrend, error) {
	normalized := rng.Clamp(s.defaultRange, s.maxRange)

	if _, err := s.vehicles.Get(ctx, vehicleID); err != nil {
		return nil, mapNotFound(err)
	}

	fuelRecords, err := s.fuel.ListByVehicle(ctx, vehicleID, normalized)
	if err != nil {
		return nil, err
	}

	derived := analytics.Reconstruct(fuelRecords)
	trend := analytics.AnalyzeTrend(analytics.EligibleForEfficiency(derived))
	return &trend, nil
}

// GetMaintenancePrediction projects the next service point. The vehicle's
// registry odometer is used unless the caller supplies an override (fresher
// reading from the field).
func (s *AnalyticsService) GetMaintenancePrediction(ctx context.Context, vehicleID uuid.UUID, odometerOverride *float64) (*model.MaintenancePrediction, error) {
	vehicle, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	history, err := s.maintenance.ListHistory(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	currentOdometer := vehicle.CurrentOdometer
	if odometerOverride != nil && *odometerOverride > 0 {
		currentOdometer = *odometerOverride
	}

	prediction := analytics.PredictMaintenance(history, currentOdometer)
	return &prediction, nil
}

func (s *AnalyticsService) GetCostOptimization(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) (*model.CostOptimization, error) {
	normalized := rng.Clamp(s.defaultRange, s.maxRange)

	if _, err := s.vehicles.Get(ctx, vehicleID); err != nil {
		return nil, mapNotFound(err)
	}

	fuelRecords, err := s.fuel.ListByVehicle(ctx, vehicleID, normalized)
	if err != nil {
		return nil, err
	}
	maintenanceRecords, err := s.maintenance.ListByVehicle(ctx, vehicleID, normalized)
	if err != nil {
		return nil, err
	}

	aggregate := analytics.Aggregate(analytics.Reconstruct(fuelRecords), maintenanceRecords)
	result := analytics.OptimizeCosts(aggregate, fuelRecords)
	return &result, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

package service

import (
	"context"

	"github.com/google/uuid"

	"fleet-analytics-service/internal/analytics"
	"fleet-analytics-service/internal/model"
	"fleet-analytics-service/internal/repository"
)

// RecordsService owns the registry and record-keeping surface: vehicles,
// fill-ups, maintenance. Legacy fuel payloads are normalized here, at the
// boundary, so the analytics core only ever sees canonical records.
type RecordsService struct {
	vehicles    *repository.VehicleRepository
	fuel        *repository.FuelRepository
	maintenance *repository.MaintenanceRepository
}

func NewRecordsService(
	vehicles *repository.VehicleRepository,
	fuel *repository.FuelRepository,
	maintenance *repository.MaintenanceRepository,
) *RecordsService {
	return &RecordsService{vehicles: vehicles, fuel: fuel, maintenance: maintenance}
}

func (s *RecordsService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *RecordsService) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return vehicle, nil
}

func (s *RecordsService) CreateVehicle(ctx context.Context, principal model.Principal, input model.VehicleInput) (*model.Vehicle, error) {
	if !principal.CanWrite() {
		return nil, ErrPermissionDenied
	}

	vehicle := &model.Vehicle{
		Name:            input.Name,
		PlateNumber:     input.PlateNumber,
		Make:            input.Make,
		Model:           input.Model,
		Year:            input.Year,
		FuelType:        input.FuelType,
		CurrentOdometer: input.CurrentOdometer,
		Notes:           input.Notes,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *RecordsService) UpdateVehicle(ctx context.Context, principal model.Principal, id uuid.UUID, input model.VehicleInput) (*model.Vehicle, error) {
	if !principal.CanWrite() {
		return nil, ErrPermissionDenied
	}

	vehicle, err := s.vehicles.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	vehicle.Name = input.Name
	vehicle.PlateNumber = input.PlateNumber
	vehicle.Make = input.Make
	vehicle.Model = input.Model
	vehicle.Year = input.Year
	vehicle.FuelType = input.FuelType
	vehicle.CurrentOdometer = input.CurrentOdometer
	vehicle.Notes = input.Notes

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *RecordsService) DeleteVehicle(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	if _, err := s.vehicles.Get(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.vehicles.Delete(ctx, id)
}

func (s *RecordsService) ListFuelRecords(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.FuelRecord, error) {
	if _, err := s.vehicles.Get(ctx, vehicleID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.fuel.ListByVehicle(ctx, vehicleID, rng)
}

// AddFuelRecord normalizes and stores a fill-up. A fresher odometer reading
// on the record also advances the vehicle's registry odometer.
func (s *RecordsService) AddFuelRecord(ctx context.Context, principal model.Principal, vehicleID uuid.UUID, raw model.RawFuelRecord) (*model.FuelRecord, error) {
	if !principal.CanWrite() {
		return nil, ErrPermissionDenied
	}

	vehicle, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	record := analytics.NormalizeFuelRecord(vehicleID, raw)
	if err := s.fuel.Create(ctx, &record); err != nil {
		return nil, err
	}

	if record.Odometer != nil && *record.Odometer > vehicle.CurrentOdometer {
		vehicle.CurrentOdometer = *record.Odometer
		if err := s.vehicles.Update(ctx, vehicle); err != nil {
			return nil, err
		}
	}

	return &record, nil
}

func (s *RecordsService) DeleteFuelRecord(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	return s.fuel.Delete(ctx, id)
}

func (s *RecordsService) ListMaintenanceRecords(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.MaintenanceRecord, error) {
	if _, err := s.vehicles.Get(ctx, vehicleID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.maintenance.ListByVehicle(ctx, vehicleID, rng)
}

func (s *RecordsService) AddMaintenanceRecord(ctx context.Context, principal model.Principal, vehicleID uuid.UUID, input model.MaintenanceRecordInput) (*model.MaintenanceRecord, error) {
	if !principal.CanWrite() {
		return nil, ErrPermissionDenied
	}

	vehicle, err := s.vehicles.Get(ctx, vehicleID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	record := &model.MaintenanceRecord{
		VehicleID:       vehicleID,
		Date:            input.Date,
		Cost:            input.Cost,
		Description:     input.Description,
		ServiceProvider: input.ServiceProvider,
		Odometer:        input.Odometer,
		IsService:       input.IsService,
	}
	if err := s.maintenance.Create(ctx, record); err != nil {
		return nil, err
	}

	if record.Odometer != nil && *record.Odometer > vehicle.CurrentOdometer {
		vehicle.CurrentOdometer = *record.Odometer
		if err := s.vehicles.Update(ctx, vehicle); err != nil {
			return nil, err
		}
	}

	return record, nil
}

func (s *RecordsService) DeleteMaintenanceRecord(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanWrite() {
		return ErrPermissionDenied
	}
	return s.maintenance.Delete(ctx, id)
}

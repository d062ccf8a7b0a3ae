package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-analytics-service/internal/model"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	query := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID)
	query = applyDateRange(query, rng)
	err := query.Order("date ASC").Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) ListAll(ctx context.Context, rng model.DateRange) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	query := applyDateRange(r.db.WithContext(ctx), rng)
	err := query.Order("date ASC").Find(&records).Error
	return records, err
}

// ListHistory returns a vehicle's full maintenance history regardless of the
// query range; interval prediction needs every service, not a window.
func (r *MaintenanceRepository) ListHistory(ctx context.Context, vehicleID uuid.UUID) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) Create(ctx context.Context, record *model.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MaintenanceRecord{}, "id = ?", id).Error
}

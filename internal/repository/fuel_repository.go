package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-analytics-service/internal/model"
)

type FuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) *FuelRepository {
	return &FuelRepository{db: db}
}

func (r *FuelRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID, rng model.DateRange) ([]model.FuelRecord, error) {
	var records []model.FuelRecord
	query := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID)
	query = applyDateRange(query, rng)
	err := query.Order("date ASC").Find(&records).Error
	return records, err
}

func (r *FuelRepository) ListAll(ctx context.Context, rng model.DateRange) ([]model.FuelRecord, error) {
	var records []model.FuelRecord
	query := applyDateRange(r.db.WithContext(ctx), rng)
	err := query.Order("date ASC").Find(&records).Error
	return records, err
}

func (r *FuelRepository) Create(ctx context.Context, record *model.FuelRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *FuelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FuelRecord{}, "id = ?", id).Error
}

func applyDateRange(query *gorm.DB, rng model.DateRange) *gorm.DB {
	if !rng.From.IsZero() {
		query = query.Where("date >= ?", rng.From)
	}
	if !rng.To.IsZero() {
		query = query.Where("date <= ?", rng.To)
	}
	return query
}

package db

import (
	"fmt"

	"gorm.io/gorm"

	"fleet-analytics-service/internal/model"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_vehicle_date ON fuel_records (vehicle_id, date);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_records_vehicle_date ON maintenance_records (vehicle_id, date);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_records_station ON fuel_records (station) WHERE station <> '';`,
}

func runMigrations(db *gorm.DB) error {
	// pgcrypto first: the uuid column defaults depend on gen_random_uuid().
	if err := db.Exec(migrationStatements[0]).Error; err != nil {
		return fmt.Errorf("migration 1 failed: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Vehicle{},
		&model.FuelRecord{},
		&model.MaintenanceRecord{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	for i, stmt := range migrationStatements[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+2, err)
		}
	}
	return nil
}

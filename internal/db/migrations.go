package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the registry database.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open registry database: %w", err)
	}
	return db, nil
}

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id                 BIGSERIAL PRIMARY KEY,
		plate              TEXT NOT NULL,
		make               TEXT,
		model              TEXT,
		color              TEXT,
		owner_name         TEXT,
		owner_contact      TEXT,
		preferred_language TEXT,
		attributes         JSONB,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_vehicles_plate ON vehicles(plate);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM vehicles WHERE plate = '7DZK421') THEN
			INSERT INTO vehicles (plate, make, model, color, owner_name, owner_contact, preferred_language, attributes)
			VALUES ('7DZK421', 'Honda', 'Civic', 'Blue', 'Maria Lopez', 'maria.lopez@example.com', 'Spanish', '{"registration": "current"}');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM vehicles WHERE plate = '4NQR882') THEN
			INSERT INTO vehicles (plate, make, model, color, owner_name, owner_contact, preferred_language, attributes)
			VALUES ('4NQR882', 'Toyota', 'Camry', 'Silver', 'James Carter', 'james.carter@example.com', 'English', '{"registration": "current"}');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM vehicles WHERE plate = '9KXT305') THEN
			INSERT INTO vehicles (plate, make, model, color, owner_name, owner_contact, preferred_language, attributes)
			VALUES ('9KXT305', 'Ford', 'F-150', 'Red', 'Linh Tran', 'linh.tran@example.com', 'Vietnamese', '{"registration": "expired"}');
		END IF;
	END
	$$;`,
}

// Migrate creates the registry schema and seeds a few sample vehicles
// so a fresh environment has registered plates to match against.
func Migrate(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

package db

import (
	"signalboard/internal/models"
)

// AutoMigrate keeps the read models in sync with the store schema. Both
// tables are populated by the external signal-generation pipeline; migration
// here only ensures the columns this service reads exist.
func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Stock{},
		&models.Signal{},
	)
}

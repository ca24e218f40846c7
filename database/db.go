package database

import (
	"github.com/powerman/structlog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Hasnainlakhani01/business-management/models"
)

var log = structlog.New()

// SetupDatabaseConnection opens (creating on first run) the local sqlite
// database at path and migrates the schema.
func SetupDatabaseConnection(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Supplier{},
		&models.Customer{},
		&models.Purchase{},
		&models.Sale{},
		&models.Payment{},
		&models.Receipt{},
	)
	if err != nil {
		return nil, err
	}

	log.Info("database ready", "file", path)
	return db, nil
}

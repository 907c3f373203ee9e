package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Juls010/bluvi-backend/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates the account, catalog, association and photo tables,
// plus the Casbin policy table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBInterest{},
		&repositories.DBFeature{},
		&repositories.DBGender{},
		&repositories.DBPreference{},
		&repositories.DBCommunicationStyle{},
		&repositories.DBUserInterest{},
		&repositories.DBUserFeature{},
		&repositories.DBPhoto{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	// The adapter creates the casbin_rule table on first use.
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}

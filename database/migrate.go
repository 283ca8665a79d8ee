package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"modelboard_backend/internal/config"
	"modelboard_backend/internal/logger"
	"modelboard_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
// TranslateError turns Postgres unique violations into
// gorm.ErrDuplicatedKey, which the registration dedup path relies on.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the three directory tables. The unique
// phone indexes declared on the profile models are part of the correctness
// story: they close the check-then-insert race on registration.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.ModelProfile{},
		&models.PhotographerProfile{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	logger.Info("AutoMigrate finished")
	return nil
}

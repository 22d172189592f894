package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (once) the GORM connection from config. Dialect
// errors are translated so duplicate-key inserts surface as
// gorm.ErrDuplicatedKey.
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

// AutoMigrate creates or updates every table. IDs default to
// uuid_generate_v4(), so the uuid-ossp extension must exist first.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Skill{},
		&models.Notification{},
		&models.EmailVerification{},
		&models.AccountRecovery{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}

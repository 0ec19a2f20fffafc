package db

import (
	"fmt"
	"time"

	"portfolio-api/internal/db/migrations"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres database behind dsn, configures the pool and brings the
// schema up to date.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Gorm(),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying *sql.DB instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs every migration that has no MigrationRecord yet, each in its own transaction.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return runMigrations(db, migrations.GetMigrations())
}

func runMigrations(db *gorm.DB, migrationsList []migrations.Migration) error {
	for _, migration := range migrationsList {
		var count int64
		if err := db.Model(&models.MigrationRecord{}).Where("name = ?", migration.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			continue
		}

		logger.LogEvent(logrus.InfoLevel, "Running migration", logrus.Fields{"migration": migration.Name})

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Run(tx); err != nil {
				return err
			}
			return tx.Create(&models.MigrationRecord{Name: migration.Name}).Error
		})
		if err != nil {
			return fmt.Errorf("migration '%s' failed: %w", migration.Name, err)
		}
	}
	return nil
}

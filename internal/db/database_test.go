package db

import (
	"errors"
	"testing"

	"portfolio-api/internal/db/migrations"
	"portfolio-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestMigrateCreatesSchemaOnce(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&models.MigrationRecord{}).Count(&count).Error)
	assert.Equal(t, int64(len(migrations.GetMigrations())), count)

	for _, table := range []interface{}{
		&models.Admin{}, &models.SkillCategory{}, &models.Skill{}, &models.Project{},
		&models.Experience{}, &models.Profile{}, &models.ContactMessage{}, &models.AuditLog{},
	} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestRunMigrationsRollsBackFailure(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, db.AutoMigrate(&models.MigrationRecord{}))

	err := runMigrations(db, []migrations.Migration{
		{Name: "Broken", Run: func(*gorm.DB) error { return errors.New("boom") }},
	})
	assert.ErrorContains(t, err, "migration 'Broken' failed")

	var count int64
	require.NoError(t, db.Model(&models.MigrationRecord{}).Where("name = ?", "Broken").Count(&count).Error)
	assert.Zero(t, count)
}

package migrations

import (
	"portfolio-api/internal/models"

	"gorm.io/gorm"
)

type Migration struct {
	Name string
	Run  func(*gorm.DB) error
}

// GetMigrations returns the schema history in order. Append only; names are recorded.
func GetMigrations() []Migration {
	return []Migration{
		{
			Name: "CreateAdminsTable",
			Run: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.Admin{})
			},
		},
		{
			Name: "CreateContentTables",
			Run: func(db *gorm.DB) error {
				return db.AutoMigrate(
					&models.SkillCategory{},
					&models.Skill{},
					&models.Project{},
					&models.Experience{},
					&models.Profile{},
				)
			},
		},
		{
			Name: "CreateContactMessagesTable",
			Run: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.ContactMessage{})
			},
		},
		{
			Name: "CreateAuditLogsTable",
			Run: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.AuditLog{})
			},
		},
	}
}

package models

import "time"

// MigrationRecord keeps track of which migrations have been run
type MigrationRecord struct {
	ID    uint      `gorm:"primaryKey"`
	Name  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	RanAt time.Time `gorm:"autoCreateTime"`
}

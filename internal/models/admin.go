package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Admin is the single privileged identity allowed to change site content.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
	Name      string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Admin) BeforeSave(tx *gorm.DB) error {
	a.Email = strings.TrimSpace(a.Email)
	return nil
}

func (Admin) TableName() string {
	return "admins"
}

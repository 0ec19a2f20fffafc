package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type ExperienceType string

const (
	ExperienceWork          ExperienceType = "WORK"
	ExperienceInternship    ExperienceType = "INTERNSHIP"
	ExperienceEducation     ExperienceType = "EDUCATION"
	ExperienceCertification ExperienceType = "CERTIFICATION"
)

var ExperienceTypes = []ExperienceType{
	ExperienceWork,
	ExperienceInternship,
	ExperienceEducation,
	ExperienceCertification,
}

// ParseExperienceType accepts any letter case.
func ParseExperienceType(s string) (ExperienceType, bool) {
	t := ExperienceType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range ExperienceTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

type Experience struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Company     string         `gorm:"type:varchar(255);not null" json:"company"`
	Location    *string        `gorm:"type:varchar(255)" json:"location"`
	StartDate   time.Time      `gorm:"not null" json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	Description *string        `gorm:"type:text" json:"description"`
	Type        ExperienceType `gorm:"type:varchar(32);not null;default:WORK;index" json:"type"`
	Order       int            `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.Type == "" {
		e.Type = ExperienceWork
	}
	return nil
}

func (Experience) TableName() string {
	return "experiences"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type AboutCard struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ProfileID is the primary key of the one profile row.
const ProfileID uint = 1

// Profile is the singleton record behind the public landing page.
type Profile struct {
	ID                 uint                           `gorm:"primaryKey" json:"id"`
	NameFirst          string                         `gorm:"type:varchar(255)" json:"nameFirst"`
	NameSecond         string                         `gorm:"type:varchar(255)" json:"nameSecond"`
	Roles              datatypes.JSONSlice[string]    `json:"roles"`
	Tagline            string                         `gorm:"type:text" json:"tagline"`
	Bio                string                         `gorm:"type:text" json:"bio"`
	Location           string                         `gorm:"type:varchar(255)" json:"location"`
	Email              string                         `gorm:"type:varchar(255)" json:"email"`
	Degree             string                         `gorm:"type:varchar(255)" json:"degree"`
	FreelanceAvailable bool                           `gorm:"not null;default:false" json:"freelanceAvailable"`
	OpenToWork         bool                           `gorm:"not null;default:false" json:"openToWork"`
	ResumeURL          *string                        `gorm:"type:varchar(512)" json:"resumeUrl"`
	GithubURL          *string                        `gorm:"type:varchar(512)" json:"githubUrl"`
	LinkedinURL        *string                        `gorm:"type:varchar(512)" json:"linkedinUrl"`
	TwitterURL         *string                        `gorm:"type:varchar(512)" json:"twitterUrl"`
	InstagramURL       *string                        `gorm:"type:varchar(512)" json:"instagramUrl"`
	SiteTitle          string                         `gorm:"type:varchar(255)" json:"siteTitle"`
	SiteDescription    string                         `gorm:"type:text" json:"siteDescription"`
	AboutCards         datatypes.JSONSlice[AboutCard] `json:"aboutCards"`
	SkillsTagline      string                         `gorm:"type:text" json:"skillsTagline"`
	ResumeTagline      string                         `gorm:"type:text" json:"resumeTagline"`
	ProjectsTagline    string                         `gorm:"type:text" json:"projectsTagline"`
	ContactIntro       string                         `gorm:"type:text" json:"contactIntro"`
	CreatedAt          time.Time                      `json:"createdAt"`
	UpdatedAt          time.Time                      `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}

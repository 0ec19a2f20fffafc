package models

import "time"

type SkillCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Icon      string    `gorm:"type:varchar(100);not null" json:"icon"`
	Color     string    `gorm:"type:varchar(100);not null" json:"color"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	Skills    []Skill   `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Skill struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"categoryId"`
}

func (SkillCategory) TableName() string {
	return "skill_categories"
}

func (Skill) TableName() string {
	return "skills"
}

// SkillsFromNames builds unsaved skills for a category.
func SkillsFromNames(names []string) []Skill {
	skills := make([]Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, Skill{Name: name})
	}
	return skills
}

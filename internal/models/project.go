package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Tech        datatypes.JSONSlice[string] `json:"tech"`
	Github      *string                     `gorm:"type:varchar(512)" json:"github"`
	LiveURL     *string                     `gorm:"type:varchar(512)" json:"liveUrl"`
	Image       *string                     `gorm:"type:varchar(512)" json:"image"`
	Featured    bool                        `gorm:"not null;default:false;index" json:"featured"`
	Order       int                         `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Project) TableName() string {
	return "projects"
}

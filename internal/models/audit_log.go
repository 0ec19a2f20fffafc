package models

import (
	"time"
)

type AuditAction string

const (
	AuditCreate   AuditAction = "create"
	AuditUpdate   AuditAction = "update"
	AuditDelete   AuditAction = "delete"
	AuditMarkRead AuditAction = "mark_read"
)

type AuditLog struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	AdminID    uint        `gorm:"index" json:"adminId"`
	Action     AuditAction `gorm:"type:varchar(32);not null" json:"action"`
	EntityType string      `gorm:"type:varchar(64);not null" json:"entityType"`
	EntityID   string      `gorm:"type:varchar(64)" json:"entityId"`
	Details    string      `gorm:"type:text" json:"details"`
	Timestamp  time.Time   `gorm:"not null;index" json:"timestamp"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

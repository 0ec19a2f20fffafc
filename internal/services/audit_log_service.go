package services

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/logger"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type AuditLogService interface {
	GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error)
	CreateAuditLog(ctx context.Context, adminID uint, action models.AuditAction, entityType, entityID, details string) error
	// Record logs a mutation made by the admin attached to ctx. Failures are logged, not returned.
	Record(ctx context.Context, action models.AuditAction, entityType string, entityID uint, details string)
}

type auditLogService struct {
	auditLogRepo repository.AuditLogRepository
	now          func() time.Time
}

func NewAuditLogService(auditLogRepo repository.AuditLogRepository) AuditLogService {
	return &auditLogService{
		auditLogRepo: auditLogRepo,
		now:          time.Now,
	}
}

const (
	DefaultAuditPageSize = 20
	MaxAuditPageSize     = 100
)

func (s *auditLogService) GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultAuditPageSize
	}
	if pageSize > MaxAuditPageSize {
		pageSize = MaxAuditPageSize
	}
	return s.auditLogRepo.ListAuditLogs(ctx, page, pageSize)
}

func (s *auditLogService) CreateAuditLog(ctx context.Context, adminID uint, action models.AuditAction, entityType, entityID, details string) error {
	log := &models.AuditLog{
		AdminID:    adminID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  s.now(),
	}
	return s.auditLogRepo.CreateAuditLog(ctx, log)
}

func (s *auditLogService) Record(ctx context.Context, action models.AuditAction, entityType string, entityID uint, details string) {
	var adminID uint
	if admin, ok := AdminFromContext(ctx); ok {
		adminID = admin.ID
	}

	err := s.CreateAuditLog(ctx, adminID, action, entityType, fmt.Sprint(entityID), details)
	if err != nil {
		logger.Logger.WithFields(logrus.Fields{
			"error":       err,
			"admin":       adminID,
			"entity_type": entityType,
			"entity_id":   entityID,
		}).Error("Failed to write audit log")
	}
}

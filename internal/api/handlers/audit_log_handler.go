package handlers

import (
	"net/http"
	"strconv"

	"portfolio-api/internal/services"
)

type AuditLogHandler struct {
	auditLogService services.AuditLogService
}

func NewAuditLogHandler(auditLogService services.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: auditLogService,
	}
}

func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = services.DefaultAuditPageSize
	}
	if pageSize > services.MaxAuditPageSize {
		pageSize = services.MaxAuditPageSize
	}

	logs, total, err := h.auditLogService.GetAuditLogs(ctx, page, pageSize)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"logs":     logs,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	}

	respondWithJSON(w, http.StatusOK, response)
}

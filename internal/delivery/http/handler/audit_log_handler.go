package handler

import (
	"net/http"
	"strconv"

	"ime-admin-service/internal/usecase"
	"ime-admin-service/pkg/response"
)

type AuditLogHandler struct {
	auditUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditUsecase: auditUsecase,
	}
}

func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.auditUsecase.List(r.Context(), limit, offset)
	if err != nil {
		response.FromError(w, err, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved", logs)
}

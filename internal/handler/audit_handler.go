package handler

import (
	"github.com/gin-gonic/gin"

	"gstlens/internal/service"
)

// AuditHandler handles catalog audit endpoints.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// RunAudit handles GET /api/v1/catalog/audit
func (h *AuditHandler) RunAudit(c *gin.Context) {
	audit, err := h.auditService.RunAudit(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, audit)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstlens/internal/domain"
	"gstlens/internal/service"
)

// AnalysisHandler handles bill reconciliation endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeBill handles POST /api/v1/bills/analyze. The body is a raw
// extracted bill record; missing numeric fields decode to 0 and missing
// strings to "", which the engine treats as extraction noise rather than
// a client error.
func (h *AnalysisHandler) AnalyzeBill(c *gin.Context) {
	var raw domain.RawExtractedBill
	if err := c.ShouldBindJSON(&raw); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "request body must be a JSON bill record")
		return
	}

	result, err := h.analysisService.AnalyzeBill(c.Request.Context(), &raw)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

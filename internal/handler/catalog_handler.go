package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gstlens/internal/domain"
	"gstlens/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// CatalogHandler handles rate catalog and tax calculation endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListItems handles GET /api/v1/catalog/items
func (h *CatalogHandler) ListItems(c *gin.Context) {
	limit := parseIntQuery(c, "limit", defaultListLimit)
	offset := parseIntQuery(c, "offset", 0)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.catalogService.List(c.Request.Context(), limit, offset)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, items, PagMeta{Count: len(items), Offset: offset, Limit: limit})
}

// GetByHSN handles GET /api/v1/catalog/items/:hsn
func (h *CatalogHandler) GetByHSN(c *gin.Context) {
	item, err := h.catalogService.GetByHSN(c.Request.Context(), c.Param("hsn"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Search handles GET /api/v1/catalog/search?q=...&category=...&limit=...
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_QUERY", "query parameter 'q' is required")
		return
	}
	limit := parseIntQuery(c, "limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}

	items, err := h.catalogService.Search(c.Request.Context(), query, c.Query("category"), limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// Categories handles GET /api/v1/catalog/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, categories)
}

// ItemsByRate handles GET /api/v1/catalog/rate/:rate
func (h *CatalogHandler) ItemsByRate(c *gin.Context) {
	rate, err := strconv.ParseFloat(c.Param("rate"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_RATE", "rate must be a number")
		return
	}

	items, err := h.catalogService.ItemsByRate(c.Request.Context(), rate)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, items)
}

// Stats handles GET /api/v1/catalog/stats
func (h *CatalogHandler) Stats(c *gin.Context) {
	stats, err := h.catalogService.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// CalculateTax handles POST /api/v1/tax/calculate
func (h *CatalogHandler) CalculateTax(c *gin.Context) {
	var req domain.TaxCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "request body must be a JSON tax calculation request")
		return
	}

	calc, err := h.catalogService.CalculateTax(c.Request.Context(), &req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, calc)
}

// CalculateTaxBulk handles POST /api/v1/tax/calculate/bulk
func (h *CatalogHandler) CalculateTaxBulk(c *gin.Context) {
	var body struct {
		Items []domain.TaxCalculationRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "request body must contain an 'items' array")
		return
	}

	results, err := h.catalogService.CalculateTaxBulk(c.Request.Context(), body.Items)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, results)
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

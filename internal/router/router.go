package router

import (
	"github.com/gin-gonic/gin"

	"gstlens/internal/handler"
	"gstlens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	analysisH *handler.AnalysisHandler,
	catalogH *handler.CatalogHandler,
	auditH *handler.AuditHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Bill reconciliation
	bills := v1.Group("/bills")
	bills.POST("/analyze", analysisH.AnalyzeBill)

	// Rate catalog
	catalog := v1.Group("/catalog")
	catalog.GET("/items", catalogH.ListItems)
	catalog.GET("/items/:hsn", catalogH.GetByHSN)
	catalog.GET("/search", catalogH.Search)
	catalog.GET("/categories", catalogH.Categories)
	catalog.GET("/rate/:rate", catalogH.ItemsByRate)
	catalog.GET("/stats", catalogH.Stats)
	catalog.GET("/audit", auditH.RunAudit)

	// Tax calculation
	tax := v1.Group("/tax")
	tax.POST("/calculate", catalogH.CalculateTax)
	tax.POST("/calculate/bulk", catalogH.CalculateTaxBulk)

	return r
}

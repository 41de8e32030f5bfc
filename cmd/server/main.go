package main

import (
	"fmt"
	"log"

	"gstlens/internal/config"
	"gstlens/internal/handler"
	"gstlens/internal/recon"
	"gstlens/internal/repository/postgres"
	"gstlens/internal/router"
	"gstlens/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	catalogRepo := postgres.NewCatalogRepo(db)
	auditRepo := postgres.NewCatalogAuditRepo(db)

	// Initialize services
	analysisSvc := service.NewAnalysisService(catalogRepo, recon.Config{
		DefaultGSTRate: cfg.Analysis.DefaultGSTRate,
	})
	catalogSvc := service.NewCatalogService(catalogRepo)
	auditSvc := service.NewAuditService(auditRepo)

	// Initialize handlers
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	auditH := handler.NewAuditHandler(auditSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(analysisH, catalogH, auditH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

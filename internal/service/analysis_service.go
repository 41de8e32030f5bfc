package service

import (
	"context"
	"fmt"

	"gstlens/internal/domain"
	"gstlens/internal/port"
	"gstlens/internal/recon"
)

// AnalysisService reconciles extracted bills against the rate catalog.
type AnalysisService interface {
	AnalyzeBill(ctx context.Context, raw *domain.RawExtractedBill) (*domain.BillAnalysis, error)
}

type analysisService struct {
	analyzer *recon.Analyzer
}

// NewAnalysisService creates a new AnalysisService over the given
// catalog.
func NewAnalysisService(catalog port.CatalogLookup, cfg recon.Config) AnalysisService {
	return &analysisService{analyzer: recon.NewAnalyzer(catalog, cfg)}
}

func (s *analysisService) AnalyzeBill(ctx context.Context, raw *domain.RawExtractedBill) (*domain.BillAnalysis, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: bill record required", domain.ErrInvalidInput)
	}
	// The engine never fails on data quality; bad numbers surface as
	// warnings and reduced confidence in the result itself.
	return s.analyzer.Analyze(ctx, raw), nil
}

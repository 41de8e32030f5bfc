// Package recon implements the GST bill reconciliation engine: it
// resolves each extracted line item to its correct GST rate, computes
// the tax the bill should have charged, cross-checks the extraction's
// arithmetic, and reports the signed discrepancy with a confidence
// score.
//
// The engine is a pure, synchronous, single pass over one bill. It holds
// no mutable state, performs no I/O beyond read-only catalog lookups,
// and never fails on bad data: data-quality problems become warnings and
// reduced confidence, because the upstream extractor is known to be
// imperfect and the goal is flagging for human review.
package recon

import (
	"context"

	"gstlens/internal/domain"
	"gstlens/internal/port"
)

// Config carries the engine's tunables. Passed at construction; there is
// no package-level configuration.
type Config struct {
	// DefaultGSTRate applies when neither the catalog nor the keyword
	// table can classify an item.
	DefaultGSTRate float64
}

// Analyzer orchestrates one reconciliation pass: normalize the items,
// validate the extraction, calculate the correct tax, build the report.
type Analyzer struct {
	normalizer *LineItemNormalizer
}

// NewAnalyzer builds an engine over the given rate catalog. The catalog
// may be nil, in which case every item resolves via the keyword table or
// the default rate.
func NewAnalyzer(catalog port.CatalogLookup, cfg Config) *Analyzer {
	resolver := NewRateResolver(catalog, cfg.DefaultGSTRate)
	return &Analyzer{normalizer: NewLineItemNormalizer(resolver)}
}

// Analyze reconciles one extracted bill. Identical input against
// identical catalog state produces an identical result; the analysis is
// deterministic and safe to run concurrently from multiple goroutines.
func (a *Analyzer) Analyze(ctx context.Context, raw *domain.RawExtractedBill) *domain.BillAnalysis {
	items := a.normalizer.Normalize(ctx, raw.Items)
	confidence, warnings := ValidateConsistency(raw, items)
	calcGST, calcCGST, calcSGST := CalculateCorrectGST(items, raw.Subtotal)
	return BuildReport(raw, items, calcGST, calcCGST, calcSGST, confidence, warnings)
}

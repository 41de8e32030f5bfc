package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"gstlens/internal/domain"
	"gstlens/internal/port"
)

// uncategorizedWarnLimit is how many uncategorized items the audit
// tolerates before the category check degrades to a warning.
const uncategorizedWarnLimit = 100

// maxIssueSamples caps the per-check issue list; full counts are still
// reported in the check message.
const maxIssueSamples = 10

// AuditService runs quality checks over the rate catalog.
type AuditService interface {
	RunAudit(ctx context.Context) (*domain.CatalogAudit, error)
}

type auditService struct {
	repo port.CatalogAuditRepository
	now  func() time.Time
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(repo port.CatalogAuditRepository) AuditService {
	return &auditService{repo: repo, now: time.Now}
}

// RunAudit loads the full catalog and runs every check. The health score
// counts a pass as full credit and a warning as half:
// (passed + 0.5×warned) / total × 100.
func (s *auditService) RunAudit(ctx context.Context) (*domain.CatalogAudit, error) {
	items, err := s.repo.AllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog for audit: %w", err)
	}

	checks := []domain.AuditCheck{
		checkCompleteness(items),
		checkHSNFormat(items),
		checkRateValidity(items),
		checkDuplicates(items),
		checkCategoryCoverage(items),
		checkRateConsistency(items),
	}

	summary := domain.AuditSummary{Total: len(checks)}
	for _, c := range checks {
		switch c.Status {
		case domain.AuditPass:
			summary.Passed++
		case domain.AuditWarn:
			summary.Warned++
		case domain.AuditFail:
			summary.Failed++
		}
	}

	score := 0.0
	if summary.Total > 0 {
		score = (float64(summary.Passed) + 0.5*float64(summary.Warned)) / float64(summary.Total) * 100
	}

	return &domain.CatalogAudit{
		GeneratedAt: s.now().UTC(),
		Checks:      checks,
		Statistics:  buildStats(items),
		Summary:     summary,
		HealthScore: math.Round(score*100) / 100,
	}, nil
}

func checkCompleteness(items []domain.CatalogItem) domain.AuditCheck {
	var missingCode, missingName, missingRate int
	for _, it := range items {
		if (it.HSNCode == nil || *it.HSNCode == "") && (it.SACCode == nil || *it.SACCode == "") {
			missingCode++
		}
		if it.ItemName == "" {
			missingName++
		}
		if it.GSTRate < 0 {
			missingRate++
		}
	}

	check := domain.AuditCheck{Name: "data_completeness", Status: domain.AuditPass}
	if missingCode > 0 {
		check.Issues = append(check.Issues, fmt.Sprintf("%d items missing HSN/SAC code", missingCode))
	}
	if missingName > 0 {
		check.Issues = append(check.Issues, fmt.Sprintf("%d items missing item name", missingName))
	}
	if missingRate > 0 {
		check.Issues = append(check.Issues, fmt.Sprintf("%d items with negative GST rate", missingRate))
	}
	if len(check.Issues) > 0 {
		check.Status = domain.AuditWarn
	}
	return check
}

// HSN codes are 2, 4, 6 or 8 digit numeric strings; SAC codes are 6
// digits but stored in the same shape, so the same rule applies.
func checkHSNFormat(items []domain.CatalogItem) domain.AuditCheck {
	var invalid []string
	for _, it := range items {
		for _, code := range []*string{it.HSNCode, it.SACCode} {
			if code == nil || *code == "" {
				continue
			}
			if !allDigits(*code) {
				invalid = append(invalid, fmt.Sprintf("%s: non-numeric", *code))
			} else if l := len(*code); l != 2 && l != 4 && l != 6 && l != 8 {
				invalid = append(invalid, fmt.Sprintf("%s: invalid length", *code))
			}
		}
	}

	check := domain.AuditCheck{Name: "hsn_code_validity", Status: domain.AuditPass}
	if len(invalid) > 0 {
		check.Status = domain.AuditFail
		check.Message = fmt.Sprintf("%d invalid codes", len(invalid))
		check.Issues = sampleIssues(invalid)
	}
	return check
}

func checkRateValidity(items []domain.CatalogItem) domain.AuditCheck {
	var invalid []string
	for _, it := range items {
		valid := false
		for _, slab := range domain.KnownSlabRates {
			if it.GSTRate == slab {
				valid = true
				break
			}
		}
		if !valid {
			invalid = append(invalid, fmt.Sprintf("%s: rate %g%% is not a GST slab", it.ItemName, it.GSTRate))
		}
	}

	check := domain.AuditCheck{Name: "rate_validity", Status: domain.AuditPass}
	if len(invalid) > 0 {
		check.Status = domain.AuditWarn
		check.Message = fmt.Sprintf("%d items on non-slab rates", len(invalid))
		check.Issues = sampleIssues(invalid)
	}
	return check
}

func checkDuplicates(items []domain.CatalogItem) domain.AuditCheck {
	seen := map[string]int{}
	for _, it := range items {
		if it.HSNCode != nil && *it.HSNCode != "" {
			seen[*it.HSNCode]++
		}
	}
	var dups []string
	for code, n := range seen {
		if n > 1 {
			dups = append(dups, fmt.Sprintf("%s appears %d times", code, n))
		}
	}
	sort.Strings(dups)

	check := domain.AuditCheck{Name: "duplicates", Status: domain.AuditPass}
	if len(dups) > 0 {
		check.Status = domain.AuditWarn
		check.Message = fmt.Sprintf("%d duplicated HSN codes", len(dups))
		check.Issues = sampleIssues(dups)
	}
	return check
}

func checkCategoryCoverage(items []domain.CatalogItem) domain.AuditCheck {
	uncategorized := 0
	for _, it := range items {
		if it.ItemCategory == "" {
			uncategorized++
		}
	}

	check := domain.AuditCheck{
		Name:    "category_coverage",
		Status:  domain.AuditPass,
		Message: fmt.Sprintf("%d uncategorized items", uncategorized),
	}
	if uncategorized >= uncategorizedWarnLimit {
		check.Status = domain.AuditWarn
	}
	return check
}

// The rate components must agree with each other: CGST+SGST=GST,
// IGST=GST, and the intrastate split must be even.
func checkRateConsistency(items []domain.CatalogItem) domain.AuditCheck {
	const tol = 0.01
	var bad []string
	for _, it := range items {
		if it.CGSTRate != 0 && it.SGSTRate != 0 && math.Abs(it.CGSTRate+it.SGSTRate-it.GSTRate) > tol {
			bad = append(bad, fmt.Sprintf("%s: CGST+SGST != GST", it.ItemName))
		}
		if it.IGSTRate != 0 && math.Abs(it.IGSTRate-it.GSTRate) > tol {
			bad = append(bad, fmt.Sprintf("%s: IGST != GST", it.ItemName))
		}
		if it.CGSTRate != 0 && it.SGSTRate != 0 && math.Abs(it.CGSTRate-it.SGSTRate) > tol {
			bad = append(bad, fmt.Sprintf("%s: CGST != SGST", it.ItemName))
		}
	}

	check := domain.AuditCheck{Name: "rate_consistency", Status: domain.AuditPass}
	if len(bad) > 0 {
		check.Status = domain.AuditFail
		check.Message = fmt.Sprintf("%d inconsistent rate splits", len(bad))
		check.Issues = sampleIssues(bad)
	}
	return check
}

func buildStats(items []domain.CatalogItem) domain.CatalogStats {
	byRate := map[float64]int{}
	byCategory := map[string]int{}
	for _, it := range items {
		byRate[it.GSTRate]++
		if it.ItemCategory != "" {
			byCategory[it.ItemCategory]++
		}
	}

	stats := domain.CatalogStats{TotalItems: len(items)}
	for rate, n := range byRate {
		stats.ItemsByRate = append(stats.ItemsByRate, domain.RateBucket{GSTRate: rate, Count: n})
	}
	sort.Slice(stats.ItemsByRate, func(i, j int) bool {
		return stats.ItemsByRate[i].GSTRate < stats.ItemsByRate[j].GSTRate
	})
	for cat, n := range byCategory {
		stats.TopCategories = append(stats.TopCategories, domain.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(stats.TopCategories, func(i, j int) bool {
		a, b := stats.TopCategories[i], stats.TopCategories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})
	if len(stats.TopCategories) > 10 {
		stats.TopCategories = stats.TopCategories[:10]
	}
	return stats
}

func sampleIssues(issues []string) []string {
	if len(issues) > maxIssueSamples {
		return issues[:maxIssueSamples]
	}
	return issues
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

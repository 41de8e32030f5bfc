package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gstlens/internal/domain"
	"gstlens/internal/port"
)

// BulkCalculationLimit caps the number of items in one bulk tax request.
const BulkCalculationLimit = 100

// CatalogService provides rate catalog lookups and tax calculations.
type CatalogService interface {
	GetByHSN(ctx context.Context, hsnCode string) (*domain.CatalogItem, error)
	Search(ctx context.Context, query, category string, limit int) ([]domain.CatalogItem, error)
	List(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	ItemsByRate(ctx context.Context, rate float64) ([]domain.CatalogItem, error)
	Stats(ctx context.Context) (*domain.CatalogStats, error)
	CalculateTax(ctx context.Context, req *domain.TaxCalculationRequest) (*domain.TaxCalculation, error)
	CalculateTaxBulk(ctx context.Context, reqs []domain.TaxCalculationRequest) ([]domain.BulkTaxResult, error)
}

type catalogService struct {
	repo port.CatalogRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(repo port.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetByHSN(ctx context.Context, hsnCode string) (*domain.CatalogItem, error) {
	return s.repo.GetByHSN(ctx, hsnCode)
}

func (s *catalogService) Search(ctx context.Context, query, category string, limit int) ([]domain.CatalogItem, error) {
	return s.repo.Search(ctx, query, category, limit)
}

func (s *catalogService) List(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *catalogService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.repo.Categories(ctx)
}

func (s *catalogService) ItemsByRate(ctx context.Context, rate float64) ([]domain.CatalogItem, error) {
	return s.repo.ItemsByRate(ctx, rate)
}

func (s *catalogService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	return s.repo.Stats(ctx)
}

// CalculateTax computes the GST due on a taxable value. Intrastate
// supplies split the rate evenly into CGST and SGST; interstate supplies
// levy the full rate as IGST.
func (s *catalogService) CalculateTax(ctx context.Context, req *domain.TaxCalculationRequest) (*domain.TaxCalculation, error) {
	if req.TaxableValue <= 0 {
		return nil, domain.ErrInvalidTaxableValue
	}
	txnType := req.TransactionType
	if txnType == "" {
		txnType = domain.TransactionIntrastate
	}
	if !txnType.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}

	item, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}

	calc := &domain.TaxCalculation{
		ItemName:        item.ItemName,
		GSTRate:         item.GSTRate,
		TaxableValue:    req.TaxableValue,
		TransactionType: txnType,
	}
	if item.HSNCode != nil {
		calc.HSNCode = *item.HSNCode
	} else if item.SACCode != nil {
		calc.HSNCode = *item.SACCode
	}

	if txnType == domain.TransactionIntrastate {
		half := roundMoney(req.TaxableValue * item.GSTRate / 200)
		calc.CGST = &half
		calc.SGST = &half
		calc.TotalTax = roundMoney(half * 2)
	} else {
		igst := roundMoney(req.TaxableValue * item.GSTRate / 100)
		calc.IGST = &igst
		calc.TotalTax = igst
	}
	calc.TotalValue = roundMoney(req.TaxableValue + calc.TotalTax)

	return calc, nil
}

func (s *catalogService) CalculateTaxBulk(ctx context.Context, reqs []domain.TaxCalculationRequest) ([]domain.BulkTaxResult, error) {
	if len(reqs) > BulkCalculationLimit {
		return nil, domain.ErrBulkLimitExceeded
	}
	results := make([]domain.BulkTaxResult, 0, len(reqs))
	for i := range reqs {
		calc, err := s.CalculateTax(ctx, &reqs[i])
		if err != nil {
			results = append(results, domain.BulkTaxResult{Error: err.Error()})
			continue
		}
		results = append(results, domain.BulkTaxResult{Calculation: calc})
	}
	return results, nil
}

func (s *catalogService) resolveItem(ctx context.Context, req *domain.TaxCalculationRequest) (*domain.CatalogItem, error) {
	if req.HSNCode != "" {
		item, err := s.repo.GetByHSN(ctx, req.HSNCode)
		if err != nil {
			return nil, fmt.Errorf("resolving hsn %q: %w", req.HSNCode, err)
		}
		return item, nil
	}
	if req.ItemName != "" {
		item, err := s.repo.Lookup(ctx, req.ItemName)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resolving item %q: %w", req.ItemName, err)
		}
		if err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, domain.ErrMissingItemIdentifier
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

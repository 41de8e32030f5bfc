package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstlens/internal/domain"
	"gstlens/mocks"
)

func strptr(s string) *string { return &s }

func shampooItem() *domain.CatalogItem {
	return &domain.CatalogItem{
		ID:           1,
		HSNCode:      strptr("3305"),
		ItemName:     "Shampoo",
		ItemCategory: "Personal Care",
		GSTRate:      18,
		CGSTRate:     9,
		SGSTRate:     9,
		IGSTRate:     18,
	}
}

func TestCalculateTaxIntrastate(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("GetByHSN", mock.Anything, "3305").Return(shampooItem(), nil)
	svc := NewCatalogService(repo)

	calc, err := svc.CalculateTax(context.Background(), &domain.TaxCalculationRequest{
		HSNCode:         "3305",
		TaxableValue:    1000,
		TransactionType: domain.TransactionIntrastate,
	})
	require.NoError(t, err)

	require.NotNil(t, calc.CGST)
	require.NotNil(t, calc.SGST)
	assert.Nil(t, calc.IGST)
	assert.Equal(t, 90.0, *calc.CGST)
	assert.Equal(t, 90.0, *calc.SGST)
	assert.Equal(t, 180.0, calc.TotalTax)
	assert.Equal(t, 1180.0, calc.TotalValue)
	assert.Equal(t, "3305", calc.HSNCode)
	repo.AssertExpectations(t)
}

func TestCalculateTaxInterstate(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("GetByHSN", mock.Anything, "3305").Return(shampooItem(), nil)
	svc := NewCatalogService(repo)

	calc, err := svc.CalculateTax(context.Background(), &domain.TaxCalculationRequest{
		HSNCode:         "3305",
		TaxableValue:    1000,
		TransactionType: domain.TransactionInterstate,
	})
	require.NoError(t, err)

	require.NotNil(t, calc.IGST)
	assert.Nil(t, calc.CGST)
	assert.Nil(t, calc.SGST)
	assert.Equal(t, 180.0, *calc.IGST)
	assert.Equal(t, 180.0, calc.TotalTax)
}

func TestCalculateTaxByItemName(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("Lookup", mock.Anything, "shampoo").Return(shampooItem(), nil)
	svc := NewCatalogService(repo)

	calc, err := svc.CalculateTax(context.Background(), &domain.TaxCalculationRequest{
		ItemName:     "shampoo",
		TaxableValue: 200,
	})
	require.NoError(t, err)

	// Transaction type defaults to intrastate.
	assert.Equal(t, domain.TransactionIntrastate, calc.TransactionType)
	assert.Equal(t, 36.0, calc.TotalTax)
}

func TestCalculateTaxValidation(t *testing.T) {
	svc := NewCatalogService(new(mocks.MockCatalogRepo))
	ctx := context.Background()

	_, err := svc.CalculateTax(ctx, &domain.TaxCalculationRequest{HSNCode: "3305"})
	assert.ErrorIs(t, err, domain.ErrInvalidTaxableValue)

	_, err = svc.CalculateTax(ctx, &domain.TaxCalculationRequest{
		HSNCode: "3305", TaxableValue: 100, TransactionType: "offshore",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)

	_, err = svc.CalculateTax(ctx, &domain.TaxCalculationRequest{TaxableValue: 100})
	assert.ErrorIs(t, err, domain.ErrMissingItemIdentifier)
}

func TestCalculateTaxUnknownHSN(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("GetByHSN", mock.Anything, "9999").Return(nil, domain.ErrNotFound)
	svc := NewCatalogService(repo)

	_, err := svc.CalculateTax(context.Background(), &domain.TaxCalculationRequest{
		HSNCode: "9999", TaxableValue: 100,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculateTaxBulk(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("GetByHSN", mock.Anything, "3305").Return(shampooItem(), nil)
	repo.On("GetByHSN", mock.Anything, "9999").Return(nil, domain.ErrNotFound)
	svc := NewCatalogService(repo)

	results, err := svc.CalculateTaxBulk(context.Background(), []domain.TaxCalculationRequest{
		{HSNCode: "3305", TaxableValue: 100},
		{HSNCode: "9999", TaxableValue: 100},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotNil(t, results[0].Calculation)
	assert.Empty(t, results[0].Error)
	assert.Nil(t, results[1].Calculation)
	assert.NotEmpty(t, results[1].Error)
}

func TestCalculateTaxBulkLimit(t *testing.T) {
	svc := NewCatalogService(new(mocks.MockCatalogRepo))
	reqs := make([]domain.TaxCalculationRequest, BulkCalculationLimit+1)
	_, err := svc.CalculateTaxBulk(context.Background(), reqs)
	assert.ErrorIs(t, err, domain.ErrBulkLimitExceeded)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstlens/internal/domain"
	"gstlens/internal/recon"
	"gstlens/mocks"
)

func TestAnalyzeBillNilRecord(t *testing.T) {
	svc := NewAnalysisService(new(mocks.MockCatalogRepo), recon.Config{DefaultGSTRate: 5.0})
	_, err := svc.AnalyzeBill(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyzeBillUsesCatalog(t *testing.T) {
	repo := new(mocks.MockCatalogRepo)
	repo.On("Lookup", mock.Anything, "Shampoo").Return(&domain.CatalogItem{
		HSNCode: strptr("3305"), ItemName: "Shampoo, hair oil",
		ItemCategory: "Hair care products", GSTRate: 18,
	}, nil)
	svc := NewAnalysisService(repo, recon.Config{DefaultGSTRate: 5.0})

	res, err := svc.AnalyzeBill(context.Background(), &domain.RawExtractedBill{
		StoreName:       "SuperMart",
		BillNumber:      "B-9",
		Items:           []domain.RawBillItem{{ItemName: "Shampoo", Quantity: 1, TotalPrice: 200}},
		GrossAmount:     200,
		Subtotal:        200,
		TotalGSTCharged: 36,
		GrandTotal:      236,
	})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, 18.0, res.Items[0].GSTRate)
	assert.Equal(t, "3305", res.Items[0].HSNCode)
	assert.False(t, res.Discrepancy.Found)
	assert.Equal(t, 1.0, res.ConfidenceScore)
	repo.AssertExpectations(t)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstlens/internal/domain"
	"gstlens/mocks"
)

func cleanCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{HSNCode: strptr("0801"), ItemName: "Cashew Nuts", ItemCategory: "Dry Fruits",
			GSTRate: 5, CGSTRate: 2.5, SGSTRate: 2.5, IGSTRate: 5},
		{HSNCode: strptr("3305"), ItemName: "Shampoo", ItemCategory: "Personal Care",
			GSTRate: 18, CGSTRate: 9, SGSTRate: 9, IGSTRate: 18},
		{SACCode: strptr("996331"), ItemName: "Restaurant Service", ItemCategory: "Food Services",
			GSTRate: 5, CGSTRate: 2.5, SGSTRate: 2.5, IGSTRate: 5},
	}
}

func TestRunAuditCleanCatalog(t *testing.T) {
	repo := new(mocks.MockCatalogAuditRepo)
	repo.On("AllItems", mock.Anything).Return(cleanCatalog(), nil)
	svc := NewAuditService(repo)

	audit, err := svc.RunAudit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100.0, audit.HealthScore)
	assert.Equal(t, audit.Summary.Total, audit.Summary.Passed)
	assert.Zero(t, audit.Summary.Failed)
	assert.Equal(t, 3, audit.Statistics.TotalItems)
	for _, c := range audit.Checks {
		assert.Equal(t, domain.AuditPass, c.Status, c.Name)
	}
}

func TestRunAuditFlagsProblems(t *testing.T) {
	items := cleanCatalog()
	items = append(items,
		// non-numeric code and a non-slab rate
		domain.CatalogItem{HSNCode: strptr("08A1"), ItemName: "Broken Code",
			ItemCategory: "Dry Fruits", GSTRate: 7},
		// duplicate HSN with an uneven split
		domain.CatalogItem{HSNCode: strptr("0801"), ItemName: "Cashew Again",
			ItemCategory: "Dry Fruits", GSTRate: 5, CGSTRate: 3, SGSTRate: 2, IGSTRate: 5},
	)
	repo := new(mocks.MockCatalogAuditRepo)
	repo.On("AllItems", mock.Anything).Return(items, nil)
	svc := NewAuditService(repo)

	audit, err := svc.RunAudit(context.Background())
	require.NoError(t, err)

	byName := map[string]domain.AuditCheck{}
	for _, c := range audit.Checks {
		byName[c.Name] = c
	}

	assert.Equal(t, domain.AuditFail, byName["hsn_code_validity"].Status)
	assert.Equal(t, domain.AuditWarn, byName["rate_validity"].Status)
	assert.Equal(t, domain.AuditWarn, byName["duplicates"].Status)
	assert.Equal(t, domain.AuditFail, byName["rate_consistency"].Status)
	assert.Less(t, audit.HealthScore, 100.0)
	assert.GreaterOrEqual(t, audit.HealthScore, 0.0)
}

func TestRunAuditHealthScoreWeighting(t *testing.T) {
	// One warning among six checks: (5 + 0.5) / 6 × 100 ≈ 91.67.
	items := cleanCatalog()
	items = append(items, domain.CatalogItem{
		HSNCode: strptr("1905"), ItemName: "Biscuits", ItemCategory: "Packaged Food",
		GSTRate: 7, CGSTRate: 3.5, SGSTRate: 3.5, IGSTRate: 7,
	})
	repo := new(mocks.MockCatalogAuditRepo)
	repo.On("AllItems", mock.Anything).Return(items, nil)
	svc := NewAuditService(repo)

	audit, err := svc.RunAudit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, audit.Summary.Warned)
	assert.InDelta(t, 91.67, audit.HealthScore, 0.01)
}

func TestRunAuditRepoError(t *testing.T) {
	repo := new(mocks.MockCatalogAuditRepo)
	repo.On("AllItems", mock.Anything).Return(nil, errors.New("db down"))
	svc := NewAuditService(repo)

	_, err := svc.RunAudit(context.Background())
	assert.Error(t, err)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstlens/internal/domain"
)

// MockCatalogAuditRepo is a testify mock for port.CatalogAuditRepository.
type MockCatalogAuditRepo struct {
	mock.Mock
}

func (m *MockCatalogAuditRepo) AllItems(ctx context.Context) ([]domain.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

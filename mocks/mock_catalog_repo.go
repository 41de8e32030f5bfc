package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstlens/internal/domain"
)

// MockCatalogRepo is a testify mock for port.CatalogRepository.
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) Lookup(ctx context.Context, itemName string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) GetByHSN(ctx context.Context, hsnCode string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, hsnCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) Search(ctx context.Context, query, category string, limit int) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, query, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) List(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *MockCatalogRepo) ItemsByRate(ctx context.Context, rate float64) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogStats), args.Error(1)
}

package port

import (
	"context"

	"gstlens/internal/domain"
)

// CatalogLookup is the narrow read surface the reconciliation engine
// needs from the rate catalog. Implementations return
// domain.ErrNotFound when no entry matches.
type CatalogLookup interface {
	// Lookup finds the first catalog entry whose item_name or
	// item_category contains the given name, case-insensitively.
	Lookup(ctx context.Context, itemName string) (*domain.CatalogItem, error)
}

// CatalogRepository provides access to the GST rate catalog.
type CatalogRepository interface {
	CatalogLookup

	GetByHSN(ctx context.Context, hsnCode string) (*domain.CatalogItem, error)
	Search(ctx context.Context, query, category string, limit int) ([]domain.CatalogItem, error)
	List(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	ItemsByRate(ctx context.Context, rate float64) ([]domain.CatalogItem, error)
	Stats(ctx context.Context) (*domain.CatalogStats, error)
}

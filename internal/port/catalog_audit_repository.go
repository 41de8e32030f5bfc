package port

import (
	"context"

	"gstlens/internal/domain"
)

// CatalogAuditRepository exposes the catalog slices the audit service
// inspects. Audits read the full table; they are operator tooling, not a
// hot path.
type CatalogAuditRepository interface {
	// AllItems returns every catalog row.
	AllItems(ctx context.Context) ([]domain.CatalogItem, error)
}

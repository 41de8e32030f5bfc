package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gstlens/internal/domain"
	"gstlens/internal/port"
)

type catalogAuditRepo struct {
	db *sqlx.DB
}

// NewCatalogAuditRepo creates a new PostgreSQL-backed CatalogAuditRepository.
func NewCatalogAuditRepo(db *sqlx.DB) port.CatalogAuditRepository {
	return &catalogAuditRepo{db: db}
}

func (r *catalogAuditRepo) AllItems(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+catalogColumns+`
		 FROM gst_items
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("catalogAuditRepo.AllItems: %w", err)
	}
	return items, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gstlens/internal/domain"
	"gstlens/internal/port"
)

type catalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo creates a new PostgreSQL-backed CatalogRepository.
func NewCatalogRepo(db *sqlx.DB) port.CatalogRepository {
	return &catalogRepo{db: db}
}

const catalogColumns = `id, hsn_code, sac_code, item_name, item_category,
	gst_rate, cgst_rate, sgst_rate, igst_rate, cess_rate,
	effective_from, remarks, created_at, updated_at`

func (r *catalogRepo) Lookup(ctx context.Context, itemName string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	pattern := "%" + itemName + "%"
	err := r.db.GetContext(ctx, &item,
		`SELECT `+catalogColumns+`
		 FROM gst_items
		 WHERE item_name ILIKE $1 OR item_category ILIKE $1
		 LIMIT 1`, pattern)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.Lookup: %w", err)
	}
	return &item, nil
}

func (r *catalogRepo) GetByHSN(ctx context.Context, hsnCode string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.db.GetContext(ctx, &item,
		`SELECT `+catalogColumns+`
		 FROM gst_items
		 WHERE hsn_code = $1 OR sac_code = $1
		 LIMIT 1`, hsnCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.GetByHSN: %w", err)
	}
	return &item, nil
}

func (r *catalogRepo) Search(ctx context.Context, query, category string, limit int) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	pattern := "%" + query + "%"
	var err error
	if category != "" {
		err = r.db.SelectContext(ctx, &items,
			`SELECT `+catalogColumns+`
			 FROM gst_items
			 WHERE (item_name ILIKE $1 OR item_category ILIKE $1) AND item_category = $2
			 ORDER BY item_name
			 LIMIT $3`, pattern, category, limit)
	} else {
		err = r.db.SelectContext(ctx, &items,
			`SELECT `+catalogColumns+`
			 FROM gst_items
			 WHERE item_name ILIKE $1 OR item_category ILIKE $1
			 ORDER BY item_name
			 LIMIT $2`, pattern, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.Search: %w", err)
	}
	return items, nil
}

func (r *catalogRepo) List(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	// Coded items first so paged consumers see authoritative rows early.
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+catalogColumns+`
		 FROM gst_items
		 ORDER BY (hsn_code IS NULL AND sac_code IS NULL), gst_rate, item_name
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.List: %w", err)
	}
	return items, nil
}

func (r *catalogRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	var categories []domain.CategoryCount
	err := r.db.SelectContext(ctx, &categories,
		`SELECT item_category, COUNT(*) AS count
		 FROM gst_items
		 WHERE item_category <> ''
		 GROUP BY item_category
		 ORDER BY count DESC, item_category`)
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.Categories: %w", err)
	}
	return categories, nil
}

func (r *catalogRepo) ItemsByRate(ctx context.Context, rate float64) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+catalogColumns+`
		 FROM gst_items
		 WHERE gst_rate = $1
		 ORDER BY item_name`, rate)
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.ItemsByRate: %w", err)
	}
	return items, nil
}

func (r *catalogRepo) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	stats := &domain.CatalogStats{}

	if err := r.db.GetContext(ctx, &stats.TotalItems,
		"SELECT COUNT(*) FROM gst_items"); err != nil {
		return nil, fmt.Errorf("catalogRepo.Stats total: %w", err)
	}

	if err := r.db.SelectContext(ctx, &stats.ItemsByRate,
		`SELECT gst_rate, COUNT(*) AS count
		 FROM gst_items
		 GROUP BY gst_rate
		 ORDER BY gst_rate`); err != nil {
		return nil, fmt.Errorf("catalogRepo.Stats rates: %w", err)
	}

	if err := r.db.SelectContext(ctx, &stats.TopCategories,
		`SELECT item_category, COUNT(*) AS count
		 FROM gst_items
		 WHERE item_category <> ''
		 GROUP BY item_category
		 ORDER BY count DESC, item_category
		 LIMIT 10`); err != nil {
		return nil, fmt.Errorf("catalogRepo.Stats categories: %w", err)
	}

	return stats, nil
}

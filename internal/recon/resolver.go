package recon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gstlens/internal/domain"
	"gstlens/internal/port"
)

// Resolution is the outcome of classifying one line item: its GST rate
// and, when known, the HSN code and category it was matched under.
type Resolution struct {
	GSTRate  float64
	HSNCode  string
	Category string
}

// keywordRule maps a set of name substrings to a resolution. Rules are
// evaluated in order; the first rule with any matching keyword wins, so
// the order of the table encodes classification priority.
type keywordRule struct {
	keywords []string
	gstRate  float64
	hsnCode  string
	category string
}

// keywordRules is the fallback classification table used when the
// catalog has no entry for an item. Dry fruits are checked before the
// restaurant staples so that, e.g., "cashew curry mix" resolves as dry
// fruits rather than via the "curry" keyword.
var keywordRules = []keywordRule{
	{
		keywords: []string{"cashew", "almond", "walnut", "dates", "raisin", "pistachio",
			"badam", "kaju", "pista", "kishmish", "anjeer", "fig",
			"mixed nuts", "mixed bites", "dry fruit"},
		gstRate:  5.0,
		hsnCode:  "08013200",
		category: "Dry fruits and nuts",
	},
	{
		keywords: []string{"mobile", "phone", "laptop", "computer", "charger", "earphone",
			"headphone", "tv", "television", "ac", "refrigerator", "washing machine"},
		gstRate:  18.0,
		category: "Electronics",
	},
	{
		keywords: []string{"medicine", "tablet", "syrup", "injection", "capsule",
			"test", "pathology", "xray", "scan"},
		gstRate:  12.0,
		category: "Medical supplies",
	},
	{
		keywords: []string{"parotta", "chapati", "roti", "bread", "milk", "curd",
			"vegetables", "fruits", "eggs"},
		gstRate:  0.0,
		category: "Food items (fresh)",
	},
	{
		keywords: []string{"dosa", "idli", "vada", "rice", "dal", "sambar",
			"biryani", "curry", "meal", "coffee", "tea"},
		gstRate:  5.0,
		category: "Restaurant services",
	},
}

// RateResolver classifies a line-item name to a canonical GST rate via a
// tiered policy: catalog substring match, then the keyword table, then a
// conservative default rate. Resolution never fails; catalog errors
// degrade to the fallback tiers.
type RateResolver struct {
	catalog     port.CatalogLookup
	defaultRate float64
}

// NewRateResolver builds a resolver over the given catalog. defaultRate
// applies when no tier matches; 5% is the conservative choice for Indian
// retail (the lowest non-zero common slab).
func NewRateResolver(catalog port.CatalogLookup, defaultRate float64) *RateResolver {
	return &RateResolver{catalog: catalog, defaultRate: defaultRate}
}

// Resolve returns the rate, HSN code and category for an item name.
func (r *RateResolver) Resolve(ctx context.Context, itemName string) Resolution {
	if r.catalog != nil {
		item, err := r.catalog.Lookup(ctx, itemName)
		switch {
		case err == nil:
			res := Resolution{
				GSTRate:  clampRate(item.GSTRate),
				Category: item.ItemCategory,
			}
			if item.HSNCode != nil {
				res.HSNCode = *item.HSNCode
			} else if item.SACCode != nil {
				res.HSNCode = *item.SACCode
			}
			return res
		case errors.Is(err, domain.ErrNotFound):
			// fall through to the keyword table
		default:
			// A broken catalog must not block analysis; a conservative
			// fallback rate beats no answer.
			log.Printf("[recon] catalog lookup failed for %q, using fallback: %v", itemName, err)
		}
	}

	lower := strings.ToLower(itemName)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return Resolution{
					GSTRate:  rule.gstRate,
					HSNCode:  rule.hsnCode,
					Category: rule.category,
				}
			}
		}
	}

	return Resolution{
		GSTRate:  clampRate(r.defaultRate),
		Category: fmt.Sprintf("Unknown (default %g%%)", r.defaultRate),
	}
}

// clampRate bounds a rate to [0,100] so malformed catalog rows can never
// produce a negative or >100% tax.
func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

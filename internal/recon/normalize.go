package recon

import (
	"context"

	"gstlens/internal/domain"
)

// LineItemNormalizer converts raw extracted items into canonical line
// items carrying their resolved GST rate and an illustrative per-item
// CGST/SGST split.
type LineItemNormalizer struct {
	resolver *RateResolver
}

// NewLineItemNormalizer builds a normalizer over the given resolver.
func NewLineItemNormalizer(resolver *RateResolver) *LineItemNormalizer {
	return &LineItemNormalizer{resolver: resolver}
}

// Normalize resolves each raw item to a rate and computes its per-item
// tax split. Input order is preserved; an empty input yields an empty
// slice. Quantity and unit price pass through untouched: total_price is
// authoritative from the source bill and is never recomputed, since it
// may carry item-level adjustments quantity×price would not reproduce.
func (n *LineItemNormalizer) Normalize(ctx context.Context, raw []domain.RawBillItem) []domain.BillLineItem {
	items := make([]domain.BillLineItem, 0, len(raw))
	for _, it := range raw {
		name := it.ItemName
		orig := it.OriginalName
		if orig == "" {
			orig = name
		}

		res := n.resolver.Resolve(ctx, name)

		// Illustrative split at the item's own price. The authoritative
		// bill-level tax applies the weighted rate to the discounted
		// subtotal instead, because discount allocation across items is
		// not observable from the bill.
		itemGST := it.TotalPrice * res.GSTRate / 100

		items = append(items, domain.BillLineItem{
			ItemName:     name,
			OriginalName: orig,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   it.TotalPrice,
			HSNCode:      res.HSNCode,
			GSTRate:      res.GSTRate,
			CGST:         round2(itemGST / 2),
			SGST:         round2(itemGST / 2),
			Category:     res.Category,
		})
	}
	return items
}

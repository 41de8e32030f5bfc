package recon

import "gstlens/internal/domain"

// CalculateCorrectGST computes the tax that should apply to the whole
// bill: a pre-discount value-weighted average rate across the line
// items, applied to the post-discount taxable subtotal. GST in India is
// due on the amount after discount, but discount allocation across
// heterogeneous-rate items is not observable from the bill, so the
// discount is assumed to spread proportionally across all items.
//
// The returned total is split evenly into CGST and SGST (intrastate
// assumption). All three values are rounded to 2 decimal places at
// return; intermediates keep full precision.
//
// A zero total item value (no items, or all zero-priced) yields
// (0, 0, 0) rather than dividing by zero.
func CalculateCorrectGST(items []domain.BillLineItem, taxableSubtotal float64) (totalGST, cgst, sgst float64) {
	var totalItemValue float64
	for _, it := range items {
		totalItemValue += it.TotalPrice
	}
	if totalItemValue == 0 {
		return 0, 0, 0
	}

	var weightedRate float64
	for _, it := range items {
		weightedRate += (it.TotalPrice / totalItemValue) * it.GSTRate
	}

	total := taxableSubtotal * weightedRate / 100
	return round2(total), round2(total / 2), round2(total / 2)
}

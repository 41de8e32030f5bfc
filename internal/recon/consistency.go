package recon

import (
	"fmt"
	"math"

	"gstlens/internal/domain"
)

// Confidence penalties per failed consistency check. Checks run against
// the raw extracted numbers, not the calculated tax; they gauge how much
// the extraction itself can be trusted.
const (
	penaltyItemsVsGross = 0.15
	penaltyDiscountHard = 0.15
	penaltyDiscountSoft = 0.05
	penaltyGrandTotal   = 0.20
	penaltyUnusualRate  = 0.10
	penaltyMissingField = 0.05
	effectiveRateSlack  = 0.5
	largeDiscountCutoff = 100.0
	largeDiscountSlack  = 30.0
)

// ValidateConsistency cross-checks the raw bill's arithmetic identities
// and returns a confidence score in [0,1] plus human-readable warnings.
// It never blocks an analysis; bad numbers only reduce confidence.
func ValidateConsistency(raw *domain.RawExtractedBill, items []domain.BillLineItem) (float64, []string) {
	warnings := []string{}
	confidence := 1.0

	// Check 1: do the line items sum to the stated gross amount?
	var itemsTotal float64
	for _, it := range items {
		itemsTotal += it.TotalPrice
	}
	if !approxEqual(itemsTotal, raw.GrossAmount, amountTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"items sum (₹%s) does not match gross amount (₹%s)",
			fmtf(itemsTotal), fmtf(raw.GrossAmount)))
		confidence -= penaltyItemsVsGross
	}

	// Check 2: does gross − discount equal the subtotal? Bills with big
	// discounts often print rounded subtotals, so the tolerance widens.
	expectedSubtotal := raw.GrossAmount - raw.Discount
	discountSlack := amountTolerance
	if raw.Discount > largeDiscountCutoff {
		discountSlack = largeDiscountSlack
	}
	switch diff := math.Abs(expectedSubtotal - raw.Subtotal); {
	case diff > discountSlack:
		warnings = append(warnings, fmt.Sprintf(
			"gross (₹%s) minus discount (₹%s) does not match subtotal (₹%s)",
			fmtf(raw.GrossAmount), fmtf(raw.Discount), fmtf(raw.Subtotal)))
		confidence -= penaltyDiscountHard
	case diff > amountTolerance:
		warnings = append(warnings, fmt.Sprintf(
			"minor rounding difference: gross minus discount is ₹%s, bill shows ₹%s",
			fmtf(expectedSubtotal), fmtf(raw.Subtotal)))
		confidence -= penaltyDiscountSoft
	}

	// Check 3: does subtotal + charged GST reach the grand total?
	calculatedTotal := raw.Subtotal + raw.TotalGSTCharged
	if !approxEqual(calculatedTotal, raw.GrandTotal, amountTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"subtotal plus GST (₹%s) does not match grand total (₹%s)",
			fmtf(calculatedTotal), fmtf(raw.GrandTotal)))
		confidence -= penaltyGrandTotal
	}

	// Check 4: is the effective charged rate near a real GST slab?
	if raw.Subtotal > 0 {
		effectiveRate := raw.TotalGSTCharged / raw.Subtotal * 100
		plausible := false
		for _, slab := range domain.CommonSlabRates {
			if math.Abs(effectiveRate-slab) < effectiveRateSlack {
				plausible = true
				break
			}
		}
		if !plausible {
			warnings = append(warnings, fmt.Sprintf(
				"unusual effective GST rate: %.1f%% (expected 0%%, 5%%, 12%%, 18%% or 28%%)",
				effectiveRate))
			confidence -= penaltyUnusualRate
		}
	}

	// Check 5: identity fields a disputable report needs.
	if raw.StoreName == "" {
		warnings = append(warnings, "store name not found")
		confidence -= penaltyMissingField
	}
	if raw.BillNumber == "" {
		warnings = append(warnings, "bill number not found")
		confidence -= penaltyMissingField
	}

	return math.Max(0, math.Min(1, confidence)), warnings
}

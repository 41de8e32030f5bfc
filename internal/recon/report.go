package recon

import (
	"fmt"
	"math"

	"gstlens/internal/domain"
)

// lowConfidenceCaveat is appended to the warnings of any analysis whose
// confidence falls below disputeConfidenceFloor.
const lowConfidenceCaveat = "confidence below 90%: not suitable for disputing the bill without manual verification"

const disputeConfidenceFloor = 0.90

// BuildReport assembles the final analysis from the raw bill, the
// normalized items, the calculated correct tax, and the consistency
// outcome. The signed discrepancy is charged minus calculated, so a
// positive amount means the customer was overcharged.
func BuildReport(raw *domain.RawExtractedBill, items []domain.BillLineItem,
	calcGST, calcCGST, calcSGST, confidence float64, warnings []string) *domain.BillAnalysis {

	billGST := raw.TotalGSTCharged
	chargedCGST := raw.CGSTCharged
	chargedSGST := raw.SGSTCharged
	if chargedCGST == 0 && chargedSGST == 0 && billGST > 0 {
		// Many bills print only the total GST line; assume the even
		// intrastate split for display.
		chargedCGST = billGST / 2
		chargedSGST = billGST / 2
	}

	amount := round2(billGST - calcGST)
	found := math.Abs(amount) > paisaTolerance

	details := []string{}
	if found {
		details = append(details, fmt.Sprintf(
			"bill charged ₹%s GST, but should be ₹%s", fmtf(billGST), fmtf(calcGST)))
		if amount > 0 {
			details = append(details, fmt.Sprintf("overcharged by ₹%s", fmtf(math.Abs(amount))))
		} else {
			details = append(details, fmt.Sprintf("undercharged by ₹%s", fmtf(math.Abs(amount))))
		}
		for _, it := range items {
			if it.GSTRate == 0 && billGST > 0 {
				details = append(details, fmt.Sprintf(
					"'%s' should have 0%% GST (charged on bill)", it.ItemName))
			}
		}
	}
	if raw.Discount > 0 {
		note := fmt.Sprintf("discount applied: ₹%s", fmtf(raw.Discount))
		if raw.GrossAmount > 0 {
			note = fmt.Sprintf("discount applied: ₹%s (%.1f%% of gross)",
				fmtf(raw.Discount), raw.Discount/raw.GrossAmount*100)
		}
		details = append([]string{note}, details...)
	}

	if confidence < disputeConfidenceFloor {
		warnings = append(warnings, lowConfidenceCaveat)
	}

	return &domain.BillAnalysis{
		StoreName:   raw.StoreName,
		BillNumber:  raw.BillNumber,
		Date:        raw.Date,
		GSTIN:       raw.GSTIN,
		Items:       items,
		GrossAmount: raw.GrossAmount,
		Discount:    raw.Discount,
		Subtotal:    raw.Subtotal,
		BillCharges: domain.BillCharges{
			TotalGST:   billGST,
			CGST:       chargedCGST,
			SGST:       chargedSGST,
			GrandTotal: raw.GrandTotal,
		},
		CorrectCalculation: domain.BillCharges{
			TotalGST:   calcGST,
			CGST:       calcCGST,
			SGST:       calcSGST,
			GrandTotal: round2(raw.Subtotal + calcGST),
		},
		Discrepancy: domain.Discrepancy{
			Found:   found,
			Amount:  amount,
			Details: details,
		},
		ConfidenceScore: confidence,
		Warnings:        warnings,
	}
}

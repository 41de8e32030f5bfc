package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstlens/internal/domain"
)

func cleanBill() *domain.RawExtractedBill {
	return &domain.RawExtractedBill{
		StoreName:  "Saravana Bhavan",
		BillNumber: "12345",
		Items: []domain.RawBillItem{
			{ItemName: "Thali", TotalPrice: 300},
		},
		GrossAmount:     300,
		Discount:        0,
		Subtotal:        300,
		TotalGSTCharged: 15,
		GrandTotal:      315,
	}
}

func billItems(raw *domain.RawExtractedBill) []domain.BillLineItem {
	items := make([]domain.BillLineItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		items = append(items, domain.BillLineItem{
			ItemName:   it.ItemName,
			TotalPrice: it.TotalPrice,
			GSTRate:    5,
		})
	}
	return items
}

func TestValidateConsistencyCleanBill(t *testing.T) {
	raw := cleanBill()
	confidence, warnings := ValidateConsistency(raw, billItems(raw))
	assert.Equal(t, 1.0, confidence)
	assert.Empty(t, warnings)
}

func TestValidateConsistencyItemsVsGross(t *testing.T) {
	raw := cleanBill()
	raw.GrossAmount = 280
	raw.Subtotal = 280
	raw.GrandTotal = 295
	confidence, warnings := ValidateConsistency(raw, billItems(raw))
	assert.LessOrEqual(t, confidence, 0.85)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "does not match gross amount")
}

func TestValidateConsistencyGrandTotal(t *testing.T) {
	raw := cleanBill()
	raw.GrandTotal = 320
	confidence, warnings := ValidateConsistency(raw, billItems(raw))
	assert.LessOrEqual(t, confidence, 0.80)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "does not match grand total")
}

func TestValidateConsistencyDiscountTolerance(t *testing.T) {
	tests := []struct {
		name           string
		discount       float64
		subtotal       float64
		wantConfidence float64
		wantWarning    string
	}{
		// gross 300: small discount, off by 5, hard failure
		{"small discount hard", 20, 275, 0.85, "does not match subtotal"},
		// large discount, off by 20: within the widened 30 tolerance
		// but beyond 1, soft note only
		{"large discount soft", 150, 130, 0.95, "minor rounding difference"},
		// large discount, off by 40: beyond even the widened tolerance
		{"large discount hard", 150, 110, 0.85, "does not match subtotal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := cleanBill()
			raw.Discount = tt.discount
			raw.Subtotal = tt.subtotal
			raw.TotalGSTCharged = raw.Subtotal * 0.05
			raw.GrandTotal = raw.Subtotal + raw.TotalGSTCharged

			confidence, warnings := ValidateConsistency(raw, billItems(raw))
			assert.InDelta(t, tt.wantConfidence, confidence, 0.0001)
			require.NotEmpty(t, warnings)
			assert.Contains(t, warnings[0], tt.wantWarning)
		})
	}
}

func TestValidateConsistencyUnusualRate(t *testing.T) {
	raw := cleanBill()
	raw.TotalGSTCharged = 24 // 8% of 300
	raw.GrandTotal = 324
	confidence, warnings := ValidateConsistency(raw, billItems(raw))
	assert.InDelta(t, 0.90, confidence, 0.0001)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "unusual effective GST rate")
}

func TestValidateConsistencyMissingFields(t *testing.T) {
	raw := cleanBill()
	raw.StoreName = ""
	raw.BillNumber = ""
	confidence, warnings := ValidateConsistency(raw, billItems(raw))
	assert.InDelta(t, 0.90, confidence, 0.0001)
	assert.Contains(t, warnings, "store name not found")
	assert.Contains(t, warnings, "bill number not found")
}

// Confidence never leaves [0,1] no matter how many checks fail.
func TestValidateConsistencyFloor(t *testing.T) {
	raw := &domain.RawExtractedBill{
		Items:           []domain.RawBillItem{{ItemName: "X", TotalPrice: 50}},
		GrossAmount:     500,
		Discount:        10,
		Subtotal:        900,
		TotalGSTCharged: 77,
		GrandTotal:      123,
	}
	confidence, warnings := ValidateConsistency(raw, billItems(raw))
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
	assert.NotEmpty(t, warnings)
}

// A zero subtotal must not divide by zero in the rate plausibility check.
func TestValidateConsistencyZeroSubtotal(t *testing.T) {
	raw := &domain.RawExtractedBill{StoreName: "S", BillNumber: "1"}
	confidence, _ := ValidateConsistency(raw, nil)
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
}

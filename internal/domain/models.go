package domain

import "time"

// RawBillItem is a single line item as extracted from a source bill.
type RawBillItem struct {
	OriginalName string  `json:"original_name"`
	ItemName     string  `json:"item_name"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

// RawExtractedBill is the semi-structured record produced by an upstream
// text/structure extractor. Every field may be missing or wrong; missing
// numbers decode to 0 and missing strings to "". The reconciliation
// engine treats this record as untrusted input and annotates rather than
// rejects it.
type RawExtractedBill struct {
	StoreName       string        `json:"store_name"`
	BillNumber      string        `json:"bill_number"`
	Date            string        `json:"date"`
	GSTIN           string        `json:"gstin"`
	Items           []RawBillItem `json:"items"`
	GrossAmount     float64       `json:"gross_amount"`
	Discount        float64       `json:"discount"`
	Subtotal        float64       `json:"subtotal"`
	CGSTCharged     float64       `json:"cgst_charged"`
	SGSTCharged     float64       `json:"sgst_charged"`
	IGSTCharged     float64       `json:"igst_charged"`
	TotalGSTCharged float64       `json:"total_gst_charged"`
	GrandTotal      float64       `json:"grand_total"`
}

// BillLineItem is a normalized line item carrying its resolved GST rate.
// CGST/SGST here are the illustrative per-item split at the item's own
// price; the authoritative bill-level tax is computed on the discounted
// subtotal, since discount allocation across items is not observable.
type BillLineItem struct {
	ItemName     string  `json:"item_name"`
	OriginalName string  `json:"original_name"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	HSNCode      string  `json:"hsn_code,omitempty"`
	GSTRate      float64 `json:"gst_rate"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	Category     string  `json:"category"`
}

// BillCharges groups a bill-level tax figure with its CGST/SGST split and
// the resulting grand total. It is used both for the amounts the bill
// actually charged and for the amounts the engine calculates as correct.
type BillCharges struct {
	TotalGST   float64 `json:"total_gst"`
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	GrandTotal float64 `json:"grand_total"`
}

// Discrepancy is the signed difference between the tax a bill charged and
// the tax the engine calculates should have been charged. Positive means
// the customer was overcharged.
type Discrepancy struct {
	Found   bool     `json:"found"`
	Amount  float64  `json:"amount"`
	Details []string `json:"details"`
}

// BillAnalysis is the terminal artifact of one reconciliation pass over a
// bill. The bill_charges / correct_calculation / discrepancy field names
// and nesting are a stable contract for downstream consumers.
type BillAnalysis struct {
	StoreName          string         `json:"store_name"`
	BillNumber         string         `json:"bill_number"`
	Date               string         `json:"date"`
	GSTIN              string         `json:"gstin"`
	Items              []BillLineItem `json:"items"`
	GrossAmount        float64        `json:"gross_amount"`
	Discount           float64        `json:"discount"`
	Subtotal           float64        `json:"subtotal"`
	BillCharges        BillCharges    `json:"bill_charges"`
	CorrectCalculation BillCharges    `json:"correct_calculation"`
	Discrepancy        Discrepancy    `json:"discrepancy"`
	ConfidenceScore    float64        `json:"confidence_score"`
	Warnings           []string       `json:"warnings"`
}

// CatalogItem is one row of the GST rate catalog: an item or category of
// items mapped to its HSN/SAC code and rate components. Goods carry an
// HSN code, services a SAC code; either may be absent for keyword-only
// entries.
type CatalogItem struct {
	ID            int64      `db:"id" json:"id"`
	HSNCode       *string    `db:"hsn_code" json:"hsn_code"`
	SACCode       *string    `db:"sac_code" json:"sac_code"`
	ItemName      string     `db:"item_name" json:"item_name"`
	ItemCategory  string     `db:"item_category" json:"item_category"`
	GSTRate       float64    `db:"gst_rate" json:"gst_rate"`
	CGSTRate      float64    `db:"cgst_rate" json:"cgst_rate"`
	SGSTRate      float64    `db:"sgst_rate" json:"sgst_rate"`
	IGSTRate      float64    `db:"igst_rate" json:"igst_rate"`
	CessRate      float64    `db:"cess_rate" json:"cess_rate"`
	EffectiveFrom *time.Time `db:"effective_from" json:"effective_from,omitempty"`
	Remarks       *string    `db:"remarks" json:"remarks,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// RateBucket is the number of catalog items at one GST rate.
type RateBucket struct {
	GSTRate float64 `db:"gst_rate" json:"gst_rate"`
	Count   int     `db:"count" json:"count"`
}

// CategoryCount is the number of catalog items in one category.
type CategoryCount struct {
	Category string `db:"item_category" json:"category"`
	Count    int    `db:"count" json:"count"`
}

// CatalogStats summarizes the rate catalog contents.
type CatalogStats struct {
	TotalItems    int             `json:"total_items"`
	ItemsByRate   []RateBucket    `json:"items_by_rate"`
	TopCategories []CategoryCount `json:"top_categories"`
}

// TaxCalculationRequest asks for the GST due on a taxable value, with the
// item identified by HSN/SAC code or by name.
type TaxCalculationRequest struct {
	HSNCode         string          `json:"hsn_code"`
	ItemName        string          `json:"item_name"`
	TaxableValue    float64         `json:"taxable_value"`
	TransactionType TransactionType `json:"transaction_type"`
}

// TaxCalculation is the result of a single tax calculation. CGST and SGST
// are set for intrastate transactions, IGST for interstate; unused
// components are null.
type TaxCalculation struct {
	HSNCode         string          `json:"hsn_code,omitempty"`
	ItemName        string          `json:"item_name"`
	GSTRate         float64         `json:"gst_rate"`
	TaxableValue    float64         `json:"taxable_value"`
	CGST            *float64        `json:"cgst"`
	SGST            *float64        `json:"sgst"`
	IGST            *float64        `json:"igst"`
	TotalTax        float64         `json:"total_tax"`
	TotalValue      float64         `json:"total_value"`
	TransactionType TransactionType `json:"transaction_type"`
}

// BulkTaxResult is one entry of a bulk calculation response; exactly one
// of Calculation or Error is set.
type BulkTaxResult struct {
	Calculation *TaxCalculation `json:"calculation,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// AuditCheck is the outcome of a single catalog quality check.
type AuditCheck struct {
	Name    string           `json:"name"`
	Status  AuditCheckStatus `json:"status"`
	Message string           `json:"message,omitempty"`
	Issues  []string         `json:"issues,omitempty"`
}

// AuditSummary aggregates audit check outcomes.
type AuditSummary struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// CatalogAudit is a catalog quality report with an overall health score
// in [0,100].
type CatalogAudit struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Checks      []AuditCheck `json:"checks"`
	Statistics  CatalogStats `json:"statistics"`
	Summary     AuditSummary `json:"summary"`
	HealthScore float64      `json:"health_score"`
}

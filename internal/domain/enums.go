package domain

// TransactionType distinguishes intrastate supplies (taxed as CGST+SGST)
// from interstate supplies (taxed as IGST).
type TransactionType string

const (
	TransactionIntrastate TransactionType = "intrastate"
	TransactionInterstate TransactionType = "interstate"
)

// Valid reports whether t is a recognized transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIntrastate || t == TransactionInterstate
}

// AuditCheckStatus is the outcome level of a catalog audit check.
type AuditCheckStatus string

const (
	AuditPass AuditCheckStatus = "PASS"
	AuditWarn AuditCheckStatus = "WARN"
	AuditFail AuditCheckStatus = "FAIL"
)

// KnownSlabRates are the GST rate slabs notified by the GST council,
// including the special 0.25% (rough precious stones) and 3% (gold) rates
// and the 40% demerit rate.
var KnownSlabRates = []float64{0, 0.25, 3, 5, 12, 18, 28, 40}

// CommonSlabRates are the slabs retail bills are ordinarily expected to
// land on; effective rates far from all of these indicate bad extraction.
var CommonSlabRates = []float64{0, 5, 12, 18, 28}

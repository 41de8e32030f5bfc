package domain

import "errors"

// Sentinel errors returned by repositories and services. Handlers map
// these onto HTTP status codes; wrap with %w so errors.Is still matches.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrCatalogUnavailable     = errors.New("rate catalog unavailable")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidTransactionType = errors.New("transaction_type must be intrastate or interstate")
	ErrMissingItemIdentifier  = errors.New("either hsn_code or item_name is required")
	ErrInvalidTaxableValue    = errors.New("taxable_value must be greater than zero")
	ErrBulkLimitExceeded      = errors.New("bulk calculation limited to 100 items")
)

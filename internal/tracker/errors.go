package tracker

import "errors"

// Validation failures. Callers match them with errors.Is; the returned errors
// wrap these with the offending value.
var (
	ErrMissingInput          = errors.New("input must be provided")
	ErrWrongType             = errors.New("input has the wrong type")
	ErrInvalidDateFormat     = errors.New("date must be provided in the format YYYY-MM-DD")
	ErrFutureDate            = errors.New("date cannot be in the future")
	ErrNonPositiveQuantity   = errors.New("quantity must be larger than 0")
	ErrUnknownInventoryType  = errors.New("item type not found in inventory")
	ErrInsufficientInventory = errors.New("insufficient inventory to distribute")
	ErrInvalidReportType     = errors.New(`report type must be either "inventory" or "donation"`)
)

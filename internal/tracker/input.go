package tracker

import (
	"fmt"
	"math"
)

// QuantityOf converts an untyped decoded value (for example from YAML) into a
// quantity. Only integer kinds that fit in an int are accepted; the sign is
// checked later by the Tracker operations.
func QuantityOf(v any) (int, error) {
	switch q := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: quantity", ErrMissingInput)
	case int:
		return q, nil
	case int64:
		if q < math.MinInt || q > math.MaxInt {
			return 0, fmt.Errorf("%w: quantity %d is out of range", ErrWrongType, q)
		}
		return int(q), nil
	case int32:
		return int(q), nil
	case uint64:
		if q > math.MaxInt {
			return 0, fmt.Errorf("%w: quantity %d is out of range", ErrWrongType, q)
		}
		return int(q), nil
	default:
		return 0, fmt.Errorf("%w: quantity %v (%T) must be an integer", ErrWrongType, v, v)
	}
}

// StringOf converts an untyped decoded value into the named string field.
// Numbers, booleans and other non-string values are rejected rather than
// formatted. An empty string is returned as is so the Tracker reports it as
// missing.
func StringOf(field string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: %s", ErrMissingInput, field)
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s %v (%T) must be a string", ErrWrongType, field, v, v)
	}
}

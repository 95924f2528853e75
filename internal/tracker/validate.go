package tracker

import (
	"fmt"
	"time"

	"github.com/vbonduro/donationtracker/internal/domain"
)

func checkProvided(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingInput, field)
	}
	return nil
}

// checkQuantityProvided treats zero as absent, so a zero quantity reports
// ErrMissingInput rather than ErrNonPositiveQuantity.
func checkQuantityProvided(quantity int) error {
	if quantity == 0 {
		return fmt.Errorf("%w: quantity", ErrMissingInput)
	}
	return nil
}

func checkQuantityPositive(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveQuantity, quantity)
	}
	return nil
}

// parseDate parses a YYYY-MM-DD date and rejects dates after today.
func parseDate(dateStr string, now time.Time) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, dateStr)
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrFutureDate, dateStr)
	}
	return date, nil
}

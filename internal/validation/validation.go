package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Common validation errors
var (
	ErrEmptyCurrency   = errors.New("currency is required")
	ErrCurrencyTooLong = fmt.Errorf("currency must be %d characters or less", MaxCurrencyLength)
	ErrInvalidCurrency = errors.New("currency contains control characters")
)

// MaxCurrencyLength matches the width of the currency column in the rate store.
const MaxCurrencyLength = 64

// ValidateCurrency checks that a currency column name is usable in a lookup.
// Whether the column exists is decided by the rate table, not here.
func ValidateCurrency(code string) error {
	if code == "" {
		return ErrEmptyCurrency
	}
	if len(code) > MaxCurrencyLength {
		return ErrCurrencyTooLong
	}
	if strings.IndexFunc(code, unicode.IsControl) >= 0 {
		return ErrInvalidCurrency
	}
	return nil
}

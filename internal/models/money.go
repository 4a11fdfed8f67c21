package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmountFormat is returned when a monetary string cannot be parsed.
// It is only ever produced at the parse boundary, never mid-calculation.
var ErrInvalidAmountFormat = errors.New("invalid amount format")

// ParseMoney parses a decimal monetary string ("12.50", "-3", "1000.00").
// All money in the system is decimal-exact; binary floats are never used for
// monetary arithmetic.
func ParseMoney(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty string", ErrInvalidAmountFormat)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, s)
	}

	return d, nil
}

// ClampNonNegative returns a if a >= 0, otherwise zero. The rollover engine
// uses this to prevent overspending from propagating into future months.
func ClampNonNegative(a decimal.Decimal) decimal.Decimal {
	if a.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return a
}

// PercentageOf returns actual/budgeted as a float ratio for display purposes
// only. A zero (or negative) budget yields 0 by convention rather than an
// error. The result must never feed back into monetary arithmetic.
func PercentageOf(actual, budgeted decimal.Decimal) float64 {
	if budgeted.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	ratio, _ := actual.Div(budgeted).Float64()
	return ratio
}

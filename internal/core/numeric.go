package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw user input into a non-negative decimal.
// Blank, malformed, and negative input all coerce to zero; malformed numbers
// are never surfaced as errors. This is the single coercion boundary — once a
// value is a decimal it cannot be NaN or infinite.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

package daftar

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount interprets the raw text of an amount field as a number.
// It is total: empty or unparsable text yields zero, never an error. This
// keeps the "preserve exactly what was typed" contract at rest while giving
// aggregation a safe numeric view.
func ParseAmount(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return v
}

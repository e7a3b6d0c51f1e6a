// Package normalize converts raw integer ledger units into human-scale
// decimal quantities. All arithmetic stays in decimal representation; nothing
// passes through a float.
package normalize

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ADADecimals is the fixed minor-unit scale of the native coin:
// 1 ADA = 10^6 lovelace. Native tokens declare their own scale in metadata.
const ADADecimals = 6

// ParseRaw parses a string-encoded minor-unit quantity as an
// arbitrary-precision integer.
func ParseRaw(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	if !d.IsInteger() {
		return decimal.Zero, fmt.Errorf("parse quantity %q: not an integer", s)
	}
	return d, nil
}

// Quantity converts a raw minor-unit quantity to its major-unit value:
// raw / 10^decimals, rounded to decimals places. Rounding is half away from
// zero (round-half-up for the non-negative quantities the ledger carries),
// matching the spreadsheet rounding the exporters expect.
func Quantity(raw decimal.Decimal, decimals int) decimal.Decimal {
	if decimals < 0 {
		decimals = 0
	}
	return raw.Shift(int32(-decimals)).Round(int32(decimals))
}

// QuantityString parses and converts in one step.
func QuantityString(raw string, decimals int) (decimal.Decimal, error) {
	d, err := ParseRaw(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return Quantity(d, decimals), nil
}

// Lovelace converts a string-encoded lovelace quantity to ADA. Malformed
// input degrades to zero; the caller's record keeps its place in the table.
func Lovelace(raw string) decimal.Decimal {
	ada, err := QuantityString(raw, ADADecimals)
	if err != nil {
		return decimal.Zero
	}
	return ada
}

package gpapi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// toNumeric formats an amount in minor units without separators or sign
// (10.5 -> "1050"). A nil amount yields nil so the field is omitted.
func toNumeric(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return numeric(*d)
}

func numeric(d decimal.Decimal) string {
	s := d.StringFixed(2)
	s = strings.Replace(s, ".", "", 1)
	return strings.TrimPrefix(s, "-")
}

// orZero dereferences d, treating nil as zero.
func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// opt turns an empty string into nil so Document.Set drops it.
func opt(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// Package amount parses locale-ambiguous monetary strings. Bank exports mix
// Dutch ("1.234,56") and English ("1,234.56") notation, often with a currency
// symbol in front.
package amount

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a raw amount cell into an exact decimal. The boolean reports
// whether the cell was understood; an empty cell is a legitimate zero.
func Parse(raw string) (decimal.Decimal, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return decimal.Zero, true
	}

	// Drop currency symbols, codes and stray spacing before looking at
	// separators.
	t = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '-' || r == ',' || r == '.':
			return r
		}
		return -1
	}, t)

	hasComma := strings.Contains(t, ",")
	hasDot := strings.Contains(t, ".")
	switch {
	case hasComma && !hasDot:
		// Comma is the decimal separator.
		t = strings.ReplaceAll(t, ",", ".")
	case hasComma && hasDot:
		// The separator that appears last is the decimal one.
		if strings.LastIndex(t, ",") > strings.LastIndex(t, ".") {
			t = strings.ReplaceAll(t, ".", "")
			t = strings.ReplaceAll(t, ",", ".")
		} else {
			t = strings.ReplaceAll(t, ",", "")
		}
	default:
		t = strings.ReplaceAll(t, ",", "")
	}

	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseOrZero parses like Parse but silently returns zero for unparseable
// input, matching the behavior reconciled books already depend on. Callers
// that need visibility into bad cells use Parse and count the failures.
func ParseOrZero(raw string) decimal.Decimal {
	d, _ := Parse(raw)
	return d
}

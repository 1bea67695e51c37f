package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as a dollar string with two decimal places
// and comma thousands separators: 1234.5 -> "$1,234.50", 0 -> "$0.00".
// The exact format is relied on by report consumers, do not change it.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal reads a number typed in a form. It accepts "1234.5",
// "1234,5" and "1.234,50". Anything else yields Valid=false.
func ParseDecimal(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// FormatDecimal writes a number back into a form field with a decimal comma.
func FormatDecimal(d decimal.Decimal) string {
	return strings.Replace(d.String(), ".", ",", 1)
}

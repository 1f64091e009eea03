package cartazes

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders d with two decimals, '.' as the thousands separator
// and ',' as the decimal separator. Halves round to even.
//
// Examples:
//   - 1234.5  -> "1.234,50"
//   - 7       -> "7,00"
//   - -1234.5 -> "-1.234,50"
func FormatCurrency(d decimal.Decimal) string {
	s := d.RoundBank(2).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	out := groupThousands(intPart) + "," + frac
	if neg && out != "0,00" {
		return "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

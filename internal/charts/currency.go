// internal/charts/currency.go
package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "£"

// FormatCurrency renders v as whole currency units with thousands
// separators: 1234567 -> "£1,234,567". Halves round to even.
func FormatCurrency(symbol string, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s%v", symbol, v)
	}

	d := decimal.NewFromFloat(v).RoundBank(0)
	digits := group(d.Abs().StringFixed(0))
	if d.IsNegative() {
		return "-" + symbol + digits
	}
	return symbol + digits
}

// group inserts a comma every three digits from the right.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// currencyJS is the browser-side twin of FormatCurrency.
func currencyJS(symbol string) string {
	return fmt.Sprintf(`function (v) { return (v < 0 ? '-' : '') + %q + Math.round(Math.abs(v)).toLocaleString('en-GB'); }`, symbol)
}

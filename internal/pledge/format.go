package pledge

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

// FormatAmount renders d with two decimals and p's digit grouping without
// passing through float64.
func FormatAmount(p *message.Printer, d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fixed
	}

	if n == 0 && strings.HasPrefix(whole, "-") {
		return "-" + p.Sprintf("%d", n) + "." + frac
	}

	return p.Sprintf("%d", n) + "." + frac
}

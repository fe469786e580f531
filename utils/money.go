package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// ParseMoney -> reads a free-text amount such as "R$ 1.234,56", "45,90" or "45.90".
// When a comma is present it is the decimal separator and dots group thousands;
// otherwise a single dot is decimal and repeated dots group thousands.
// Anything unreadable is zero.
func ParseMoney(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return decimal.Zero
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.ReplaceAll(s, "-", "")

	if i := strings.LastIndex(s, ","); i >= 0 {
		intPart := strings.NewReplacer(".", "", ",", "").Replace(s[:i])
		s = intPart + "." + strings.ReplaceAll(s[i+1:], ".", "")
	} else if strings.Count(s, ".") > 1 {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.Trim(s, ".")
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		d = d.Neg()
	}
	return d
}

// FormatBRL formats an amount the way Brazilian receipts do.
// Example: 1234.5 -> "R$ 1.234,50"
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	parts := strings.Split(amount.StringFixed(2), ".")
	integerPart, decimalPart := parts[0], parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "R$ " + strings.Join(groups, ".") + "," + decimalPart
}

// FormatCompactBRL -> dashboard cards: "R$ 12.3K" from a thousand up, "R$ 45,90" below.
func FormatCompactBRL(amount decimal.Decimal) string {
	if amount.GreaterThanOrEqual(thousand) {
		return "R$ " + amount.Div(thousand).StringFixed(1) + "K"
	}
	return "R$ " + strings.Replace(amount.StringFixed(2), ".", ",", 1)
}

// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/taka/internal/model"
)

// FormatAmount formats a money value with thousands separators, at most
// two decimals, and the currency symbol after it.
// e.g., 1234.5 -> "1,234.5 ৳"
func FormatAmount(d decimal.Decimal, currency string) string {
	s := FormatDecimal(d)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatSigned formats an amount with an explicit sign: "+" for income
// and "-" for expense.
func FormatSigned(tx model.Transaction, currency string) string {
	sign := "+"
	if tx.Type == model.Expense {
		sign = "-"
	}
	return sign + FormatAmount(tx.Amount, currency)
}

// FormatDecimal groups the integer part and trims trailing zeros.
// e.g., 1234567.50 -> "1,234,567.5"
func FormatDecimal(d decimal.Decimal) string {
	s := d.Round(2).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Beyond int64; leave ungrouped.
		return d.Round(2).String()
	}
	out := FormatNumber(n)
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

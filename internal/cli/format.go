// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount with comma separators.
// e.g., 1234567.4 -> "1,234,567"
func FormatMoney(v float64) string {
	return FormatNumber(int64(math.Round(v)))
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

// FormatPercent formats a percentage value (43.6 means 43.6%).
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}

// FormatRate formats an annual interest rate.
func FormatRate(r float64) string {
	if r == math.Trunc(r) {
		return fmt.Sprintf("%.0f%%", r)
	}
	return fmt.Sprintf("%.2f%%", r)
}

// FormatMonths formats a month count as years and months.
// e.g., 27 -> "2y 3m", 8 -> "8m"
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years := months / 12
	rem := months % 12
	if years > 0 {
		return fmt.Sprintf("%dy %dm", years, rem)
	}
	return fmt.Sprintf("%dm", rem)
}

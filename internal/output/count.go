// Package output renders a report as an HTML table, an HTML page, or a summary map for console formatters.
package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount renders n with thousands separators (1234567 -> "1,234,567").
func FormatCount(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatDecimal renders f with thousands separators and one decimal.
func FormatDecimal(f float64) string {
	return message.NewPrinter(language.English).Sprintf("%.1f", f)
}

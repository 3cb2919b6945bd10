// Package utils holds small display helpers shared across surfaces.
package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatPaise renders a paise amount as rupees, e.g. 19900 -> "₹199".
// Fractional amounts keep two decimals.
func FormatPaise(amount int64) string {
	if amount%100 == 0 {
		return fmt.Sprintf("₹%d", amount/100)
	}
	return fmt.Sprintf("₹%d.%02d", amount/100, amount%100)
}

// Truncate shortens s to at most max runes, appending an ellipsis when it
// was cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "…"
}

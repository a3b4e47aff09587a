package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Number formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func Number(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// Rate formats an average growth rate with comma-separated thousands and one
// decimal place. Example: 1204.34 → "1,204.3 pulls/hour".
func Rate(perHour float64) string {
	return formatCommaFloat(perHour) + " pulls/hour"
}

// Hours formats an elapsed duration in hours with one decimal place.
// Example: 5.25 → "5.2 hours".
func Hours(h float64) string {
	return fmt.Sprintf("%.1f hours", h)
}

// Growth formats an absolute pull-count delta with an explicit sign.
// Example: 50 → "+50 pulls".
func Growth(delta int64) string {
	if delta < 0 {
		return Number(delta) + " pulls"
	}
	return "+" + Number(delta) + " pulls"
}

// formatCommaFloat formats a float with comma-separated thousands and one decimal place.
func formatCommaFloat(f float64) string {
	// Format with one decimal place first
	formatted := fmt.Sprintf("%.1f", f)
	// Strip leading minus before inserting commas, then restore it
	sign := ""
	if len(formatted) > 0 && formatted[0] == '-' {
		sign = "-"
		formatted = formatted[1:]
	}
	// Split on decimal point
	parts := strings.SplitN(formatted, ".", 2)
	intPart := insertCommas(parts[0])
	if len(parts) == 2 {
		return sign + intPart + "." + parts[1]
	}
	return sign + intPart
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}

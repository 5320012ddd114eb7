package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FormatINR formats an amount into whole-rupee Indian notation.
// It uses the Indian numbering system where, after the rightmost 3 digits,
// digits are grouped in pairs (e.g., ₹12,50,000). Fractional paise are
// rounded away; quotation amounts are whole rupees.
// Negative amounts are rejected with ErrInvalidAmount rather than clamped.
func FormatINR(amount float64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("%w: %.2f", ErrInvalidAmount, amount)
	}

	raw := fmt.Sprintf("%.0f", amount)
	return "₹" + applyIndianGrouping(raw), nil
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// The last 3 digits stay together.
	result := s[n-3:]
	remaining := s[:n-3]

	// Group remaining digits in pairs from the right.
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// dateLayouts are the accepted storage forms of a quotation date: the
// plain date entered by the admin form and the PocketBase autodate form.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05.000Z",
	time.RFC3339,
}

// FormatDisplayDate renders a stored date as DD/MM/YYYY.
// Malformed input is rejected with ErrInvalidDate.
func FormatDisplayDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// HumanizeServiceKey expands a camel-case service identifier into
// space-separated title-cased words: "packingMaterial" -> "Packing Material".
func HumanizeServiceKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

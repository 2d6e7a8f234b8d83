// Package strnum contains the locale-independent string and number
// helpers used throughout the WKT-CRS core: number parsing and
// formatting, case-insensitive comparison, and quoted-string
// escaping/unescaping. It has no dependency on the tokenizer or the
// object model, matching the teacher's rtcm/utils package, which is
// similarly a dependency-free leaf used by every other rtcm package.
package strnum

import (
	"strconv"
	"strings"
)

// EqualFold reports whether a and b are equal ignoring ASCII case. Used
// for keyword matching and for the case-insensitive natural-key
// deduplication required of identifier and parameter sets.
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// FoldKey lower-cases s using a fixed (non-locale) mapping, for use as a
// map key when deduplicating by case-insensitive name.
func FoldKey(s string) string {
	return strings.ToLower(s)
}

// ParseFloat parses a decimal number with optional sign, fractional part
// and exponent. The decimal separator is always '.', independent of the
// process locale.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseInt parses a decimal integer with optional sign.
func ParseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatFloat renders f in a form that parses back to the same IEEE-754
// value, trimming trailing insignificant zeros.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatInt renders n as a plain decimal integer.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// EscapeQuoted doubles every '"' in s, the WKT quoted-string escaping
// rule.
func EscapeQuoted(s string) string {
	if !strings.ContainsRune(s, '"') {
		return s
	}
	return strings.ReplaceAll(s, `"`, `""`)
}

// UnescapeQuoted collapses every doubled `""` in s back to a single `"`,
// the inverse of EscapeQuoted. The tokenizer's pass 1 applies the same
// rule to quoted regions with its own inline code.
func UnescapeQuoted(s string) string {
	if !strings.Contains(s, `""`) {
		return s
	}
	return strings.ReplaceAll(s, `""`, `"`)
}

// CollapseWhitespace replaces every run of ASCII whitespace in s with a
// single space and trims leading/trailing whitespace, the same rule the
// tokenizer's pass 1 applies inline to the interior of quoted strings.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		lastWasSpace = false
		b.WriteByte(c)
	}
	out := b.String()
	return strings.TrimSuffix(out, " ")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

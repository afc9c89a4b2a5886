package format

import (
	"fmt"
	"strconv"
	"strings"
)

// StandardFormatter renders values with plain fixed-decimal formatting and
// thousands separators.
type StandardFormatter struct{}

// NewStandardFormatter creates a new StandardFormatter.
func NewStandardFormatter() *StandardFormatter {
	return &StandardFormatter{}
}

// FormatNumber renders v with the given number of decimal places.
func (f *StandardFormatter) FormatNumber(v *float64, decimals int) string {
	if !f.IsValidValue(v, KindNumber) {
		return f.Fallback(KindNumber)
	}
	if decimals < 0 {
		decimals = 0
	}
	return groupThousands(strconv.FormatFloat(*v, 'f', decimals, 64))
}

// FormatCurrency renders v as a USD amount with two decimal places.
func (f *StandardFormatter) FormatCurrency(v *float64) string {
	if !f.IsValidValue(v, KindCurrency) {
		return f.Fallback(KindCurrency)
	}
	if *v < 0 {
		pos := -*v
		return "-$" + groupThousands(strconv.FormatFloat(pos, 'f', 2, 64))
	}
	return "$" + groupThousands(strconv.FormatFloat(*v, 'f', 2, 64))
}

// FormatPercentage renders v as a signed percentage with two decimals.
func (f *StandardFormatter) FormatPercentage(v *float64) string {
	if !f.IsValidValue(v, KindPercent) {
		return f.Fallback(KindPercent)
	}
	sign := ""
	if *v > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, *v)
}

// Slugify derives a URL-safe lowercase slug from text.
func (f *StandardFormatter) Slugify(text string) string {
	return slugify(text)
}

// IsValidValue reports whether v is usable for the given kind.
func (f *StandardFormatter) IsValidValue(v any, kind ValueKind) bool {
	return validValue(v, kind)
}

// Fallback returns the display string used when a value is invalid.
func (f *StandardFormatter) Fallback(kind ValueKind) string {
	return defaultFallbacks[kind]
}

// groupThousands inserts comma separators into the integer part of a
// decimal string produced by strconv.FormatFloat.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		var sb strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			sb.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if sb.Len() > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(intPart[i : i+3])
		}
		intPart = sb.String()
	}

	out := intPart + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

var _ Formatter = (*StandardFormatter)(nil)

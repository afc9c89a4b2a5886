package format

import (
	"fmt"
	"math"
)

// magnitude suffixes for compact notation, largest first.
var magnitudes = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// CompactFormatter renders large values in abbreviated magnitude notation
// (1.50B, 2.30M) for dense dashboard display. Small values fall back to
// plain fixed-decimal output.
type CompactFormatter struct{}

// NewCompactFormatter creates a new CompactFormatter.
func NewCompactFormatter() *CompactFormatter {
	return &CompactFormatter{}
}

// FormatNumber renders v abbreviated; decimals applies to sub-thousand values.
func (f *CompactFormatter) FormatNumber(v *float64, decimals int) string {
	if !f.IsValidValue(v, KindNumber) {
		return f.Fallback(KindNumber)
	}
	if decimals < 0 {
		decimals = 0
	}
	return compact(*v, decimals)
}

// FormatCurrency renders v as an abbreviated USD amount.
func (f *CompactFormatter) FormatCurrency(v *float64) string {
	if !f.IsValidValue(v, KindCurrency) {
		return f.Fallback(KindCurrency)
	}
	if *v < 0 {
		return "-$" + compact(-*v, 2)
	}
	return "$" + compact(*v, 2)
}

// FormatPercentage renders v as a signed percentage with one decimal.
func (f *CompactFormatter) FormatPercentage(v *float64) string {
	if !f.IsValidValue(v, KindPercent) {
		return f.Fallback(KindPercent)
	}
	sign := ""
	if *v > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, *v)
}

// Slugify derives a URL-safe lowercase slug from text.
func (f *CompactFormatter) Slugify(text string) string {
	return slugify(text)
}

// IsValidValue reports whether v is usable for the given kind.
func (f *CompactFormatter) IsValidValue(v any, kind ValueKind) bool {
	return validValue(v, kind)
}

// Fallback returns the display string used when a value is invalid.
func (f *CompactFormatter) Fallback(kind ValueKind) string {
	return defaultFallbacks[kind]
}

// compact abbreviates abs(v) >= 1000 with a magnitude suffix.
func compact(v float64, decimals int) string {
	abs := math.Abs(v)
	for _, m := range magnitudes {
		if abs >= m.threshold {
			return fmt.Sprintf("%.2f%s", v/m.threshold, m.suffix)
		}
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

var _ Formatter = (*CompactFormatter)(nil)

// Package format provides the display formatting and validation capability
// consumed while building derived view-model fields. Formatting never fails:
// an invalid value yields the kind's configured fallback string.
package format

import (
	"math"
	"regexp"
	"strings"
)

// ValueKind identifies the class of value being formatted or validated.
type ValueKind string

// Supported value kinds.
const (
	KindNumber   ValueKind = "number"
	KindCurrency ValueKind = "currency"
	KindPercent  ValueKind = "percent"
	KindText     ValueKind = "text"
)

// Formatter produces display strings for view-model fields.
// Implementations must never return an error for invalid input; they return
// the fallback string for the value's kind instead.
type Formatter interface {
	// FormatNumber renders v with the given number of decimal places.
	FormatNumber(v *float64, decimals int) string

	// FormatCurrency renders v as a USD amount.
	FormatCurrency(v *float64) string

	// FormatPercentage renders v as a signed percentage.
	FormatPercentage(v *float64) string

	// Slugify derives a URL-safe lowercase slug from text.
	Slugify(text string) string

	// IsValidValue reports whether v is usable for the given kind.
	IsValidValue(v any, kind ValueKind) bool

	// Fallback returns the display string used when a value is invalid.
	Fallback(kind ValueKind) string
}

// defaultFallbacks maps each kind to its display fallback.
var defaultFallbacks = map[ValueKind]string{
	KindNumber:   "—",
	KindCurrency: "$—",
	KindPercent:  "—%",
	KindText:     "",
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify is the shared slug derivation: lowercase, non-alphanumeric runs
// collapsed to single hyphens, edges trimmed.
func slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// validValue reports whether v is a usable value for kind. Numeric kinds
// reject nil pointers, NaN and infinities; text rejects empty strings.
func validValue(v any, kind ValueKind) bool {
	switch kind {
	case KindNumber, KindCurrency, KindPercent:
		f, ok := floatOf(v)
		if !ok {
			return false
		}
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case KindText:
		s, ok := v.(string)
		return ok && strings.TrimSpace(s) != ""
	default:
		return false
	}
}

// floatOf extracts a float from the value shapes formatters accept.
func floatOf(v any) (float64, bool) {
	switch n := v.(type) {
	case *float64:
		if n == nil {
			return 0, false
		}
		return *n, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

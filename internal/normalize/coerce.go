package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coercion helpers for untyped provider DTOs. Every helper absorbs shape
// irregularities: a missing key, wrong type or unparseable value yields the
// zero result, never a panic or error.

// objectField returns m[key] as a map when it is one.
func objectField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]any)
	return obj
}

// sliceField returns m[key] as a []any when it is one.
func sliceField(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	s, _ := m[key].([]any)
	return s
}

// stringField returns the trimmed string at m[key], or "" when absent.
// Numeric identifiers are accepted and rendered as their decimal form.
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// textField returns the trimmed string at m[key] only when the value
// actually is a string. Unlike stringField it never renders numerics as
// text, so identity fields cannot be fabricated from numbers.
func textField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// floatField returns the numeric value at m[key], or nil when absent or not
// coercible to a finite float.
func floatField(m map[string]any, key string) *float64 {
	if m == nil {
		return nil
	}
	return coerceFloat(m[key])
}

// intField returns the integer value at m[key], or nil.
func intField(m map[string]any, key string) *int {
	f := floatField(m, key)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// coerceFloat converts the value shapes providers emit for numbers.
// Stringly-typed numerics are parsed; NaN and infinities are rejected.
func coerceFloat(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// stringPtr returns the trimmed string at m[key] as a pointer, or nil when
// absent or empty.
func stringPtr(m map[string]any, key string) *string {
	s := stringField(m, key)
	if s == "" {
		return nil
	}
	return &s
}

// firstString walks keys in order and returns the first non-empty string.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringField(m, key); s != "" {
			return s
		}
	}
	return ""
}

// firstFloat walks keys in order and returns the first coercible number.
func firstFloat(m map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if f := floatField(m, key); f != nil {
			return f
		}
	}
	return nil
}

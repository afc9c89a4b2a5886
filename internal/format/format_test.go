package format

import (
	"errors"
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestStandardFormatter_FormatNumber(t *testing.T) {
	f := NewStandardFormatter()

	tests := []struct {
		name     string
		value    *float64
		decimals int
		want     string
	}{
		{"plain", fp(42.5), 2, "42.50"},
		{"thousands grouping", fp(1234567.891), 2, "1,234,567.89"},
		{"zero decimals", fp(1234.0), 0, "1,234"},
		{"negative", fp(-9876543.21), 2, "-9,876,543.21"},
		{"negative decimals clamped", fp(5.0), -3, "5"},
		{"nil falls back", nil, 2, "—"},
		{"nan falls back", fp(math.NaN()), 2, "—"},
		{"inf falls back", fp(math.Inf(1)), 2, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatNumber(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("FormatNumber(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestStandardFormatter_FormatCurrency(t *testing.T) {
	f := NewStandardFormatter()

	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"plain", fp(1.0005), "$1.00"},
		{"grouped", fp(80000000000.0), "$80,000,000,000.00"},
		{"negative", fp(-250.5), "-$250.50"},
		{"nil falls back", nil, "$—"},
		{"nan falls back", fp(math.NaN()), "$—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatCurrency(tt.value)
			if got != tt.want {
				t.Errorf("FormatCurrency(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestStandardFormatter_FormatPercentage(t *testing.T) {
	f := NewStandardFormatter()

	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"positive gets sign", fp(2.5), "+2.50%"},
		{"negative keeps sign", fp(-0.02), "-0.02%"},
		{"zero unsigned", fp(0), "0.00%"},
		{"nil falls back", nil, "—%"},
		{"inf falls back", fp(math.Inf(-1)), "—%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatPercentage(tt.value)
			if got != tt.want {
				t.Errorf("FormatPercentage(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCompactFormatter_Magnitudes(t *testing.T) {
	f := NewCompactFormatter()

	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"trillions", fp(1.5e12), "1.50T"},
		{"billions", fp(8.0e10), "80.00B"},
		{"millions", fp(2345678.0), "2.35M"},
		{"thousands", fp(1234.0), "1.23K"},
		{"sub-thousand uses decimals", fp(42.5), "42.50"},
		{"nil falls back", nil, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatNumber(tt.value, 2)
			if got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCompactFormatter_FormatCurrency(t *testing.T) {
	f := NewCompactFormatter()

	if got := f.FormatCurrency(fp(8.0e10)); got != "$80.00B" {
		t.Errorf("FormatCurrency(8e10) = %q, want $80.00B", got)
	}
	if got := f.FormatCurrency(fp(-2.5e6)); got != "-$2.50M" {
		t.Errorf("FormatCurrency(-2.5e6) = %q, want -$2.50M", got)
	}
	if got := f.FormatCurrency(nil); got != "$—" {
		t.Errorf("FormatCurrency(nil) = %q, want $—", got)
	}
}

func TestSlugify(t *testing.T) {
	f := NewStandardFormatter()

	tests := []struct {
		in   string
		want string
	}{
		{"USD Coin", "usd-coin"},
		{"  Tether USD  ", "tether-usd"},
		{"First Digital USD (FDUSD)", "first-digital-usd-fdusd"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := f.Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidValue(t *testing.T) {
	f := NewStandardFormatter()

	if f.IsValidValue(nil, KindNumber) {
		t.Error("nil should be invalid for number")
	}
	if f.IsValidValue((*float64)(nil), KindCurrency) {
		t.Error("nil *float64 should be invalid for currency")
	}
	if f.IsValidValue(math.NaN(), KindNumber) {
		t.Error("NaN should be invalid")
	}
	if f.IsValidValue(math.Inf(1), KindPercent) {
		t.Error("+Inf should be invalid")
	}
	if !f.IsValidValue(fp(1.5), KindNumber) {
		t.Error("*float64 should be valid")
	}
	if !f.IsValidValue(42, KindCurrency) {
		t.Error("int should be valid")
	}
	if !f.IsValidValue("Tether", KindText) {
		t.Error("non-empty string should be valid text")
	}
	if f.IsValidValue("   ", KindText) {
		t.Error("blank string should be invalid text")
	}
	if f.IsValidValue(1.5, ValueKind("unknown")) {
		t.Error("unknown kind should be invalid")
	}
}

func TestFallbacks(t *testing.T) {
	f := NewCompactFormatter()

	want := map[ValueKind]string{
		KindNumber:   "—",
		KindCurrency: "$—",
		KindPercent:  "—%",
		KindText:     "",
	}
	for kind, expected := range want {
		if got := f.Fallback(kind); got != expected {
			t.Errorf("Fallback(%s) = %q, want %q", kind, got, expected)
		}
	}
}

func TestFromConfig(t *testing.T) {
	if _, err := FromConfig(Config{Type: TypeStandard}); err != nil {
		t.Fatalf("standard: %v", err)
	}
	if _, err := FromConfig(Config{Type: TypeCompact}); err != nil {
		t.Fatalf("compact: %v", err)
	}
	if _, err := FromConfig(Config{}); err != nil {
		t.Fatalf("empty type should default to standard: %v", err)
	}
	if _, err := FromConfig(Config{Type: "scientific"}); !errors.Is(err, ErrUnknownFormatterType) {
		t.Fatalf("expected ErrUnknownFormatterType, got %v", err)
	}
}

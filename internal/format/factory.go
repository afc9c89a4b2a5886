package format

import "errors"

// Registered formatter types.
const (
	TypeStandard = "standard"
	TypeCompact  = "compact"
)

// ErrUnknownFormatterType is returned when the requested formatter type is
// not one of the registered variants.
var ErrUnknownFormatterType = errors.New("unknown formatter type")

// Config selects a formatter implementation.
type Config struct {
	Type string
}

// FromConfig creates a Formatter for the configured type.
// Unknown types fail here, at construction time, never at first use.
func FromConfig(cfg Config) (Formatter, error) {
	switch cfg.Type {
	case TypeStandard, "":
		return NewStandardFormatter(), nil
	case TypeCompact:
		return NewCompactFormatter(), nil
	default:
		return nil, ErrUnknownFormatterType
	}
}

package viewmodel

import (
	"errors"

	"go.uber.org/zap"

	"stablecoin-view/internal/format"
	"stablecoin-view/internal/normalize"
)

// Registered transformer types.
const (
	TypeStablecoin = "stablecoin"
)

// ErrUnknownTransformerType is returned when the requested transformer type
// is not one of the registered variants.
var ErrUnknownTransformerType = errors.New("unknown transformer type")

// Config selects and wires a transformer implementation.
type Config struct {
	// Type picks the transformer variant. Empty defaults to TypeStablecoin.
	Type string

	// FormatterType picks the display formatting capability.
	FormatterType string

	// Logger receives pipeline debug output. Optional.
	Logger *zap.Logger
}

// FromConfig creates a Transformer for the configured type. Unknown
// transformer or formatter types fail here, at construction time; this is
// the only condition in the pipeline that aborts instead of degrading.
func FromConfig(cfg Config) (*Transformer, error) {
	formatter, err := format.FromConfig(format.Config{Type: cfg.FormatterType})
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Type {
	case TypeStablecoin, "":
		return &Transformer{
			normalizer: normalize.NewNormalizer(formatter),
			logger:     logger.Named("transformer"),
		}, nil
	default:
		return nil, ErrUnknownTransformerType
	}
}

// Package main runs the transformation pipeline once: a JSON batch read
// from a file or stdin is normalized, aggregated and printed as the
// complete view model bundle.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"stablecoin-view/internal/viewmodel"
)

func main() {
	input := flag.String("input", "-", "Path to JSON batch file, or - for stdin")
	transformerType := flag.String("type", viewmodel.TypeStablecoin, "Transformer type")
	formatterType := flag.String("formatter", "standard", "Formatter type")
	pretty := flag.Bool("pretty", false, "Indent the output JSON")
	flag.Parse()

	transformer, err := viewmodel.FromConfig(viewmodel.Config{
		Type:          *transformerType,
		FormatterType: *formatterType,
		Logger:        zap.NewNop(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (type=%q, formatter=%q)\n", err, *transformerType, *formatterType)
		os.Exit(1)
	}

	data, err := readInput(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error: input is not valid JSON: %v\n", err)
		os.Exit(1)
	}

	// A non-sequence payload is not fatal: the transformer treats it as an
	// empty batch, matching the pipeline's fail-soft contract.
	transformer.TransformData(raw)
	bundle := transformer.CompleteViewModel()

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(bundle); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}

// readInput reads the batch from path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

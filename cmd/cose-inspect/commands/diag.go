package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/cosekey-go/pkg/inspect"
)

// DiagOptions configures the diag command.
type DiagOptions struct {
	Format string // text, json, yaml
	In     string // read the records from a file instead of the argument
	Hex    string
}

// DiagOutput describes one data item from a diag sweep.
type DiagOutput struct {
	Index    int    `json:"index" yaml:"index"`
	Offset   int    `json:"offset" yaml:"offset"`
	Length   int    `json:"length" yaml:"length"`
	Notation string `json:"notation" yaml:"notation"`
	Variant  string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunDiag runs the diag command.
func RunDiag(args []string, stdout, stderr io.Writer) int {
	opts, err := parseDiagArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	data, err := loadRecord(opts.In, opts.Hex)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printDiagUsage(stderr)
		return exitCommandError
	}

	outputs, err := sweepItems(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if len(outputs) == 0 {
			return exitDecode
		}
	}

	switch opts.Format {
	case "json":
		encoded, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Fprintln(stdout, string(encoded))
	case "yaml":
		encoded, _ := yaml.Marshal(outputs)
		fmt.Fprint(stdout, string(encoded))
	default:
		for _, out := range outputs {
			if out.Variant != "" {
				fmt.Fprintf(stdout, "item %d at offset %d (%d bytes): %s\n", out.Index, out.Offset, out.Length, out.Variant)
			} else {
				fmt.Fprintf(stdout, "item %d at offset %d (%d bytes): %s\n", out.Index, out.Offset, out.Length, out.Error)
			}
			fmt.Fprintf(stdout, "  %s\n", out.Notation)
		}
	}

	if err != nil {
		return exitDecode
	}
	return exitSuccess
}

// sweepItems walks a buffer of concatenated CBOR data items. Each item
// is rendered in diagnostic notation and matched against the known key
// types. A malformed tail aborts the sweep but keeps what was read.
func sweepItems(data []byte) ([]DiagOutput, error) {
	outputs := []DiagOutput{}
	offset := 0
	remaining := data

	for len(remaining) > 0 {
		notation, rest, err := cbor.DiagnoseFirst(remaining)
		if err != nil {
			return outputs, fmt.Errorf("malformed data item at offset %d: %w", offset, err)
		}
		length := len(remaining) - len(rest)

		out := DiagOutput{
			Index:    len(outputs),
			Offset:   offset,
			Length:   length,
			Notation: notation,
		}
		if _, variant, err := inspect.Identify(remaining[:length]); err == nil {
			out.Variant = variant
		} else {
			out.Error = err.Error()
		}
		outputs = append(outputs, out)

		offset += length
		remaining = rest
	}

	return outputs, nil
}

func parseDiagArgs(args []string) (DiagOptions, error) {
	fs := flag.NewFlagSet("diag", flag.ContinueOnError)
	opts := DiagOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.StringVar(&opts.In, "in", "", "Read the records from a file")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.Hex = remaining[0]
	}

	return opts, nil
}

func printDiagUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cose-inspect diag [options] <records-hex>

Walks a buffer of concatenated CBOR data items, prints each one in
diagnostic notation and reports which key type it decodes as.

Options:
  -f, --format    Output format (text, json, yaml) [default: text]
  --in            Read the records from a file (raw or hex text)

Examples:
  cose-inspect diag a201040328
  cose-inspect diag --in keys.bin`)
}

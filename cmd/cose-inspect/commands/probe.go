package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/cosekey-go/pkg/inspect"
)

// ProbeOptions configures the probe command.
type ProbeOptions struct {
	Format string // text, json, yaml
	In     string // read the record from a file instead of the argument
	Hex    string
}

// ProbeOutput reports one decode attempt against a known key type.
type ProbeOutput struct {
	Variant string `json:"variant" yaml:"variant"`
	Ok      bool   `json:"ok" yaml:"ok"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunProbe runs the probe command.
func RunProbe(args []string, stdout, stderr io.Writer) int {
	opts, err := parseProbeArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	record, err := loadRecord(opts.In, opts.Hex)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printProbeUsage(stderr)
		return exitCommandError
	}

	results := inspect.Probe(record)

	matched := false
	for _, r := range results {
		if r.Ok() {
			matched = true
			break
		}
	}

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(buildProbeOutputs(results), "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(buildProbeOutputs(results))
		fmt.Fprint(stdout, string(data))
	default:
		f := inspect.NewFormatter()
		fmt.Fprint(stdout, f.FormatResults(results))
	}

	if !matched {
		return exitDecode
	}
	return exitSuccess
}

func buildProbeOutputs(results []inspect.Result) []ProbeOutput {
	outputs := make([]ProbeOutput, 0, len(results))
	for _, r := range results {
		out := ProbeOutput{Variant: r.Variant, Ok: r.Ok()}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		outputs = append(outputs, out)
	}
	return outputs
}

func parseProbeArgs(args []string) (ProbeOptions, error) {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	opts := ProbeOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.StringVar(&opts.In, "in", "", "Read the record from a file")

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

func printProbeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cose-inspect probe [options] <record-hex>

Tries to decode the record as every known key type and reports
which ones accept it.

Options:
  -f, --format    Output format (text, json, yaml) [default: text]
  --in            Read the record from a file (raw or hex text)

Examples:
  cose-inspect probe a201040328
  cose-inspect probe --format json --in key.cose`)
}

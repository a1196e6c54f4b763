package commands

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/cosekey-go/pkg/cose"
	"github.com/mash-protocol/cosekey-go/pkg/inspect"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitDecode       = 2
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Format  string // text, json, yaml
	Variant string // decode as a specific key type instead of probing
	In      string // read the record from a file instead of the argument
	Full    bool   // never truncate payload hex
	Hex     string
}

// ShowOutput represents one decoded key record for display.
type ShowOutput struct {
	Variant    string `json:"variant" yaml:"variant"`
	Kty        string `json:"kty" yaml:"kty"`
	KtyValue   int    `json:"ktyValue" yaml:"ktyValue"`
	Alg        string `json:"alg" yaml:"alg"`
	AlgValue   int    `json:"algValue" yaml:"algValue"`
	Crv        string `json:"crv,omitempty" yaml:"crv,omitempty"`
	CrvValue   int    `json:"crvValue,omitempty" yaml:"crvValue,omitempty"`
	X          string `json:"x,omitempty" yaml:"x,omitempty"`
	Y          string `json:"y,omitempty" yaml:"y,omitempty"`
	Pub        string `json:"pub,omitempty" yaml:"pub,omitempty"`
	Size       int    `json:"size,omitempty" yaml:"size,omitempty"`
	Thumbprint string `json:"thumbprint,omitempty" yaml:"thumbprint,omitempty"`
}

// loadRecord reads the record bytes for a command: from the file named
// by in when set, otherwise from the hex argument.
func loadRecord(in, hexArg string) ([]byte, error) {
	if in != "" {
		data, err := os.ReadFile(in)
		if err != nil {
			return nil, err
		}
		// Hex text files are accepted alongside raw records.
		trimmed := strings.TrimSpace(string(data))
		if decoded, err := hex.DecodeString(trimmed); err == nil && len(trimmed) > 0 {
			return decoded, nil
		}
		return data, nil
	}
	if hexArg == "" {
		return nil, fmt.Errorf("no record specified")
	}
	return hex.DecodeString(hexArg)
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	record, err := loadRecord(opts.In, opts.Hex)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printShowUsage(stderr)
		return exitCommandError
	}

	var key cose.PublicKey
	if opts.Variant != "" {
		name, ok := inspect.ResolveVariantName(opts.Variant)
		if !ok {
			fmt.Fprintf(stderr, "Error: unknown key type %q\n", opts.Variant)
			return exitCommandError
		}
		key, err = inspect.DecodeAs(name, record)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDecode
		}
	} else {
		key, _, err = inspect.Identify(record)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDecode
		}
	}

	info := inspect.Describe(key)
	output := buildShowOutput(info)

	switch opts.Format {
	case "json":
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(output)
		fmt.Fprint(stdout, string(data))
	default:
		f := inspect.NewFormatter()
		if opts.Full {
			f.PayloadLimit = 0
		}
		fmt.Fprint(stdout, f.FormatKey(info))
	}

	return exitSuccess
}

func buildShowOutput(info *inspect.KeyInfo) ShowOutput {
	out := ShowOutput{
		Variant:    info.Variant,
		Kty:        info.Kty,
		KtyValue:   info.KtyValue,
		Alg:        info.Alg,
		AlgValue:   info.AlgValue,
		X:          info.X,
		Y:          info.Y,
		Pub:        info.Pub,
		Size:       info.Size,
		Thumbprint: info.Thumbprint,
	}
	if info.Crv != "None" {
		out.Crv = info.Crv
		out.CrvValue = info.CrvValue
	}
	return out
}

func parseShowArgs(args []string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts := ShowOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")
	fs.StringVar(&opts.Variant, "variant", "", "Decode as a specific key type")
	fs.StringVar(&opts.In, "in", "", "Read the record from a file")
	fs.BoolVar(&opts.Full, "full", false, "Show full payload hex")

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

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cose-inspect show [options] <record-hex>

Options:
  -f, --format    Output format (text, json, yaml) [default: text]
  --variant       Decode as a specific key type (p256, ecdh, ed25519,
                  totp, dilithium2, dilithium3, dilithium5)
  --in            Read the record from a file (raw or hex text)
  --full          Show full payload hex instead of truncating

Examples:
  cose-inspect show a201040328
  cose-inspect show --format json a201040328
  cose-inspect show --variant ecdh --in key.cose
  cose-inspect show --full --in key.cose`)
}

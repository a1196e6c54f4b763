package commands

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mash-protocol/cosekey-go/pkg/cose"
	"github.com/mash-protocol/cosekey-go/pkg/inspect"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	To      string // cose, pem
	Variant string // target key type for ambiguous inputs
	In      string
	Out     string
	Hex     string
}

// RunConvert runs the convert command.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	switch opts.To {
	case "cose":
		return convertToCose(opts, stdout, stderr)
	case "pem":
		return convertToPem(opts, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "Error: unknown target format %q\n", opts.To)
		printConvertUsage(stderr)
		return exitCommandError
	}
}

func convertToCose(opts ConvertOptions, stdout, stderr io.Writer) int {
	if opts.In == "" {
		fmt.Fprintln(stderr, "Error: converting to a key record requires --in with a PEM or DER file")
		printConvertUsage(stderr)
		return exitCommandError
	}

	pub, err := loadPKIXKey(opts.In)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDecode
	}

	key, err := keyFromPKIX(pub, opts.Variant)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDecode
	}

	record, err := cose.Marshal(key)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDecode
	}

	if opts.Out != "" {
		if err := os.WriteFile(opts.Out, record, 0644); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Converted %s -> %s\n", opts.In, opts.Out)
	} else {
		fmt.Fprintln(stdout, hex.EncodeToString(record))
	}

	return exitSuccess
}

func convertToPem(opts ConvertOptions, stdout, stderr io.Writer) int {
	record, err := loadRecord(opts.In, opts.Hex)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		printConvertUsage(stderr)
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
	} else {
		key, _, err = inspect.Identify(record)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDecode
	}

	pub, err := pkixFromKey(key)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDecode
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDecode
	}
	block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	if opts.Out != "" {
		if err := os.WriteFile(opts.Out, block, 0644); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		source := opts.In
		if source == "" {
			source = "record"
		}
		fmt.Fprintf(stdout, "Converted %s -> %s\n", source, opts.Out)
	} else {
		fmt.Fprint(stdout, string(block))
	}

	return exitSuccess
}

// loadPKIXKey reads a public key from a PEM or DER file.
func loadPKIXKey(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	der := data
	if block, _ := pem.Decode(data); block != nil {
		der = block.Bytes
	}
	return x509.ParsePKIXPublicKey(der)
}

// keyFromPKIX wraps a parsed PKIX public key in its record type. An
// ECDSA P-256 key becomes the signature form unless the key-agreement
// form is requested by name.
func keyFromPKIX(pub any, variant string) (cose.PublicKey, error) {
	name := ""
	if variant != "" {
		resolved, ok := inspect.ResolveVariantName(variant)
		if !ok {
			return nil, fmt.Errorf("unknown key type %q", variant)
		}
		name = resolved
	}

	switch pub := pub.(type) {
	case *ecdsa.PublicKey:
		if pub.Curve != elliptic.P256() {
			return nil, fmt.Errorf("unsupported curve %s, only P-256 is supported", pub.Curve.Params().Name)
		}
		switch name {
		case "", "p256":
			return cose.NewP256PublicKey(pub)
		case "ecdh-es-hkdf-256":
			ecdhPub, err := pub.ECDH()
			if err != nil {
				return nil, err
			}
			return cose.NewEcdhEsHkdf256PublicKey(ecdhPub)
		default:
			return nil, fmt.Errorf("an ECDSA key cannot become %s", name)
		}
	case ed25519.PublicKey:
		if name != "" && name != "ed25519" {
			return nil, fmt.Errorf("an Ed25519 key cannot become %s", name)
		}
		return cose.NewEd25519PublicKey(pub)
	default:
		return nil, fmt.Errorf("unsupported public key type %T", pub)
	}
}

// pkixFromKey extracts the standard-library form of a record for PKIX
// encoding. Symmetric and Dilithium records have no PKIX equivalent.
func pkixFromKey(key cose.PublicKey) (any, error) {
	switch key := key.(type) {
	case cose.P256PublicKey:
		return key.ECDSA()
	case cose.EcdhEsHkdf256PublicKey:
		return key.ECDH()
	case cose.Ed25519PublicKey:
		return key.Ed25519(), nil
	default:
		info := inspect.Describe(key)
		return nil, fmt.Errorf("a %s key has no PKIX form", info.Variant)
	}
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	opts := ConvertOptions{}

	fs.StringVar(&opts.To, "to", "cose", "Target format (cose, pem)")
	fs.StringVar(&opts.Variant, "variant", "", "Target key type for ambiguous inputs")
	fs.StringVar(&opts.In, "in", "", "Input file (PEM/DER for --to cose, record for --to pem)")
	fs.StringVar(&opts.Out, "out", "", "Write the result to a file")

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

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cose-inspect convert [options] [record-hex]

Converts between PKIX (PEM/DER) public keys and COSE key records.
P-256, ECDH-ES and Ed25519 keys convert in both directions. TOTP and
Dilithium records have no PKIX form.

Options:
  --to            Target format (cose, pem) [default: cose]
  --variant       Target key type when the input is ambiguous
                  (an ECDSA P-256 key defaults to the signature form)
  --in            Input file
  --out           Write the result to a file instead of stdout

Examples:
  cose-inspect convert --in key.pem
  cose-inspect convert --in key.pem --variant ecdh --out key.cose
  cose-inspect convert --to pem a401012720062158201122...
  cose-inspect convert --to pem --in key.cose --out key.pem`)
}

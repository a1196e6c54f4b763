// cose-inspect is a CLI tool for identifying, dumping, and converting
// COSE_Key public key records.
package main

import (
	"fmt"
	"os"

	"github.com/mash-protocol/cosekey-go/cmd/cose-inspect/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "probe":
		exitCode = commands.RunProbe(args, os.Stdout, os.Stderr)
	case "diag":
		exitCode = commands.RunDiag(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("cose-inspect version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`cose-inspect - COSE_Key record inspection and conversion tool

Usage:
  cose-inspect <command> [options] [record-hex]

Commands:
  show       Identify a key record and display its fields
  probe      Try a record against every known key type
  diag       Dump records in CBOR diagnostic notation
  convert    Convert between PKIX (PEM/DER) keys and COSE records

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  cose-inspect show a201040328
  cose-inspect show --format json --in key.cose
  cose-inspect probe a201040328
  cose-inspect diag --in keys.bin
  cose-inspect convert --in key.pem --variant p256
  cose-inspect convert --to pem a4010103272006215820...

For command-specific help, run:
  cose-inspect <command> --help`)
}

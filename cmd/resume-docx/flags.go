package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line options.
type cliFlags struct {
	input    string
	output   string
	template string
	badgeDir string
	config   string
	lint     bool
	quiet    bool
	verbose  bool
	version  bool
}

// ErrQuietVerbose rejects the contradictory flag combination.
var ErrQuietVerbose = errors.New("--quiet and --verbose are mutually exclusive")

const usageText = `resume-docx generates a branded resume .docx from a JSON record.

Usage:
  resume-docx --input resume.json --output resume.docx [flags]

Flags:
`

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("resume-docx", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&flags.input, "input", "i", "", "path to the JSON resume record (required)")
	fs.StringVarP(&flags.output, "output", "o", "", "path for the output .docx (required)")
	fs.StringVarP(&flags.template, "template", "t", "", "path to the branded template .docx")
	fs.StringVar(&flags.badgeDir, "badge-dir", "", "directory of badge PNGs overriding the embedded set")
	fs.StringVarP(&flags.config, "config", "c", "", "path to a YAML config file")
	fs.BoolVar(&flags.lint, "lint", false, "print advisory layout warnings (bullet-count minimums)")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fmt.Fprintln(fs.Output(), fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	if flags.quiet && flags.verbose {
		return nil, ErrQuietVerbose
	}

	return flags, nil
}

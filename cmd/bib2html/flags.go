package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	file        string
	output      string
	sort        string
	reverse     bool
	skip        []string
	template    string
	templateDir string
	config      string
	date        string
	verbose     bool
	version     bool
}

// newFlagSet builds the flag set; kept separate so usage can be generated
// from the same definitions.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("bib2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Input/output
	fs.StringVarP(&f.file, "file", "f", "", "BibTeX file to render")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	// Arrangement
	fs.StringVarP(&f.sort, "sort", "s", "", "sort field: year, author, title (default: year)")
	fs.BoolVarP(&f.reverse, "reverse", "r", false, "reverse sort order")
	fs.StringSliceVar(&f.skip, "skip", nil, "entry types to exclude (space- or comma-separated, repeatable)")

	// Templates
	fs.StringVar(&f.template, "template", "", "template file name (default: listtemplate.html)")
	fs.StringVar(&f.templateDir, "template-dir", "", "template directory (default: ./templates if present)")
	fs.StringVar(&f.date, "date", "", `"last updated" text: literal, "auto" or "auto:FORMAT"`)

	// General
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
	fs.BoolVar(&f.version, "version", false, "show version")

	return fs
}

// parseFlags parses args (without the program name).
// Returns flag.ErrHelp for -h/--help.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(expandSkipArgs(args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	return f, nil
}

// expandSkipArgs lets --skip take several space-separated types
// ("--skip techreport misc") by turning the bare words that follow its value
// into repeated --skip flags. Expansion stops at the next flag or "--".
func expandSkipArgs(args []string) []string {
	out := make([]string, 0, len(args))
	inSkip := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "--skip":
			out = append(out, arg)
			if i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
			inSkip = true
		case strings.HasPrefix(arg, "--skip="):
			out = append(out, arg)
			inSkip = true
		case strings.HasPrefix(arg, "-"):
			out = append(out, arg)
			inSkip = false
		case inSkip:
			out = append(out, "--skip", arg)
		default:
			out = append(out, arg)
		}
	}
	return out
}

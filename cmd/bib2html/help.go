package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bib2html -f <file.bib> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a BibTeX bibliography as an HTML publication list.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -f, --file <path>         BibTeX file (required unless set in config)")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (.yaml, .yml, .toml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arrangement:")
	fmt.Fprintln(w, "  -s, --sort <field>        Sort by: year, author, title (default: year)")
	fmt.Fprintln(w, "  -r, --reverse             Reverse sort order")
	fmt.Fprintln(w, "      --skip <types>        Entry types to exclude: --skip techreport misc,")
	fmt.Fprintln(w, "                            --skip techreport,misc or repeated --skip")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --template <name>     Template file (default: listtemplate.html)")
	fmt.Fprintln(w, "      --template-dir <dir>  Template directory (default: ./templates if present)")
	fmt.Fprintln(w, "      --date <s>            Last updated: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, long, month, year")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Updated] YYYY")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging to stderr")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	for _, v := range envVarHelp {
		fmt.Fprintf(w, "  %-24s  %s\n", v.name, v.desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 error, 2 usage or invalid data, 3 I/O")
}

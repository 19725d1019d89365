package main

import (
	"fmt"
	"io"
)

// printUsage prints the full usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docreport [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build one paginated PDF report from the configured markdown documents:")
	fmt.Fprintln(w, "a cover page, then each document in order, with a running header and")
	fmt.Fprintln(w, "\"Page X of N\" footers. Missing documents are skipped with a warning.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -s, --source-dir <dir>    Directory holding the documents")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF (relative to the source directory)")
	fmt.Fprintln(w, "      --html                Also write the intermediate HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom templates/ and styles/ directory")
	fmt.Fprintln(w, "  -t, --timeout <d>         Generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML and exit")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output and timings")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCREPORT_CONFIG          Config file name or path")
	fmt.Fprintln(w, "  DOCREPORT_SOURCE_DIR      Directory holding the documents")
	fmt.Fprintln(w, "  DOCREPORT_OUTPUT          Output PDF path")
	fmt.Fprintln(w, "  DOCREPORT_TIMEOUT         Generation timeout")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome binary to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}

// printShortUsage points at --help after a usage error.
func printShortUsage(w io.Writer) {
	fmt.Fprintln(w, "Run 'docreport --help' for usage.")
}

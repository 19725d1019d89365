package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUnexpectedArgs is returned when positional arguments are given.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// cliFlags holds every command-line flag. Zero values mean "not set":
// the config file (or its defaults) applies.
type cliFlags struct {
	config      string
	output      string
	sourceDir   string
	timeout     string
	pageSize    string
	margin      float64
	assetPath   string
	html        bool
	printConfig bool
	quiet       bool
	verbose     bool
	version     bool
	help        bool
}

// newFlagSet declares the flags on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("docreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVarP(&f.sourceDir, "source-dir", "s", "", "directory holding the markdown documents")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "generation timeout (e.g., 30s, 2m)")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template and style directory")
	fs.BoolVar(&f.html, "html", false, "also write the intermediate HTML")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output and timings")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	return fs
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(fs.Args(), " "))
	}
	if f.quiet && f.verbose {
		return nil, errors.New("--quiet and --verbose are mutually exclusive")
	}
	return f, nil
}

package main

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, f *cliFlags)
		wantErr bool
	}{
		{
			name: "no flags",
			args: nil,
			check: func(t *testing.T, f *cliFlags) {
				if *f != (cliFlags{}) {
					t.Errorf("flags = %+v, want zero values", *f)
				}
			},
		},
		{
			name: "shorthands",
			args: []string{"-c", "report", "-o", "out.pdf", "-s", "docs", "-t", "30s", "-p", "a4", "-q"},
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "report" || f.output != "out.pdf" || f.sourceDir != "docs" ||
					f.timeout != "30s" || f.pageSize != "a4" || !f.quiet {
					t.Errorf("flags = %+v", *f)
				}
			},
		},
		{
			name: "long flags",
			args: []string{"--margin", "0.5", "--asset-path", "assets", "--html", "--print-config", "--verbose"},
			check: func(t *testing.T, f *cliFlags) {
				if f.margin != 0.5 || f.assetPath != "assets" || !f.html || !f.printConfig || !f.verbose {
					t.Errorf("flags = %+v", *f)
				}
			},
		},
		{
			name: "help and version",
			args: []string{"-h", "--version"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.help || !f.version {
					t.Errorf("flags = %+v", *f)
				}
			},
		},
		{name: "unknown flag", args: []string{"--nope"}, wantErr: true},
		{name: "bad margin", args: []string{"--margin", "wide"}, wantErr: true},
		{name: "quiet and verbose", args: []string{"-q", "-v"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlags_PositionalArgs(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"README.md"})
	if !errors.Is(err, ErrUnexpectedArgs) {
		t.Fatalf("parseFlags() error = %v, want ErrUnexpectedArgs", err)
	}
	if exitCodeFor(err) != ExitUsage {
		t.Errorf("exitCodeFor() = %d, want ExitUsage", exitCodeFor(err))
	}
}

// Package hints builds the "hint:" lines the CLI appends to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-docreport/internal/fileutil"
)

// IsInContainer reports whether the process runs inside Docker.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// LookBrowser finds a locally installed Chrome or Chromium.
var LookBrowser = launcher.LookPath

// ForBrowserConnect returns hints for browser launch and connection errors.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		if _, found := LookBrowser(); found {
			hints = append(hints, "set ROD_BROWSER_BIN to use a different Chrome")
		} else {
			hints = append(hints, "no local Chrome found; install one or set ROD_BROWSER_BIN")
		}
	}

	return formatHints(hints)
}

// ForTimeout returns a hint for generation timeouts.
func ForTimeout() string {
	return format("large reports render twice; raise --timeout")
}

// ForConfigNotFound suggests an explicit --config path, or creating the
// first user-level location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/report.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/docreport") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns a hint for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoDocuments returns a hint when none of the configured documents exist.
func ForNoDocuments(sourceDir string) string {
	return format("no configured document was found in " + sourceDir + "; check --source-dir")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

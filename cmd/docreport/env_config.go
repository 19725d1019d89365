package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-docreport/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOCREPORT_CONFIG: config file name or path
	SourceDir  string // DOCREPORT_SOURCE_DIR: document directory
	Output     string // DOCREPORT_OUTPUT: output PDF path
	Timeout    string // DOCREPORT_TIMEOUT: generation timeout
}

const envPrefix = "DOCREPORT_"

// knownEnvVars lists valid DOCREPORT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCREPORT_CONFIG":     true,
	"DOCREPORT_SOURCE_DIR": true,
	"DOCREPORT_OUTPUT":     true,
	"DOCREPORT_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("DOCREPORT_CONFIG"),
		SourceDir:  os.Getenv("DOCREPORT_SOURCE_DIR"),
		Output:     os.Getenv("DOCREPORT_OUTPUT"),
		Timeout:    os.Getenv("DOCREPORT_TIMEOUT"),
	}
}

// warnUnknownEnvVars prints a warning for each unrecognized DOCREPORT_*
// variable, e.g. DOCREPORT_SOURCEDIR instead of DOCREPORT_SOURCE_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides cfg with every variable that is set. Flags are
// applied afterwards by mergeFlags, so they win.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SourceDir != "" {
		cfg.SourceDir = env.SourceDir
	}
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.Timeout != "" {
		cfg.Timeout = env.Timeout
	}
}

// mergeFlags overrides cfg with every flag that was set.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.sourceDir != "" {
		cfg.SourceDir = f.sourceDir
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
	if f.pageSize != "" {
		cfg.Page.Size = f.pageSize
	}
	if f.margin != 0 {
		cfg.Page.Margin = f.margin
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes content to dir/name and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Product != "KSR Cranes App" {
		t.Errorf("Product = %q", cfg.Product)
	}
	if cfg.Output != "KSR_Cranes_Complete_Documentation.pdf" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Page.Size != "letter" || cfg.Page.Margin != 1.0 {
		t.Errorf("Page = %+v, want letter with 1in margins", cfg.Page)
	}
	if cfg.Cover.Date != "auto:MMMM DD, YYYY" {
		t.Errorf("Cover.Date = %q", cfg.Cover.Date)
	}

	wantDocs := []string{
		"DOCUMENTATION_INDEX.md",
		"PROJECT_ARCHITECTURE.md",
		"API_SERVICES_DOCUMENTATION.md",
		"FEATURE_MODULES_DOCUMENTATION.md",
		"SERVER_API_DOCUMENTATION.md",
	}
	if len(cfg.Documents) != len(wantDocs) {
		t.Fatalf("len(Documents) = %d, want %d", len(cfg.Documents), len(wantDocs))
	}
	for i, want := range wantDocs {
		if cfg.Documents[i].Path != want {
			t.Errorf("Documents[%d].Path = %q, want %q", i, cfg.Documents[i].Path, want)
		}
	}
	if len(cfg.Cover.Contents) != 5 {
		t.Errorf("len(Cover.Contents) = %d, want 5", len(cfg.Cover.Contents))
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestDefaultConfig_Independent(t *testing.T) {
	t.Parallel()

	a := DefaultConfig()
	a.Documents[0].Path = "changed.md"
	if DefaultConfig().Documents[0].Path == "changed.md" {
		t.Error("DefaultConfig() shares state between calls")
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty product",
			mutate:  func(c *Config) { c.Product = " " },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "product too long",
			mutate:  func(c *Config) { c.Product = strings.Repeat("x", MaxProductLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "empty output",
			mutate:  func(c *Config) { c.Output = "" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "no documents",
			mutate:  func(c *Config) { c.Documents = nil },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "document without path",
			mutate:  func(c *Config) { c.Documents[1].Path = "" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "document without title",
			mutate:  func(c *Config) { c.Documents[2].Title = "" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "contents entry too long",
			mutate:  func(c *Config) { c.Cover.Contents[0] = strings.Repeat("x", MaxContentsLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "empty cover fields allowed",
			mutate: func(c *Config) { c.Cover = CoverConfig{} },
		},
		{
			name:   "a4 page",
			mutate: func(c *Config) { c.Page.Size = "A4" },
		},
		{
			name:    "unknown page size",
			mutate:  func(c *Config) { c.Page.Size = "tabloid" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "margin too small",
			mutate:  func(c *Config) { c.Page.Margin = 0.1 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "margin too large",
			mutate:  func(c *Config) { c.Page.Margin = 3.5 },
			wantErr: ErrInvalidConfig,
		},
		{
			name:   "zero margin means default",
			mutate: func(c *Config) { c.Page.Margin = 0 },
		},
		{
			name:   "valid timeout",
			mutate: func(c *Config) { c.Timeout = "90s" },
		},
		{
			name:    "invalid timeout",
			mutate:  func(c *Config) { c.Timeout = "soon" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = "-1s" },
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if d, err := cfg.TimeoutDuration(); err != nil || d != 0 {
		t.Errorf("TimeoutDuration() = %v, %v; want 0, nil", d, err)
	}

	cfg.Timeout = "2m"
	if d, err := cfg.TimeoutDuration(); err != nil || d != 2*time.Minute {
		t.Errorf("TimeoutDuration() = %v, %v; want 2m, nil", d, err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Paths
// ---------------------------------------------------------------------------

func TestConfig_Paths(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "docs")
	abs := filepath.Join(string(filepath.Separator), "elsewhere", "report.pdf")

	cfg := DefaultConfig()
	cfg.SourceDir = base

	if got, want := cfg.DocumentPath(DocumentConfig{Path: "A.md"}), filepath.Join(base, "A.md"); got != want {
		t.Errorf("DocumentPath() = %q, want %q", got, want)
	}
	if got, want := cfg.OutputPath(), filepath.Join(base, cfg.Output); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}

	if filepath.IsAbs(abs) {
		cfg.Output = abs
		if got := cfg.OutputPath(); got != abs {
			t.Errorf("OutputPath() = %q, want %q", got, abs)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "report.yaml", `
product: Harbor Tools
page:
  size: a4
  margin: 0.75
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Product != "Harbor Tools" {
			t.Errorf("Product = %q", cfg.Product)
		}
		if cfg.Page.Size != "a4" || cfg.Page.Margin != 0.75 {
			t.Errorf("Page = %+v", cfg.Page)
		}
		if len(cfg.Documents) != 5 {
			t.Errorf("len(Documents) = %d, want defaults (5)", len(cfg.Documents))
		}
	})

	t.Run("documents replaced in order", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "report.yaml", `
documents:
  - path: b.md
    title: B
  - path: a.md
    title: A
cover:
  contents: ["1. B", "2. A"]
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if len(cfg.Documents) != 2 || cfg.Documents[0].Path != "b.md" || cfg.Documents[1].Title != "A" {
			t.Errorf("Documents = %+v", cfg.Documents)
		}
		if len(cfg.Cover.Contents) != 2 {
			t.Errorf("Cover.Contents = %v", cfg.Cover.Contents)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "report.yaml", "productName: typo\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "report.yaml", "page:\n  size: tabloid\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("no-such-report-config-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if err != nil && !strings.Contains(err.Error(), "no-such-report-config-xyz.yaml") {
			t.Errorf("error %q does not list the tried paths", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestSearchPaths / TestDump
// ---------------------------------------------------------------------------

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("report")
	if len(paths) < 2 || paths[0] != "report.yaml" || paths[1] != "report.yml" {
		t.Errorf("SearchPaths() = %v, want working directory first", paths)
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), appDir+"/report.") {
			t.Errorf("user path %q not under %s", p, appDir)
		}
	}
}

func TestDump_LoadsBack(t *testing.T) {
	t.Parallel()

	data, err := Dump(DefaultConfig())
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	path := writeConfig(t, t.TempDir(), "dumped.yaml", string(data))
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(dumped) error = %v\n%s", err, data)
	}
	if cfg.Documents[4].Path != "SERVER_API_DOCUMENTATION.md" {
		t.Errorf("dumped config lost documents: %+v", cfg.Documents)
	}
}

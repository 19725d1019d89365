package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-docreport/internal/fileutil"
	"github.com/alnah/go-docreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxProductLength     = 100
	MaxCoverTextLength   = 200
	MaxContentsLength    = 200 // one contents entry
	MaxDateLength        = 60  // "auto:MMMM DD, YYYY" or a literal date
	MaxTitleLength       = 200 // document title
	MaxPathLength        = 4096
	MaxDocuments         = 200
	MaxContentsEntries   = 100
	MaxPageSizeLength    = 10
	MinMargin, MaxMargin = 0.25, 3.0
)

// appDir names the per-user config directory.
const appDir = "docreport"

// Config describes one report: which documents to assemble, in which
// order, and how the cover and pages look.
type Config struct {
	Product   string           `yaml:"product"`
	SourceDir string           `yaml:"sourceDir"` // relative paths resolve against the working directory
	Output    string           `yaml:"output"`    // relative paths resolve against SourceDir
	Timeout   string           `yaml:"timeout"`   // Go duration, e.g. "2m"; empty = generator default
	Cover     CoverConfig      `yaml:"cover"`
	Documents []DocumentConfig `yaml:"documents"`
	Page      PageConfig       `yaml:"page"`
	Assets    AssetsConfig     `yaml:"assets"`
}

// CoverConfig holds the cover page text.
type CoverConfig struct {
	Subtitle      string   `yaml:"subtitle"`
	Description   string   `yaml:"description"`
	Date          string   `yaml:"date"` // "auto", "auto:FORMAT", literal, or empty to omit
	ContentsTitle string   `yaml:"contentsTitle"`
	Contents      []string `yaml:"contents"`
}

// DocumentConfig is one markdown source, relative to SourceDir.
type DocumentConfig struct {
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "letter", "a4", "legal"
	Margin float64 `yaml:"margin"` // inches, all four sides
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
}

// DefaultConfig returns the built-in report: the KSR Cranes documentation
// suite read from the working directory.
func DefaultConfig() *Config {
	return &Config{
		Product:   "KSR Cranes App",
		SourceDir: ".",
		Output:    "KSR_Cranes_Complete_Documentation.pdf",
		Cover: CoverConfig{
			Subtitle:      "Complete Documentation Suite",
			Description:   "Crane Operator Staffing Management System",
			Date:          "auto:MMMM DD, YYYY",
			ContentsTitle: "Documentation Contents:",
			Contents: []string{
				"1. Project Architecture",
				"2. API Services Documentation",
				"3. Feature Modules Documentation",
				"4. Server API Documentation",
				"5. Documentation Index",
			},
		},
		Documents: []DocumentConfig{
			{Path: "DOCUMENTATION_INDEX.md", Title: "Documentation Index"},
			{Path: "PROJECT_ARCHITECTURE.md", Title: "Project Architecture"},
			{Path: "API_SERVICES_DOCUMENTATION.md", Title: "API Services Documentation"},
			{Path: "FEATURE_MODULES_DOCUMENTATION.md", Title: "Feature Modules Documentation"},
			{Path: "SERVER_API_DOCUMENTATION.md", Title: "Server API Documentation"},
		},
		Page: PageConfig{Size: "letter", Margin: 1.0},
	}
}

// Validate checks the configuration. Called by LoadConfig, and by the CLI
// after flag overrides are applied.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"product", c.Product, MaxProductLength},
		{"sourceDir", c.SourceDir, MaxPathLength},
		{"output", c.Output, MaxPathLength},
		{"cover.subtitle", c.Cover.Subtitle, MaxCoverTextLength},
		{"cover.description", c.Cover.Description, MaxCoverTextLength},
		{"cover.date", c.Cover.Date, MaxDateLength},
		{"cover.contentsTitle", c.Cover.ContentsTitle, MaxCoverTextLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.TrimSpace(c.Product) == "" {
		return fmt.Errorf("%w: product is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output is required", ErrInvalidConfig)
	}

	if len(c.Cover.Contents) > MaxContentsEntries {
		return fmt.Errorf("%w: cover.contents has %d entries (max %d)", ErrInvalidConfig, len(c.Cover.Contents), MaxContentsEntries)
	}
	for i, entry := range c.Cover.Contents {
		if err := validateFieldLength(fmt.Sprintf("cover.contents[%d]", i), entry, MaxContentsLength); err != nil {
			return err
		}
	}

	if len(c.Documents) == 0 {
		return fmt.Errorf("%w: documents: at least one document is required", ErrInvalidConfig)
	}
	if len(c.Documents) > MaxDocuments {
		return fmt.Errorf("%w: documents has %d entries (max %d)", ErrInvalidConfig, len(c.Documents), MaxDocuments)
	}
	for i, d := range c.Documents {
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("%w: documents[%d].path is required", ErrInvalidConfig, i)
		}
		if strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("%w: documents[%d].title is required", ErrInvalidConfig, i)
		}
		if err := validateFieldLength(fmt.Sprintf("documents[%d].path", i), d.Path, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("documents[%d].title", i), d.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Page.Size) {
	case "", "letter", "a4", "legal":
	default:
		return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidConfig, c.Page.Size)
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin %.2f (must be between %.2f and %.2f)", ErrInvalidConfig, c.Page.Margin, MinMargin, MaxMargin)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. Zero means unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return d, nil
}

// DocumentPath resolves a document path against SourceDir.
func (c *Config) DocumentPath(d DocumentConfig) string {
	if filepath.IsAbs(d.Path) {
		return d.Path
	}
	return filepath.Join(c.SourceDir, d.Path)
}

// OutputPath resolves Output against SourceDir.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.SourceDir, c.Output)
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a report configuration from a file path or a config
// name. Names are searched with SearchPaths. Keys absent from the file keep
// their DefaultConfig value; unknown keys are an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Dump renders cfg as YAML.
func Dump(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths lists the files tried for a config name, in order: the
// working directory, then the user config directory, each with .yaml and
// .yml.
func SearchPaths(name string) []string {
	exts := []string{".yaml", ".yml"}
	paths := make([]string, 0, 2*len(exts))
	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

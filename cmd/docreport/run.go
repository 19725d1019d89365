package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	docreport "github.com/alnah/go-docreport"
	"github.com/alnah/go-docreport/internal/config"
	"github.com/alnah/go-docreport/internal/fileutil"
	"github.com/alnah/go-docreport/internal/hints"
	"github.com/alnah/go-docreport/internal/logging"
)

// ErrWriteHTML is returned when the --html output cannot be written.
var ErrWriteHTML = errors.New("failed to write HTML file")

// runMain runs the CLI and returns the process exit code.
func runMain(flags *cliFlags, env *Environment) int {
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "docreport %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	err := run(ctx, flags, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags))
	}
	return exitCodeFor(err)
}

// run loads the configuration, generates the report and prints its path.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	if flags.printConfig {
		data, err := config.Dump(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	log := newLogger(flags, env)
	opts, err := generatorOptions(cfg, log, env)
	if err != nil {
		return err
	}

	gen, err := env.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := gen.Close(); cerr != nil {
			log.Debug().Err(cerr).Msg("closing browser")
		}
	}()

	res, err := gen.Generate(ctx, buildReport(cfg))
	if err != nil {
		return err
	}

	if len(res.Documents) == 0 {
		fmt.Fprintf(env.Stderr, "warning: report contains only the cover page%s\n", hints.ForNoDocuments(cfg.SourceDir))
	}

	if flags.html {
		path := htmlOutputPath(res.OutputPath)
		if err := fileutil.WriteOutput(path, []byte(res.HTML)); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		log.Info().Str("output", path).Msg("HTML written")
	}

	if !flags.quiet {
		fmt.Fprintln(env.Stdout, res.OutputPath)
	}
	return nil
}

// loadConfig builds the effective configuration.
// Precedence: flags > environment > config file > defaults.
func loadConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes human-readable progress to stdout.
func newLogger(flags *cliFlags, env *Environment) zerolog.Logger {
	level := logging.LevelInfo
	switch {
	case flags.verbose:
		level = logging.LevelDebug
	case flags.quiet:
		level = logging.LevelError
	}
	return logging.New(env.Stdout, logging.Options{
		Level:   level,
		Console: true,
		NoColor: os.Getenv("NO_COLOR") != "",
	})
}

func generatorOptions(cfg *config.Config, log zerolog.Logger, env *Environment) ([]docreport.Option, error) {
	page := docreport.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Margin != 0 {
		page.Margin = cfg.Page.Margin
	}

	opts := []docreport.Option{
		docreport.WithLogger(log),
		docreport.WithClock(env.Now),
		docreport.WithPage(page),
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, docreport.WithTimeout(timeout))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, docreport.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts, nil
}

// buildReport maps the configuration onto a Report with resolved paths.
func buildReport(cfg *config.Config) docreport.Report {
	docs := make([]docreport.Document, 0, len(cfg.Documents))
	for _, d := range cfg.Documents {
		docs = append(docs, docreport.Document{Path: cfg.DocumentPath(d), Title: d.Title})
	}
	return docreport.Report{
		Product: cfg.Product,
		Cover: docreport.Cover{
			Subtitle:      cfg.Cover.Subtitle,
			Description:   cfg.Cover.Description,
			Date:          cfg.Cover.Date,
			ContentsTitle: cfg.Cover.ContentsTitle,
			Contents:      cfg.Cover.Contents,
		},
		Documents:  docs,
		OutputPath: cfg.OutputPath(),
	}
}

// htmlOutputPath swaps the PDF extension for .html.
func htmlOutputPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".html"
}

// hintFor returns the hint lines appended to an error message.
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, docreport.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		if flags.config != "" && !fileutil.IsFilePath(flags.config) {
			return hints.ForConfigNotFound(config.SearchPaths(flags.config))
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, docreport.ErrWritePDF), errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	}
	return ""
}

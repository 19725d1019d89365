package docreport

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Generator.
type Option func(*Generator)

// defaultTimeout bounds one Generate call, both layout passes included.
const defaultTimeout = 2 * time.Minute

// WithTimeout sets the generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docreport: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithLogger sets the logger for progress, warnings and failures.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// WithClock sets the time source used for "auto" cover dates and timings.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithPage sets the page size and margins. Validated by NewGenerator.
func WithPage(p PageSettings) Option {
	return func(g *Generator) {
		g.page = p
	}
}

// WithAssetPath overrides embedded templates and styles with files from
// dir (templates/*.html, styles/*.css). Missing files fall back to the
// embedded ones.
func WithAssetPath(dir string) Option {
	return func(g *Generator) {
		g.assetPath = dir
	}
}

// withRenderer replaces the headless Chrome renderer.
func withRenderer(r pdfRenderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// withPageReader replaces the PDF page reader.
func withPageReader(r pageReader) Option {
	return func(g *Generator) {
		g.pages = r
	}
}

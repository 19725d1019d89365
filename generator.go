package docreport

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-docreport/internal/assets"
	"github.com/alnah/go-docreport/internal/dateutil"
	"github.com/alnah/go-docreport/internal/fileutil"
	"github.com/alnah/go-docreport/internal/logging"
	"github.com/alnah/go-docreport/internal/pipeline"
	"github.com/alnah/go-docreport/internal/style"
)

// Generator assembles reports. Create with NewGenerator, call Generate,
// and Close when done. A Generator is not safe for concurrent use.
type Generator struct {
	timeout   time.Duration
	log       zerolog.Logger
	now       func() time.Time
	page      PageSettings
	assetPath string

	css      string
	html     *pipeline.HTMLRenderer
	layout   *layout
	renderer pdfRenderer
	pages    pageReader
}

// NewGenerator creates a Generator. Returns an error if the page settings
// are invalid or the templates cannot be loaded.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		timeout: defaultTimeout,
		log:     logging.Nop(),
		now:     time.Now,
		page:    DefaultPageSettings(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.page.Validate(); err != nil {
		return nil, err
	}

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if g.assetPath != "" {
		resolver, err := assets.NewAssetResolver(g.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssets, err)
		}
		loader = resolver
	}
	bundle, err := assets.LoadBundle(loader)
	if err != nil {
		return nil, err
	}

	styles := style.Build()
	if g.html, err = pipeline.NewHTMLRenderer(bundle.Document, styles); err != nil {
		return nil, err
	}
	deco, err := newDecorator(bundle.Header, bundle.Footer, styles, g.page)
	if err != nil {
		return nil, err
	}
	g.css = bundle.CSS

	if g.renderer == nil {
		g.renderer = newRodRenderer(g.timeout)
	}
	if g.pages == nil {
		g.pages = pdfPageReader{}
	}
	g.layout = &layout{
		renderer: g.renderer,
		pages:    g.pages,
		deco:     deco,
		page:     g.page,
		log:      g.log,
		now:      g.now,
	}
	return g, nil
}

// Close releases the browser.
func (g *Generator) Close() error {
	if g.renderer != nil {
		return g.renderer.Close()
	}
	return nil
}

// Generate builds the report and writes it to r.OutputPath.
//
// Documents are processed in order. A document that does not exist is
// logged as a warning, recorded in Result.Skipped, and left out. Any other
// failure aborts generation; it is logged once at error level and
// returned. Internal panics are recovered and returned as ErrLayout.
func (g *Generator) Generate(ctx context.Context, r Report) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("%w: internal error: %v", ErrLayout, rec)
		}
		if err != nil {
			g.log.Error().Err(err).Msg("report generation failed")
		}
	}()

	if err := r.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	date, err := dateutil.ResolveDate(r.Cover.Date, g.now())
	if err != nil {
		return nil, fmt.Errorf("cover date: %w", err)
	}

	blocks := pipeline.BuildCover(pipeline.CoverData{
		Product:       r.Product,
		Subtitle:      r.Cover.Subtitle,
		Description:   r.Cover.Description,
		Date:          date,
		ContentsTitle: r.Cover.ContentsTitle,
		Contents:      r.Cover.Contents,
	})

	res := &Result{OutputPath: r.OutputPath}
	for _, doc := range r.Documents {
		content, err := os.ReadFile(doc.Path) // #nosec G304 -- document paths come from the report definition
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				g.log.Warn().Str("document", doc.Path).Str("title", doc.Title).Msg("document not found, skipping")
				res.Skipped = append(res.Skipped, doc)
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrReadDocument, doc.Path, err)
		}

		g.log.Info().Str("document", doc.Path).Str("title", doc.Title).Msg("processing document")
		blocks = append(blocks, pipeline.BuildBlocks(string(content))...)
		res.Documents = append(res.Documents, doc)
	}

	html, err := g.html.Render(ctx, pipeline.Document{
		Title:  r.Product + " - Documentation",
		CSS:    g.css,
		Blocks: blocks,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	res.HTML = html

	pdf, pages, err := g.layout.run(ctx, html, r.Product)
	if err != nil {
		return nil, err
	}
	res.Pages = pages

	if err := fileutil.WriteOutput(r.OutputPath, pdf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritePDF, err)
	}

	g.log.Info().
		Str("output", r.OutputPath).
		Int("pages", pages).
		Int("documents", len(res.Documents)).
		Int("skipped", len(res.Skipped)).
		Msg("PDF generated")
	return res, nil
}

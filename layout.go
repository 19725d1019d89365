package docreport

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-docreport/internal/fileutil"
	"github.com/alnah/go-docreport/internal/style"
)

// blankDecoration is an empty Chrome header/footer template.
const blankDecoration = "<span></span>"

// pageNumberSpan is replaced by Chrome with the current page number.
const pageNumberSpan = `<span class="pageNumber"></span>`

// headerView is the header template data.
type headerView struct {
	Style template.CSS
	Text  string
}

// footerView is the footer template data.
type footerView struct {
	BoxStyle template.CSS
	Style    template.CSS
	Label    template.HTML
}

// decorator renders the per-page header and footer once the total page
// count is known.
type decorator struct {
	header      *template.Template
	footer      *template.Template
	headerStyle template.CSS
	footerBox   template.CSS
	footerStyle template.CSS
}

func newDecorator(headerTmpl, footerTmpl string, styles style.Registry, page PageSettings) (*decorator, error) {
	header, err := template.New("header").Parse(headerTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing header template: %w", err)
	}
	footer, err := template.New("footer").Parse(footerTmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing footer template: %w", err)
	}

	hs, ok := styles.Get(style.Header)
	if !ok {
		return nil, fmt.Errorf("style registry has no %q style", style.Header)
	}
	fs, ok := styles.Get(style.Footer)
	if !ok {
		return nil, fmt.Errorf("style registry has no %q style", style.Footer)
	}

	// Chrome lays decorations out in the page margin box, full page width.
	m := page.Margin
	box := fmt.Sprintf("width: 100%%; box-sizing: border-box; -webkit-print-color-adjust: exact; padding: %sin %sin %sin %sin",
		inches(m*0.4), inches(m), inches(m*0.4), inches(m))

	// #nosec G203 -- declarations built from the style registry
	return &decorator{
		header:      header,
		footer:      footer,
		headerStyle: template.CSS(box + "; " + hs.TextCSS()),
		footerBox:   template.CSS(box),
		footerStyle: template.CSS(fmt.Sprintf("%s; border-top: %spt solid %s; padding-top: 4pt",
			fs.TextCSS(), strconv.FormatFloat(fs.BorderWidth, 'f', -1, 64), fs.BorderColor)),
	}, nil
}

// render returns the header and footer templates for a report of total
// pages.
func (d *decorator) render(product string, total int) (header, footer string, err error) {
	var hb, fb bytes.Buffer
	if err := d.header.Execute(&hb, headerView{Style: d.headerStyle, Text: product + " - Documentation"}); err != nil {
		return "", "", fmt.Errorf("rendering header: %w", err)
	}
	if err := d.footer.Execute(&fb, footerView{BoxStyle: d.footerBox, Style: d.footerStyle, Label: pageLabel(total)}); err != nil {
		return "", "", fmt.Errorf("rendering footer: %w", err)
	}
	return hb.String(), fb.String(), nil
}

// pageLabel is "Page X of N" with X left to Chrome.
func pageLabel(total int) template.HTML {
	// #nosec G203 -- fixed markup and an integer
	return template.HTML("Page " + pageNumberSpan + " of " + strconv.Itoa(total))
}

func inches(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// layout prints the report HTML in two phases. Phase one prints with blank
// decorations and reads the result back as page snapshots, which fixes the
// total page count. Phase two prints again with the header and a footer
// closing over that total. Both phases use the same margins, so the page
// breaks do not move.
type layout struct {
	renderer pdfRenderer
	pages    pageReader
	deco     *decorator
	page     PageSettings
	log      zerolog.Logger
	now      func() time.Time
}

// run lays out htmlContent and returns the final PDF and its page count.
func (l *layout) run(ctx context.Context, htmlContent, product string) ([]byte, int, error) {
	path, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	defer cleanup()

	start := l.now()
	snapshots, err := l.measure(ctx, path)
	if err != nil {
		return nil, 0, err
	}
	total := len(snapshots)
	l.log.Debug().Int("pages", total).Dur("took", l.now().Sub(start)).Msg("layout pass 1 complete")

	header, footer, err := l.deco.render(product, total)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLayout, err)
	}

	start = l.now()
	final, err := l.renderer.RenderFromFile(ctx, path, &printOptions{Page: l.page, Header: header, Footer: footer})
	if err != nil {
		return nil, 0, err
	}
	l.log.Debug().Dur("took", l.now().Sub(start)).Msg("layout pass 2 complete")

	l.verify(final, total)
	return final, total, nil
}

// measure runs phase one.
func (l *layout) measure(ctx context.Context, path string) ([]PageSnapshot, error) {
	pdf, err := l.renderer.RenderFromFile(ctx, path, &printOptions{Page: l.page, Header: blankDecoration, Footer: blankDecoration})
	if err != nil {
		return nil, err
	}
	snapshots, err := l.pages.ReadPages(pdf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%w: first pass produced no pages", ErrLayout)
	}
	return snapshots, nil
}

// verify warns when the decorated print paginated differently.
func (l *layout) verify(pdf []byte, want int) {
	snapshots, err := l.pages.ReadPages(pdf)
	if err != nil {
		l.log.Warn().Err(err).Msg("could not verify final page count")
		return
	}
	if len(snapshots) != want {
		l.log.Warn().Int("expected", want).Int("actual", len(snapshots)).
			Msg("page count changed between layout passes, page totals may be off")
	}
}

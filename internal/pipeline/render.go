package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-docreport/internal/style"
)

// Sentinel errors for document rendering.
var (
	ErrRender       = errors.New("document template rendering failed")
	ErrUnknownStyle = errors.New("unknown style")
)

// Document is the complete layout input: every block of the report, in
// order, plus the stylesheet applied on top of the style registry.
type Document struct {
	Title  string
	CSS    string
	Blocks []Block
}

// documentView is the template data for a Document.
type documentView struct {
	Title  string
	CSS    template.CSS
	Blocks []blockView
}

// blockView is the template data for one Block.
type blockView struct {
	Kind   string
	Class  string
	Level  int
	Height float64
	Lang   string
	Text   template.HTML
}

// HTMLRenderer renders a Document into the HTML page handed to the layout
// engine.
type HTMLRenderer struct {
	tmpl   *template.Template
	styles style.Registry
}

// NewHTMLRenderer creates an HTMLRenderer from template content.
// Returns error if the template cannot be parsed.
func NewHTMLRenderer(tmplContent string, styles style.Registry) (*HTMLRenderer, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, styles: styles}, nil
}

// Render produces the HTML page for doc.
// Returns ErrUnknownStyle if a block names a style missing from the registry.
func (r *HTMLRenderer) Render(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	views := make([]blockView, 0, len(doc.Blocks))
	for i, b := range doc.Blocks {
		v := blockView{
			Kind:   b.Kind.String(),
			Level:  b.Level,
			Height: b.Height,
			Lang:   b.Lang,
			// #nosec G203 -- block text is escaped by Normalize, EscapeCode or highlightCode
			Text: template.HTML(b.Text),
		}
		if b.Style != "" {
			s, ok := r.styles.Get(b.Style)
			if !ok {
				return "", fmt.Errorf("%w: %q (block %d, %s)", ErrUnknownStyle, b.Style, i, b.Kind)
			}
			v.Class = s.Class()
		}
		views = append(views, v)
	}

	css := HighlightCSS() + "\n" + r.styles.CSS()
	if doc.CSS != "" {
		css = doc.CSS + "\n" + css
	}

	data := documentView{
		Title: doc.Title,
		// #nosec G203 -- stylesheet comes from the registry and trusted assets
		CSS:    template.CSS(sanitizeCSS(css)),
		Blocks: views,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

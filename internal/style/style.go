// Package style holds the fixed registry of visual styles used by the report.
//
// Every block emitted by the pipeline references one of these styles by name.
// The registry is built once at startup and never mutated afterwards; Build
// returns a fresh copy so callers cannot alter each other's view.
package style

import (
	"fmt"
	"sort"
	"strings"
)

// Style names.
const (
	Title      = "title"
	Heading1   = "heading1"
	Heading2   = "heading2"
	Heading3   = "heading3"
	Code       = "code"
	Bullet     = "bullet"
	Body       = "body"
	Subtitle   = "subtitle"
	Details    = "details"
	TOCHeading = "toc_heading"
	TOCEntry   = "toc_entry"
	Rule       = "rule"
	Header     = "header"
	Footer     = "footer"
)

// Font stacks. Helvetica and Courier are the base PDF fonts; the fallbacks
// keep metrics close when Chrome substitutes them.
const (
	Sans = "Helvetica, Arial, sans-serif"
	Mono = "Courier, 'Courier New', monospace"
)

// Palette.
const (
	Navy  = "#1a5490"
	Slate = "#2c5282"
	Grey  = "#808080"
	Black = "#000000"
	Paper = "#f5f5f5"
)

// Alignment values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Style is a named set of visual attributes. Sizes are in points.
type Style struct {
	Name          string
	FontFamily    string
	Bold          bool
	FontSize      float64
	Leading       float64
	Color         string
	Background    string
	SpaceBefore   float64
	SpaceAfter    float64
	BorderWidth   float64
	BorderColor   string
	BorderPadding float64
	Align         string
	LeftIndent    float64
}

// Class returns the CSS class used for blocks carrying this style.
func (s Style) Class() string {
	return "s-" + strings.ReplaceAll(s.Name, "_", "-")
}

// CSS renders the style as a single CSS rule.
func (s Style) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s {\n", s.Class())
	fmt.Fprintf(&b, "  font-family: %s;\n", s.FontFamily)
	fmt.Fprintf(&b, "  font-size: %spt;\n", pt(s.FontSize))
	if s.Leading > 0 {
		fmt.Fprintf(&b, "  line-height: %spt;\n", pt(s.Leading))
	}
	if s.Bold {
		b.WriteString("  font-weight: bold;\n")
	} else {
		b.WriteString("  font-weight: normal;\n")
	}
	fmt.Fprintf(&b, "  color: %s;\n", s.Color)
	if s.Background != "" {
		fmt.Fprintf(&b, "  background-color: %s;\n", s.Background)
	}
	fmt.Fprintf(&b, "  margin: %spt 0 %spt %spt;\n", pt(s.SpaceBefore), pt(s.SpaceAfter), pt(s.LeftIndent))
	if s.BorderWidth > 0 {
		fmt.Fprintf(&b, "  border: %spt solid %s;\n", pt(s.BorderWidth), s.BorderColor)
	}
	if s.BorderPadding > 0 {
		fmt.Fprintf(&b, "  padding: %spt;\n", pt(s.BorderPadding))
	}
	if s.Align != "" {
		fmt.Fprintf(&b, "  text-align: %s;\n", s.Align)
	}
	b.WriteString("}\n")
	return b.String()
}

// TextCSS renders the style's font, color and alignment as inline
// declarations, for places a class cannot reach such as Chrome's page
// header and footer templates.
func (s Style) TextCSS() string {
	decls := []string{
		"font-family: " + s.FontFamily,
		"font-size: " + pt(s.FontSize) + "pt",
	}
	if s.Bold {
		decls = append(decls, "font-weight: bold")
	}
	decls = append(decls, "color: "+s.Color)
	if s.Align != "" {
		decls = append(decls, "text-align: "+s.Align)
	}
	return strings.Join(decls, "; ")
}

// pt formats a point value without trailing zeros.
func pt(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// Registry maps style names to styles.
type Registry map[string]Style

// Build returns the report's style registry.
func Build() Registry {
	body := Style{
		Name:       Body,
		FontFamily: Sans,
		FontSize:   10,
		Leading:    12,
		Color:      Black,
		Align:      AlignLeft,
	}

	heading := func(name string, size, before, after float64, color string) Style {
		return Style{
			Name:        name,
			FontFamily:  Sans,
			Bold:        true,
			FontSize:    size,
			Leading:     size * 1.2,
			Color:       color,
			SpaceBefore: before,
			SpaceAfter:  after,
			Align:       AlignLeft,
		}
	}

	h1 := heading(Heading1, 18, 20, 12, Navy)
	h1.BorderWidth = 1
	h1.BorderColor = Navy
	h1.BorderPadding = 5

	title := heading(Title, 24, 0, 30, Navy)
	title.Align = AlignCenter

	bullet := body
	bullet.Name = Bullet
	bullet.LeftIndent = 20

	subtitle := body
	subtitle.Name = Subtitle
	subtitle.FontSize = 18
	subtitle.Leading = 22
	subtitle.Color = Slate
	subtitle.Align = AlignCenter

	details := body
	details.Name = Details
	details.FontSize = 12
	details.Leading = 14
	details.Align = AlignCenter

	tocEntry := body
	tocEntry.Name = TOCEntry
	tocEntry.FontSize = 12
	tocEntry.Leading = 14
	tocEntry.SpaceAfter = 8
	tocEntry.LeftIndent = 108

	tocHeading := tocEntry
	tocHeading.Name = TOCHeading
	tocHeading.Bold = true

	header := body
	header.Name = Header
	header.Bold = true

	footer := body
	footer.Name = Footer
	footer.FontSize = 9
	footer.Leading = 11
	footer.Align = AlignRight
	footer.BorderWidth = 0.5
	footer.BorderColor = Grey

	return Registry{
		Title:    title,
		Heading1: h1,
		Heading2: heading(Heading2, 16, 15, 10, Slate),
		Heading3: heading(Heading3, 14, 12, 8, Slate),
		Code: {
			Name:          Code,
			FontFamily:    Mono,
			FontSize:      8,
			Leading:       9.6,
			Color:         Black,
			Background:    Paper,
			SpaceBefore:   10,
			SpaceAfter:    10,
			BorderWidth:   1,
			BorderColor:   Grey,
			BorderPadding: 8,
			Align:         AlignLeft,
		},
		Bullet:     bullet,
		Body:       body,
		Subtitle:   subtitle,
		Details:    details,
		TOCHeading: tocHeading,
		TOCEntry:   tocEntry,
		Rule: {
			Name:        Rule,
			FontFamily:  Sans,
			FontSize:    1,
			Color:       Grey,
			SpaceBefore: 12,
			SpaceAfter:  12,
			BorderWidth: 1,
			BorderColor: Grey,
		},
		Header: header,
		Footer: footer,
	}
}

// Get returns the named style.
func (r Registry) Get(name string) (Style, bool) {
	s, ok := r[name]
	return s, ok
}

// Names returns the registered style names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CSS renders every style as a CSS class, in name order.
func (r Registry) CSS() string {
	var b strings.Builder
	for _, name := range r.Names() {
		if name == Rule {
			b.WriteString(ruleCSS(r[name]))
			continue
		}
		b.WriteString(r[name].CSS())
	}
	return b.String()
}

// ruleCSS renders a horizontal line: a top border on an empty element,
// with the spacing before and after it.
func ruleCSS(s Style) string {
	return fmt.Sprintf(".%s {\n  height: 0;\n  border: 0;\n  border-top: %spt solid %s;\n  margin: %spt 0 %spt 0;\n}\n",
		s.Class(), pt(s.BorderWidth), s.BorderColor, pt(s.SpaceBefore), pt(s.SpaceAfter))
}

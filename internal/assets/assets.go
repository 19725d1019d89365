package assets

import "fmt"

// Asset names.
const (
	DocumentTemplate = "document"
	HeaderTemplate   = "header"
	FooterTemplate   = "footer"
	PrintStyle       = "print"
)

// AssetLoader loads CSS styles and HTML templates by name.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}

// Bundle is the full set of assets needed to lay out a report.
type Bundle struct {
	Document string
	Header   string
	Footer   string
	CSS      string
}

// LoadBundle loads every asset of a Bundle from loader.
func LoadBundle(loader AssetLoader) (*Bundle, error) {
	var b Bundle
	templates := []struct {
		name string
		dst  *string
	}{
		{DocumentTemplate, &b.Document},
		{HeaderTemplate, &b.Header},
		{FooterTemplate, &b.Footer},
	}
	for _, t := range templates {
		content, err := loader.LoadTemplate(t.name)
		if err != nil {
			return nil, fmt.Errorf("loading %s template: %w", t.name, err)
		}
		*t.dst = content
	}

	css, err := loader.LoadStyle(PrintStyle)
	if err != nil {
		return nil, fmt.Errorf("loading %s style: %w", PrintStyle, err)
	}
	b.CSS = css

	return &b, nil
}

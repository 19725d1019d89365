package docreport

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// paperSizes are portrait dimensions in inches.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size   string  // "letter", "a4", "legal"
	Margin float64 // inches, applied to all sides
}

// DefaultPageSettings returns US Letter with 1 inch margins.
func DefaultPageSettings() PageSettings {
	return PageSettings{Size: PageSizeLetter, Margin: DefaultMargin}
}

// Validate checks that page settings are valid. Size is case-insensitive.
func (p PageSettings) Validate() error {
	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// dimensions returns the paper width and height in inches.
func (p PageSettings) dimensions() (width, height float64) {
	d := paperSizes[strings.ToLower(p.Size)]
	return d[0], d[1]
}

// Document is one markdown source of the report.
type Document struct {
	Path  string
	Title string
}

// Cover holds the cover page text below the product name. Date is used
// as given; empty fields are left out.
type Cover struct {
	Subtitle      string
	Description   string
	Date          string
	ContentsTitle string
	Contents      []string
}

// Report describes one generation run.
type Report struct {
	Product    string
	Cover      Cover
	Documents  []Document
	OutputPath string
}

// Validate checks the report before any file is read.
func (r Report) Validate() error {
	if strings.TrimSpace(r.Product) == "" {
		return ErrEmptyProduct
	}
	if len(r.Documents) == 0 {
		return ErrNoDocuments
	}
	if strings.TrimSpace(r.OutputPath) == "" {
		return ErrEmptyOutput
	}
	return nil
}

// PageSnapshot is the text content of one laid-out page.
type PageSnapshot struct {
	Number int
	Text   string
}

// Result describes a generated report.
type Result struct {
	OutputPath string
	Pages      int        // total pages, cover included
	Documents  []Document // documents included, in order
	Skipped    []Document // documents not found
	HTML       string     // layout document, for debugging
}

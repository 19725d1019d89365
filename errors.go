package docreport

import "errors"

// Sentinel errors for report generation.
var (
	ErrNoDocuments   = errors.New("no documents configured")
	ErrEmptyProduct  = errors.New("product name cannot be empty")
	ErrEmptyOutput   = errors.New("output path cannot be empty")
	ErrReadDocument  = errors.New("failed to read document")
	ErrLayout        = errors.New("layout failed")
	ErrWritePDF      = errors.New("failed to write PDF")
	ErrInvalidAssets = errors.New("invalid asset path")

	// Browser errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrReadPages      = errors.New("failed to read rendered pages")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
)

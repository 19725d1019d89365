package main

import (
	"errors"
	"os"

	docreport "github.com/alnah/go-docreport"
	"github.com/alnah/go-docreport/internal/config"
	"github.com/alnah/go-docreport/internal/dateutil"
)

// Exit codes for the docreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Report generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Document unreadable, output not writable
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docreport.ErrBrowserConnect) ||
		errors.Is(err, docreport.ErrPageCreate) ||
		errors.Is(err, docreport.ErrPageLoad) ||
		errors.Is(err, docreport.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docreport.ErrReadDocument) ||
		errors.Is(err, docreport.ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, docreport.ErrNoDocuments) ||
		errors.Is(err, docreport.ErrEmptyProduct) ||
		errors.Is(err, docreport.ErrEmptyOutput) ||
		errors.Is(err, docreport.ErrInvalidPageSize) ||
		errors.Is(err, docreport.ErrInvalidMargin) ||
		errors.Is(err, docreport.ErrInvalidAssets) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}

// Package docreport assembles a set of markdown documents into one
// paginated PDF report using headless Chrome.
//
// # Quick Start
//
//	gen, err := docreport.NewGenerator(docreport.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, docreport.Report{
//	    Product:    "KSR Cranes App",
//	    Cover:      docreport.Cover{Subtitle: "Complete Documentation Suite"},
//	    Documents:  []docreport.Document{{Path: "ARCHITECTURE.md", Title: "Architecture"}},
//	    OutputPath: "docs.pdf",
//	})
//
// # Pipeline
//
//  1. Each document is read in order. Missing files are skipped with a
//     warning; any other read error stops generation.
//  2. Every document becomes a sequence of typed blocks (internal/pipeline).
//     A level-1 heading starts a new page.
//  3. The cover blocks and the document blocks are rendered into one HTML
//     page styled from the style registry (internal/style).
//  4. The page is printed twice. The first print, with blank page
//     decorations, yields the page snapshots and so the page count. The
//     second print adds the "<product> - Documentation" header and the
//     "Page X of N" footer, N being the count from the first print.
//
// # Errors
//
// Generate never panics. Layout and write failures are logged once and
// returned wrapped in a sentinel error (ErrLayout, ErrWritePDF,
// ErrBrowserConnect, ...), testable with errors.Is.
package docreport

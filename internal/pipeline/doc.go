// Package pipeline turns markdown source into the block sequence of a
// report and renders that sequence as one HTML page for the layout engine.
//
// The stages are:
//   - Inline normalization: links, code spans, bold and italic become a
//     small fixed set of inline tags, everything else is escaped
//   - Block building: a two-state line classifier (normal, inside a code
//     fence) walks an ordered rule list, first match wins
//   - Cover building: the title page blocks, ending in a page break
//   - Rendering: blocks and the style registry become an HTML document
//
// Pagination, headers and page numbering are handled by the root docreport
// package using headless Chrome (go-rod).
package pipeline

// Package config loads and validates report configuration files.
//
// A configuration names the product, the cover page text, the ordered list
// of markdown documents and the page geometry. With no file at all,
// DefaultConfig describes the built-in report.
package config

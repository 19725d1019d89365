// Package dateutil resolves the cover page date stamp.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an unusable date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength bounds format strings.
const MaxDateFormatLength = 50

// DefaultDateFormat renders dates as "March 05, 2025".
const DefaultDateFormat = "MMMM DD, YYYY"

// tokens are tried longest first.
var tokens = [...]struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named formats usable as "auto:<preset>".
var Presets = map[string]string{
	"long":     DefaultDateFormat,
	"short":    "MMMM D, YYYY",
	"iso":      "YYYY-MM-DD",
	"us":       "MM/DD/YYYY",
	"european": "DD/MM/YYYY",
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D)
// into a Go time layout. Text inside [brackets] is copied literally, as is
// any character that is not part of a token.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		n := 1
		lit := rest[:1]
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				n, lit = len(t.token), t.layout
				break
			}
		}
		b.WriteString(lit)
		rest = rest[n:]
	}
	return b.String(), nil
}

// ResolveDate expands a date setting against now:
//   - "auto" uses DefaultDateFormat
//   - "auto:<preset>" uses a named preset
//   - "auto:<format>" uses a token format
//
// Any other value is returned unchanged. An empty value stays empty, which
// omits the date from the cover.
func ResolveDate(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	if lower != "auto" {
		spec, ok := strings.CutPrefix(value[len("auto"):], ":")
		if !ok {
			return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		if spec == "" {
			return "", fmt.Errorf("%w: empty format after \"auto:\"", ErrInvalidDateFormat)
		}
		format = spec
		if preset, ok := Presets[strings.ToLower(spec)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}

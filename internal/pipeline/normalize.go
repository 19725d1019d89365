package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled patterns, applied in declaration order by Normalize.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// HTML comments, possibly spanning lines
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

	// [text](url)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

	// `code`
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")

	// **bold**
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// *italic*, only after bold has been consumed
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)

	// A bare ampersand, or one that already starts a character reference.
	ampersandPattern = regexp.MustCompile(`&(?:amp;|lt;|gt;|quot;|#[0-9]+;|#[xX][0-9a-fA-F]+;)?`)
)

// Inline tags produced by Normalize.
const (
	boldOpen  = "<b>"
	boldClose = "</b>"
	italOpen  = "<i>"
	italClose = "</i>"
	monoOpen  = "<code>"
	monoClose = "</code>"
)

// angleEscaper escapes the markup delimiters once ampersands are handled.
var angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Inline tags are swapped for private-use runes while the line is escaped,
// so only real tags survive and escaped text such as "&lt;b&gt;" stays text.
const (
	boldOpenMark  = "\ue000"
	boldCloseMark = "\ue001"
	italOpenMark  = "\ue002"
	italCloseMark = "\ue003"
	monoOpenMark  = "\ue004"
	monoCloseMark = "\ue005"
)

var (
	markStripper = strings.NewReplacer(
		boldOpenMark, "", boldCloseMark, "",
		italOpenMark, "", italCloseMark, "",
		monoOpenMark, "", monoCloseMark, "",
	)
	tagMarker = strings.NewReplacer(
		boldOpen, boldOpenMark, boldClose, boldCloseMark,
		italOpen, italOpenMark, italClose, italCloseMark,
		monoOpen, monoOpenMark, monoClose, monoCloseMark,
	)
	tagRestorer = strings.NewReplacer(
		boldOpenMark, boldOpen, boldCloseMark, boldClose,
		italOpenMark, italOpen, italCloseMark, italClose,
		monoOpenMark, monoOpen, monoCloseMark, monoClose,
	)
)

// codeEscaper escapes literal code text. Unlike escapeMarkup it never
// preserves existing entities: code is shown exactly as written.
var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// StripComments removes <!-- --> spans from a whole document.
// Runs before line splitting so comments spanning lines disappear entirely.
func StripComments(content string) string {
	return commentPattern.ReplaceAllString(content, "")
}

// Normalize converts one line of markdown into the inline markup accepted by
// the layout document: links become their text, code spans, bold and italic
// become <code>, <b> and <i>, and everything else is escaped.
//
// Normalize never fails. Unbalanced markers stay as literal characters.
// Applying it to its own output returns the output unchanged.
func Normalize(line string) string {
	line = markStripper.Replace(line)
	line = linkPattern.ReplaceAllString(line, "$1")
	line = codeSpanPattern.ReplaceAllString(line, monoOpen+"$1"+monoClose)
	line = boldPattern.ReplaceAllString(line, boldOpen+"$1"+boldClose)
	line = italicPattern.ReplaceAllString(line, italOpen+"$1"+italClose)
	line = escapeMarkup(tagMarker.Replace(line))
	return tagRestorer.Replace(line)
}

// EscapeCode escapes code block text for verbatim display.
func EscapeCode(text string) string {
	return codeEscaper.Replace(text)
}

// escapeMarkup escapes &, < and >. Ampersands that already begin a
// character reference are kept so escaped text is not escaped twice.
func escapeMarkup(s string) string {
	s = ampersandPattern.ReplaceAllStringFunc(s, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})
	return angleEscaper.Replace(s)
}

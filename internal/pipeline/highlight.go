package pipeline

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightStyle is the chroma style used for fenced code.
const HighlightStyle = "github"

// HighlightClass is the class a code container needs for the
// highlighting stylesheet to apply.
const HighlightClass = "chroma"

var highlighter = chromahtml.New(
	chromahtml.WithClasses(true),
	chromahtml.PreventSurroundingPre(true),
)

var (
	highlightCSSOnce sync.Once
	highlightCSS     string
)

// highlightCode renders code as escaped HTML with token spans for lang.
// Falls back to EscapeCode when lang is empty or names no known lexer.
func highlightCode(code, lang string) string {
	if lang == "" {
		return EscapeCode(code)
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return EscapeCode(code)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return EscapeCode(code)
	}

	tokens := trimAddedNewline(iterator.Tokens(), code)

	var sb strings.Builder
	if err := highlighter.Format(&sb, styles.Get(HighlightStyle), chroma.Literator(tokens...)); err != nil {
		return EscapeCode(code)
	}
	return sb.String()
}

// trimAddedNewline drops the trailing newline that lexers with EnsureNL
// append when code does not end with one.
func trimAddedNewline(tokens []chroma.Token, code string) []chroma.Token {
	if strings.HasSuffix(code, "\n") || len(tokens) == 0 {
		return tokens
	}
	last := len(tokens) - 1
	tokens[last].Value = strings.TrimSuffix(tokens[last].Value, "\n")
	if tokens[last].Value == "" {
		tokens = tokens[:last]
	}
	return tokens
}

// HighlightCSS returns the stylesheet for the token classes emitted by
// highlighted code blocks.
func HighlightCSS() string {
	highlightCSSOnce.Do(func() {
		var sb strings.Builder
		if err := highlighter.WriteCSS(&sb, styles.Get(HighlightStyle)); err != nil {
			return
		}
		highlightCSS = sb.String()
	})
	return highlightCSS
}

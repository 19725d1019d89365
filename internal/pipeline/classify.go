package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-docreport/internal/style"
)

// MaxCodeChunk is the largest code block, in characters, handed to the
// layout engine as a single block. Longer blocks are split.
const MaxCodeChunk = 2000

const (
	fenceMarker = "```"
	bulletGlyph = "• "
)

var numberedPattern = regexp.MustCompile(`^\d+\.\s`)

// rule classifies a non-blank line outside a code fence.
// line is the raw line, trimmed the same line without surrounding space.
type rule struct {
	name  string
	match func(line, trimmed string) bool
	emit  func(line, trimmed string) []Block
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{
		name:  "title",
		match: prefix("# "),
		emit: func(line, _ string) []Block {
			return []Block{pageBreak(), titleBlock(Normalize(line[2:]))}
		},
	},
	{name: "heading1", match: prefix("## "), emit: heading(1, 3)},
	{name: "heading2", match: prefix("### "), emit: heading(2, 4)},
	{name: "heading3", match: prefix("#### "), emit: heading(3, 5)},
	{
		name: "bullet",
		match: func(_, trimmed string) bool {
			return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
		},
		emit: func(_, trimmed string) []Block {
			return []Block{bulletBlock(bulletGlyph + Normalize(trimmed[2:]))}
		},
	},
	{
		name: "numbered",
		match: func(_, trimmed string) bool {
			return numberedPattern.MatchString(trimmed)
		},
		emit: func(_, trimmed string) []Block {
			return []Block{numberedBlock(Normalize(trimmed))}
		},
	},
	{
		name: "rule",
		match: func(_, trimmed string) bool {
			return trimmed == "---" || trimmed == "***" || trimmed == "___"
		},
		emit: func(_, _ string) []Block {
			return []Block{ruleBlock()}
		},
	},
	{
		// Tables are not supported; their rows are dropped.
		name: "table",
		match: func(_, trimmed string) bool {
			return strings.Count(trimmed, "|") >= 2
		},
		emit: func(_, _ string) []Block { return nil },
	},
	{
		name:  "paragraph",
		match: func(_, _ string) bool { return true },
		emit: func(_, trimmed string) []Block {
			return []Block{bodyBlock(Normalize(trimmed), style.Body), spacer(paragraphGap)}
		},
	},
}

func prefix(p string) func(line, trimmed string) bool {
	return func(line, _ string) bool {
		return strings.HasPrefix(line, p)
	}
}

func heading(level, markerLen int) func(line, trimmed string) []Block {
	return func(line, _ string) []Block {
		return []Block{headingBlock(level, Normalize(line[markerLen:]))}
	}
}

// classify returns the blocks for one non-blank line outside a code fence.
func classify(line, trimmed string) []Block {
	for _, r := range rules {
		if r.match(line, trimmed) {
			return r.emit(line, trimmed)
		}
	}
	return nil
}

// renderState is the parsing state for one document.
type renderState struct {
	inFence bool
	lang    string
	buf     []string
}

// toggleFence opens or closes a code fence, returning any flushed blocks.
func (s *renderState) toggleFence(trimmed string) []Block {
	if !s.inFence {
		s.inFence = true
		s.lang = strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
		s.buf = s.buf[:0]
		return nil
	}
	blocks := s.flush()
	s.inFence = false
	s.lang = ""
	s.buf = s.buf[:0]
	return blocks
}

// flush turns the accumulated fence content into code blocks. Content is
// split before highlighting so chunk boundaries count source characters.
func (s *renderState) flush() []Block {
	text := strings.Join(s.buf, "\n")
	if text == "" {
		return nil
	}

	chunks := splitChunks(text, MaxCodeChunk)
	if len(chunks) == 1 {
		return []Block{codeBlock(highlightCode(text, s.lang), s.lang)}
	}

	blocks := make([]Block, 0, 2*len(chunks))
	for _, chunk := range chunks {
		blocks = append(blocks, codeBlock(highlightCode(chunk, s.lang), s.lang), spacer(paragraphGap))
	}
	return blocks
}

// splitChunks splits text into consecutive pieces of at most size runes.
func splitChunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// BuildBlocks classifies the lines of one markdown document and returns its
// blocks in document order.
//
// A fence left open at the end of the document is discarded along with its
// content.
func BuildBlocks(content string) []Block {
	content = StripComments(NormalizeLineEndings(content))

	var state renderState
	var blocks []Block

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			blocks = append(blocks, state.toggleFence(trimmed)...)
			continue
		}

		if state.inFence {
			state.buf = append(state.buf, line)
			continue
		}

		if trimmed == "" {
			continue
		}

		blocks = append(blocks, classify(line, trimmed)...)
	}

	return blocks
}

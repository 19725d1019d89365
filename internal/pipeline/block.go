package pipeline

import "github.com/alnah/go-docreport/internal/style"

// Kind identifies the type of an output block.
type Kind int

// Block kinds.
const (
	KindTitle Kind = iota
	KindHeading
	KindBody
	KindCode
	KindBullet
	KindNumbered
	KindRule
	KindPageBreak
	KindSpacer
)

var kindNames = [...]string{
	KindTitle:     "title",
	KindHeading:   "heading",
	KindBody:      "body",
	KindCode:      "code",
	KindBullet:    "bullet",
	KindNumbered:  "numbered",
	KindRule:      "rule",
	KindPageBreak: "page-break",
	KindSpacer:    "spacer",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Block is one unit of layout output. Blocks are created by the classifier
// and the cover builder and are never modified afterwards.
type Block struct {
	Kind   Kind
	Text   string  // escaped inline markup; empty for structural blocks
	Style  string  // style registry name; empty for page breaks and spacers
	Level  int     // heading level, 1-3
	Height float64 // spacer height in points
	Lang   string  // code fence info string
}

// Block spacing in points.
const (
	paragraphGap = 6
	inch         = 72
)

func titleBlock(text string) Block {
	return Block{Kind: KindTitle, Text: text, Style: style.Title}
}

var headingStyles = [...]string{1: style.Heading1, 2: style.Heading2, 3: style.Heading3}

func headingBlock(level int, text string) Block {
	return Block{Kind: KindHeading, Text: text, Style: headingStyles[level], Level: level}
}

func bodyBlock(text, styleName string) Block {
	return Block{Kind: KindBody, Text: text, Style: styleName}
}

func codeBlock(text, lang string) Block {
	return Block{Kind: KindCode, Text: text, Style: style.Code, Lang: lang}
}

func bulletBlock(text string) Block {
	return Block{Kind: KindBullet, Text: text, Style: style.Bullet}
}

func numberedBlock(text string) Block {
	return Block{Kind: KindNumbered, Text: text, Style: style.Bullet}
}

func ruleBlock() Block {
	return Block{Kind: KindRule, Style: style.Rule}
}

func pageBreak() Block {
	return Block{Kind: KindPageBreak}
}

func spacer(height float64) Block {
	return Block{Kind: KindSpacer, Height: height}
}

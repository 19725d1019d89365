package pipeline

import "github.com/alnah/go-docreport/internal/style"

// CoverData holds the cover page content. Date is already formatted.
type CoverData struct {
	Product       string
	Subtitle      string
	Description   string
	Date          string
	ContentsTitle string
	Contents      []string
}

// Cover page spacing in points.
const (
	coverGapLarge = 2 * inch
	coverGapSmall = inch / 2
)

// BuildCover returns the cover page blocks. The last block is always a page
// break, so the first document starts on a fresh page.
func BuildCover(c CoverData) []Block {
	blocks := []Block{
		spacer(coverGapLarge),
		titleBlock(Normalize(c.Product)),
		spacer(coverGapSmall),
	}

	if c.Subtitle != "" {
		blocks = append(blocks, bodyBlock(Normalize(c.Subtitle), style.Subtitle))
	}
	blocks = append(blocks, spacer(coverGapLarge))

	if c.Description != "" {
		blocks = append(blocks, bodyBlock(Normalize(c.Description), style.Details), spacer(coverGapSmall))
	}
	if c.Date != "" {
		blocks = append(blocks, bodyBlock(Normalize("Generated: "+c.Date), style.Details))
	}
	blocks = append(blocks, spacer(coverGapLarge))

	if c.ContentsTitle != "" {
		blocks = append(blocks, bodyBlock(Normalize(c.ContentsTitle), style.TOCHeading))
	}
	for _, entry := range c.Contents {
		blocks = append(blocks, bodyBlock(Normalize(entry), style.TOCEntry))
	}

	return append(blocks, pageBreak())
}

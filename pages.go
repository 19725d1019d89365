package docreport

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pageReader turns a rendered PDF back into page snapshots.
type pageReader interface {
	ReadPages(data []byte) ([]PageSnapshot, error)
}

// pdfPageReader reads pages with ledongthuc/pdf.
type pdfPageReader struct{}

var _ pageReader = pdfPageReader{}

// ReadPages returns one snapshot per page, in order. Text extraction is
// best effort: a page whose text cannot be decoded yields an empty Text.
func (pdfPageReader) ReadPages(data []byte) (snaps []PageSnapshot, err error) {
	// The parser panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			snaps = nil
			err = fmt.Errorf("%w: %v", ErrReadPages, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPages, err)
	}

	n := r.NumPage()
	snaps = make([]PageSnapshot, 0, n)
	for i := 1; i <= n; i++ {
		snap := PageSnapshot{Number: i}
		if page := r.Page(i); !page.V.IsNull() {
			if text, err := page.GetPlainText(nil); err == nil {
				snap.Text = text
			}
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// Package pageops appends existing PDF documents to a rendered one.
//
// Source pages are imported as templates with the gofpdi contrib package
// and drawn onto pages of their original size. Page counts are read with
// ledongthuc/pdf before importing so that malformed input is reported as
// an error instead of reaching the importer.
package pageops

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	lpdf "github.com/ledongthuc/pdf"
)

// ErrNoInput is returned when there is nothing to merge.
var ErrNoInput = errors.New("pageops: no input documents")

// Document is a PDF held in memory.
type Document struct {
	Name string // used in error messages
	Data []byte
}

// PageCount returns the number of pages of a PDF.
func PageCount(data []byte) (n int, err error) {
	// The reader panics on some truncated trailers.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pageops: malformed PDF: %v", r)
		}
	}()
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("pageops: reading input: %w", err)
	}
	return r.NumPage(), nil
}

// importPage imports a single page from a source stream into the target
// PDF. Returns the template ID and page dimensions.
func importPage(pdf *fpdf.Fpdf, imp *gofpdi.Importer, rs *io.ReadSeeker, pageNum int) (tplID int, w, h float64) {
	tplID = imp.ImportPageFromStream(pdf, rs, pageNum, "/MediaBox")
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	return
}

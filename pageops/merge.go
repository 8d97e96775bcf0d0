package pageops

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// errNoPages rejects sources without pages.
var errNoPages = errors.New("no pages")

// A4 in points, used when a source page reports no media box.
const (
	defaultWidth  = 595.28
	defaultHeight = 841.89
)

// Merge writes the pages of docs, in order, into one PDF and returns its
// page count. Every source page keeps its size.
func Merge(w io.Writer, docs ...Document) (int, error) {
	if len(docs) == 0 {
		return 0, ErrNoInput
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	total := 0
	for _, doc := range docs {
		n, err := appendDocument(pdf, doc)
		if err != nil {
			return 0, fmt.Errorf("pageops: merging %s: %w", doc.Name, err)
		}
		total += n
	}

	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("pageops: writing output: %w", err)
	}
	return total, nil
}

// Append is Merge with the rendered document first.
func Append(w io.Writer, base []byte, attachments ...Document) (int, error) {
	return Merge(w, append([]Document{{Name: "document", Data: base}}, attachments...)...)
}

// appendDocument imports all pages of doc into the target PDF.
func appendDocument(pdf *fpdf.Fpdf, doc Document) (n int, err error) {
	pageCount, err := PageCount(doc.Data)
	if err != nil {
		return 0, err
	}
	if pageCount == 0 {
		return 0, errNoPages
	}

	// The importer panics on objects it cannot parse.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("importing pages: %v", r)
		}
	}()

	imp := gofpdi.NewImporter()
	var rs io.ReadSeeker = bytes.NewReader(doc.Data)

	for i := 1; i <= pageCount; i++ {
		tplID, w, h := importPage(pdf, imp, &rs, i)
		if w == 0 || h == 0 {
			w, h = defaultWidth, defaultHeight
		}

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
	}

	return pageCount, pdf.Error()
}

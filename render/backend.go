// Package render lays a layout.Document out on PDF pages using go-pdf/fpdf.
//
// Pagination belongs to the backend: header and footer are measured once
// and repeated on every page, and the content fragment flows into the space
// between them. Text splits at line boundaries, stacks split between items,
// rows are kept together unless marked Flow or taller than a page, in which
// case every cell flows down the pages on its own.
package render

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/cvpdf/layout"
)

// Output is the result of a successful flow.
type Output struct {
	Pages int
	PDF   []byte
}

// UTF8Font names TrueType files registered for full Unicode text.
type UTF8Font struct {
	Family  string
	Regular string // path, relative to the font directory when one is set
	Bold    string
}

// Backend renders composition trees. It is safe to reuse: every Flow call
// works on a fresh PDF document.
type Backend struct {
	fontDir  string
	utf8     *UTF8Font
	compress bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithFontDir sets the directory font files are loaded from.
func WithFontDir(dir string) Option {
	return func(b *Backend) {
		b.fontDir = dir
	}
}

// WithUTF8Font renders text with the given TrueType family instead of the
// core Helvetica font.
func WithUTF8Font(font UTF8Font) Option {
	return func(b *Backend) {
		b.utf8 = &font
	}
}

// WithCompression toggles stream compression (default on).
func WithCompression(on bool) Option {
	return func(b *Backend) {
		b.compress = on
	}
}

// New returns a Backend.
func New(opts ...Option) *Backend {
	b := &Backend{compress: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// footerGap separates the content area from the footer.
const footerGap = 8

// minContentHeight is the least vertical space the content area may have.
const minContentHeight = 72

// Flow paginates doc and returns the rendered PDF.
func (b *Backend) Flow(doc *layout.Document) (*Output, error) {
	if doc == nil || doc.Content == nil {
		return nil, newError("Flow", ErrNoContent)
	}

	size := doc.PageSize
	if size == "" {
		size = "A4"
	}
	pdf := fpdf.New("P", "pt", size, b.fontDir)
	if pdf.Err() {
		return nil, newError("New", pdf.Error())
	}
	pdf.SetCompression(b.compress)
	pdf.SetCellMargin(0)

	m := doc.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)

	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}
	if doc.Subject != "" {
		pdf.SetSubject(doc.Subject, true)
	}
	if doc.Creator != "" {
		pdf.SetCreator(doc.Creator, true)
	}
	pdf.AliasNbPages("")

	f := newFlow(pdf, doc.DefaultStyle)
	if b.utf8 != nil {
		pdf.AddUTF8Font(b.utf8.Family, "", b.utf8.Regular)
		pdf.AddUTF8Font(b.utf8.Family, "B", b.utf8.Bold)
		if pdf.Err() {
			return nil, newError("AddUTF8Font", pdf.Error())
		}
		f.family = b.utf8.Family
		f.unicode = true
		f.tr = func(s string) string { return s }
	}

	pageW, pageH := pdf.GetPageSize()
	f.left = m.Left
	f.width = pageW - m.Left - m.Right

	headerH := f.measure(doc.Header, f.width)
	footerH := f.measure(doc.Footer, f.width)
	f.top = m.Top + headerH
	f.bottom = pageH - m.Bottom - footerH
	if doc.Footer != nil {
		f.bottom -= footerGap
	}
	if f.width <= 0 || f.bottom-f.top < minContentHeight {
		return nil, newError("Flow", ErrNoRoom)
	}

	pdf.SetHeaderFunc(func() {
		if doc.Header != nil {
			f.draw(doc.Header, f.left, m.Top, f.width)
		}
	})
	pdf.SetFooterFunc(func() {
		if doc.Footer != nil {
			f.draw(doc.Footer, f.left, pageH-m.Bottom-footerH, f.width)
		}
	})

	pdf.AddPage()
	f.place(doc.Content, f.left, f.width, cursor{page: 1, y: f.top})

	// The footer of the final page is drawn on close, which acts on the
	// current page.
	pdf.SetPage(pdf.PageCount())
	if pdf.Err() {
		return nil, newError("Flow", pdf.Error())
	}

	pages := pdf.PageCount()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, newError("Output", err)
	}
	return &Output{Pages: pages, PDF: buf.Bytes()}, nil
}

// expandFields substitutes the page placeholders. {pages} becomes the
// alias fpdf replaces with the final page count when the file is written.
func expandFields(s string, page int) string {
	return strings.NewReplacer("{page}", strconv.Itoa(page), "{pages}", "{nb}").Replace(s)
}

package cvpdf

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/lvillar/cvpdf/contactcode"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*config)

type config struct {
	fs        afero.Fs
	log       *slog.Logger
	pageSize  string
	marginCM  float64
	fontDir   string
	utf8      *fontFiles
	contact   contactcode.Kind
	attachDir string
	title     string
}

type fontFiles struct {
	family, regular, bold string
}

// WithPageSize sets the page format: "A4" (default), "A5", "Letter" or "Legal".
func WithPageSize(size string) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// WithMargins sets the uniform page margin in centimeters (default 1.5).
func WithMargins(cm float64) Option {
	return func(c *config) {
		c.marginCM = cm
	}
}

// WithFontDir sets the directory where font files are located.
func WithFontDir(dir string) Option {
	return func(c *config) {
		c.fontDir = dir
	}
}

// WithUTF8Font renders text with a TrueType family for full Unicode
// coverage. The file names are resolved against the font directory.
func WithUTF8Font(family, regular, bold string) Option {
	return func(c *config) {
		c.utf8 = &fontFiles{family: family, regular: regular, bold: bold}
	}
}

// WithLogger sets the logger for warnings such as a missing profile picture.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithFS sets the filesystem data files, pictures and attachments are read
// from and the output is written to.
func WithFS(fs afero.Fs) Option {
	return func(c *config) {
		c.fs = fs
	}
}

// WithContactCode adds a vCard barcode to the left column.
func WithContactCode(k contactcode.Kind) Option {
	return func(c *config) {
		c.contact = k
	}
}

// WithAttachmentDir appends the PDF files named by the Attachments entries,
// looked up in dir, after the CV pages.
func WithAttachmentDir(dir string) Option {
	return func(c *config) {
		c.attachDir = dir
	}
}

// WithTitle replaces the "Curriculum Vitae" header title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

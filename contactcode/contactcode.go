// Package contactcode encodes a person's contact details as a vCard inside a
// two-dimensional barcode image (QR or PDF417).
package contactcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	pdf417 "github.com/ruudk/golang-pdf417"

	"github.com/lvillar/cvpdf/resume"
)

// Kind selects the barcode symbology.
type Kind string

const (
	KindNone   Kind = "none"
	KindQR     Kind = "qr"
	KindPDF417 Kind = "pdf417"
)

// ParseKind parses a configuration value. The empty string means KindNone.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindNone:
		return KindNone, nil
	case KindQR, KindPDF417:
		return k, nil
	default:
		return KindNone, fmt.Errorf("contactcode: unknown kind %q (want none, qr or pdf417)", s)
	}
}

// qrSize is the pixel edge QR codes are scaled to.
const qrSize = 256

// pdf417Scale is the integer module scale applied to PDF417 symbols.
const pdf417Scale = 3

// Code is an encoded barcode image.
type Code struct {
	Kind    Kind
	Content string
	PNG     []byte
	Width   int // pixels
	Height  int
}

// HasContact reports whether pd carries anything worth encoding.
func HasContact(pd resume.PersonalData) bool {
	for _, v := range []string{pd.Street, pd.City, pd.Email, pd.Phone} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// VCard renders a vCard 3.0 for the given person. Blank properties are
// left out.
func VCard(fullName, jobTitle string, pd resume.PersonalData) string {
	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}

	name := strings.TrimSpace(fullName)
	given, family := name, ""
	if i := strings.LastIndex(name, " "); i > 0 {
		given, family = name[:i], name[i+1:]
	}
	lines = append(lines,
		"N:"+escape(family)+";"+escape(given)+";;;",
		"FN:"+escape(name),
	)
	if v := strings.TrimSpace(jobTitle); v != "" {
		lines = append(lines, "TITLE:"+escape(v))
	}
	street, city := strings.TrimSpace(pd.Street), strings.TrimSpace(pd.City)
	if street != "" || city != "" {
		lines = append(lines, "ADR;TYPE=HOME:;;"+escape(street)+";"+escape(city)+";;;")
	}
	if v := strings.TrimSpace(pd.Email); v != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+escape(v))
	}
	if v := strings.TrimSpace(pd.Phone); v != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+escape(v))
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)

func escape(s string) string {
	return vcardEscaper.Replace(s)
}

// Encode draws content as a barcode of the given kind. Content the
// symbology cannot represent is reported as an error.
func Encode(kind Kind, content string) (code *Code, err error) {
	// The PDF417 encoder panics on characters outside its tables.
	defer func() {
		if r := recover(); r != nil {
			code, err = nil, fmt.Errorf("contactcode: %s: %v", kind, r)
		}
	}()

	var bc barcode.Barcode
	switch kind {
	case KindQR:
		bc, err = qr.Encode(content, qr.M, qr.Auto)
		if err != nil {
			return nil, fmt.Errorf("contactcode: qr: %w", err)
		}
		bc, err = barcode.Scale(bc, qrSize, qrSize)
	case KindPDF417:
		// 10 data columns, error correction level 5.
		bc = pdf417.Encode(content, 10, 5)
		b := bc.Bounds()
		bc, err = barcode.Scale(bc, b.Dx()*pdf417Scale, b.Dy()*pdf417Scale)
	default:
		return nil, fmt.Errorf("contactcode: cannot encode kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("contactcode: scaling %s: %w", kind, err)
	}
	return toPNG(kind, content, bc)
}

func toPNG(kind Kind, content string, img image.Image) (*Code, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("contactcode: encoding png: %w", err)
	}
	b := img.Bounds()
	return &Code{Kind: kind, Content: content, PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

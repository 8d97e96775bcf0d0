package render

import (
	"math"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/cvpdf/layout"
)

// baseLeading is the line height of a style with LineHeight 1, as a
// multiple of the font size.
const baseLeading = 1.2

// flow carries the state of one Flow call.
type flow struct {
	pdf     *fpdf.Fpdf
	def     layout.Style
	family  string
	unicode bool
	tr      func(string) string

	left, width float64 // content column of every page
	top, bottom float64 // content area bounds of every page

	images map[string]bool
}

func newFlow(pdf *fpdf.Fpdf, def layout.Style) *flow {
	if def.Size <= 0 {
		def.Size = 10
	}
	if def.LineHeight <= 0 {
		def.LineHeight = 1
	}
	return &flow{
		pdf:    pdf,
		def:    def,
		family: "Helvetica",
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		images: make(map[string]bool),
	}
}

// setStyle selects the font and text color of s.
func (f *flow) setStyle(s layout.Style) layout.Style {
	s = s.Merge(f.def)
	fontStyle := ""
	if s.Weight != layout.WeightRegular {
		fontStyle = "B"
	}
	f.pdf.SetFont(f.family, fontStyle, s.Size)
	if s.Color != nil {
		f.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
	} else {
		f.pdf.SetTextColor(0, 0, 0)
	}
	return s
}

func lineHeight(s layout.Style) float64 {
	return s.Size * baseLeading * s.LineHeight
}

// lines wraps content to width w using the selected font. Core font lines
// are returned in the font's encoding.
func (f *flow) lines(content string, w float64) []string {
	if !f.unicode {
		content = f.tr(content)
	}
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if w <= 0 {
		return strings.Split(strings.TrimRight(content, "\n"), "\n")
	}
	if f.unicode {
		return f.pdf.SplitText(content, w)
	}
	raw := f.pdf.SplitLines([]byte(content), w)
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = string(l)
	}
	return out
}

// measure returns the height of frag laid out at width w.
func (f *flow) measure(frag layout.Fragment, w float64) float64 {
	switch n := frag.(type) {
	case *layout.Text:
		s := f.setStyle(n.Style)
		return float64(len(f.lines(n.Content, w))) * lineHeight(s)
	case *layout.Stack:
		h := 0.0
		for i, it := range n.Items {
			if i > 0 {
				h += n.Spacing
			}
			h += f.measure(it, w)
		}
		return h
	case *layout.Row:
		return f.rowHeight(n, f.widths(n, w))
	case *layout.Inset:
		return n.Padding.Vertical() + f.measure(n.Content, w-n.Padding.Horizontal())
	case *layout.Box:
		return n.Height
	case *layout.Image:
		_, h := imageSize(n, w)
		return h
	case *layout.Rule:
		return n.Thickness
	}
	return 0
}

// minHeight is the least height frag needs on a page before it can break.
func (f *flow) minHeight(frag layout.Fragment, w float64) float64 {
	switch n := frag.(type) {
	case *layout.Text:
		s := f.setStyle(n.Style)
		if len(f.lines(n.Content, w)) == 0 {
			return 0
		}
		return lineHeight(s)
	case *layout.Stack:
		if len(n.Items) == 0 {
			return 0
		}
		return f.minHeight(n.Items[0], w)
	case *layout.Inset:
		return n.Padding.Top + f.minHeight(n.Content, w-n.Padding.Horizontal())
	case *layout.Row:
		if !f.splits(n, w) {
			return f.measure(n, w)
		}
		widths := f.widths(n, w)
		h := 0.0
		for i, c := range n.Cells {
			if c.Content == nil {
				continue
			}
			h = math.Max(h, c.Padding.Top+f.minHeight(c.Content, widths[i]-c.Padding.Horizontal()))
		}
		return h
	}
	return f.measure(frag, w)
}

func (f *flow) rowHeight(r *layout.Row, widths []float64) float64 {
	h := 0.0
	for i, c := range r.Cells {
		if c.Content == nil {
			continue
		}
		ch := c.Padding.Vertical() + f.measure(c.Content, widths[i]-c.Padding.Horizontal())
		h = math.Max(h, ch)
	}
	return h
}

// natural returns the width frag occupies without wrapping.
func (f *flow) natural(frag layout.Fragment) float64 {
	switch n := frag.(type) {
	case *layout.Text:
		f.setStyle(n.Style)
		w := 0.0
		for _, line := range strings.Split(n.Content, "\n") {
			if !f.unicode {
				line = f.tr(line)
			}
			w = math.Max(w, f.pdf.GetStringWidth(line))
		}
		return w
	case *layout.Stack:
		w := 0.0
		for _, it := range n.Items {
			w = math.Max(w, f.natural(it))
		}
		return w
	case *layout.Row:
		w := 0.0
		for i, c := range n.Cells {
			if i > 0 {
				w += n.Spacing
			}
			switch c.Width.Kind {
			case layout.WidthConstant:
				w += c.Width.Value
			default:
				w += c.Padding.Horizontal() + f.natural(c.Content)
			}
		}
		return w
	case *layout.Inset:
		return n.Padding.Horizontal() + f.natural(n.Content)
	case *layout.Box:
		return n.Width
	case *layout.Image:
		return n.Width
	}
	return 0
}

// widths resolves the cell widths of r within w. Constant cells come
// first, auto cells take their natural width from what is left, relative
// cells share the remainder by weight.
func (f *flow) widths(r *layout.Row, w float64) []float64 {
	widths := make([]float64, len(r.Cells))
	if len(r.Cells) == 0 {
		return widths
	}
	remaining := w - r.Spacing*float64(len(r.Cells)-1)

	for i, c := range r.Cells {
		if c.Width.Kind == layout.WidthConstant {
			widths[i] = c.Width.Value
			remaining -= c.Width.Value
		}
	}
	for i, c := range r.Cells {
		if c.Width.Kind == layout.WidthAuto {
			cw := math.Min(math.Max(remaining, 0), c.Padding.Horizontal()+f.natural(c.Content))
			widths[i] = cw
			remaining -= cw
		}
	}

	shares := 0.0
	for _, c := range r.Cells {
		if c.Width.Kind == layout.WidthRelative {
			shares += c.Width.Value
		}
	}
	if shares > 0 && remaining > 0 {
		for i, c := range r.Cells {
			if c.Width.Kind == layout.WidthRelative {
				widths[i] = remaining * c.Width.Value / shares
			}
		}
	}
	return widths
}

// imageSize scales img to its requested width, limited by the available
// width and its maximum height.
func imageSize(img *layout.Image, avail float64) (w, h float64) {
	w = img.Width
	if w <= 0 || w > avail {
		w = avail
	}
	h = w
	if img.PixelWidth > 0 && img.PixelHeight > 0 {
		h = w * float64(img.PixelHeight) / float64(img.PixelWidth)
	}
	if img.MaxHeight > 0 && h > img.MaxHeight {
		w *= img.MaxHeight / h
		h = img.MaxHeight
	}
	return w, h
}

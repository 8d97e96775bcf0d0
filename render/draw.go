package render

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/lvillar/cvpdf/layout"
)

// cursor is a position in the content area.
type cursor struct {
	page int
	y    float64
}

func (c cursor) after(o cursor) bool {
	return c.page > o.page || (c.page == o.page && c.y > o.y)
}

// epsilon absorbs float drift when comparing positions.
const epsilon = 0.01

func (f *flow) atTop(c cursor) bool {
	return c.y <= f.top+epsilon
}

func (f *flow) fits(c cursor, h float64) bool {
	return c.y+h <= f.bottom+epsilon
}

// next moves to the top of the following page, adding it when needed.
func (f *flow) next(c cursor) cursor {
	c.page++
	if c.page > f.pdf.PageCount() {
		f.pdf.SetPage(f.pdf.PageCount())
		f.pdf.AddPage()
	} else {
		f.pdf.SetPage(c.page)
	}
	c.y = f.top
	return c
}

// place lays frag out at cursor c within the column [x, x+w] and returns
// the cursor below it, breaking pages as needed.
func (f *flow) place(frag layout.Fragment, x, w float64, c cursor) cursor {
	f.pdf.SetPage(c.page)

	switch n := frag.(type) {
	case nil:
		return c
	case *layout.Text:
		s := f.setStyle(n.Style)
		lh := lineHeight(s)
		for _, line := range f.lines(n.Content, w) {
			if !f.fits(c, lh) && !f.atTop(c) {
				c = f.next(c)
				f.setStyle(n.Style)
			}
			f.drawLine(n, line, x, c.y, w, lh, c.page)
			c.y += lh
		}
		return c
	case *layout.Stack:
		for i, it := range n.Items {
			if i > 0 && !f.atTop(c) {
				c.y += n.Spacing
			}
			if i == 0 && n.KeepHead && len(n.Items) > 1 && !f.atTop(c) {
				need := f.measure(it, w) + n.Spacing + f.minHeight(n.Items[1], w)
				if !f.fits(c, need) {
					c = f.next(c)
				}
			}
			c = f.place(it, x, w, c)
		}
		return c
	case *layout.Inset:
		c.y += n.Padding.Top
		c = f.place(n.Content, x+n.Padding.Left, w-n.Padding.Horizontal(), c)
		c.y += n.Padding.Bottom
		return c
	case *layout.Row:
		if f.splits(n, w) {
			return f.flowRow(n, x, w, c)
		}
	}

	h := f.measure(frag, w)
	if !f.fits(c, h) && !f.atTop(c) {
		c = f.next(c)
	}
	f.draw(frag, x, c.y, w)
	c.y += h
	return c
}

// splits reports whether r is laid out by flowRow. Rows taller than an
// empty content area cannot be kept together.
func (f *flow) splits(r *layout.Row, w float64) bool {
	return r.Flow || f.measure(r, w) > f.bottom-f.top+epsilon
}

// flowRow lets every cell flow from the same start. The row ends where the
// longest cell ends, and bars stretch over every page in between.
func (f *flow) flowRow(r *layout.Row, x, w float64, start cursor) cursor {
	widths := f.widths(r, w)
	end := start
	type span struct {
		x, w  float64
		color layout.Color
	}
	var bars []span

	cx := x
	for i, c := range r.Cells {
		cw := widths[i]
		switch content := c.Content.(type) {
		case nil:
		case *layout.Bar:
			bars = append(bars, span{x: cx + c.Padding.Left, w: cw - c.Padding.Horizontal(), color: content.Color})
		default:
			f.pdf.SetPage(start.page)
			cc := start
			cc.y += c.Padding.Top
			cc = f.place(content, cx+c.Padding.Left, cw-c.Padding.Horizontal(), cc)
			cc.y += c.Padding.Bottom
			if cc.after(end) {
				end = cc
			}
		}
		cx += cw + r.Spacing
	}

	for _, b := range bars {
		for p := start.page; p <= end.page; p++ {
			y0, y1 := f.top, f.bottom
			if p == start.page {
				y0 = start.y
			}
			if p == end.page {
				y1 = end.y
			}
			if y1 <= y0 {
				continue
			}
			f.pdf.SetPage(p)
			f.fillRect(b.x, y0, b.w, y1-y0, b.color)
		}
	}
	f.pdf.SetPage(end.page)
	return end
}

// draw paints frag with its top left corner at (x, y) on the current page
// without breaking it.
func (f *flow) draw(frag layout.Fragment, x, y, w float64) {
	switch n := frag.(type) {
	case *layout.Text:
		s := f.setStyle(n.Style)
		lh := lineHeight(s)
		page := f.pdf.PageNo()
		for i, line := range f.lines(n.Content, w) {
			f.drawLine(n, line, x, y+float64(i)*lh, w, lh, page)
		}
	case *layout.Stack:
		for i, it := range n.Items {
			if i > 0 {
				y += n.Spacing
			}
			f.draw(it, x, y, w)
			y += f.measure(it, w)
		}
	case *layout.Row:
		widths := f.widths(n, w)
		rowH := f.rowHeight(n, widths)
		cx := x
		for i, c := range n.Cells {
			cw := widths[i]
			switch content := c.Content.(type) {
			case nil:
			case *layout.Bar:
				f.fillRect(cx+c.Padding.Left, y, cw-c.Padding.Horizontal(), rowH, content.Color)
			default:
				f.draw(content, cx+c.Padding.Left, y+c.Padding.Top, cw-c.Padding.Horizontal())
			}
			cx += cw + n.Spacing
		}
	case *layout.Inset:
		f.draw(n.Content, x+n.Padding.Left, y+n.Padding.Top, w-n.Padding.Horizontal())
	case *layout.Box:
		if n.Fill != nil {
			f.fillRect(x, y, n.Width, n.Height, *n.Fill)
		}
		if n.Content != nil {
			ch := f.measure(n.Content, n.Width)
			f.draw(n.Content, x, y+(n.Height-ch)/2, n.Width)
		}
	case *layout.Image:
		iw, ih := imageSize(n, w)
		opts := fpdf.ImageOptions{ImageType: n.Format}
		if !f.images[n.Key] {
			f.pdf.RegisterImageOptionsReader(n.Key, opts, bytes.NewReader(n.Data))
			f.images[n.Key] = true
		}
		f.pdf.ImageOptions(n.Key, x, y, iw, ih, false, opts, 0, "")
	case *layout.Rule:
		f.fillRect(x, y, w, n.Thickness, n.Color)
	}
}

// drawLine writes one already wrapped line of t.
func (f *flow) drawLine(t *layout.Text, line string, x, y, w, lh float64, page int) {
	if t.PageFields {
		line = expandFields(line, page)
	}
	align := "L"
	switch t.Align {
	case layout.AlignCenter:
		align = "C"
	case layout.AlignRight:
		align = "R"
	}
	f.pdf.SetXY(x, y)
	f.pdf.CellFormat(w, lh, line, "", 0, align, false, 0, "")
}

func (f *flow) fillRect(x, y, w, h float64, c layout.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	f.pdf.SetFillColor(c.R, c.G, c.B)
	f.pdf.Rect(x, y, w, h, "F")
}

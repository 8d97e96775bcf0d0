// Package layout describes a document as a tree of backend-agnostic
// fragments: text runs, vertical stacks, rows of sized cells, boxes, images
// and rules. A Document carries three regions. Header and Footer repeat on
// every page; Content flows across as many pages as it needs.
//
// The tree says nothing about page breaks. A backend measures fragments and
// decides where each page ends.
package layout

// Fragment is a renderable node of the composition tree.
type Fragment interface {
	fragment()
}

// Document is the root of a composition tree.
type Document struct {
	Title   string
	Author  string
	Subject string
	Creator string

	PageSize     string  // A4, A5, Letter, Legal (default: A4)
	Margins      Padding // points
	DefaultStyle Style

	Header  Fragment // repeated on every page, may be nil
	Content Fragment
	Footer  Fragment // repeated on every page, may be nil
}

// Text is a paragraph. It wraps to the available width and may be split
// between pages at line boundaries.
type Text struct {
	Content string
	Style   Style
	Align   Align

	// PageFields enables the {page} and {pages} placeholders.
	PageFields bool
}

// Stack places items vertically with Spacing points between them.
type Stack struct {
	Spacing float64
	Items   []Fragment

	// KeepHead moves the first item to the next page when it would
	// otherwise end a page without any of the second item following it.
	KeepHead bool
}

// Len returns the number of items in the stack.
func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// Add appends non-nil fragments to the stack.
func (s *Stack) Add(items ...Fragment) {
	for _, it := range items {
		if it != nil {
			s.Items = append(s.Items, it)
		}
	}
}

// Row places cells side by side with Spacing points between them.
//
// A row is kept on one page unless Flow is set, in which case every cell
// flows down the pages independently and the row ends where the longest
// cell ends.
type Row struct {
	Spacing float64
	Cells   []Cell
	Flow    bool
}

// Cell is one horizontal slot of a Row. Content may be nil for a spacer.
type Cell struct {
	Width   Width
	Padding Padding
	Content Fragment
}

// WidthKind selects how a cell width is resolved.
type WidthKind int

const (
	// WidthRelative shares the space left by constant and auto cells in
	// proportion to Value.
	WidthRelative WidthKind = iota
	// WidthConstant is exactly Value points wide.
	WidthConstant
	// WidthAuto is as wide as its content's natural width.
	WidthAuto
)

// Width is the sizing rule of a cell.
type Width struct {
	Kind  WidthKind
	Value float64
}

// Constant returns a fixed width in points.
func Constant(pt float64) Width { return Width{Kind: WidthConstant, Value: pt} }

// Relative returns a proportional width.
func Relative(share float64) Width { return Width{Kind: WidthRelative, Value: share} }

// Auto returns a content-driven width.
func Auto() Width { return Width{Kind: WidthAuto} }

// Inset pads its content.
type Inset struct {
	Padding Padding
	Content Fragment
}

// Box is a fixed-size rectangle, optionally filled, with its content
// centered both ways.
type Box struct {
	Width, Height float64
	Fill          *Color
	Content       Fragment
}

// Image is a raster image scaled to Width points, keeping the aspect ratio
// of PixelWidth x PixelHeight. MaxHeight, when set, caps the drawn height
// and narrows the image accordingly.
type Image struct {
	Key       string // unique per distinct image within a document
	Data      []byte
	Format    string // "PNG" or "JPG"
	Width     float64
	MaxHeight float64

	PixelWidth, PixelHeight int
}

// Rule is a horizontal line spanning the available width.
type Rule struct {
	Thickness float64
	Color     Color
}

// Bar is a vertical filled strip that stretches to the height of the row
// it is placed in.
type Bar struct {
	Color Color
}

func (*Text) fragment()  {}
func (*Stack) fragment() {}
func (*Row) fragment()   {}
func (*Inset) fragment() {}
func (*Box) fragment()   {}
func (*Image) fragment() {}
func (*Rule) fragment()  {}
func (*Bar) fragment()   {}

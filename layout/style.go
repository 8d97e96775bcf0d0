package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// Hex parses "#RRGGBB" (the leading # is optional). It panics on malformed
// input and is intended for package-level style constants.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		panic(fmt.Sprintf("layout: bad hex color %q", s))
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// Weight is a font weight. SemiBold falls back to Bold on backends that
// only carry two weights.
type Weight int

const (
	WeightRegular Weight = iota
	WeightSemiBold
	WeightBold
)

// Align is the horizontal alignment of text within its cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Style describes a text run. Zero fields inherit from the document default.
type Style struct {
	Size       float64 // points
	Weight     Weight
	Color      *Color
	LineHeight float64 // multiple of the backend's base leading, 0 means 1
}

// Merge returns s with unset fields taken from def.
func (s Style) Merge(def Style) Style {
	out := def
	if s.Size > 0 {
		out.Size = s.Size
	}
	if s.Weight != WeightRegular {
		out.Weight = s.Weight
	}
	if s.Color != nil {
		out.Color = s.Color
	}
	if s.LineHeight > 0 {
		out.LineHeight = s.LineHeight
	}
	return out
}

// Padding is spacing around a fragment, in points.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns a Padding with the same value on all sides.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

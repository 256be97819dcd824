// Package deck holds the in-memory presentation model: an ordered list of
// slides, each carrying positioned drawing primitives, plus the builder that
// assembles it and hands it to a renderer.
//
// All geometry is expressed in inches on a fixed 16:9 canvas.
package deck

import (
	"fmt"
	"strings"
)

// 16:9 canvas in inches
const (
	LayoutWide   = "LAYOUT_16x9"
	CanvasWidth  = 10.0
	CanvasHeight = 5.625
)

// Color is an RGB hex string without the leading '#', e.g. "028090".
type Color string

// Valid reports whether c is exactly six hexadecimal digits.
func (c Color) Valid() bool {
	if len(c) != 6 {
		return false
	}
	for _, r := range string(c) {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ARGB returns the opaque ARGB form used by OOXML writers ("FF" + RGB).
func (c Color) ARGB() string {
	return "FF" + strings.ToUpper(string(c))
}

// Kind tags the variant carried by an Element.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
	KindText
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindText:
		return "text"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Box is a position and size in inches.
type Box struct {
	X, Y, W, H float64
}

// boundsTolerance absorbs float drift from offsets like 0.95 + 2*2.3.
const boundsTolerance = 1e-6

// Within reports whether the box lies inside a width x height canvas.
func (b Box) Within(width, height float64) bool {
	return b.X >= -boundsTolerance && b.Y >= -boundsTolerance &&
		b.W >= 0 && b.H >= 0 &&
		b.X+b.W <= width+boundsTolerance &&
		b.Y+b.H <= height+boundsTolerance
}

// HAlign is horizontal text alignment. The zero value leaves the renderer default (left).
type HAlign int

const (
	AlignDefault HAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// VAlign is vertical anchoring of text inside its box.
type VAlign int

const (
	VAlignDefault VAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// Border is an outline. A zero Width means no visible line.
type Border struct {
	Color Color
	Width float64 // points
}

// Visible reports whether the border should be drawn.
func (b Border) Visible() bool {
	return b.Width > 0 && b.Color != ""
}

// Shadow is an outer drop shadow.
type Shadow struct {
	Color   Color
	Blur    float64 // points
	Offset  float64 // points
	Angle   int     // degrees
	Opacity float64 // 0..1
}

// FontSpec is the default formatting of a text or table element.
type FontSpec struct {
	Face  string
	Size  float64 // points
	Bold  bool
	Color Color
}

// TextRun is a string with local overrides on top of the element font.
type TextRun struct {
	Text      string
	Bold      bool
	Color     Color
	Bullet    bool
	BreakLine bool // start a new paragraph after this run
}

// Cell is one table cell.
type Cell struct {
	TextRun
	Fill   Color
	Border *Border
}

// TableRow is an ordered list of cells.
type TableRow []Cell

// ShapeSpec configures rectangles and ellipses.
type ShapeSpec struct {
	Fill   Color
	Line   Border
	Shadow *Shadow
}

// TextSpec configures a text box.
type TextSpec struct {
	Runs        []TextRun
	Font        FontSpec
	Align       HAlign
	VAlign      VAlign
	LineSpacing float64 // multiple of single spacing; 0 keeps the default
}

// TableSpec configures a table.
type TableSpec struct {
	Rows   []TableRow
	ColW   []float64 // inches; empty splits the width evenly
	RowH   float64   // inches
	Font   FontSpec
	Border Border
	Fill   Color
	Align  HAlign
	VAlign VAlign
}

// Columns returns the widest row's cell count.
func (t *TableSpec) Columns() int {
	n := 0
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Element is a drawable primitive. Exactly one of Shape, Text or Table is
// set, matching Kind.
type Element struct {
	Kind  Kind
	Box   Box
	Shape *ShapeSpec
	Text  *TextSpec
	Table *TableSpec
}

// Slide is one page of the deck. Elements are kept in z-order: later
// entries are drawn on top of earlier ones.
type Slide struct {
	Index      int // 1-based
	Title      string
	Background Color
	Elements   []Element
}

// Deck is the complete ordered presentation.
type Deck struct {
	Layout string
	Author string
	Title  string
	Width  float64
	Height float64
	Slides []*Slide
}

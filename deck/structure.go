package deck

import (
	"fmt"
	"strings"
)

// Violation describes one element that leaves the canvas.
type Violation struct {
	Slide   int
	Element int
	Kind    Kind
	Box     Box
}

func (v Violation) String() string {
	return fmt.Sprintf("slide %d element %d (%s) at x=%.3f y=%.3f w=%.3f h=%.3f",
		v.Slide, v.Element, v.Kind, v.Box.X, v.Box.Y, v.Box.W, v.Box.H)
}

// Violations lists every element whose box is not inside the canvas.
func (d *Deck) Violations() []Violation {
	var out []Violation
	for _, s := range d.Slides {
		for i, el := range s.Elements {
			if !el.Box.Within(d.Width, d.Height) {
				out = append(out, Violation{Slide: s.Index, Element: i + 1, Kind: el.Kind, Box: el.Box})
			}
		}
	}
	return out
}

// Validate returns a *RenderError wrapping ErrOutOfBounds for the first
// out-of-canvas element, or nil.
func (d *Deck) Validate() error {
	vs := d.Violations()
	if len(vs) == 0 {
		return nil
	}
	first := vs[0]
	return &RenderError{
		Op:      "validate",
		Slide:   first.Slide,
		Element: first.Element,
		Err:     fmt.Errorf("%w (%d violation(s), first %s)", ErrOutOfBounds, len(vs), first),
	}
}

// Structure is the logical shape of a deck, independent of its encoding.
type Structure struct {
	Slides    int
	Elements  []int // per slide
	TableRows []int // per table, in deck order
}

// Structure summarises slide and element counts.
func (d *Deck) Structure() Structure {
	st := Structure{Slides: len(d.Slides), Elements: make([]int, len(d.Slides))}
	for i, s := range d.Slides {
		st.Elements[i] = len(s.Elements)
		for _, el := range s.Elements {
			if el.Kind == KindTable && el.Table != nil {
				st.TableRows = append(st.TableRows, len(el.Table.Rows))
			}
		}
	}
	return st
}

// Count returns how many elements of kind k the slide holds.
func (s *Slide) Count(k Kind) int {
	n := 0
	for _, el := range s.Elements {
		if el.Kind == k {
			n++
		}
	}
	return n
}

// Tables returns the slide's table specs in z-order.
func (s *Slide) Tables() []*TableSpec {
	var out []*TableSpec
	for _, el := range s.Elements {
		if el.Kind == KindTable && el.Table != nil {
			out = append(out, el.Table)
		}
	}
	return out
}

// Texts returns the plain text of every text element, runs joined with
// newlines where a run ends its paragraph.
func (s *Slide) Texts() []string {
	var out []string
	for _, el := range s.Elements {
		if el.Kind != KindText || el.Text == nil {
			continue
		}
		var sb strings.Builder
		for _, r := range el.Text.Runs {
			sb.WriteString(r.Text)
			if r.BreakLine {
				sb.WriteByte('\n')
			}
		}
		if t := strings.TrimSpace(sb.String()); t != "" {
			out = append(out, t)
		}
	}
	return out
}

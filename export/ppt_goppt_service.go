package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/yuyalush/agent-instructions-research/deck"
)

var (
	// ErrUnknownFont marks a font face the renderer was not configured with.
	ErrUnknownFont = errors.New("unknown font face")
	// ErrInvalidColor marks a color that is not six hex digits.
	ErrInvalidColor = errors.New("invalid color")
)

const (
	emuPerInch  = 914400
	emuPerPoint = 12700
)

// DefaultFonts are the faces a PPTXRenderer accepts unless configured otherwise.
var DefaultFonts = []string{
	"Calibri", "Consolas", "Arial", "Segoe UI", "Courier New",
	"Meiryo", "Yu Gothic", "MS Gothic",
}

// PPTXRenderer encodes a deck as an Office Open XML presentation using GoPPT.
type PPTXRenderer struct {
	fonts         map[string]bool
	eastAsianFont string
}

// RendererOption configures a PPTXRenderer.
type RendererOption func(*PPTXRenderer)

// WithFonts replaces the accepted font faces.
func WithFonts(faces ...string) RendererOption {
	return func(r *PPTXRenderer) {
		r.fonts = make(map[string]bool, len(faces))
		for _, f := range faces {
			r.fonts[f] = true
		}
	}
}

// WithEastAsianFont sets the face written for runs containing Japanese or
// other East Asian characters. Empty keeps the element's own face.
func WithEastAsianFont(face string) RendererOption {
	return func(r *PPTXRenderer) { r.eastAsianFont = face }
}

// NewPPTXRenderer creates a renderer accepting DefaultFonts.
func NewPPTXRenderer(opts ...RendererOption) *PPTXRenderer {
	r := &PPTXRenderer{}
	WithFonts(DefaultFonts...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements deck.Renderer.
func (r *PPTXRenderer) Render(ctx context.Context, d *deck.Deck) ([]byte, error) {
	p, err := r.presentation(ctx, d)
	if err != nil {
		return nil, err
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, deck.WrapRenderError("serialize", 0, 0, fmt.Errorf("failed to create PPT writer: %w", err))
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, deck.WrapRenderError("serialize", 0, 0, fmt.Errorf("failed to save PPT: %w", err))
	}
	return buf.Bytes(), nil
}

func (r *PPTXRenderer) presentation(ctx context.Context, d *deck.Deck) (*ppt.Presentation, error) {
	if err := checkLayout(d); err != nil {
		return nil, err
	}

	p := ppt.New()
	// GoPPT starts at 4:3; the deck canvas is 10 x 5.625 in
	p.GetLayout().SetCustomLayout(emu(deck.CanvasWidth), emu(deck.CanvasHeight))
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Author

	for i, s := range d.Slides {
		if err := ctx.Err(); err != nil {
			return nil, deck.WrapRenderError("render", s.Index, 0, err)
		}
		if err := r.validateSlide(s); err != nil {
			return nil, err
		}

		// a new presentation already holds one empty slide
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		r.renderSlide(slide, s)
	}
	return p, nil
}

func checkLayout(d *deck.Deck) error {
	if d.Layout != "" && d.Layout != deck.LayoutWide {
		return deck.WrapRenderError("layout", 0, 0, fmt.Errorf("unsupported layout %q", d.Layout))
	}
	return nil
}

func (r *PPTXRenderer) validateSlide(s *deck.Slide) error {
	if s.Background != "" && !s.Background.Valid() {
		return &deck.RenderError{Op: "validate", Slide: s.Index,
			Err: fmt.Errorf("%w: background %q", ErrInvalidColor, s.Background)}
	}
	for i, el := range s.Elements {
		if err := r.validateElement(el); err != nil {
			return &deck.RenderError{Op: "validate", Slide: s.Index, Element: i + 1, Err: err}
		}
	}
	return nil
}

func (r *PPTXRenderer) validateElement(el deck.Element) error {
	var colors []deck.Color
	switch el.Kind {
	case deck.KindRectangle, deck.KindEllipse:
		if el.Shape == nil {
			return fmt.Errorf("%s element without shape config", el.Kind)
		}
		colors = append(colors, el.Shape.Fill, el.Shape.Line.Color)
		if el.Shape.Shadow != nil {
			colors = append(colors, el.Shape.Shadow.Color)
		}
	case deck.KindText:
		if el.Text == nil {
			return errors.New("text element without text config")
		}
		if err := r.checkFont(el.Text.Font.Face); err != nil {
			return err
		}
		colors = append(colors, el.Text.Font.Color)
		for _, run := range el.Text.Runs {
			colors = append(colors, run.Color)
		}
	case deck.KindTable:
		if el.Table == nil {
			return errors.New("table element without table config")
		}
		if err := r.checkFont(el.Table.Font.Face); err != nil {
			return err
		}
		colors = append(colors, el.Table.Font.Color, el.Table.Fill, el.Table.Border.Color)
		for _, row := range el.Table.Rows {
			for _, c := range row {
				colors = append(colors, c.Color, c.Fill)
				if c.Border != nil {
					colors = append(colors, c.Border.Color)
				}
			}
		}
	default:
		return fmt.Errorf("unsupported element kind %s", el.Kind)
	}

	for _, c := range colors {
		if c != "" && !c.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}
	return nil
}

func (r *PPTXRenderer) checkFont(face string) error {
	if !r.fonts[face] {
		return fmt.Errorf("%w: %q", ErrUnknownFont, face)
	}
	return nil
}

func (r *PPTXRenderer) renderSlide(slide *ppt.Slide, s *deck.Slide) {
	if s.Background != "" {
		slide.SetBackground(solidFill(s.Background))
	}

	for _, el := range s.Elements {
		switch el.Kind {
		case deck.KindRectangle:
			r.addRectangle(slide, el)
		case deck.KindEllipse:
			r.addEllipse(slide, el)
		case deck.KindText:
			r.addText(slide, el)
		case deck.KindTable:
			r.addTable(slide, el)
		}
	}
}

// addRectangle draws a filled rectangle as an empty rich text shape.
func (r *PPTXRenderer) addRectangle(slide *ppt.Slide, el deck.Element) {
	shape := slide.CreateRichTextShape()
	place(shape, el.Box)
	if el.Shape.Fill != "" {
		shape.SetFill(solidFill(el.Shape.Fill))
	}
	if el.Shape.Line.Visible() {
		shape.SetBorder(border(el.Shape.Line))
	}
}

func (r *PPTXRenderer) addEllipse(slide *ppt.Slide, el deck.Element) {
	shape := ppt.NewAutoShape()
	shape.SetAutoShapeType(ppt.AutoShapeEllipse)
	shape.SetPosition(emu(el.Box.X), emu(el.Box.Y))
	shape.SetSize(emu(el.Box.W), emu(el.Box.H))
	if el.Shape.Fill != "" {
		shape.SetSolidFill(pptColor(el.Shape.Fill))
	}
	if el.Shape.Line.Visible() {
		shape.SetBorder(border(el.Shape.Line))
	}
	slide.AddShape(shape)
}

func (r *PPTXRenderer) addText(slide *ppt.Slide, el deck.Element) {
	spec := el.Text
	shape := slide.CreateRichTextShape()
	place(shape, el.Box)
	shape.SetTextAnchor(anchor(spec.VAlign))

	para := shape.GetActiveParagraph()
	styleParagraph(para, spec.Align, spec.Font.Size, spec.LineSpacing)
	for _, run := range spec.Runs {
		if run.Bullet {
			para.SetBullet(ppt.NewBullet().SetCharBullet("•"))
		}
		r.writeRun(para, run.Text, spec.Font, run.Bold, run.Color)
		if run.BreakLine {
			para = shape.CreateParagraph()
			styleParagraph(para, spec.Align, spec.Font.Size, spec.LineSpacing)
		}
	}
}

func (r *PPTXRenderer) addTable(slide *ppt.Slide, el deck.Element) {
	spec := el.Table
	rows, cols := len(spec.Rows), spec.Columns()
	if rows == 0 || cols == 0 {
		return
	}

	table := ppt.NewTableShape(rows, cols)
	table.SetPosition(emu(el.Box.X), emu(el.Box.Y))
	table.SetSize(emu(el.Box.W), emu(el.Box.H))

	for ri, row := range spec.Rows {
		for ci := 0; ci < cols; ci++ {
			cell := table.GetCell(ri, ci)
			var c deck.Cell
			if ci < len(row) {
				c = row[ci]
			}

			fill := spec.Fill
			if c.Fill != "" {
				fill = c.Fill
			}
			if fill != "" {
				cell.SetFill(solidFill(fill))
			}

			// GoPPT writes cell fill and text size only; borders and run
			// styling inside tables reach the PNG export alone
			para := cell.GetParagraphs()[0]
			styleParagraph(para, spec.Align, spec.Font.Size, 0)
			r.writeRun(para, c.Text, spec.Font, c.Bold, c.Color)
		}
	}
	slide.AddShape(table)
}

// writeRun appends text to para, turning embedded newlines into line breaks.
func (r *PPTXRenderer) writeRun(para *ppt.Paragraph, text string, f deck.FontSpec, bold bool, c deck.Color) {
	if c == "" {
		c = f.Color
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			para.CreateBreak()
		}
		if line == "" {
			continue
		}
		font := para.CreateTextRun(line).GetFont().
			SetName(r.faceFor(f.Face, line)).
			SetSize(int(math.Round(f.Size))).
			SetBold(f.Bold || bold)
		if c != "" {
			font.SetColor(pptColor(c))
		}
	}
}

// faceFor picks the configured East Asian face for text that needs it.
func (r *PPTXRenderer) faceFor(face, text string) string {
	if r.eastAsianFont != "" && hasEastAsian(text) {
		return r.eastAsianFont
	}
	return face
}

func hasEastAsian(text string) bool {
	for _, c := range text {
		if unicode.In(c, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			return true
		}
	}
	return false
}

// styleParagraph sets alignment and, for spacing > 0, an exact line pitch
// of size*spacing points. GoPPT takes the pitch in hundredths of a point.
func styleParagraph(para *ppt.Paragraph, a deck.HAlign, size, spacing float64) {
	switch a {
	case deck.AlignLeft:
		para.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalLeft))
	case deck.AlignCenter:
		para.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case deck.AlignRight:
		para.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
	if spacing > 0 {
		para.SetLineSpacing(lineSpacing(size, spacing))
	}
}

func lineSpacing(size, spacing float64) int {
	return int(math.Round(size * spacing * 100))
}

func anchor(v deck.VAlign) ppt.TextAnchorType {
	switch v {
	case deck.VAlignTop:
		return ppt.TextAnchorTop
	case deck.VAlignMiddle:
		return ppt.TextAnchorMiddle
	case deck.VAlignBottom:
		return ppt.TextAnchorBottom
	default:
		return ppt.TextAnchorNone
	}
}

func place(shape *ppt.RichTextShape, b deck.Box) {
	shape.SetOffsetX(emu(b.X)).SetOffsetY(emu(b.Y))
	shape.SetWidth(emu(b.W)).SetHeight(emu(b.H))
}

func emu(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}

func pptColor(c deck.Color) ppt.Color {
	return ppt.NewColor(c.ARGB())
}

func solidFill(c deck.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(pptColor(c))
}

// border converts a point width to the EMU GoPPT writes verbatim.
func border(b deck.Border) *ppt.Border {
	return ppt.NewBorder().
		SetSolidFill(pptColor(b.Color)).
		SetWidth(int(math.Round(b.Width * emuPerPoint)))
}

package slides

import (
	"fmt"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// page binds a slide handle to its builder and its position in the deck.
type page struct {
	b     *deck.Builder
	s     *deck.Slide
	num   int
	total int
}

func newPage(b *deck.Builder, bg deck.Color, num, total int, title string) *page {
	s := b.AddSlide(bg)
	s.Title = title
	return &page{b: b, s: s, num: num, total: total}
}

func (p *page) add(el deck.Element) {
	p.b.AddElement(p.s, el)
}

// bar draws a borderless solid rectangle.
func (p *page) bar(x, y, w, h float64, c deck.Color) {
	p.add(deck.Rect(x, y, w, h, deck.Fill(c), deck.Line(c, 0)))
}

// header draws the full-width title band used by content slides.
func (p *page) header(c deck.Color, title string, size float64) {
	p.bar(0, 0, canvasW, 0.75, c)
	p.add(deck.Text(0.4, 0, 9, 0.75, title, bold(fontTitle, size, white),
		deck.WithVAlign(deck.VAlignMiddle)))
}

// card draws a white panel with a hairline border and soft shadow.
func (p *page) card(x, y, w, h float64) {
	p.add(deck.Rect(x, y, w, h,
		deck.Fill(white), deck.Line(cardLine, 1), deck.WithShadow(cardShadow)))
}

// accentBar draws the thin vertical stripe on a card's left edge.
func (p *page) accentBar(c deck.Color, x, y, h float64) {
	p.bar(x, y, 0.07, h, c)
}

// badge draws a filled label with centred bold text.
func (p *page) badge(x, y, w, h float64, fill, fg deck.Color, label string) {
	p.bar(x, y, w, h, fill)
	p.add(deck.Text(x, y, w, h, label, bold(fontBody, 9.5, fg),
		deck.WithAlign(deck.AlignCenter), deck.WithVAlign(deck.VAlignMiddle)))
}

// heading draws a bold section caption.
func (p *page) heading(x, y, w, h float64, text string, size float64, c deck.Color) {
	p.add(deck.Text(x, y, w, h, text, bold(fontTitle, size, c)))
}

// code draws a dark code panel and its monospace contents.
func (p *page) code(panel deck.Box, text deck.Box, src string, size float64) {
	p.add(deck.Rect(panel.X, panel.Y, panel.W, panel.H, deck.Fill(codeBg), deck.Line(codeLine, 1)))
	p.add(deck.Text(text.X, text.Y, text.W, text.H, src, font(fontCode, size, codeText),
		deck.WithVAlign(deck.VAlignTop)))
}

// footer draws "n / total" in the bottom-right corner.
func (p *page) footer(dark bool) {
	c := textMute
	if dark {
		c = darkMute
	}
	p.add(deck.Text(canvasW-1.0, canvasH-0.35, 0.8, 0.25,
		fmt.Sprintf("%d / %d", p.num, p.total), font(fontBody, 9, c),
		deck.WithAlign(deck.AlignRight)))
}

func box(x, y, w, h float64) deck.Box {
	return deck.Box{X: x, Y: y, W: w, H: h}
}

package deck

import (
	"context"
)

// Renderer performs layout resolution and binary encoding of a finished deck.
type Renderer interface {
	Render(ctx context.Context, d *Deck) ([]byte, error)
}

// Option sets a deck-wide attribute.
type Option func(*Deck)

// WithAuthor sets the document author.
func WithAuthor(author string) Option {
	return func(d *Deck) { d.Author = author }
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(d *Deck) { d.Title = title }
}

// Builder assembles a Deck in a single pass. It must not be used after
// Finalize.
type Builder struct {
	deck   *Deck
	sealed bool
}

// New returns a builder for an empty 16:9 deck.
func New(opts ...Option) *Builder {
	d := &Deck{
		Layout: LayoutWide,
		Width:  CanvasWidth,
		Height: CanvasHeight,
	}
	for _, opt := range opts {
		opt(d)
	}
	return &Builder{deck: d}
}

// AddSlide appends a slide with the given background and returns its handle.
func (b *Builder) AddSlide(background Color) *Slide {
	b.mustBeOpen()
	s := &Slide{
		Index:      len(b.deck.Slides) + 1,
		Background: background,
	}
	b.deck.Slides = append(b.deck.Slides, s)
	return s
}

// AddElement appends el on top of the slide's existing elements.
func (b *Builder) AddElement(s *Slide, el Element) {
	b.mustBeOpen()
	s.Elements = append(s.Elements, el)
}

// Deck returns the deck under construction.
func (b *Builder) Deck() *Deck {
	return b.deck
}

// Finalize checks canvas bounds and hands the deck to r. Any failure is
// returned as a *RenderError; nothing is retried.
func (b *Builder) Finalize(ctx context.Context, r Renderer) ([]byte, error) {
	b.sealed = true
	if err := b.deck.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, WrapRenderError("finalize", 0, 0, err)
	}
	data, err := r.Render(ctx, b.deck)
	if err != nil {
		return nil, WrapRenderError("render", 0, 0, err)
	}
	if len(data) == 0 {
		return nil, &RenderError{Op: "render", Err: ErrEmptyOutput}
	}
	return data, nil
}

func (b *Builder) mustBeOpen() {
	if b.sealed {
		panic("deck: builder used after Finalize")
	}
}

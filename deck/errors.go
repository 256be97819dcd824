package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds marks an element whose box leaves the canvas.
	ErrOutOfBounds = errors.New("element outside canvas bounds")
	// ErrEmptyOutput is returned when a renderer produced no bytes.
	ErrEmptyOutput = errors.New("renderer produced no output")
)

// RenderError is the single failure kind of Finalize. Slide and Element are
// 1-based positions and zero when the failure is not tied to one.
type RenderError struct {
	Op      string
	Slide   int
	Element int
	Err     error
}

// Error formats as "[deck.<op>] slide N element M: cause".
func (e *RenderError) Error() string {
	switch {
	case e.Slide > 0 && e.Element > 0:
		return fmt.Sprintf("[deck.%s] slide %d element %d: %v", e.Op, e.Slide, e.Element, e.Err)
	case e.Slide > 0:
		return fmt.Sprintf("[deck.%s] slide %d: %v", e.Op, e.Slide, e.Err)
	default:
		return fmt.Sprintf("[deck.%s] %v", e.Op, e.Err)
	}
}

// Unwrap supports errors.Is / errors.As on the cause.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// WrapRenderError attaches render context to err. A nil err stays nil and an
// err that already is a *RenderError is returned unchanged.
func WrapRenderError(op string, slide, element int, err error) error {
	if err == nil {
		return nil
	}
	var re *RenderError
	if errors.As(err, &re) {
		return err
	}
	return &RenderError{Op: op, Slide: slide, Element: element, Err: err}
}

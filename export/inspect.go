package export

import (
	"fmt"
	"math"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// Report is what Inspect recovers from a written presentation.
type Report struct {
	Structure deck.Structure
	// Width and Height are the slide size in inches.
	Width, Height float64
	// Backgrounds holds each slide's solid background color, "" if none.
	Backgrounds []deck.Color
	// Texts holds the non-empty paragraphs of each slide's text shapes.
	Texts [][]string
}

// Inspect reads a .pptx file back and summarises its slides and shapes.
func Inspect(path string) (*Report, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	if len(slides) == 0 {
		return nil, fmt.Errorf("PPT file has no slides")
	}

	layout := pres.GetLayout()
	rep := &Report{
		Structure:   deck.Structure{Slides: len(slides), Elements: make([]int, len(slides))},
		Width:       float64(layout.CX) / emuPerInch,
		Height:      float64(layout.CY) / emuPerInch,
		Backgrounds: make([]deck.Color, len(slides)),
		Texts:       make([][]string, len(slides)),
	}
	for i, slide := range slides {
		if bg := slide.GetBackground(); bg != nil && bg.Type == ppt.FillSolid && len(bg.Color.ARGB) == 8 {
			rep.Backgrounds[i] = deck.Color(bg.Color.ARGB[2:])
		}
		shapes := slide.GetShapes()
		rep.Structure.Elements[i] = len(shapes)
		for _, shape := range shapes {
			switch s := shape.(type) {
			case *ppt.RichTextShape:
				rep.Texts[i] = append(rep.Texts[i], paragraphTexts(s.GetParagraphs())...)
			case *ppt.TableShape:
				rep.Structure.TableRows = append(rep.Structure.TableRows, s.GetNumRows())
			}
		}
	}
	return rep, nil
}

func paragraphTexts(paras []*ppt.Paragraph) []string {
	var out []string
	for _, para := range paras {
		var text string
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*ppt.TextRun); ok {
				text += run.GetText()
			}
		}
		text = strings.TrimSpace(text)
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

// Verify compares a read-back report with the deck it was written from:
// one shape per element, the 16:9 canvas and the slide backgrounds.
func Verify(d *deck.Deck, rep *Report) error {
	want := d.Structure()
	got := rep.Structure
	if got.Slides != want.Slides {
		return fmt.Errorf("slide count: got %d, want %d", got.Slides, want.Slides)
	}
	if math.Abs(rep.Width-deck.CanvasWidth) > 0.01 || math.Abs(rep.Height-deck.CanvasHeight) > 0.01 {
		return fmt.Errorf("slide size: got %.3gx%.3g in, want %gx%g in",
			rep.Width, rep.Height, deck.CanvasWidth, deck.CanvasHeight)
	}
	for i, s := range d.Slides {
		if i < len(rep.Backgrounds) && !strings.EqualFold(string(rep.Backgrounds[i]), string(s.Background)) {
			return fmt.Errorf("slide %d background: got %q, want %q", i+1, rep.Backgrounds[i], s.Background)
		}
	}
	for i := range want.Elements {
		if got.Elements[i] != want.Elements[i] {
			return fmt.Errorf("slide %d shape count: got %d, want %d", i+1, got.Elements[i], want.Elements[i])
		}
	}
	if len(got.TableRows) != len(want.TableRows) {
		return fmt.Errorf("table count: got %d, want %d", len(got.TableRows), len(want.TableRows))
	}
	for i := range want.TableRows {
		if got.TableRows[i] != want.TableRows[i] {
			return fmt.Errorf("table %d rows: got %d, want %d", i+1, got.TableRows[i], want.TableRows[i])
		}
	}
	return nil
}

package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuyalush/agent-instructions-research/deck"
	"github.com/yuyalush/agent-instructions-research/slides"
)

func smallDeck(face string) *deck.Builder {
	b := deck.New(deck.WithAuthor("tester"), deck.WithTitle("small"))
	s := b.AddSlide("F0F9FA")
	b.AddElement(s, deck.Rect(0, 0, 10, 0.75, deck.Fill("0D2137"), deck.Line("0D2137", 0)))
	b.AddElement(s, deck.Text(0.4, 0, 9, 0.75, "heading", deck.FontSpec{Face: face, Size: 20, Bold: true, Color: "FFFFFF"},
		deck.WithVAlign(deck.VAlignMiddle)))
	b.AddElement(s, deck.Ellipse(1.3, 1.05, 0.5, 0.5, deck.Fill("02C39A")))
	b.AddElement(s, deck.Table(0.3, 1.8, 9.4, 1.2, []deck.TableRow{
		deck.HeaderRow("028090", "FFFFFF", "a", "b"),
		deck.Row("1", "2"),
	}, deck.TableFont(deck.FontSpec{Face: face, Size: 11, Color: "1A202C"}), deck.CellBorder("CBD5E1", 0.5)))
	return b
}

func TestRenderWellFormedDeck(t *testing.T) {
	data, err := smallDeck("Calibri").Finalize(context.Background(), NewPPTXRenderer())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// OOXML packages are zip archives
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRenderFullDeck(t *testing.T) {
	data, err := slides.New().Finalize(context.Background(), NewPPTXRenderer(WithEastAsianFont("Meiryo")))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRenderUnknownFont(t *testing.T) {
	_, err := smallDeck("Comic Papyrus").Finalize(context.Background(), NewPPTXRenderer())
	require.Error(t, err)

	var re *deck.RenderError
	require.True(t, errors.As(err, &re))
	assert.ErrorIs(t, err, ErrUnknownFont)
	assert.Equal(t, 1, re.Slide)
	assert.Equal(t, 2, re.Element)
}

func TestRenderInvalidColor(t *testing.T) {
	b := deck.New()
	s := b.AddSlide("FFFFFF")
	b.AddElement(s, deck.Rect(0, 0, 1, 1, deck.Fill("teal")))

	_, err := b.Finalize(context.Background(), NewPPTXRenderer())
	var re *deck.RenderError
	require.True(t, errors.As(err, &re))
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, 1, re.Element)
}

func TestRenderInvalidBackground(t *testing.T) {
	b := deck.New()
	b.AddSlide("12345")

	_, err := b.Finalize(context.Background(), NewPPTXRenderer())
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestWithFontsRestrictsFaces(t *testing.T) {
	r := NewPPTXRenderer(WithFonts("Consolas"))
	_, err := smallDeck("Calibri").Finalize(context.Background(), r)
	assert.ErrorIs(t, err, ErrUnknownFont)
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPPTXRenderer().Render(ctx, smallDeck("Calibri").Deck())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInspectReadsBackSlidesAndTables(t *testing.T) {
	b := slides.New()
	data, err := b.Finalize(context.Background(), NewPPTXRenderer())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), slides.OutputFile)
	require.NoError(t, os.WriteFile(path, data, 0644))

	rep, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, slides.TotalPages, rep.Structure.Slides)
	assert.Equal(t, []int{7, 4, 4}, rep.Structure.TableRows)
	assert.Equal(t, b.Deck().Structure().Elements, rep.Structure.Elements)
	assert.InDelta(t, deck.CanvasWidth, rep.Width, 0.001)
	assert.InDelta(t, deck.CanvasHeight, rep.Height, 0.001)
	assert.Len(t, rep.Texts, slides.TotalPages)
	require.NoError(t, Verify(b.Deck(), rep))
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.pptx"))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	d := smallDeck("Calibri").Deck()
	good := func() *Report {
		return &Report{
			Structure:   d.Structure(),
			Width:       deck.CanvasWidth,
			Height:      deck.CanvasHeight,
			Backgrounds: []deck.Color{"f0f9fa"},
		}
	}
	assert.NoError(t, Verify(d, good()))

	short := good()
	short.Structure = deck.Structure{Slides: 0}
	assert.Error(t, Verify(d, short))

	wrongRows := good()
	wrongRows.Structure.TableRows = []int{5}
	assert.Error(t, Verify(d, wrongRows))

	fourThree := good()
	fourThree.Height = 7.5
	assert.ErrorContains(t, Verify(d, fourThree), "slide size")

	noBackground := good()
	noBackground.Backgrounds = []deck.Color{""}
	assert.ErrorContains(t, Verify(d, noBackground), "background")
}

// slidePart returns one part of a written package as text.
func slidePart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func styledDeck() *deck.Builder {
	font := deck.FontSpec{Face: "Calibri", Size: 20, Color: "334155"}
	b := deck.New()
	s := b.AddSlide("F0F9FA")
	b.AddElement(s, deck.Rect(0.5, 0.5, 4, 2, deck.Fill("FFFFFF"), deck.Line("CBD5E1", 1)))
	b.AddElement(s, deck.Ellipse(5, 0.5, 1, 1, deck.Fill("02C39A"), deck.Line("028090", 0.5)))
	b.AddElement(s, deck.Text(0.5, 3, 9, 2, "first line\nsecond line", font, deck.WithLineSpacing(1.5)))
	b.AddElement(s, deck.Text(0.5, 5, 9, 0.5, "日本語の見出し", font))
	return b
}

func TestRenderWritesAttributes(t *testing.T) {
	data, err := styledDeck().Finalize(context.Background(), NewPPTXRenderer(WithEastAsianFont("Meiryo")))
	require.NoError(t, err)

	pres := slidePart(t, data, "ppt/presentation.xml")
	assert.Contains(t, pres, `<p:sldSz cx="9144000" cy="5143500"`)

	slide := slidePart(t, data, "ppt/slides/slide1.xml")
	assert.Contains(t, slide, "<p:bg>")
	assert.Contains(t, slide, `<a:srgbClr val="F0F9FA"/>`)
	// 1 pt and 0.5 pt outlines in EMU
	assert.Contains(t, slide, `<a:ln w="12700">`)
	assert.Contains(t, slide, `<a:ln w="6350">`)
	// 20 pt at 1.5 lines
	assert.Contains(t, slide, `<a:lnSpc><a:spcPts val="3000"/></a:lnSpc>`)
	assert.Contains(t, slide, `sz="2000"`)
	assert.Contains(t, slide, `typeface="Meiryo"`)
	assert.Contains(t, slide, `typeface="Calibri"`)
}

func TestRenderFullDeckAttributes(t *testing.T) {
	data, err := slides.New().Finalize(context.Background(), NewPPTXRenderer())
	require.NoError(t, err)

	for n := 1; n <= slides.TotalPages; n++ {
		slide := slidePart(t, data, fmt.Sprintf("ppt/slides/slide%d.xml", n))
		assert.Contains(t, slide, "<p:bg>", "slide %d", n)
		assert.NotContains(t, slide, `<a:ln w="1">`, "slide %d", n)
	}
	assert.Contains(t, slidePart(t, data, "ppt/slides/slide2.xml"), "<a:lnSpc>")
}

func TestLineSpacing(t *testing.T) {
	assert.Equal(t, 1960, lineSpacing(14, 1.4))
	assert.Equal(t, 1575, lineSpacing(10.5, 1.5))
}

func TestBorderWidthInEMU(t *testing.T) {
	assert.Equal(t, 12700, border(deck.Border{Color: "000000", Width: 1}).Width)
	assert.Equal(t, 6350, border(deck.Border{Color: "000000", Width: 0.5}).Width)
}

func TestFaceFor(t *testing.T) {
	r := NewPPTXRenderer(WithEastAsianFont("Yu Gothic"))
	assert.Equal(t, "Yu Gothic", r.faceFor("Calibri", "AGENTS.md の書き方"))
	assert.Equal(t, "Calibri", r.faceFor("Calibri", "AGENTS.md"))
	assert.Equal(t, "Calibri", NewPPTXRenderer().faceFor("Calibri", "まとめ"))
}

func TestEMU(t *testing.T) {
	assert.Equal(t, int64(914400), emu(1))
	assert.Equal(t, int64(5143500), emu(deck.CanvasHeight))
}

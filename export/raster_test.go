package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yuyalush/agent-instructions-research/deck"
	"github.com/yuyalush/agent-instructions-research/slides"
)

// 100 px per inch keeps coordinates readable
func testRasterizer(t *testing.T) *SlideRasterizer {
	t.Helper()
	rs, err := NewSlideRasterizer(1000)
	require.NoError(t, err)
	return rs
}

func opaque(c deck.Color) color.RGBA {
	return rgba(c, 1)
}

func TestRasterizerSize(t *testing.T) {
	rs := testRasterizer(t)
	w, h := rs.Size()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 563, h)

	_, err := NewSlideRasterizer(0)
	assert.Error(t, err)
}

func TestRasterizeShapes(t *testing.T) {
	b := deck.New()
	s := b.AddSlide("F0F9FA")
	b.AddElement(s, deck.Rect(1, 1, 2, 1, deck.Fill("FFFFFF"), deck.Line("CBD5E1", 3)))
	b.AddElement(s, deck.Ellipse(5, 1, 2, 2, deck.Fill("02C39A")))

	img := testRasterizer(t).Rasterize(s)

	assert.Equal(t, opaque("F0F9FA"), img.RGBAAt(10, 10), "background")
	assert.Equal(t, opaque("FFFFFF"), img.RGBAAt(200, 150), "rectangle fill")
	assert.Equal(t, opaque("CBD5E1"), img.RGBAAt(101, 150), "rectangle outline")
	assert.Equal(t, opaque("02C39A"), img.RGBAAt(600, 200), "ellipse centre")
	// bounding box corner lies outside the ellipse
	assert.Equal(t, opaque("F0F9FA"), img.RGBAAt(502, 102), "ellipse corner")
}

func TestRasterizeShadowFallsOutsideShape(t *testing.T) {
	b := deck.New()
	s := b.AddSlide("FFFFFF")
	b.AddElement(s, deck.Rect(1, 1, 2, 1, deck.Fill("FFFFFF"),
		deck.WithShadow(deck.Shadow{Color: "000000", Offset: 7.2, Angle: 90, Opacity: 0.5})))

	img := testRasterizer(t).Rasterize(s)

	// 7.2 pt straight down is 10 px below the bottom edge
	below := img.RGBAAt(200, 205)
	assert.Less(t, below.R, uint8(255))
	assert.Equal(t, opaque("FFFFFF"), img.RGBAAt(200, 150))
	assert.Equal(t, opaque("FFFFFF"), img.RGBAAt(200, 95))
}

func inkInside(img *image.RGBA, r image.Rectangle, bg color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestRasterizeTextAlignment(t *testing.T) {
	font := deck.FontSpec{Face: "Calibri", Size: 24, Color: "0D2137"}
	b := deck.New()
	s := b.AddSlide("FFFFFF")
	b.AddElement(s, deck.Text(0, 0, 10, 1, "left", font))
	b.AddElement(s, deck.Text(0, 2, 10, 1, "right", font, deck.WithAlign(deck.AlignRight)))

	img := testRasterizer(t).Rasterize(s)
	white := opaque("FFFFFF")

	assert.Positive(t, inkInside(img, image.Rect(0, 0, 300, 100), white))
	assert.Zero(t, inkInside(img, image.Rect(700, 0, 1000, 100), white))
	assert.Zero(t, inkInside(img, image.Rect(0, 200, 300, 300), white))
	assert.Positive(t, inkInside(img, image.Rect(700, 200, 1000, 300), white))
}

func TestRasterizeTableUsesColumnWidths(t *testing.T) {
	b := deck.New()
	s := b.AddSlide("FFFFFF")
	b.AddElement(s, deck.Table(1, 1, 6, 1, []deck.TableRow{
		deck.HeaderRow("028090", "FFFFFF", "a", "b"),
		deck.Row("", ""),
	}, deck.TableFont(deck.FontSpec{Face: "Calibri", Size: 11, Color: "1A202C"}),
		deck.ColumnWidths(1, 5), deck.CellBorder("CBD5E1", 0.75)))

	img := testRasterizer(t).Rasterize(s)

	// header fill spans both columns, border sits at the 1 in column edge
	assert.Equal(t, opaque("028090"), img.RGBAAt(190, 145))
	assert.Equal(t, opaque("028090"), img.RGBAAt(690, 145))
	assert.Equal(t, opaque("CBD5E1"), img.RGBAAt(200, 175))
	assert.Equal(t, opaque("FFFFFF"), img.RGBAAt(400, 175))
}

func TestWrapBreaksAtSpacesAndRunes(t *testing.T) {
	fs, err := newFontSet(nil)
	require.NoError(t, err)

	p := paragraphs([]deck.TextRun{{Text: "alpha beta a b"}}, deck.FontSpec{Color: "000000"})[0]
	width := float64(fs.measure("alpha beta", 20)) / 64
	lines := fs.wrap(p, 20, width+1, 0)
	require.Len(t, lines, 2)
	assert.Equal(t, "alpha beta", lineText(lines[0]))
	assert.Equal(t, "a b", lineText(lines[1]))
	assert.True(t, lines[0].first)
	assert.False(t, lines[1].first)

	hard := paragraphs([]deck.TextRun{{Text: "one\ntwo"}}, deck.FontSpec{})[0]
	assert.Len(t, fs.wrap(hard, 20, 1000, 0), 2)
}

func lineText(l textLine) string {
	var sb strings.Builder
	for _, r := range l.runes {
		sb.WriteRune(r.r)
	}
	return sb.String()
}

func TestWrapKeepsEveryRune(t *testing.T) {
	fs, err := newFontSet(nil)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z ]{0,60}`).Draw(t, "text")
		width := rapid.Float64Range(10, 400).Draw(t, "width")

		p := paragraphs([]deck.TextRun{{Text: text}}, deck.FontSpec{})[0]
		var joined strings.Builder
		for _, l := range fs.wrap(p, 16, width, 0) {
			joined.WriteString(lineText(l))
		}
		want := strings.ReplaceAll(text, " ", "")
		got := strings.ReplaceAll(joined.String(), " ", "")
		if got != want {
			t.Fatalf("wrap lost text: got %q, want %q", got, want)
		}
	})
}

func TestParagraphsSplitOnBreakLine(t *testing.T) {
	paras := paragraphs(deck.Bullets([]string{"one", "two", "three"}), deck.FontSpec{Color: "000000"})
	require.Len(t, paras, 3)
	for _, p := range paras {
		assert.True(t, p.bullet)
	}
}

func TestRasterizeFullDeck(t *testing.T) {
	rs, err := NewSlideRasterizer(320)
	require.NoError(t, err)
	for _, s := range slides.New().Deck().Slides {
		img := rs.Rasterize(s)
		assert.Equal(t, image.Rect(0, 0, 320, 180), img.Bounds())
	}
}

func TestLoadFontFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0644))
	_, err := loadFontFile(path)
	assert.Error(t, err)

	// a bad candidate is skipped rather than failing the set
	fs, err := newFontSet([]string{path})
	require.NoError(t, err)
	assert.NotContains(t, fs.fonts, roleSystem)
}

func TestFontCandidates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ttf", "b.TTC", "c.otf", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.ttf"), 0755))

	assert.Equal(t, []string{filepath.Join(dir, "a.ttf")}, fontCandidates([]string{dir}, ".ttf"))
	assert.Len(t, fontCandidates([]string{dir, filepath.Join(dir, "missing")}, ".ttf", ".otf", ".ttc"), 3)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x02, G: 0x80, B: 0x90, A: 0xFF}, rgba("028090", 1))
	assert.Equal(t, color.RGBA{R: 0x7F, A: 0x7F}, rgba("FF0000", 0.5))
	assert.Equal(t, color.RGBA{A: 0xFF}, rgba("", 1))
}

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// Text box insets in inches, the OOXML defaults
const (
	insetX = 0.1
	insetY = 0.05

	defaultLinePitch = 1.2
	bulletPrefix     = "• "
)

// rasterFonts are tried after DefaultNotesFonts. GoPDF2 cannot embed
// collections, so .ttc files only serve the rasterizer.
var rasterFonts = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
}

// SlideRasterizer draws slides straight from the deck model. Latin text uses
// the Go fonts; other scripts use the first system font that loads.
// It is not safe for concurrent use.
type SlideRasterizer struct {
	width, height int
	scale         float64 // pixels per inch
	fonts         *fontSet
}

// NewSlideRasterizer creates a rasterizer producing images width pixels wide.
// fontPaths are candidate TrueType, OpenType or collection files.
func NewSlideRasterizer(width int, fontPaths ...string) (*SlideRasterizer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid image width %d", width)
	}
	fonts, err := newFontSet(fontPaths)
	if err != nil {
		return nil, err
	}
	scale := float64(width) / deck.CanvasWidth
	return &SlideRasterizer{
		width:  width,
		height: int(math.Round(deck.CanvasHeight * scale)),
		scale:  scale,
		fonts:  fonts,
	}, nil
}

// Size returns the image dimensions in pixels.
func (rs *SlideRasterizer) Size() (width, height int) {
	return rs.width, rs.height
}

// Rasterize draws s in z-order onto a new image.
func (rs *SlideRasterizer) Rasterize(s *deck.Slide) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rs.width, rs.height))
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if s.Background != "" {
		bg = rgba(s.Background, 1)
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, el := range s.Elements {
		switch el.Kind {
		case deck.KindRectangle, deck.KindEllipse:
			rs.drawShape(img, el)
		case deck.KindText:
			t := el.Text
			rs.drawText(img, el.Box, t.Runs, t.Font, t.Align, t.VAlign, t.LineSpacing)
		case deck.KindTable:
			rs.drawTable(img, el.Box, el.Table)
		}
	}
	return img
}

func (rs *SlideRasterizer) rect(b deck.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X*rs.scale)), int(math.Round(b.Y*rs.scale)),
		int(math.Round((b.X+b.W)*rs.scale)), int(math.Round((b.Y+b.H)*rs.scale)),
	)
}

// px converts points to pixels.
func (rs *SlideRasterizer) px(pt float64) float64 {
	return pt * rs.scale / 72
}

func (rs *SlideRasterizer) drawShape(img *image.RGBA, el deck.Element) {
	r := rs.rect(el.Box)
	ellipse := el.Kind == deck.KindEllipse
	spec := el.Shape

	if sh := spec.Shadow; sh != nil && sh.Color != "" {
		rs.drawShadow(img, r, ellipse, *sh)
	}
	if spec.Fill != "" {
		fillArea(img, r, ellipse, rgba(spec.Fill, 1))
	}
	if spec.Line.Visible() {
		w := math.Max(1, math.Round(rs.px(spec.Line.Width)))
		strokeArea(img, r, ellipse, w, rgba(spec.Line.Color, 1))
	}
}

// drawShadow approximates the blur with stacked layers shrinking from
// blur/2 outside the offset shape to blur/2 inside it.
func (rs *SlideRasterizer) drawShadow(img *image.RGBA, r image.Rectangle, ellipse bool, sh deck.Shadow) {
	angle := float64(sh.Angle) * math.Pi / 180
	off := rs.px(sh.Offset)
	r = r.Add(image.Pt(int(math.Round(off*math.Cos(angle))), int(math.Round(off*math.Sin(angle)))))

	blur := rs.px(sh.Blur)
	layers := int(math.Min(6, math.Max(1, math.Round(blur/2))))
	c := rgba(sh.Color, sh.Opacity/float64(layers))
	for i := 0; i < layers; i++ {
		grow := 0
		if layers > 1 {
			grow = int(math.Round(blur/2 - blur*float64(i)/float64(layers-1)))
		}
		fillArea(img, r.Inset(-grow), ellipse, c)
	}
}

func fillArea(img *image.RGBA, r image.Rectangle, ellipse bool, c color.RGBA) {
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	if !ellipse {
		draw.Draw(img, r, src, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(img, r, src, image.Point{}, ellipseMask(r, -1), image.Point{}, draw.Over)
}

func strokeArea(img *image.RGBA, r image.Rectangle, ellipse bool, width float64, c color.RGBA) {
	src := image.NewUniform(c)
	if ellipse {
		draw.DrawMask(img, r, src, image.Point{}, ellipseMask(r, width), image.Point{}, draw.Over)
		return
	}
	w := int(width)
	for _, side := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w),
		image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w),
		image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w),
	} {
		draw.Draw(img, side.Intersect(r), src, image.Point{}, draw.Over)
	}
}

// ellipseMask covers the ellipse inscribed in r. A ring >= 0 keeps only a
// band that many pixels wide inside the edge. Coverage is sampled 4x4 per
// pixel.
func ellipseMask(r image.Rectangle, ring float64) *image.Alpha {
	mask := image.NewAlpha(r)
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return mask
	}

	inside := func(x, y, rx, ry float64) bool {
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1
	}
	const n = 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			hits := 0
			for sy := 0; sy < n; sy++ {
				for sx := 0; sx < n; sx++ {
					fx := float64(x) + (float64(sx)+0.5)/n
					fy := float64(y) + (float64(sy)+0.5)/n
					if !inside(fx, fy, rx, ry) {
						continue
					}
					if ring >= 0 && rx > ring && ry > ring && inside(fx, fy, rx-ring, ry-ring) {
						continue
					}
					hits++
				}
			}
			mask.SetAlpha(x, y, color.Alpha{A: uint8(hits * 255 / (n * n))})
		}
	}
	return mask
}

func (rs *SlideRasterizer) drawTable(img *image.RGBA, b deck.Box, t *deck.TableSpec) {
	rows, cols := len(t.Rows), t.Columns()
	if rows == 0 || cols == 0 {
		return
	}

	widths := t.ColW
	if len(widths) != cols {
		widths = make([]float64, cols)
		for i := range widths {
			widths[i] = b.W / float64(cols)
		}
	}
	rowH := t.RowH
	if rowH <= 0 {
		rowH = b.H / float64(rows)
	}

	y := b.Y
	for _, row := range t.Rows {
		x := b.X
		for ci, w := range widths {
			cell := deck.Box{X: x, Y: y, W: w, H: rowH}
			x += w
			var c deck.Cell
			if ci < len(row) {
				c = row[ci]
			}

			fill := t.Fill
			if c.Fill != "" {
				fill = c.Fill
			}
			r := rs.rect(cell)
			if fill != "" {
				fillArea(img, r, false, rgba(fill, 1))
			}
			run := c.TextRun
			run.Bullet, run.BreakLine = false, false
			rs.drawText(img, cell, []deck.TextRun{run}, t.Font, t.Align, t.VAlign, 0)

			line := t.Border
			if c.Border != nil {
				line = *c.Border
			}
			if line.Visible() {
				strokeArea(img, r, false, math.Max(1, math.Round(rs.px(line.Width))), rgba(line.Color, 1))
			}
		}
		y += rowH
	}
}

type styledRune struct {
	r     rune
	bold  bool
	color color.RGBA
}

type paragraph struct {
	runes  []styledRune // '\n' is a line break inside the paragraph
	bullet bool
}

type textLine struct {
	runes  []styledRune
	width  fixed.Int26_6
	bullet bool
	first  bool // first line of its paragraph
}

// paragraphs splits runs the same way the PPTX writer does: BreakLine ends a
// paragraph, embedded newlines break lines within one.
func paragraphs(runs []deck.TextRun, f deck.FontSpec) []paragraph {
	paras := []paragraph{{}}
	for _, run := range runs {
		cur := &paras[len(paras)-1]
		if run.Bullet {
			cur.bullet = true
		}
		c := run.Color
		if c == "" {
			c = f.Color
		}
		col := rgba(c, 1)
		for _, r := range run.Text {
			cur.runes = append(cur.runes, styledRune{r: r, bold: f.Bold || run.Bold, color: col})
		}
		if run.BreakLine {
			paras = append(paras, paragraph{})
		}
	}
	return paras
}

func (rs *SlideRasterizer) drawText(img *image.RGBA, b deck.Box, runs []deck.TextRun, f deck.FontSpec, align deck.HAlign, valign deck.VAlign, spacing float64) {
	size := rs.px(f.Size)
	if size <= 0 {
		return
	}
	if spacing <= 0 {
		spacing = defaultLinePitch
	}
	pitch := size * spacing
	left := (b.X + insetX) * rs.scale
	width := (b.W - 2*insetX) * rs.scale
	indent := rs.fonts.measure(bulletPrefix, size)

	var lines []textLine
	for _, p := range paragraphs(runs, f) {
		lines = append(lines, rs.fonts.wrap(p, size, width, indent)...)
	}

	top := (b.Y + insetY) * rs.scale
	free := (b.H-2*insetY)*rs.scale - pitch*float64(len(lines))
	switch valign {
	case deck.VAlignMiddle:
		top += free / 2
	case deck.VAlignBottom:
		top += free
	}

	m := rs.fonts.face(roleRegular, size).Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64

	for i, l := range lines {
		baseline := top + float64(i)*pitch + (pitch-ascent-descent)/2 + ascent
		x := left
		avail := width
		if l.bullet {
			x += float64(indent) / 64
			avail -= float64(indent) / 64
		}
		lw := float64(l.width) / 64
		switch align {
		case deck.AlignCenter:
			x += (avail - lw) / 2
		case deck.AlignRight:
			x += avail - lw
		}

		dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(baseline * 64)}
		if l.bullet && l.first && len(l.runes) > 0 {
			rs.fonts.draw(img, fixed.Point26_6{X: fixed.Int26_6(left * 64), Y: dot.Y},
				styledRune{r: '•', color: l.runes[0].color}, size)
		}
		for _, r := range l.runes {
			dot.X += rs.fonts.draw(img, dot, r, size)
		}
	}
}

type fontRole int

const (
	roleRegular fontRole = iota
	roleBold
	roleSystem
)

type faceKey struct {
	role fontRole
	size fixed.Int26_6
}

// fontSet resolves each rune against the Go fonts first and the system font
// second, caching one face per role and pixel size.
type fontSet struct {
	fonts map[fontRole]*opentype.Font
	faces map[faceKey]font.Face
}

func newFontSet(paths []string) (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go bold font: %w", err)
	}

	fs := &fontSet{
		fonts: map[fontRole]*opentype.Font{roleRegular: regular, roleBold: bold},
		faces: make(map[faceKey]font.Face),
	}
	for _, p := range paths {
		if f, err := loadFontFile(p); err == nil {
			fs.fonts[roleSystem] = f
			break
		}
	}
	return fs, nil
}

func loadFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		c, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return c.Font(0)
	}
	return opentype.Parse(data)
}

func (fs *fontSet) face(role fontRole, px float64) font.Face {
	key := faceKey{role: role, size: fixed.Int26_6(px * 64)}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(fs.fonts[role], &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// NewFace only fails on bad options
		panic(err)
	}
	fs.faces[key] = f
	return f
}

// pick returns the face for r and whether bold must be faked by overdrawing.
func (fs *fontSet) pick(r rune, px float64, bold bool) (font.Face, bool) {
	role := roleRegular
	if bold {
		role = roleBold
	}
	latin := fs.face(role, px)
	if _, ok := latin.GlyphAdvance(r); ok {
		return latin, false
	}
	if _, ok := fs.fonts[roleSystem]; ok {
		sys := fs.face(roleSystem, px)
		if _, ok := sys.GlyphAdvance(r); ok {
			return sys, bold
		}
	}
	return latin, false
}

func (fs *fontSet) advance(r styledRune, px float64) fixed.Int26_6 {
	f, _ := fs.pick(r.r, px, r.bold)
	adv, _ := f.GlyphAdvance(r.r)
	return adv
}

func (fs *fontSet) measure(s string, px float64) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, r := range s {
		w += fs.advance(styledRune{r: r}, px)
	}
	return w
}

func (fs *fontSet) draw(img *image.RGBA, dot fixed.Point26_6, r styledRune, px float64) fixed.Int26_6 {
	f, fake := fs.pick(r.r, px, r.bold)
	d := font.Drawer{Dst: img, Src: image.NewUniform(r.color), Face: f, Dot: dot}
	d.DrawString(string(r.r))
	if fake {
		d.Dot = dot.Add(fixed.P(1, 0))
		d.DrawString(string(r.r))
	}
	adv, _ := f.GlyphAdvance(r.r)
	return adv
}

// wrap breaks p into lines no wider than width pixels, keeping ASCII words
// whole where possible and breaking anywhere else.
func (fs *fontSet) wrap(p paragraph, px, width float64, indent fixed.Int26_6) []textLine {
	limit := fixed.Int26_6(width * 64)
	if p.bullet {
		limit -= indent
	}

	var lines []textLine
	emit := func(rs []styledRune) {
		for len(rs) > 0 && rs[len(rs)-1].r == ' ' {
			rs = rs[:len(rs)-1]
		}
		var w fixed.Int26_6
		for _, r := range rs {
			w += fs.advance(r, px)
		}
		lines = append(lines, textLine{runes: rs, width: w, bullet: p.bullet, first: len(lines) == 0})
	}

	var cur []styledRune
	var w fixed.Int26_6
	for _, r := range p.runes {
		if r.r == '\n' {
			emit(cur)
			cur, w = nil, 0
			continue
		}
		adv := fs.advance(r, px)
		if w+adv > limit && len(cur) > 0 && r.r != ' ' {
			cut := len(cur)
			if sp := lastSpace(cur); sp > 0 {
				cut = sp + 1
			}
			emit(cur[:cut])
			cur = append([]styledRune(nil), cur[cut:]...)
			w = 0
			for _, c := range cur {
				w += fs.advance(c, px)
			}
		}
		cur = append(cur, r)
		w += adv
	}
	emit(cur)
	return lines
}

func lastSpace(rs []styledRune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i].r == ' ' {
			return i
		}
	}
	return -1
}

// rgba parses a six digit hex color with the given opacity.
func rgba(c deck.Color, opacity float64) color.RGBA {
	v, err := strconv.ParseUint(string(c), 16, 32)
	if err != nil || len(c) != 6 {
		return color.RGBA{A: 255}
	}
	a := math.Max(0, math.Min(1, opacity))
	// premultiplied, as image.RGBA expects
	return color.RGBA{
		R: uint8(float64(v>>16&0xFF) * a),
		G: uint8(float64(v>>8&0xFF) * a),
		B: uint8(float64(v&0xFF) * a),
		A: uint8(255 * a),
	}
}

// fontCandidates lists files with the given extensions in dirs, in
// directory order.
func fontCandidates(dirs []string, exts ...string) []string {
	var out []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			for _, ext := range exts {
				if strings.EqualFold(filepath.Ext(e.Name()), ext) {
					out = append(out, filepath.Join(dir, e.Name()))
					break
				}
			}
		}
	}
	return out
}

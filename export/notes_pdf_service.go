package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	gopdf "github.com/VantageDataChat/GoPDF2"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// ErrNoNotesFont is returned when none of the candidate TrueType fonts loads.
var ErrNoNotesFont = errors.New("no usable font for notes PDF")

// A4 in points
const (
	notesPageWidth    = 595.28
	notesPageHeight   = 841.89
	notesMargin       = 45.0
	notesContentWidth = notesPageWidth - 2*notesMargin

	notesFontTitle   = 18.0
	notesFontHeading = 13.0
	notesFontBody    = 10.5
	notesFontFooter  = 8.0

	notesLineTitle   = 28.0
	notesLineHeading = 20.0
	notesLineBody    = 15.0
)

// DefaultNotesFonts are tried in order after any configured font
// directories. They cover Japanese glyphs on Windows, Linux and macOS.
var DefaultNotesFonts = []string{
	`C:\Windows\Fonts\meiryo.ttc`,
	`C:\Windows\Fonts\YuGothM.ttc`,
	`C:\Windows\Fonts\msgothic.ttc`,
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/opentype/ipafont-gothic/ipagp.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoPGothic.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansJP-Regular.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
}

// NotesPDFService writes the text of every slide as a reading copy using
// GoPDF2, which embeds a TrueType font so Japanese text renders.
type NotesPDFService struct {
	fontPaths []string
}

// NewNotesPDFService creates a notes service. TrueType files found in
// fontDirs are tried before DefaultNotesFonts.
func NewNotesPDFService(fontDirs ...string) *NotesPDFService {
	paths := fontCandidates(fontDirs, ".ttf")
	return &NotesPDFService{fontPaths: append(paths, DefaultNotesFonts...)}
}

// WithNotesFonts replaces the candidate font files.
func (s *NotesPDFService) WithNotesFonts(paths ...string) *NotesPDFService {
	s.fontPaths = paths
	return s
}

// Export returns the notes as PDF bytes.
func (s *NotesPDFService) Export(d *deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	fontName, err := s.loadFont(&pdf)
	if err != nil {
		return nil, err
	}

	w := &notesWriter{pdf: &pdf, font: fontName, y: notesMargin, page: 1}
	if err := w.title(d.Title, d.Author); err != nil {
		return nil, err
	}
	for _, sl := range d.Slides {
		if err := w.slide(sl, len(d.Slides)); err != nil {
			return nil, fmt.Errorf("failed to write notes for slide %d: %w", sl.Index, err)
		}
	}
	w.footer()

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *NotesPDFService) loadFont(pdf *gopdf.GoPdf) (string, error) {
	for i, path := range s.fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		name := fmt.Sprintf("notes%d", i)
		if err := pdf.AddTTFFont(name, path); err == nil {
			return name, nil
		}
	}
	return "", ErrNoNotesFont
}

type notesWriter struct {
	pdf  *gopdf.GoPdf
	font string
	y    float64
	page int
}

func (w *notesWriter) breakIfNeeded(height float64) {
	if w.y+height > notesPageHeight-notesMargin {
		w.footer()
		w.pdf.AddPage()
		w.y = notesMargin
	}
}

func (w *notesWriter) line(text string, size, height float64, r, g, b uint8) error {
	if err := w.pdf.SetFont(w.font, "", size); err != nil {
		return fmt.Errorf("failed to set font: %w", err)
	}
	w.pdf.SetTextColor(r, g, b)

	wrapped, err := wrapText(text, notesContentWidth, w.pdf.MeasureTextWidth)
	if err != nil {
		return err
	}
	for _, l := range wrapped {
		w.breakIfNeeded(height)
		w.pdf.SetX(notesMargin)
		w.pdf.SetY(w.y)
		if err := w.pdf.Cell(nil, l); err != nil {
			return err
		}
		w.y += height
	}
	return nil
}

func (w *notesWriter) title(title, author string) error {
	w.pdf.SetFillColor(2, 128, 144)
	w.pdf.RectFromUpperLeftWithStyle(0, 0, notesPageWidth, 12, "F")

	if err := w.line(title, notesFontTitle, notesLineTitle, 13, 33, 55); err != nil {
		return err
	}
	if err := w.line(author, notesFontBody, notesLineBody, 100, 116, 139); err != nil {
		return err
	}
	w.y += notesLineBody
	return nil
}

func (w *notesWriter) slide(sl *deck.Slide, total int) error {
	w.breakIfNeeded(notesLineHeading + 2*notesLineBody)
	heading := fmt.Sprintf("%d. %s", sl.Index, sl.Title)
	if err := w.line(heading, notesFontHeading, notesLineHeading, 2, 128, 144); err != nil {
		return err
	}

	w.pdf.SetStrokeColor(226, 232, 240)
	w.pdf.Line(notesMargin, w.y-4, notesPageWidth-notesMargin, w.y-4)

	for _, t := range sl.Texts() {
		if t == sl.Title || isPageNumber(t, sl.Index, total) {
			continue
		}
		for _, l := range strings.Split(t, "\n") {
			l = strings.TrimSpace(l)
			if l == "" {
				continue
			}
			if err := w.line(l, notesFontBody, notesLineBody, 51, 65, 85); err != nil {
				return err
			}
		}
	}

	for _, tbl := range sl.Tables() {
		for _, row := range tbl.Rows {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				cells = append(cells, strings.ReplaceAll(c.Text, "\n", " "))
			}
			if err := w.line(strings.Join(cells, " | "), notesFontBody, notesLineBody, 51, 65, 85); err != nil {
				return err
			}
		}
	}
	w.y += notesLineBody
	return nil
}

// footer numbers the current page. Pages cannot be revisited once added,
// so the footer is written before each page break.
func (w *notesWriter) footer() {
	if err := w.pdf.SetFont(w.font, "", notesFontFooter); err != nil {
		return
	}
	w.pdf.SetTextColor(148, 163, 184)
	text := fmt.Sprintf("- %d -", w.page)
	width, _ := w.pdf.MeasureTextWidth(text)
	w.pdf.SetX((notesPageWidth - width) / 2)
	w.pdf.SetY(notesPageHeight - notesMargin + 15)
	w.pdf.Cell(nil, text)
	w.page++
}

// wrapText breaks text into lines no wider than width. Japanese has no word
// spaces, so lines break between runes; ASCII words are kept whole when they
// fit on a line of their own.
func wrapText(text string, width float64, measure func(string) (float64, error)) ([]string, error) {
	var lines []string
	var cur []rune
	lastSpace := -1

	for _, r := range text {
		cur = append(cur, r)
		if r == ' ' {
			lastSpace = len(cur) - 1
		}
		w, err := measure(string(cur))
		if err != nil {
			return nil, err
		}
		if w <= width || len(cur) == 1 {
			continue
		}

		cut := len(cur) - 1
		if lastSpace > 0 {
			cut = lastSpace + 1
		}
		lines = append(lines, strings.TrimRight(string(cur[:cut]), " "))
		cur = append([]rune(nil), cur[cut:]...)
		lastSpace = -1
		for i, c := range cur {
			if c == ' ' {
				lastSpace = i
			}
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, string(cur))
	}
	return lines, nil
}

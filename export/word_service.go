package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// HandoutDocService writes a speaker handout document using GoWord (pure Go):
// a heading per slide followed by the slide's text and tables.
type HandoutDocService struct{}

// NewHandoutDocService creates a new handout document service
func NewHandoutDocService() *HandoutDocService {
	return &HandoutDocService{}
}

const handoutTableWidth = 9000

// Export returns the handout as .docx bytes.
func (s *HandoutDocService) Export(d *deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Author

	sec := doc.AddSection()
	sec.AddTitle(d.Title, 1)
	sec.AddText(d.Author,
		&style.FontStyle{Size: 10, Color: "64748B"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddTextBreak(1)

	addTable := func(t *deck.TableSpec) {
		cols := t.Columns()
		if cols == 0 {
			return
		}

		// keep the slide's column proportions
		widths := make([]int, cols)
		var total float64
		for _, w := range t.ColW {
			total += w
		}
		for i := range widths {
			if len(t.ColW) == cols && total > 0 {
				widths[i] = int(float64(handoutTableWidth) * t.ColW[i] / total)
			} else {
				widths[i] = handoutTableWidth / cols
			}
		}

		ts := &style.TableStyle{Width: handoutTableWidth, Alignment: "center"}
		ts.SetAllBorders("single", 4, "CBD5E1")
		tbl := sec.AddTable(ts)
		tbl.Grid = widths

		for ri, row := range t.Rows {
			var rs *style.RowStyle
			if ri == 0 {
				rs = &style.RowStyle{IsHeader: true}
			}
			r := tbl.AddRow(0, rs)
			for ci := 0; ci < cols; ci++ {
				var c deck.Cell
				if ci < len(row) {
					c = row[ci]
				}
				var cs *style.CellStyle
				if c.Fill != "" {
					cs = &style.CellStyle{Shading: &style.Shading{Fill: string(c.Fill)}}
				}
				fs := &style.FontStyle{Size: 9, Bold: c.Bold}
				if c.Color != "" {
					fs.Color = string(c.Color)
				}
				r.AddCell(widths[ci], cs).AddText(c.Text, fs, nil)
			}
		}
	}

	for _, sl := range d.Slides {
		sec.AddText(fmt.Sprintf("%d. %s", sl.Index, sl.Title),
			&style.FontStyle{Bold: true, Size: 14, Color: "028090"},
			&style.ParagraphStyle{SpaceAfter: 120})

		for _, t := range sl.Texts() {
			if t == sl.Title || isPageNumber(t, sl.Index, len(d.Slides)) {
				continue
			}
			for _, line := range strings.Split(t, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				sec.AddText(line,
					&style.FontStyle{Size: 11, Color: "334155"},
					nil)
			}
		}

		for _, t := range sl.Tables() {
			addTable(t)
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

func isPageNumber(t string, n, total int) bool {
	return t == fmt.Sprintf("%d / %d", n, total)
}

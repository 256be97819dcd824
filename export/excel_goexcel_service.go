package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// OutlineService writes a deck outline workbook using GoExcel (pure Go):
// one row per slide on the first sheet and one row per table on the second.
type OutlineService struct{}

// NewOutlineService creates a new outline service
func NewOutlineService() *OutlineService {
	return &OutlineService{}
}

var outlineColumns = []string{"#", "Title", "Background", "Rectangles", "Ellipses", "Texts", "Tables", "Elements"}

var tableColumns = []string{"Slide", "Table", "Rows", "Columns", "Column widths (in)", "Row height (in)", "Header"}

// Export returns the outline as .xlsx bytes.
func (s *OutlineService) Export(d *deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("no slides to export")
	}

	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  "Calibri",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "028090",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: "Calibri",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "CBD5E1"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "CBD5E1"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "CBD5E1"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "CBD5E1"},
		})

	writeHeader := func(ws *gospreadsheet.Worksheet, titles []string) {
		for i, title := range titles {
			cellName, _ := gospreadsheet.CellName(0, i)
			ws.SetCellValue(cellName, title)
			ws.SetCellStyle(cellName, headerStyle)

			width := float64(len([]rune(title))) * 1.5
			if width < 10 {
				width = 10
			}
			ws.SetColumnWidth(i, width)
		}
		ws.SetRowHeight(0, 22)
	}

	writeRow := func(ws *gospreadsheet.Worksheet, row int, values []interface{}) {
		for i, v := range values {
			cellName, _ := gospreadsheet.CellName(row, i)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, dataStyle)
		}
		ws.SetRowHeight(row, 18)
	}

	ws := wb.GetActiveSheet()
	ws.SetTitle("Slides")
	writeHeader(ws, outlineColumns)
	for i, sl := range d.Slides {
		row := i + 1
		values := []interface{}{
			sl.Index,
			sl.Title,
			string(sl.Background),
			sl.Count(deck.KindRectangle),
			sl.Count(deck.KindEllipse),
			sl.Count(deck.KindText),
			sl.Count(deck.KindTable),
			len(sl.Elements),
		}
		writeRow(ws, row, values)
	}
	ws.SetColumnWidth(1, 48)
	ws.FreezePane("A2")

	tables, err := wb.AddSheet("Tables")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet Tables: %w", err)
	}
	writeHeader(tables, tableColumns)
	row := 1
	for _, sl := range d.Slides {
		for ti, t := range sl.Tables() {
			widths := make([]string, len(t.ColW))
			for i, w := range t.ColW {
				widths[i] = fmt.Sprintf("%.2f", w)
			}
			var header []string
			if len(t.Rows) > 0 {
				for _, c := range t.Rows[0] {
					header = append(header, c.Text)
				}
			}
			values := []interface{}{
				sl.Index, ti + 1, len(t.Rows), t.Columns(),
				strings.Join(widths, " / "), t.RowH, strings.Join(header, " | "),
			}
			writeRow(tables, row, values)
			row++
		}
	}
	tables.SetColumnWidth(6, 60)
	tables.FreezePane("A2")

	wb.Properties.Title = d.Title
	wb.Properties.Creator = d.Author
	wb.Properties.Description = "Deck outline"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

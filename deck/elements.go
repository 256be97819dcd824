package deck

// ShapeOption adjusts a rectangle or ellipse.
type ShapeOption func(*ShapeSpec)

// Fill sets a solid fill.
func Fill(c Color) ShapeOption {
	return func(s *ShapeSpec) { s.Fill = c }
}

// Line sets the outline. A width of 0 keeps the outline hidden.
func Line(c Color, width float64) ShapeOption {
	return func(s *ShapeSpec) { s.Line = Border{Color: c, Width: width} }
}

// WithShadow attaches an outer shadow.
func WithShadow(sh Shadow) ShapeOption {
	return func(s *ShapeSpec) {
		cp := sh
		s.Shadow = &cp
	}
}

// Rect returns a rectangle element.
func Rect(x, y, w, h float64, opts ...ShapeOption) Element {
	return shape(KindRectangle, Box{X: x, Y: y, W: w, H: h}, opts)
}

// Ellipse returns an ellipse inscribed in the given box.
func Ellipse(x, y, w, h float64, opts ...ShapeOption) Element {
	return shape(KindEllipse, Box{X: x, Y: y, W: w, H: h}, opts)
}

func shape(kind Kind, box Box, opts []ShapeOption) Element {
	spec := &ShapeSpec{}
	for _, opt := range opts {
		opt(spec)
	}
	return Element{Kind: kind, Box: box, Shape: spec}
}

// TextOption adjusts a text box.
type TextOption func(*TextSpec)

// WithAlign sets horizontal alignment.
func WithAlign(a HAlign) TextOption {
	return func(t *TextSpec) { t.Align = a }
}

// WithVAlign sets vertical anchoring.
func WithVAlign(v VAlign) TextOption {
	return func(t *TextSpec) { t.VAlign = v }
}

// WithLineSpacing sets the line spacing multiple (1.5 = 150%).
func WithLineSpacing(m float64) TextOption {
	return func(t *TextSpec) { t.LineSpacing = m }
}

// Text returns a text box holding a single run. Embedded newlines become
// line breaks when rendered.
func Text(x, y, w, h float64, text string, font FontSpec, opts ...TextOption) Element {
	return Runs(x, y, w, h, []TextRun{{Text: text}}, font, opts...)
}

// Runs returns a text box holding a sequence of formatted runs.
func Runs(x, y, w, h float64, runs []TextRun, font FontSpec, opts ...TextOption) Element {
	spec := &TextSpec{Runs: runs, Font: font}
	for _, opt := range opts {
		opt(spec)
	}
	return Element{Kind: KindText, Box: Box{X: x, Y: y, W: w, H: h}, Text: spec}
}

// Bullets turns a label list into bulleted runs, one paragraph each.
func Bullets(items []string) []TextRun {
	runs := make([]TextRun, len(items))
	for i, item := range items {
		runs[i] = TextRun{Text: item, Bullet: true, BreakLine: i < len(items)-1}
	}
	return runs
}

// TableOption adjusts a table.
type TableOption func(*TableSpec)

// ColumnWidths sets explicit column widths in inches.
func ColumnWidths(w ...float64) TableOption {
	return func(t *TableSpec) { t.ColW = w }
}

// RowHeight sets a uniform row height in inches.
func RowHeight(h float64) TableOption {
	return func(t *TableSpec) { t.RowH = h }
}

// TableFont sets the default cell font.
func TableFont(f FontSpec) TableOption {
	return func(t *TableSpec) { t.Font = f }
}

// CellBorder sets the default border drawn on every cell edge.
func CellBorder(c Color, width float64) TableOption {
	return func(t *TableSpec) { t.Border = Border{Color: c, Width: width} }
}

// TableFill sets the default cell fill.
func TableFill(c Color) TableOption {
	return func(t *TableSpec) { t.Fill = c }
}

// TableAlign sets horizontal and vertical cell alignment.
func TableAlign(h HAlign, v VAlign) TableOption {
	return func(t *TableSpec) {
		t.Align = h
		t.VAlign = v
	}
}

// Table returns a table element.
func Table(x, y, w, h float64, rows []TableRow, opts ...TableOption) Element {
	spec := &TableSpec{Rows: rows}
	for _, opt := range opts {
		opt(spec)
	}
	return Element{Kind: KindTable, Box: Box{X: x, Y: y, W: w, H: h}, Table: spec}
}

// Row builds a plain table row from strings.
func Row(cells ...string) TableRow {
	row := make(TableRow, len(cells))
	for i, c := range cells {
		row[i] = Cell{TextRun: TextRun{Text: c}}
	}
	return row
}

// HeaderRow builds a bold, filled header row.
func HeaderRow(fill, color Color, cells ...string) TableRow {
	row := make(TableRow, len(cells))
	for i, c := range cells {
		row[i] = Cell{TextRun: TextRun{Text: c, Bold: c != "", Color: color}, Fill: fill}
	}
	return row
}

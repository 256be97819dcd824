package deck

// GridPosition places item i of a row-major grid with the given number of
// columns.
func GridPosition(i, columns int) (row, col int) {
	if columns <= 0 {
		return 0, 0
	}
	return i / columns, i % columns
}

// Grid is a row-major card layout anchored at an origin, advancing by a
// fixed step per column and per row.
type Grid struct {
	OriginX, OriginY float64
	StepX, StepY     float64
	Columns          int
}

// Cell returns the top-left corner of item i.
func (g Grid) Cell(i int) (x, y float64) {
	row, col := GridPosition(i, g.Columns)
	return g.OriginX + float64(col)*g.StepX, g.OriginY + float64(row)*g.StepY
}

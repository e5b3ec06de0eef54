package grid

// Grid is a rectangular table of cell texts, row-major, zero-based.
type Grid [][]string

// Normalize pads ragged rows with blank cells so every row has the same width.
func Normalize(rows [][]string) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	g := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		g[i] = cells
	}
	return g
}

// Dimensions returns the number of rows and columns.
func (g Grid) Dimensions() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Cell returns the text at (row, col) or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

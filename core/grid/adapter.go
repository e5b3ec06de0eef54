package grid

import (
	"fmt"
	"strings"

	"domain-checker/core/reconcile"
)

// NormalizeExtension trims and lower-cases a header cell and gives it exactly
// one leading dot. Blank input returns "".
func NormalizeExtension(header string) string {
	ext := strings.TrimLeft(strings.ToLower(strings.TrimSpace(header)), ".")
	if ext == "" {
		return ""
	}
	return "." + ext
}

// ComposeName joins a domain and a normalized extension into the name handed
// to the probe.
func ComposeName(domain, extension string) string {
	return strings.TrimRight(strings.TrimSpace(domain), ".") + NormalizeExtension(extension)
}

// Parse splits a grid into domain rows and tracked extension columns.
// It fails with reconcile.ErrMalformedInput for an empty grid or a header row
// without any extension.
func Parse(g Grid) ([]reconcile.Row, []reconcile.Column, error) {
	nRows, nCols := g.Dimensions()
	if nRows == 0 || nCols == 0 {
		return nil, nil, fmt.Errorf("%w: table is empty", reconcile.ErrMalformedInput)
	}

	var columns []reconcile.Column
	for c := 1; c < nCols; c++ {
		if ext := NormalizeExtension(g[0][c]); ext != "" {
			columns = append(columns, reconcile.Column{Index: c, Extension: ext})
		}
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("%w: no extension columns found in header row", reconcile.ErrMalformedInput)
	}

	rows := make([]reconcile.Row, 0, nRows-1)
	for r := 1; r < nRows; r++ {
		cells := make(map[int]string, len(columns))
		for _, col := range columns {
			cells[col.Index] = g[r][col.Index]
		}
		rows = append(rows, reconcile.Row{
			Index:  r,
			Domain: strings.TrimSpace(g[r][0]),
			Cells:  cells,
		})
	}

	return rows, columns, nil
}

// Load parses g and builds the matrix in one step.
func Load(g Grid) (*reconcile.Matrix, error) {
	rows, columns, err := Parse(g)
	if err != nil {
		return nil, err
	}
	return reconcile.Build(rows, columns)
}

// Render writes the matrix back over a copy of original. Every tracked cell of
// every tracked row is rewritten with its current status; unresolved cells
// become blank. All other cells, including skipped rows and untracked columns,
// are copied unchanged, so the output has the same shape as the input.
func Render(original Grid, m *reconcile.Matrix) Grid {
	out := original.Clone()
	columns := m.Columns()

	for _, row := range m.Snapshot() {
		if row.Index >= len(out) {
			continue
		}
		for i, col := range columns {
			if col.Index >= len(out[row.Index]) {
				continue
			}
			out[row.Index][col.Index] = string(row.Statuses[i])
		}
	}
	return out
}

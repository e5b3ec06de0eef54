package reconcile

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
)

type matrixRow struct {
	index  int
	domain string
}

// Matrix holds the status of every (domain row, extension column) cell.
// It is safe for concurrent use.
type Matrix struct {
	mu      sync.RWMutex
	columns []Column
	rows    []matrixRow
	cells   [][]Status

	rowPos map[int]int
	colPos map[int]int
}

// Build constructs a matrix from parsed rows and tracked columns.
//
// Rows with a blank domain are skipped. Cell text is trimmed and becomes the
// initial status; blank text means Empty. Build fails with ErrMalformedInput if
// no columns are tracked, if a column has a blank extension, or if a row or
// column index appears twice.
func Build(rows []Row, columns []Column) (*Matrix, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no extension columns found", ErrMalformedInput)
	}

	m := &Matrix{
		columns: make([]Column, 0, len(columns)),
		rowPos:  make(map[int]int, len(rows)),
		colPos:  make(map[int]int, len(columns)),
	}

	for _, col := range columns {
		ext := strings.ToLower(strings.TrimSpace(col.Extension))
		if ext == "" {
			return nil, fmt.Errorf("%w: column %d has no extension", ErrMalformedInput, col.Index)
		}
		if _, dup := m.colPos[col.Index]; dup {
			return nil, fmt.Errorf("%w: column %d listed twice", ErrMalformedInput, col.Index)
		}
		m.colPos[col.Index] = -1
		m.columns = append(m.columns, Column{Index: col.Index, Extension: ext})
	}

	slices.SortStableFunc(m.columns, func(a, b Column) int { return cmp.Compare(a.Index, b.Index) })
	for i, col := range m.columns {
		m.colPos[col.Index] = i
	}

	for _, row := range rows {
		domain := strings.TrimSpace(row.Domain)
		if domain == "" {
			continue
		}
		if _, dup := m.rowPos[row.Index]; dup {
			return nil, fmt.Errorf("%w: row %d listed twice", ErrMalformedInput, row.Index)
		}

		statuses := make([]Status, len(m.columns))
		for i, col := range m.columns {
			statuses[i] = Status(strings.TrimSpace(row.Cells[col.Index]))
		}

		m.rowPos[row.Index] = len(m.rows)
		m.rows = append(m.rows, matrixRow{index: row.Index, domain: domain})
		m.cells = append(m.cells, statuses)
	}

	return m, nil
}

// Columns returns the tracked columns in ascending source order.
func (m *Matrix) Columns() []Column {
	out := make([]Column, len(m.columns))
	copy(out, m.columns)
	return out
}

// Len returns the number of tracked rows.
func (m *Matrix) Len() int {
	return len(m.rows)
}

// Status returns the current status of a cell.
func (m *Matrix) Status(row, column int) (Status, bool) {
	r, c, ok := m.locate(row, column)
	if !ok {
		return StatusEmpty, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cells[r][c], true
}

// Unresolved yields every Empty cell, row order first, then column order.
// The sequence is lazy: a cell resolved while iterating is not yielded again,
// and the lock is not held while the consumer runs.
func (m *Matrix) Unresolved() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for r, row := range m.rows {
			for c, col := range m.columns {
				m.mu.RLock()
				empty := m.cells[r][c].IsEmpty()
				m.mu.RUnlock()
				if !empty {
					continue
				}
				cell := Cell{
					Row:       row.index,
					Column:    col.Index,
					Domain:    row.domain,
					Extension: col.Extension,
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// SetStatus moves an Empty cell to a terminal status. It fails with
// ErrInvariantViolation if the cell is not tracked, already holds a status, or
// if status is Empty.
func (m *Matrix) SetStatus(row, column int, status Status) error {
	r, c, ok := m.locate(row, column)
	if !ok {
		return fmt.Errorf("%w: cell (row %d, column %d) is not tracked", ErrInvariantViolation, row, column)
	}
	if status.IsEmpty() {
		return fmt.Errorf("%w: cell (row %d, column %d) cannot be cleared", ErrInvariantViolation, row, column)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if current := m.cells[r][c]; !current.IsEmpty() {
		return fmt.Errorf("%w: cell (row %d, column %d) already holds %q", ErrInvariantViolation, row, column, current)
	}
	m.cells[r][c] = status
	return nil
}

// Counts returns the number of cells holding a status and the number still Empty.
func (m *Matrix) Counts() (resolved, unresolved int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, statuses := range m.cells {
		for _, s := range statuses {
			if s.IsEmpty() {
				unresolved++
			} else {
				resolved++
			}
		}
	}
	return resolved, unresolved
}

// Snapshot returns a copy of every tracked row in source order.
func (m *Matrix) Snapshot() []RowSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]RowSnapshot, len(m.rows))
	for i, row := range m.rows {
		statuses := make([]Status, len(m.columns))
		copy(statuses, m.cells[i])
		out[i] = RowSnapshot{Index: row.index, Domain: row.domain, Statuses: statuses}
	}
	return out
}

func (m *Matrix) locate(row, column int) (r, c int, ok bool) {
	r, rok := m.rowPos[row]
	c, cok := m.colPos[column]
	return r, c, rok && cok
}

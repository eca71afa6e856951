package bot

import "github.com/iamasit07/connect4-agents/internal/domain"

// View is the read-only part of a board the engine scans.
type View interface {
	ColumnCount() int
	RowCount() int
	// LowestEmptyRow returns -1 when the column is full.
	LowestEmptyRow(column int) int
	IsFilled(column, row int) bool
	ColorAt(column, row int) domain.Color
}

// Board adds the single mutating call the engine makes per turn.
type Board interface {
	View
	Drop(column int, color domain.Color)
}

// hypothetical overlays one dropped token on a view without touching it.
type hypothetical struct {
	View
	column int
	row    int
	color  domain.Color
}

// WithToken returns v as it would look after color is dropped into
// column. A full column yields v unchanged.
func WithToken(v View, column int, color domain.Color) View {
	row := v.LowestEmptyRow(column)
	if row < 0 {
		return v
	}
	return &hypothetical{View: v, column: column, row: row, color: color}
}

func (h *hypothetical) LowestEmptyRow(column int) int {
	if column == h.column {
		return h.row - 1
	}
	return h.View.LowestEmptyRow(column)
}

func (h *hypothetical) IsFilled(column, row int) bool {
	if column == h.column && row == h.row {
		return true
	}
	return h.View.IsFilled(column, row)
}

func (h *hypothetical) ColorAt(column, row int) domain.Color {
	if column == h.column && row == h.row {
		return h.color
	}
	return h.View.ColorAt(column, row)
}

func inBounds(v View, column, row int) bool {
	return row >= 0 && row < v.RowCount() && column >= 0 && column < v.ColumnCount()
}

func openColumns(v View) []int {
	cols := []int{}
	for c := 0; c < v.ColumnCount(); c++ {
		if v.LowestEmptyRow(c) >= 0 {
			cols = append(cols, c)
		}
	}
	return cols
}

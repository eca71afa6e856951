package bot

import "github.com/iamasit07/connect4-agents/internal/domain"

type Direction int

const (
	Vertical Direction = iota
	Horizontal
	DiagDown // up-left to down-right
	DiagUp   // down-left to up-right
)

var Directions = [...]Direction{Vertical, Horizontal, DiagDown, DiagUp}

// step is the (column, row) delta of the forward sense; the backward
// sense negates both. Rows grow downwards.
var step = [...][2]int{
	Vertical:   {0, 1},
	Horizontal: {1, 0},
	DiagDown:   {1, 1},
	DiagUp:     {1, -1},
}

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case DiagDown:
		return "diagonal-down"
	case DiagUp:
		return "diagonal-up"
	}
	return "unknown"
}

// ScanResult describes the line through a hypothetical token.
// RunLength counts same-colored tokens on both sides, excluding the
// token itself. FillableExtra counts the sides (0-2) whose run ends on
// an empty slot that the next drop into its column would fill.
type ScanResult struct {
	RunLength     int
	FillableExtra int
}

// Scan evaluates a token of color placed at (column, row) along dir.
// Every slot is bounds-checked before it is read.
func Scan(v View, column, row int, color domain.Color, dir Direction) ScanResult {
	var res ScanResult
	dc, dr := step[dir][0], step[dir][1]

	for _, sense := range [2]int{1, -1} {
		c, r := column+dc*sense, row+dr*sense
		for inBounds(v, c, r) && v.IsFilled(c, r) && v.ColorAt(c, r) == color {
			res.RunLength++
			c += dc * sense
			r += dr * sense
		}
		if inBounds(v, c, r) && !v.IsFilled(c, r) && droppable(v, column, row, c, r) {
			res.FillableExtra++
		}
	}
	return res
}

// ScanAll returns the four directional results, indexed by Direction.
func ScanAll(v View, column, row int, color domain.Color) [4]ScanResult {
	var out [4]ScanResult
	for _, d := range Directions {
		out[d] = Scan(v, column, row, color, d)
	}
	return out
}

// droppable reports whether the empty slot (c, r) is where the next
// token in column c would land, given a hypothetical token already at
// (column, row).
func droppable(v View, column, row, c, r int) bool {
	if c == column {
		return r == row-1
	}
	return v.LowestEmptyRow(c) == r
}

package domain

import "fmt"

// Board is a rows x cols grid of slots. Row 0 is the top row and
// row Rows()-1 the bottom one; tokens fall towards the bottom.
type Board struct {
	cells [][]Color // cells[row][column]
	rows  int
	cols  int
}

func NewBoard(cols, rows int) *Board {
	cells := make([][]Color, rows)
	for i := range cells {
		cells[i] = make([]Color, cols)
	}
	return &Board{cells: cells, rows: rows, cols: cols}
}

// NewBoardFromGrid builds a board from a row-major grid (grid[0] is the
// top row). The gravity invariant is checked once here.
func NewBoardFromGrid(grid [][]Color) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrBoardShape
	}
	b := NewBoard(len(grid[0]), len(grid))
	for r, row := range grid {
		if len(row) != b.cols {
			return nil, ErrBoardShape
		}
		for c, v := range row {
			if v != Empty && v != First && v != Second {
				return nil, fmt.Errorf("slot (%d,%d): %w", c, r, ErrInvalidColor)
			}
			b.cells[r][c] = v
		}
	}
	if err := b.CheckGravity(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) ColumnCount() int { return b.cols }
func (b *Board) RowCount() int    { return b.rows }

func (b *Board) InBounds(column, row int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.cols
}

func (b *Board) cell(column, row int) Color {
	if !b.InBounds(column, row) {
		panic(fmt.Sprintf("%v: column %d row %d on %dx%d board", ErrInvalidGeometry, column, row, b.cols, b.rows))
	}
	return b.cells[row][column]
}

// LowestEmptyRow returns the row the next token in column would land in,
// or -1 when the column is full.
func (b *Board) LowestEmptyRow(column int) int {
	for row := b.rows - 1; row >= 0; row-- {
		if b.cell(column, row) == Empty {
			return row
		}
	}
	return -1
}

func (b *Board) IsFilled(column, row int) bool {
	return b.cell(column, row) != Empty
}

// ColorAt is Empty for unfilled slots.
func (b *Board) ColorAt(column, row int) Color {
	return b.cell(column, row)
}

// DropDisk places a token at the lowest empty row of column.
func (b *Board) DropDisk(column int, color Color) (int, error) {
	if column < 0 || column >= b.cols {
		return -1, ErrInvalidMove
	}
	row := b.LowestEmptyRow(column)
	if row < 0 {
		return -1, ErrColumnFull
	}
	b.cells[row][column] = color
	return row, nil
}

// Drop is DropDisk without the result; it is a no-op on a full column.
func (b *Board) Drop(column int, color Color) {
	_, _ = b.DropDisk(column, color)
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}
	return b.cells[0][column] == Empty
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) ValidMoves() []int {
	moves := []int{}
	for c := 0; c < b.cols; c++ {
		if b.IsValidMove(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

func (b *Board) TokenCount() int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	nb := NewBoard(b.cols, b.rows)
	for i := range b.cells {
		copy(nb.cells[i], b.cells[i])
	}
	return nb
}

// Grid returns a row-major copy of the slots, top row first.
func (b *Board) Grid() [][]Color {
	return b.Clone().cells
}

// CheckGravity reports a floating token: an occupied slot above an empty one.
func (b *Board) CheckGravity() error {
	for c := 0; c < b.cols; c++ {
		for r := 0; r < b.rows-1; r++ {
			if b.cells[r][c] != Empty && b.cells[r+1][c] == Empty {
				return fmt.Errorf("column %d row %d: %w", c, r, ErrFloatingToken)
			}
		}
	}
	return nil
}

func (b *Board) String() string {
	out := make([]byte, 0, (b.cols+1)*b.rows)
	for _, row := range b.cells {
		for _, v := range row {
			switch v {
			case First:
				out = append(out, 'X')
			case Second:
				out = append(out, 'O')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// ParseBoard reads the diagram format produced by String: one string per
// row, top row first, 'X' for First, 'O' for Second and '.' for empty.
func ParseBoard(rows ...string) (*Board, error) {
	grid := make([][]Color, len(rows))
	for r, line := range rows {
		grid[r] = make([]Color, len(line))
		for c, ch := range line {
			switch ch {
			case 'X':
				grid[r][c] = First
			case 'O':
				grid[r][c] = Second
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected %q: %w", r, ch, ErrBoardShape)
			}
		}
	}
	return NewBoardFromGrid(grid)
}

package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/connect4-agents/internal/domain"
)

func mustBoard(t *testing.T, rows ...string) *domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(rows...)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

// strictView fails the test on any read outside the grid instead of
// letting the board panic.
type strictView struct {
	t *testing.T
	b *domain.Board
}

func (s strictView) ColumnCount() int { return s.b.ColumnCount() }
func (s strictView) RowCount() int    { return s.b.RowCount() }

func (s strictView) check(column, row int) bool {
	if !s.b.InBounds(column, row) {
		s.t.Fatalf("read outside grid: column %d row %d", column, row)
		return false
	}
	return true
}

func (s strictView) LowestEmptyRow(column int) int {
	if column < 0 || column >= s.b.ColumnCount() {
		s.t.Fatalf("LowestEmptyRow on column %d", column)
	}
	return s.b.LowestEmptyRow(column)
}

func (s strictView) IsFilled(column, row int) bool {
	return s.check(column, row) && s.b.IsFilled(column, row)
}

func (s strictView) ColorAt(column, row int) domain.Color {
	if !s.check(column, row) {
		return domain.Empty
	}
	return s.b.ColorAt(column, row)
}

// randomPosition plays uniformly random legal moves until n tokens are
// down or the game ends.
func randomPosition(rng *rand.Rand, cols, rows, n int) *domain.Board {
	b := domain.NewBoard(cols, rows)
	color := domain.First
	for i := 0; i < n; i++ {
		moves := b.ValidMoves()
		if len(moves) == 0 {
			break
		}
		col := moves[rng.Intn(len(moves))]
		row, _ := b.DropDisk(col, color)
		if domain.CheckWin(b, row, col, color) {
			break
		}
		color = color.Opponent()
	}
	return b
}

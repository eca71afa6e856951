package domain

var lineDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// CheckWin only looks at lines passing through (row, column), which is
// where the last token landed.
func CheckWin(b *Board, row, column int, player Color) bool {
	if player == Empty || !b.InBounds(column, row) || b.cells[row][column] != player {
		return false
	}
	for _, d := range lineDirections {
		count := 1 + countInDirection(b, row, column, d[0], d[1], player) +
			countInDirection(b, row, column, -d[0], -d[1], player)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// Winner scans the whole board; it returns Empty when nobody has four.
func Winner(b *Board) Color {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if p := b.cells[r][c]; p != Empty && CheckWin(b, r, c, p) {
				return p
			}
		}
	}
	return Empty
}

func countInDirection(b *Board, row, column, deltaRow, deltaCol int, player Color) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for b.InBounds(c, r) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

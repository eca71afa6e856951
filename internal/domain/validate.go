package domain

// Placement is the slot a validated turn filled.
type Placement struct {
	Column int
	Row    int
}

// Validate compares the board before and after one turn by mover.
// Exactly one new token of mover's color must have been added, resting
// on the bottom row or another token; nothing else may change.
func Validate(before, after *Board, mover Color) (Placement, error) {
	p := Placement{Column: -1, Row: -1}
	if before.cols != after.cols || before.rows != after.rows {
		return p, ErrBoardShape
	}

	added := 0
	for r := 0; r < before.rows; r++ {
		for c := 0; c < before.cols; c++ {
			was, is := before.cells[r][c], after.cells[r][c]
			if was == is {
				continue
			}
			if was != Empty {
				return p, ErrTokenChanged
			}
			added++
			if added > 1 {
				return p, ErrMultipleTokens
			}
			if is != mover {
				return p, ErrWrongColor
			}
			p = Placement{Column: c, Row: r}
			if r < before.rows-1 && before.cells[r+1][c] == Empty {
				return p, ErrFloatingToken
			}
		}
	}

	if added == 0 {
		return p, ErrNoTokenPlaced
	}
	return p, nil
}

package bot

import "github.com/iamasit07/connect4-agents/internal/domain"

type ThreatLevel int

const (
	ThreatNone ThreatLevel = iota
	// SetupSoon: two in a line with room to reach four within two more plays.
	ThreatSetupSoon
	// ThreatWin: three already in line, the drop completes four.
	ThreatWin
)

func (t ThreatLevel) String() string {
	switch t {
	case ThreatWin:
		return "win"
	case ThreatSetupSoon:
		return "setup-soon"
	}
	return "none"
}

// Classify rates a drop of color into column. With offset 1 the drop is
// evaluated one slot higher, as if the column had already been played
// once by the other color.
func Classify(v View, column int, color domain.Color, offset int) ThreatLevel {
	if offset > 0 {
		if v.LowestEmptyRow(column) < 0 {
			return ThreatNone
		}
		v = WithToken(v, column, color.Opponent())
	}
	row := v.LowestEmptyRow(column)
	if row < 0 {
		return ThreatNone
	}
	return classifyScans(ScanAll(v, column, row, color))
}

func classifyScans(scans [4]ScanResult) ThreatLevel {
	longest := 0
	for _, s := range scans {
		longest = max(longest, s.RunLength)
	}
	if longest >= domain.ToWin-1 {
		return ThreatWin
	}

	pairs, pairFillable := 0, false
	for _, s := range scans {
		if s.RunLength != 2 {
			continue
		}
		if s.FillableExtra == 2 {
			return ThreatSetupSoon
		}
		pairs++
		if s.FillableExtra >= 1 {
			pairFillable = true
		}
	}
	if pairs >= 2 && pairFillable {
		return ThreatSetupSoon
	}
	return ThreatNone
}

// BestThreatColumn returns the leftmost column where color reaches a Win
// (requireImmediate) or at least SetupSoon.
func BestThreatColumn(v View, color domain.Color, offset int, requireImmediate bool) (int, bool) {
	want := ThreatSetupSoon
	if requireImmediate {
		want = ThreatWin
	}
	for c := 0; c < v.ColumnCount(); c++ {
		if Classify(v, c, color, offset) >= want {
			return c, true
		}
	}
	return -1, false
}

// IsDangerous reports whether dropping color into column would let the
// opponent complete four in the slot directly above.
func IsDangerous(v View, column int, color domain.Color) bool {
	row := v.LowestEmptyRow(column)
	if row <= 0 {
		return false
	}
	return Classify(v, column, color.Opponent(), 1) == ThreatWin
}

// DangerousColumns flags every column for color, indexed by column.
func DangerousColumns(v View, color domain.Color) []bool {
	out := make([]bool, v.ColumnCount())
	for c := range out {
		out[c] = IsDangerous(v, c, color)
	}
	return out
}

// handsOverWin reports whether the opponent would have any immediate win
// after color drops into column.
func handsOverWin(v View, column int, color domain.Color) bool {
	_, ok := BestThreatColumn(WithToken(v, column, color), color.Opponent(), 0, true)
	return ok
}

package bot

import "github.com/iamasit07/connect4-agents/internal/domain"

// Heuristic picks how HeuristicScore ranks the remaining columns.
type Heuristic int

const (
	// Adjacency ranks by own tokens touching the landing slot, then by
	// opponent tokens it would cut off.
	Adjacency Heuristic = iota
	// Lookahead ranks by the longest own streak through the landing
	// slot, then by how many directions reach it, then by closeness to
	// the centre column. It also enables the SetupOwnWin step.
	Lookahead
)

func (h Heuristic) String() string {
	if h == Lookahead {
		return "lookahead"
	}
	return "adjacency"
}

// scoreKey is compared lexicographically; larger is better.
type scoreKey [3]int

func (k scoreKey) greater(o scoreKey) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] > o[i]
		}
	}
	return false
}

func (h Heuristic) score(v View, column, row int, me, opp domain.Color) scoreKey {
	own := ScanAll(v, column, row, me)

	if h == Lookahead {
		longest, count := 0, 0
		for _, s := range own {
			switch {
			case s.RunLength > longest:
				longest, count = s.RunLength, 1
			case s.RunLength == longest && longest > 0:
				count++
			}
		}
		dist := column - v.ColumnCount()/2
		if dist < 0 {
			dist = -dist
		}
		return scoreKey{longest, count, -dist}
	}

	theirs := ScanAll(v, column, row, opp)
	var mine, blocked int
	for d := range own {
		mine += own[d].RunLength
		blocked += theirs[d].RunLength
	}
	return scoreKey{mine, blocked, 0}
}

// best returns the leftmost non-full, non-dangerous column with the
// largest key.
func (h Heuristic) best(v View, me, opp domain.Color, dangerous []bool) (int, bool) {
	bestCol := -1
	var bestKey scoreKey
	for c := 0; c < v.ColumnCount(); c++ {
		row := v.LowestEmptyRow(c)
		if row < 0 || dangerous[c] {
			continue
		}
		key := h.score(v, c, row, me, opp)
		if bestCol < 0 || key.greater(bestKey) {
			bestCol, bestKey = c, key
		}
	}
	return bestCol, bestCol >= 0
}

package bot

import (
	"math/rand"
	"time"

	"github.com/iamasit07/connect4-agents/internal/domain"
)

// Rule names the decision step that chose a column.
type Rule string

const (
	RuleImmediateWin      Rule = "immediate_win"
	RuleMustBlock         Rule = "must_block"
	RuleSetupOwnWin       Rule = "setup_own_win"
	RuleCenterPreference  Rule = "center_preference"
	RuleHeuristicScore    Rule = "heuristic_score"
	RuleRandomFallback    Rule = "random_fallback"
	RuleStalemateFallback Rule = "stalemate_fallback"
	RuleRandom            Rule = "random"
)

type Decision struct {
	Column int
	Rule   Rule
}

// MaxFallbackAttempts bounds the random fallback's search for a safe column.
const MaxFallbackAttempts = 100

// Agent is the move selector. It keeps no state between turns apart from
// its random source.
type Agent struct {
	name      string
	heuristic Heuristic
	rng       *rand.Rand
}

func NewAgent(name string, h Heuristic, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{name: name, heuristic: h, rng: rng}
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) Heuristic() Heuristic { return a.heuristic }

// Move decides and drops exactly one token of color me.
func (a *Agent) Move(b Board, me, opp domain.Color) error {
	d, err := a.Decide(b, me, opp)
	if err != nil {
		return err
	}
	b.Drop(d.Column, me)
	return nil
}

// Decide runs the turn decision without touching the board. The returned
// column is always non-full.
func (a *Agent) Decide(v View, me, opp domain.Color) (Decision, error) {
	if err := checkColors(me, opp); err != nil {
		return Decision{Column: -1}, err
	}
	open := openColumns(v)
	if len(open) == 0 {
		return Decision{Column: -1}, domain.ErrNoLegalMove
	}

	if c, ok := BestThreatColumn(v, me, 0, true); ok {
		return Decision{Column: c, Rule: RuleImmediateWin}, nil
	}
	if c, ok := BestThreatColumn(v, opp, 0, true); ok {
		return Decision{Column: c, Rule: RuleMustBlock}, nil
	}

	dangerous := DangerousColumns(v, me)

	if a.heuristic == Lookahead {
		if c, ok := setupColumn(v, me, dangerous); ok {
			return Decision{Column: c, Rule: RuleSetupOwnWin}, nil
		}
	}
	if c, ok := centerColumn(v, dangerous); ok {
		return Decision{Column: c, Rule: RuleCenterPreference}, nil
	}
	if c, ok := a.heuristic.best(v, me, opp, dangerous); ok {
		return Decision{Column: c, Rule: RuleHeuristicScore}, nil
	}
	return a.fallback(v, me, open, dangerous), nil
}

func setupColumn(v View, me domain.Color, dangerous []bool) (int, bool) {
	for c := 0; c < v.ColumnCount(); c++ {
		if dangerous[c] || Classify(v, c, me, 0) != ThreatSetupSoon {
			continue
		}
		if handsOverWin(v, c, me) {
			continue
		}
		return c, true
	}
	return -1, false
}

func centerColumn(v View, dangerous []bool) (int, bool) {
	cols := v.ColumnCount()
	if cols%2 == 0 {
		return -1, false
	}
	center := cols / 2
	if v.LowestEmptyRow(center) != v.RowCount()-1 || dangerous[center] {
		return -1, false
	}
	return center, true
}

// fallback samples open columns until one is safe. After
// MaxFallbackAttempts the last sample is played anyway.
func (a *Agent) fallback(v View, me domain.Color, open []int, dangerous []bool) Decision {
	col := open[0]
	for attempt := 0; attempt < MaxFallbackAttempts; attempt++ {
		col = open[a.rng.Intn(len(open))]
		if !dangerous[col] && !handsOverWin(v, col, me) {
			return Decision{Column: col, Rule: RuleRandomFallback}
		}
	}
	return Decision{Column: col, Rule: RuleStalemateFallback}
}

func checkColors(me, opp domain.Color) error {
	if me == domain.Empty || opp != me.Opponent() {
		return domain.ErrInvalidColor
	}
	return nil
}

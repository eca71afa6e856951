package bot

import (
	"math/rand"
	"time"

	"github.com/iamasit07/connect4-agents/internal/domain"
)

// Easy wins or blocks when it can and otherwise plays a uniformly random
// open column. It is the baseline sparring partner for simulations.
type Easy struct {
	name string
	rng  *rand.Rand
}

func NewEasy(name string, rng *rand.Rand) *Easy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Easy{name: name, rng: rng}
}

func (e *Easy) Name() string { return e.name }

func (e *Easy) Move(b Board, me, opp domain.Color) error {
	d, err := e.Decide(b, me, opp)
	if err != nil {
		return err
	}
	b.Drop(d.Column, me)
	return nil
}

func (e *Easy) Decide(v View, me, opp domain.Color) (Decision, error) {
	if err := checkColors(me, opp); err != nil {
		return Decision{Column: -1}, err
	}
	validColumns := openColumns(v)
	if len(validColumns) == 0 {
		return Decision{Column: -1}, domain.ErrNoLegalMove
	}

	if c, ok := BestThreatColumn(v, me, 0, true); ok {
		return Decision{Column: c, Rule: RuleImmediateWin}, nil
	}
	if c, ok := BestThreatColumn(v, opp, 0, true); ok {
		return Decision{Column: c, Rule: RuleMustBlock}, nil
	}

	return Decision{Column: validColumns[e.rng.Intn(len(validColumns))], Rule: RuleRandom}, nil
}

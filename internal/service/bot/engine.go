package bot

import (
	"math/rand"
	"sort"

	"github.com/iamasit07/connect4-agents/internal/domain"
)

// Engine is what the simulation harness and the API drive each turn.
type Engine interface {
	Name() string
	// Decide picks a column without changing the board.
	Decide(v View, me, opp domain.Color) (Decision, error)
	// Move performs exactly one drop of color me.
	Move(b Board, me, opp domain.Color) error
}

const (
	KindAdjacency = "adjacency"
	KindLookahead = "lookahead"
	KindEasy      = "easy"
)

const ErrUnknownEngine domain.Error = "unknown engine kind"

var EngineNames = map[string]string{
	KindAdjacency: "Adjacency Agent",
	KindLookahead: "Lookahead Agent",
	KindEasy:      "Random Blocker",
}

// Kinds lists the registered engine kinds in a stable order.
func Kinds() []string {
	kinds := make([]string, 0, len(EngineNames))
	for k := range EngineNames {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// NewEngine builds a fresh engine. rng becomes the engine's private
// random source; nil seeds one from the clock.
func NewEngine(kind string, rng *rand.Rand) (Engine, error) {
	switch kind {
	case KindAdjacency:
		return NewAgent(EngineNames[kind], Adjacency, rng), nil
	case KindLookahead:
		return NewAgent(EngineNames[kind], Lookahead, rng), nil
	case KindEasy:
		return NewEasy(EngineNames[kind], rng), nil
	default:
		return nil, ErrUnknownEngine
	}
}

package simulation

import (
	"math/rand"

	"github.com/iamasit07/connect4-agents/internal/domain"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
)

type Outcome int

const (
	FirstWins Outcome = iota
	SecondWins
	Draw
	Errored
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first_wins"
	case SecondWins:
		return "second_wins"
	case Draw:
		return "draw"
	}
	return "errored"
}

// Turn is one validated drop, reported to observers as the game runs.
type Turn struct {
	Number int          `json:"number"`
	Color  domain.Color `json:"color"`
	Column int          `json:"column"`
	Row    int          `json:"row"`
}

type GameResult struct {
	Outcome Outcome
	Starter domain.Color
	Moves   int
	// Err is why an Errored game stopped.
	Err error
}

// PlayGame runs one game on a fresh cols x rows board. first plays the
// First color, second the Second color; rng only decides who starts.
// After every turn the board is compared with its previous state, and
// an invalid turn or engine error ends the game as Errored.
func PlayGame(cols, rows int, first, second bot.Engine, rng *rand.Rand, observe func(Turn)) GameResult {
	starter := domain.Second
	if rng.Intn(2) == 0 {
		starter = domain.First
	}
	game := domain.NewGame(cols, rows, starter)
	result := GameResult{Starter: starter}

	for !game.IsFinished() {
		mover := game.CurrentPlayer
		engine := first
		if mover == domain.Second {
			engine = second
		}

		before := game.Board.Clone()
		if err := engine.Move(game.Board, mover, mover.Opponent()); err != nil {
			result.Outcome, result.Err = Errored, err
			break
		}
		p, err := domain.Validate(before, game.Board, mover)
		if err != nil {
			result.Outcome, result.Err = Errored, err
			break
		}
		game.Settle(p.Row, p.Column)

		if observe != nil {
			observe(Turn{Number: game.MoveCount, Color: mover, Column: p.Column, Row: p.Row})
		}
	}

	result.Moves = game.MoveCount
	if result.Err != nil {
		return result
	}
	switch {
	case game.Status == domain.StatusWon && game.Winner == domain.First:
		result.Outcome = FirstWins
	case game.Status == domain.StatusWon:
		result.Outcome = SecondWins
	default:
		result.Outcome = Draw
	}
	return result
}

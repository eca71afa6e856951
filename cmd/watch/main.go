// Command watch plays one seeded game between two engines and replays it
// in the terminal.
package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/connect4-agents/internal/config"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
	"github.com/iamasit07/connect4-agents/internal/service/simulation"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	first := flag.String("first", bot.KindLookahead, "engine playing X")
	second := flag.String("second", bot.KindAdjacency, "engine playing O")
	seed := flag.Int64("seed", time.Now().UnixNano(), "game seed")
	delay := flag.Duration("delay", cfg.WatchDelay, "time between moves")
	flag.Parse()

	game := simulation.Config{
		First:   *first,
		Second:  *second,
		Seed:    *seed,
		Columns: cfg.BoardCols,
		Rows:    cfg.BoardRows,
	}
	x, o, rng, err := simulation.SeededGame(game, 0)
	if err != nil {
		log.Fatal(err)
	}

	var turns []simulation.Turn
	result := simulation.PlayGame(game.Columns, game.Rows, x, o, rng, func(t simulation.Turn) {
		turns = append(turns, t)
	})

	m := newReplay(game.Columns, game.Rows, turns, result, x.Name(), o.Name(), *seed, *delay)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

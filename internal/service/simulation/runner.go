package simulation

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/iamasit07/connect4-agents/internal/domain"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
	"github.com/iamasit07/connect4-agents/pkg/uid"
	"golang.org/x/sync/errgroup"
)

const ErrInvalidConfig domain.Error = "invalid simulation config"

type Config struct {
	First   string `json:"first"`
	Second  string `json:"second"`
	Games   int    `json:"games"`
	Seed    int64  `json:"seed"`
	Workers int    `json:"workers"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
}

type Summary struct {
	BatchID    string        `json:"batchId"`
	Config     Config        `json:"config"`
	FirstName  string        `json:"firstName"`
	SecondName string        `json:"secondName"`
	Tally      Tally         `json:"tally"`
	Elapsed    time.Duration `json:"elapsed"`
}

func (c *Config) normalize() error {
	if c.Columns == 0 {
		c.Columns = domain.DefaultColumns
	}
	if c.Rows == 0 {
		c.Rows = domain.DefaultRows
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers > c.Games {
		c.Workers = c.Games
	}
	switch {
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	case c.Columns < 1 || c.Rows < 1:
		return fmt.Errorf("%w: board must be at least 1x1", ErrInvalidConfig)
	}
	for _, kind := range []string{c.First, c.Second} {
		if _, ok := bot.EngineNames[kind]; !ok {
			return fmt.Errorf("%w: %q", bot.ErrUnknownEngine, kind)
		}
	}
	return nil
}

// SeededGame builds the engines for game i of a batch and returns the
// random source deciding who starts. Game i depends only on seed+i.
func SeededGame(cfg Config, i int) (first, second bot.Engine, rng *rand.Rand, err error) {
	rng = rand.New(rand.NewSource(cfg.Seed + int64(i)))
	if first, err = bot.NewEngine(cfg.First, rand.New(rand.NewSource(rng.Int63()))); err != nil {
		return nil, nil, nil, err
	}
	if second, err = bot.NewEngine(cfg.Second, rand.New(rand.NewSource(rng.Int63()))); err != nil {
		return nil, nil, nil, err
	}
	return first, second, rng, nil
}

// Run plays cfg.Games independent games spread over cfg.Workers
// goroutines. The aggregate only depends on the config, not on the
// worker count or scheduling.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	start := time.Now()
	summary := &Summary{
		BatchID:    uid.GenerateBatchID(),
		Config:     cfg,
		FirstName:  bot.EngineNames[cfg.First],
		SecondName: bot.EngineNames[cfg.Second],
	}
	log.Printf("[SIM] Batch %s: %d games, %s vs %s, seed %d, %d workers",
		summary.BatchID, cfg.Games, cfg.First, cfg.Second, cfg.Seed, cfg.Workers)

	tallies := make([]Tally, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for i := w; i < cfg.Games; i += cfg.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				first, second, rng, err := SeededGame(cfg, i)
				if err != nil {
					return err
				}
				tallies[w].Add(PlayGame(cfg.Columns, cfg.Rows, first, second, rng, nil))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[SIM] Batch %s stopped: %v", summary.BatchID, err)
		return nil, err
	}

	for _, t := range tallies {
		summary.Tally.Merge(t)
	}
	summary.Elapsed = time.Since(start)

	log.Printf("[SIM] Batch %s done in %s: first=%d second=%d draws=%d errors=%d",
		summary.BatchID, summary.Elapsed.Round(time.Millisecond),
		summary.Tally.FirstWins, summary.Tally.SecondWins, summary.Tally.Draws, summary.Tally.Errors)
	return summary, nil
}

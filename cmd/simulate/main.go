package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/connect4-agents/internal/analytics"
	"github.com/iamasit07/connect4-agents/internal/config"
	"github.com/iamasit07/connect4-agents/internal/service/bot"
	"github.com/iamasit07/connect4-agents/internal/service/simulation"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	first := flag.String("first", bot.KindLookahead, "engine playing the first color")
	second := flag.String("second", bot.KindAdjacency, "engine playing the second color")
	games := flag.Int("games", cfg.SimGames, "number of games")
	seed := flag.Int64("seed", cfg.SimSeed, "batch seed; game i uses seed+i")
	workers := flag.Int("workers", cfg.SimWorkers, "concurrent workers")
	cols := flag.Int("cols", cfg.BoardCols, "board columns")
	rows := flag.Int("rows", cfg.BoardRows, "board rows")
	publish := flag.Bool("publish", false, "publish the summary to Kafka")
	list := flag.Bool("list", false, "list engine kinds and exit")
	flag.Parse()

	if *list {
		for _, kind := range bot.Kinds() {
			fmt.Printf("%-10s %s\n", kind, bot.EngineNames[kind])
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := simulation.Run(ctx, simulation.Config{
		First:   *first,
		Second:  *second,
		Games:   *games,
		Seed:    *seed,
		Workers: *workers,
		Columns: *cols,
		Rows:    *rows,
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Print(summary.Report())

	if *publish {
		events := analytics.NewAnalytics(cfg.KafkaBrokers, cfg.AnalyticsTopic)
		defer events.Close()
		if err := events.Emit(context.Background(), analytics.EventSimulationCompleted, summary.BatchID, summary.Event()); err != nil {
			log.Printf("Failed to publish summary: %v", err)
		}
	}
}

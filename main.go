package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"hex/agent"
	"hex/config"
	"hex/engine"
	"hex/experiments"
	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	cfgPath, _ := flags.GetString("config")

	cfg, err := config.Setup(cfgPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case config.PlayerVsAI:
		err = playHuman(cfg)
	case config.AIVsAI:
		err = playSelf(cfg)
	case config.Tournament:
		err = runTournament(ctx, cfg)
	case config.Throughput:
		err = runThroughput(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func seed(cfg *config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func newSearchAgent(cfg *config.Config, seed uint64) (agent.Agent, error) {
	return experiments.NewAgent(metrics.AgentConfig{Depth: cfg.SearchDepth(), Backend: cfg.Backend, Seed: seed}, seed)
}

func printBoard(update engine.Update) {
	fmt.Printf("\n%s played %s\n%s\n", update.Player, game.FormatMove(update.Move), update.State.Board)
}

func playHuman(cfg *config.Config) error {
	ai, err := newSearchAgent(cfg, seed(cfg))
	if err != nil {
		return err
	}
	human := agent.NewHumanAgent(os.Stdin, os.Stdout)

	agents := []agent.Agent{human, ai}
	if strings.ToLower(cfg.HumanPlayer) == "b" {
		agents = []agent.Agent{ai, human}
	}

	e := engine.LocalEngine(cfg.BoardSize, cfg.Swap, agents)
	fmt.Println(e.State.Board)
	e.OnMove(printBoard)
	winner, _, _ := e.Run()
	announce(winner)
	return nil
}

func playSelf(cfg *config.Config) error {
	s := seed(cfg)
	agentA, err := newSearchAgent(cfg, s)
	if err != nil {
		return err
	}
	agentB, err := newSearchAgent(cfg, s+1)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(cfg.BoardSize, cfg.Swap, []agent.Agent{agentA, agentB})
	e.OnMove(printBoard)
	winner, _, _ := e.Run()
	announce(winner)
	return nil
}

func announce(winner game.CellState) {
	if winner == game.Empty {
		fmt.Println("No winner.")
		return
	}
	fmt.Printf("Player %s wins!\n", winner)
}

// runTournament pits the random baseline and every difficulty level against
// each other.
func runTournament(ctx context.Context, cfg *config.Config) error {
	s := seed(cfg)
	configs := []metrics.AgentConfig{
		{ID: 0, Depth: 0, Backend: cfg.Backend, Seed: s},
		{ID: 1, Depth: meta.EASY_DEPTH, Backend: cfg.Backend, Seed: s + 1000},
		{ID: 2, Depth: meta.MEDIUM_DEPTH, Backend: cfg.Backend, Seed: s + 2000},
		{ID: 3, Depth: meta.HARD_DEPTH, Backend: cfg.Backend, Seed: s + 3000},
	}

	t := experiments.Tournament{
		BoardSize:  cfg.BoardSize,
		Swap:       cfg.Swap,
		NumGames:   cfg.Games,
		Goroutines: cfg.Goroutines,
		OutputDir:  cfg.OutputDir,
	}
	result, err := t.Run(ctx, "difficulty", experiments.RoundRobin(configs))
	if err != nil {
		return err
	}
	for _, c := range configs {
		fmt.Printf("agent %d (depth %d): %d wins\n", c.ID, c.Depth, result.Wins[c.ID])
	}
	return nil
}

func runThroughput(ctx context.Context, cfg *config.Config) error {
	t := experiments.Tournament{
		BoardSize:  cfg.BoardSize,
		Swap:       cfg.Swap,
		NumGames:   cfg.Games,
		Goroutines: cfg.Goroutines,
		OutputDir:  cfg.OutputDir,
	}
	throughputs, err := t.RunThroughputExperiment(ctx, cfg.SearchDepth(), seed(cfg))
	if err != nil {
		return err
	}
	for _, tp := range throughputs {
		fmt.Printf("%-10s %10d nodes in %8d searches, %.0f nodes/s\n", tp.Backend, tp.Nodes, tp.Searched, tp.NodesPerSec)
	}
	return nil
}

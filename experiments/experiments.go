package experiments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"hex/agent"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidMatchup = errors.New("matchup needs exactly two agent configs")

// Tournament plays independent games concurrently. Every game builds its own
// agents, so no search state is shared between goroutines.
type Tournament struct {
	BoardSize  int
	Swap       bool
	NumGames   int // Per matchup
	Goroutines int
	OutputDir  string // Records are only written when set
}

type Result struct {
	RunID string
	Dir   string
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // By AgentConfig.ID
}

// NewAgent builds the agent described by config. A depth of zero or less
// gives the random baseline.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	random := rand.New(rand.NewSource(seed))
	if config.Depth <= 0 {
		return agent.NewRandomAgent(random), nil
	}
	backend, err := searcher.NewBackend(config.Backend, searcher.WithRandom(random), searcher.WithMetrics())
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	return agent.NewSearchAgent(backend, searcher.DefaultOpening(), config.Depth), nil
}

// RoundRobin pairs every config with every other one.
func RoundRobin(configs []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

// Run plays NumGames per matchup, alternating which config moves first.
func (t *Tournament) Run(ctx context.Context, name string, matchUps [][]metrics.AgentConfig) (*Result, error) {
	for i, matchUp := range matchUps {
		if len(matchUp) != 2 {
			return nil, fmt.Errorf("matchup %d: %w", i, ErrInvalidMatchup)
		}
	}

	start := time.Now()
	result := &Result{RunID: uuid.NewString(), Wins: map[int]int{}}
	log.Info().Msgf("running %s: %d matchups, %d games each", name, len(matchUps), t.NumGames)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, t.Goroutines))
	for i, matchUp := range matchUps {
		i, matchUp := i, matchUp
		for n := 0; n < t.NumGames; n++ {
			n := n
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				first, second := matchUp[0], matchUp[1]
				if n%2 == 1 {
					first, second = second, first
				}
				record, moves, err := t.playGame(i, uint64(n), first, second)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				result.Games = append(result.Games, record)
				result.Moves = append(result.Moves, moves...)
				switch record.Winner {
				case game.PlayerA.String():
					result.Wins[first.ID]++
				case game.PlayerB.String():
					result.Wins[second.ID]++
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(result.Games, func(i, j int) bool {
		if result.Games[i].Matchup != result.Games[j].Matchup {
			return result.Games[i].Matchup < result.Games[j].Matchup
		}
		return result.Games[i].StartTime.Before(result.Games[j].StartTime)
	})
	for id, wins := range result.Wins {
		log.Info().Msgf("agent %d won %d games", id, wins)
	}

	if t.OutputDir == "" {
		return result, nil
	}
	dir, err := t.write(name, result, matchUps, start)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

func (t *Tournament) playGame(matchUp int, n uint64, first, second metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agentA, err := NewAgent(first, first.Seed+n)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	agentB, err := NewAgent(second, second.Seed+n)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	var runner engine.Runner = engine.LocalEngine(t.BoardSize, t.Swap, []agent.Agent{agentA, agentB})
	_, gameMetric, moveMetrics := runner.Run()

	record := metrics.GameRecord{
		ID:         uuid.NewString(),
		Matchup:    matchUp,
		AgentA:     first.ID,
		AgentB:     second.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, m := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: record.ID, MoveMetric: m}
	}
	return record, moves, nil
}

func (t *Tournament) write(name string, result *Result, matchUps [][]metrics.AgentConfig, start time.Time) (string, error) {
	w, err := metrics.NewWriter(t.OutputDir, name, result.RunID)
	if err != nil {
		return "", err
	}

	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, matchUp := range matchUps {
		for _, config := range matchUp {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}

	end := time.Now()
	setup := metrics.Setup{
		RunID:     result.RunID,
		BoardSize: t.BoardSize,
		Swap:      t.Swap,
		Matchups:  matchUps,
		NumGames:  t.NumGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	if err := w.WriteSetup(setup); err != nil {
		return "", err
	}
	if err := w.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := w.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	if err := w.WriteMoveRecords(result.Moves); err != nil {
		return "", err
	}
	log.Info().Msgf("wrote %d game records to %s", len(result.Games), w.Dir())
	return w.Dir(), nil
}

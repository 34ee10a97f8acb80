package experiments

import (
	"context"
	"time"

	"hex/experiments/metrics"
	"hex/searcher"

	"github.com/rs/zerolog/log"
)

// Throughput is the search rate of one backend over a set of games.
type Throughput struct {
	Backend     string
	Nodes       int
	Searched    int // Moves produced by search
	Duration    time.Duration
	NodesPerSec float64
}

// RunThroughputExperiment plays mirror matches for each win-check backend at
// the given depth and reports how many nodes each one visits per second.
func (t *Tournament) RunThroughputExperiment(ctx context.Context, depth int, seed uint64) ([]Throughput, error) {
	backends := []string{searcher.BFSBackend, searcher.UnionFindBackend}
	configs := make([]metrics.AgentConfig, len(backends))
	matchUps := make([][]metrics.AgentConfig, len(backends))
	for i, backend := range backends {
		// Same seed for every backend so both play the same games
		configs[i] = metrics.AgentConfig{ID: i, Depth: depth, Backend: backend, Seed: seed}
		matchUps[i] = []metrics.AgentConfig{configs[i], configs[i]}
	}

	log.Info().Msgf("starting throughput experiment at depth %d...", depth)
	result, err := t.Run(ctx, "throughput", matchUps)
	if err != nil {
		return nil, err
	}

	matchUpOf := map[string]int{}
	for _, g := range result.Games {
		matchUpOf[g.ID] = g.Matchup
	}
	throughputs := make([]Throughput, len(backends))
	for i, backend := range backends {
		throughputs[i].Backend = backend
	}
	for _, m := range result.Moves {
		if m.Source != metrics.SourceSearch {
			continue
		}
		tp := &throughputs[matchUpOf[m.Game]]
		tp.Nodes += m.Nodes
		tp.Searched++
		tp.Duration += m.Duration
	}
	for i := range throughputs {
		if secs := throughputs[i].Duration.Seconds(); secs > 0 {
			throughputs[i].NodesPerSec = float64(throughputs[i].Nodes) / secs
		}
		log.Info().
			Str("backend", throughputs[i].Backend).
			Int("nodes", throughputs[i].Nodes).
			Int("searched", throughputs[i].Searched).
			Float64("nodes_per_sec", throughputs[i].NodesPerSec).
			Msg("completed backend")
	}
	log.Info().Msg("completed throughput experiment")
	return throughputs, nil
}

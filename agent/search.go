package agent

import (
	"time"

	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

// Searcher is a backend that can report search metrics.
type Searcher interface {
	Search(b *game.Board, player game.CellState, depth int) (game.Move, metrics.SearchMetric)
}

type searchAgent struct {
	searcher Searcher
	opening  *searcher.Opening
	depth    int
}

// NewSearchAgent returns an agent that applies the opening policy for the
// first two plies and searches to depth afterwards. A nil opening disables it.
func NewSearchAgent(s Searcher, opening *searcher.Opening, depth int) Agent {
	return searchAgent{searcher: s, opening: opening, depth: depth}
}

func (a searchAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	if a.opening != nil {
		start := time.Now()
		if move, ok := a.opening.Decide(state); ok {
			source := metrics.SourceOpening
			if move.Swap {
				source = metrics.SourceSwap
			}
			return move, metrics.SearchMetric{Source: source, Duration: time.Since(start)}
		}
	}
	return a.searcher.Search(state.Board, state.ToMove, a.depth)
}

// FromBackend lets any Backend act as a Searcher; only source and duration
// are reported.
func FromBackend(backend searcher.Backend) Searcher {
	return backendSearcher{backend: backend}
}

type backendSearcher struct {
	backend searcher.Backend
}

func (s backendSearcher) Search(b *game.Board, player game.CellState, depth int) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	move := s.backend.FindBestMove(b, player, depth)
	source := metrics.SourceSearch
	if !move.IsValid() {
		source = metrics.SourceNone
	}
	return move, metrics.SearchMetric{Source: source, Duration: time.Since(start)}
}

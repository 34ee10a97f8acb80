package agent

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

type randomAgent struct {
	random searcher.Random
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// move, the swap included.
func NewRandomAgent(random searcher.Random) Agent {
	return randomAgent{random: random}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{Source: metrics.SourceNone}
	}
	return moves[a.random.Intn(len(moves))], metrics.SearchMetric{Source: metrics.SourceRandom}
}

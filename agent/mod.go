package agent

import (
	"hex/experiments/metrics"
	"hex/game"
)

type Agent interface {
	// FindMove returns the move to play in state and how it was found.
	// game.NoMove means the agent has nothing to play.
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}

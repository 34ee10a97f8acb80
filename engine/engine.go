package engine

import (
	"hex/experiments/metrics"
	"hex/game"
)

type Runner interface {
	// Run plays a game till there's a winner, the board is full or an agent
	// has no move to offer
	Run() (winner game.CellState, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

package engine

import (
	"testing"

	"hex/agent"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// scriptedAgent plays its moves in order, then NoMove.
type scriptedAgent struct {
	moves []game.Move
}

func (a *scriptedAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	if len(a.moves) == 0 {
		return game.NoMove, metrics.SearchMetric{Source: metrics.SourceNone}
	}
	m := a.moves[0]
	a.moves = a.moves[1:]
	return m, metrics.SearchMetric{Source: metrics.SourceSearch}
}

func searchAgent(seed uint64, depth int) agent.Agent {
	backend := searcher.NewAlphaBeta(searcher.WithRandom(rand.New(rand.NewSource(seed))), searcher.WithMetrics())
	return agent.NewSearchAgent(backend, searcher.DefaultOpening(), depth)
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("search agents finish with a winner", func(t *testing.T) {
		e := LocalEngine(5, true, []agent.Agent{searchAgent(1, 2), searchAgent(2, 2)})
		updates := 0
		e.OnMove(func(u Update) { updates++ })

		winner, gameMetric, moveMetrics := e.Run()

		require.NotEqual(t, game.Empty, winner, "Hex cannot end in a draw")
		require.Equal(t, winner, e.State.Winner())
		require.Equal(t, winner.String(), gameMetric.Winner)
		require.Equal(t, "A", gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, updates, len(moveMetrics), "Observer should see every move")
		require.Equal(t, metrics.SourceOpening, moveMetrics[0].Source)
		require.Equal(t, "c3", moveMetrics[0].Move)
		require.True(t, gameMetric.Swapped, "A center opening should be swapped")
	})

	t.Run("invalid moves fall back to the first empty cell", func(t *testing.T) {
		agentA := &scriptedAgent{moves: []game.Move{{Row: 0, Col: 0}, {Row: 0, Col: 0}}}
		agentB := &scriptedAgent{moves: []game.Move{{Row: 1, Col: 1}}}
		e := LocalEngine(3, false, []agent.Agent{agentA, agentB})

		_, _, moveMetrics := e.Run()

		require.Len(t, moveMetrics, 3, "Game should stop when B runs out of moves")
		require.Equal(t, metrics.SourceFallback, moveMetrics[2].Source)
		require.Equal(t, "b1", moveMetrics[2].Move, "(0,1) is the first empty cell")
		require.Equal(t, game.PlayerA, e.State.Board.Get(0, 1))
	})

	t.Run("agent without a move stops the game", func(t *testing.T) {
		e := LocalEngine(3, false, []agent.Agent{&scriptedAgent{}, &scriptedAgent{}})

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.Empty, winner)
		require.Equal(t, "empty", gameMetric.Winner)
		require.Empty(t, moveMetrics)
	})

	t.Run("wrong number of agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(3, false, []agent.Agent{&scriptedAgent{}}) })
	})
}

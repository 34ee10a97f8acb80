package engine

import (
	"time"

	"hex/agent"
	"hex/experiments/metrics"
	"hex/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameState
	Agents   []agent.Agent // Agents[0] plays PlayerA
	observer func(Update)
}

// Update is passed to the observer after every applied move.
type Update struct {
	Player game.CellState
	Move   game.Move
	State  *game.GameState
}

// LocalEngine sets up a game of the given size between two agents.
func LocalEngine(size int, swap bool, agents []agent.Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{
		State:  game.NewGameState(size, swap),
		Agents: agents,
	}
}

// OnMove registers a callback invoked after each move.
func (e *Engine) OnMove(observer func(Update)) {
	e.observer = observer
}

func agentIndex(player game.CellState) int {
	if player == game.PlayerA {
		return 0
	}
	return 1
}

// Run executes the game loop until the game is over.
func (e *Engine) Run() (game.CellState, metrics.GameMetric, []metrics.MoveMetric) {
	size := e.State.Board.Size()
	maxMoves := size*size + 1 // Every cell plus one swap
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ToMove.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting on a %dx%d board", e.State.ToMove, size, size)

	for step := 1; !e.State.IsOver() && step <= maxMoves; step++ {
		player := e.State.ToMove
		move, searchMetric := e.Agents[agentIndex(player)].FindMove(e.State.Copy())
		if move == game.NoMove {
			log.Warn().Msgf("player %s has no move, stopping the game", player)
			break
		}

		if err := e.State.Play(move); err != nil {
			log.Warn().Err(err).Msgf("player %s chose invalid move %s, falling back", player, game.FormatMove(move))
			move = e.fallback()
			searchMetric.Source = metrics.SourceFallback
			if err := e.State.Play(move); err != nil {
				log.Error().Err(err).Msg("fallback move rejected")
				break
			}
		}
		if move.Swap {
			gameMetric.Swapped = true
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         game.FormatMove(move),
			SearchMetric: searchMetric,
		})
		log.Debug().
			Int("step", step).
			Str("player", player.String()).
			Str("move", game.FormatMove(move)).
			Str("source", searchMetric.Source).
			Dur("duration", searchMetric.Duration).
			Msg("move played")

		if e.observer != nil {
			e.observer(Update{Player: player, Move: move, State: e.State.Copy()})
		}
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.Empty {
		log.Info().Msgf("game ended after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics
}

// fallback picks the first empty cell in row-major order.
func (e *Engine) fallback() game.Move {
	moves := e.State.Board.EmptyCells()
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[0]
}

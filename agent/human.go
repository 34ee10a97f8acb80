package agent

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"hex/experiments/metrics"
	"hex/game"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent reads moves in board notation ("e5", or "swap") from in,
// one per line, and writes prompts and errors to out.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	for {
		fmt.Fprintf(a.out, "%s to move: ", state.ToMove)
		if !a.in.Scan() {
			return game.NoMove, metrics.SearchMetric{Source: metrics.SourceNone, Duration: time.Since(start)}
		}
		move, err := game.ParseMove(a.in.Text(), state.Board.Size())
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		if move.Swap {
			if !state.CanSwap() {
				fmt.Fprintf(a.out, "%v\n", game.ErrSwapNotAllowed)
				continue
			}
			move.Row, move.Col = state.FirstMove.Row, state.FirstMove.Col
		} else if !state.Board.IsLegal(move) {
			fmt.Fprintf(a.out, "%s: %v\n", game.FormatMove(move), game.ErrOccupied)
			continue
		}
		return move, metrics.SearchMetric{Source: metrics.SourceHuman, Duration: time.Since(start)}
	}
}

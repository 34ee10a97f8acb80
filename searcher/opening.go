package searcher

import "hex/game"

// DefaultSwapRadius is the Chebyshev distance from the center within which an
// opening stone is considered strong enough to take over.
const DefaultSwapRadius = 1

// Opening replaces search for the first two plies. The swap rule is an
// approximation: strong central openings are swapped, edge openings declined.
type Opening struct {
	SwapRadius int
	// Jitter, when set, moves the first stone to a random cell next to the
	// center instead of always playing the center itself.
	Jitter Random
}

func DefaultOpening() *Opening {
	return &Opening{SwapRadius: DefaultSwapRadius}
}

// FirstMove picks the opening cell on an empty board of the given size.
func (o *Opening) FirstMove(size int) game.Move {
	center := game.Move{Row: size / 2, Col: size / 2}
	if o.Jitter == nil {
		return center
	}
	candidates := []game.Move{center}
	for _, d := range game.Directions {
		m := game.Move{Row: center.Row + d[0], Col: center.Col + d[1]}
		if m.Row >= 0 && m.Row < size && m.Col >= 0 && m.Col < size {
			candidates = append(candidates, m)
		}
	}
	return candidates[o.Jitter.Intn(len(candidates))]
}

// ShouldSwap decides the pie rule for the second player given PlayerA's first stone.
func (o *Opening) ShouldSwap(size int, first game.Move) bool {
	return first.IsValid() && game.ChebyshevDistance(size, first) <= o.SwapRadius
}

// Decide returns the opening move for gs, or false once search should take over.
func (o *Opening) Decide(gs *game.GameState) (game.Move, bool) {
	switch {
	case gs.MoveCount == 0 && gs.Board.IsEmpty():
		return o.FirstMove(gs.Board.Size()), true
	case gs.CanSwap() && o.ShouldSwap(gs.Board.Size(), gs.FirstMove):
		return game.Move{Row: gs.FirstMove.Row, Col: gs.FirstMove.Col, Swap: true}, true
	default:
		return game.NoMove, false
	}
}

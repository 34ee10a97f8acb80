package searcher

import "hex/game"

// Backend is the set of operations a caller needs from a search
// implementation. Interchangeable backends must agree on move legality, win
// semantics and, given the same Random, on the chosen moves.
type Backend interface {
	CheckWin(b *game.Board, player game.CellState) bool
	Evaluate(b *game.Board, player game.CellState) int
	FindBestMove(b *game.Board, player game.CellState, depth int) game.Move
}

// Random is the source of every random choice made by the search. Both
// *rand.Rand from golang.org/x/exp/rand and math/rand satisfy it.
type Random interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Depth caps by board size; the branching factor grows with N².
const (
	SmallBoard  = 7
	MediumBoard = 9

	SmallBoardDepth  = 4
	MediumBoardDepth = 3
	LargeBoardDepth  = 2
)

// AdaptDepth clamps the requested depth to at least one ply and at most the
// size-dependent cap.
func AdaptDepth(size, requested int) int {
	limit := LargeBoardDepth
	switch {
	case size <= SmallBoard:
		limit = SmallBoardDepth
	case size <= MediumBoard:
		limit = MediumBoardDepth
	}
	return max(1, min(requested, limit))
}

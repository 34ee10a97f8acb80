package game

import "fmt"

// Record is one entry of the move history.
type Record struct {
	Player   CellState
	Move     Move
	Notation string
}

// GameState is the caller-owned session around a live board: whose turn it
// is, how many moves were made and whether the pie rule is still available.
// PlayerA always moves first.
type GameState struct {
	Board       *Board
	ToMove      CellState
	MoveCount   int
	FirstMove   Move
	SwapEnabled bool
	History     []Record
}

// NewGameState initializes an empty game of the given size.
func NewGameState(size int, swapEnabled bool) *GameState {
	return &GameState{
		Board:       NewBoard(size),
		ToMove:      PlayerA,
		FirstMove:   NoMove,
		SwapEnabled: swapEnabled,
	}
}

func (gs *GameState) Copy() *GameState {
	history := make([]Record, len(gs.History))
	copy(history, gs.History)
	return &GameState{
		Board:       gs.Board.Clone(),
		ToMove:      gs.ToMove,
		MoveCount:   gs.MoveCount,
		FirstMove:   gs.FirstMove,
		SwapEnabled: gs.SwapEnabled,
		History:     history,
	}
}

func (gs *GameState) Reset() {
	*gs = *NewGameState(gs.Board.Size(), gs.SwapEnabled)
}

// CanSwap reports whether the player to move may apply the pie rule.
func (gs *GameState) CanSwap() bool {
	return gs.SwapEnabled && gs.MoveCount == 1 && gs.ToMove == PlayerB && gs.FirstMove.IsValid()
}

// Play applies m for the player to move. Swap moves are routed to Swap.
func (gs *GameState) Play(m Move) error {
	if m.Swap {
		return gs.Swap()
	}
	if gs.IsOver() {
		return ErrGameOver
	}
	if err := gs.Board.Place(m, gs.ToMove); err != nil {
		return err
	}
	gs.History = append(gs.History, Record{Player: gs.ToMove, Move: m, Notation: FormatMove(m)})
	gs.MoveCount++
	if gs.MoveCount == 1 {
		gs.FirstMove = m
	}
	gs.ToMove = Opponent(gs.ToMove)
	return nil
}

// Swap takes over PlayerA's opening stone: the cell changes owner in place
// and the turn passes back to PlayerA.
func (gs *GameState) Swap() error {
	if !gs.CanSwap() {
		return ErrSwapNotAllowed
	}
	first := gs.FirstMove
	gs.Board.cells[first.Row*gs.Board.size+first.Col] = PlayerB
	m := Move{Row: first.Row, Col: first.Col, Swap: true}
	gs.History = append(gs.History, Record{Player: PlayerB, Move: m, Notation: FormatMove(m)})
	gs.MoveCount++
	gs.ToMove = PlayerA
	return nil
}

// Winner returns the connected player, or Empty. PlayerA is checked first.
func (gs *GameState) Winner() CellState {
	for _, player := range []CellState{PlayerA, PlayerB} {
		if HasConnection(gs.Board, player) {
			return player
		}
	}
	return Empty
}

func (gs *GameState) IsOver() bool {
	return gs.Winner() != Empty || gs.Board.IsFull()
}

// LegalMoves lists every empty cell, plus the swap move while it is allowed.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsOver() {
		return nil
	}
	moves := gs.Board.EmptyCells()
	if gs.CanSwap() {
		moves = append(moves, Move{Row: gs.FirstMove.Row, Col: gs.FirstMove.Col, Swap: true})
	}
	return moves
}

func (gs *GameState) String() string {
	return fmt.Sprintf("move %d, %s to play\n%s", gs.MoveCount+1, gs.ToMove, gs.Board)
}

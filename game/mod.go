package game

import "errors"

// CellState is the content of a board cell. PlayerA and PlayerB double as
// player identities.
type CellState int

const (
	Empty CellState = iota
	PlayerA
	PlayerB
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "invalid"
	}
}

// Opponent returns the other player. Empty has no opponent.
func Opponent(player CellState) CellState {
	switch player {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Move is a cell coordinate. Swap marks the pie-rule move, which takes over
// the opponent's first stone at (Row, Col) instead of placing a new one.
type Move struct {
	Row  int
	Col  int
	Swap bool
}

// NoMove is returned by searches when no legal move exists.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsValid() bool {
	return m.Row >= 0 && m.Col >= 0
}

var (
	ErrInvalidSize     = errors.New("invalid board size")
	ErrOutOfBounds     = errors.New("cell out of bounds")
	ErrOccupied        = errors.New("cell is occupied")
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidCell     = errors.New("invalid cell state")
	ErrGameOver        = errors.New("game is over")
	ErrSwapNotAllowed  = errors.New("swap is not allowed")
	ErrInvalidNotation = errors.New("invalid move notation")
)

// Connectivity reports whether player has a chain of stones joining their two
// edges. Implementations must not mutate the board.
type Connectivity func(b *Board, player CellState) bool

// Evaluate scores the board from player's perspective: WinScore if player has
// already connected, -WinScore if the opponent has, a bounded heuristic otherwise.
type Evaluate func(b *Board, player CellState) int

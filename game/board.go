package game

import (
	"fmt"
	"strings"
)

// Directions lists the six hex neighbor offsets as (row, col) deltas.
var Directions = [6][2]int{
	{-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0},
}

// Board is an N×N rhombus of hex cells stored row-major.
type Board struct {
	size  int
	cells []CellState
}

// NewBoard returns an empty board of the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		panic("board size must be positive")
	}
	return &Board{
		size:  size,
		cells: make([]CellState, size*size),
	}
}

// FromCells builds a board from a square grid of cell states.
func FromCells(cells [][]CellState) (*Board, error) {
	if len(cells) == 0 {
		return nil, ErrInvalidSize
	}
	b := NewBoard(len(cells))
	if err := b.Load(cells); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Get returns the state at (row, col), or Empty when out of bounds.
func (b *Board) Get(row, col int) CellState {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// Place puts player's stone on an empty cell. The board is left untouched on error.
func (b *Board) Place(m Move, player CellState) error {
	if player != PlayerA && player != PlayerB {
		return ErrInvalidPlayer
	}
	if !b.InBounds(m.Row, m.Col) {
		return fmt.Errorf("place (%d,%d): %w", m.Row, m.Col, ErrOutOfBounds)
	}
	idx := m.Row*b.size + m.Col
	if b.cells[idx] != Empty {
		return fmt.Errorf("place (%d,%d): %w", m.Row, m.Col, ErrOccupied)
	}
	b.cells[idx] = player
	return nil
}

// IsLegal reports whether m targets an empty in-bounds cell.
func (b *Board) IsLegal(m Move) bool {
	return b.InBounds(m.Row, m.Col) && b.cells[m.Row*b.size+m.Col] == Empty
}

// Load replaces every cell with the given grid, which must match the board size.
func (b *Board) Load(cells [][]CellState) error {
	if len(cells) != b.size {
		return fmt.Errorf("load %d rows into size %d board: %w", len(cells), b.size, ErrInvalidSize)
	}
	next := make([]CellState, b.size*b.size)
	for r, row := range cells {
		if len(row) != b.size {
			return fmt.Errorf("load row %d of length %d: %w", r, len(row), ErrInvalidSize)
		}
		for c, state := range row {
			if state != Empty && state != PlayerA && state != PlayerB {
				return fmt.Errorf("load (%d,%d) = %d: %w", r, c, state, ErrInvalidCell)
			}
			next[r*b.size+c] = state
		}
	}
	b.cells = next
	return nil
}

// Cells exports the board as a freshly allocated grid.
func (b *Board) Cells() [][]CellState {
	out := make([][]CellState, b.size)
	for r := range out {
		out[r] = make([]CellState, b.size)
		copy(out[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return out
}

func (b *Board) Clone() *Board {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// With returns a copy of the board with player's stone at m. The receiver is
// not modified; the caller guarantees m is legal.
func (b *Board) With(m Move, player CellState) *Board {
	child := b.Clone()
	child.cells[m.Row*b.size+m.Col] = player
	return child
}

// EmptyCells lists the legal moves in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(b.cells))
	for idx, state := range b.cells {
		if state == Empty {
			moves = append(moves, Move{Row: idx / b.size, Col: idx % b.size})
		}
	}
	return moves
}

func (b *Board) Count(player CellState) int {
	n := 0
	for _, state := range b.cells {
		if state == player {
			n++
		}
	}
	return n
}

func (b *Board) IsEmpty() bool {
	return b.Count(Empty) == len(b.cells)
}

func (b *Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Neighbors returns the in-bounds hex neighbors of (row, col).
func (b *Board) Neighbors(row, col int) []Move {
	result := make([]Move, 0, len(Directions))
	for _, d := range Directions {
		r, c := row+d[0], col+d[1]
		if b.InBounds(r, c) {
			result = append(result, Move{Row: r, Col: c})
		}
	}
	return result
}

// String draws the rhombus with one extra space of indent per row.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		sb.WriteString(strings.Repeat(" ", r))
		for c := 0; c < b.size; c++ {
			switch b.cells[r*b.size+c] {
			case PlayerA:
				sb.WriteByte('X')
			case PlayerB:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			if c < b.size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

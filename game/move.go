package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"hex/utils"
)

const columnLabels = "abcdefghijklmnopqrstuvwxyz"

// SwapNotation is how the pie-rule move is written.
const SwapNotation = "swap"

// FormatMove writes m as a column letter and a 1-based row, e.g. (0,0) -> "a1".
func FormatMove(m Move) string {
	if m.Swap {
		return fmt.Sprintf("%s(%s)", SwapNotation, FormatMove(Move{Row: m.Row, Col: m.Col}))
	}
	if m.Col < 0 || m.Col >= len(columnLabels) || m.Row < 0 {
		return "-"
	}
	return fmt.Sprintf("%c%d", columnLabels[m.Col], m.Row+1)
}

// ParseMove reads the notation produced by FormatMove for a board of the given
// size. "swap" yields a Move with Swap set and no coordinates.
func ParseMove(s string, size int) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == SwapNotation {
		return Move{Swap: true}, nil
	}
	if len(s) < 2 {
		return NoMove, fmt.Errorf("%q: %w", s, ErrInvalidNotation)
	}
	letter, width := utf8.DecodeRuneInString(s)
	col := utils.FindIndex([]rune(columnLabels), letter)
	if col < 0 {
		return NoMove, fmt.Errorf("%q: column: %w", s, ErrInvalidNotation)
	}
	row, err := strconv.Atoi(s[width:])
	if err != nil {
		return NoMove, fmt.Errorf("%q: row: %w", s, ErrInvalidNotation)
	}
	m := Move{Row: row - 1, Col: col}
	if m.Row < 0 || m.Row >= size || m.Col >= size {
		return NoMove, fmt.Errorf("%q: %w", s, ErrOutOfBounds)
	}
	return m, nil
}

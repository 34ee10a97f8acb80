package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMove(t *testing.T) {
	require.Equal(t, "a1", FormatMove(Move{Row: 0, Col: 0}))
	require.Equal(t, "k11", FormatMove(Move{Row: 10, Col: 10}))
	require.Equal(t, "c2", FormatMove(Move{Row: 1, Col: 2}))
	require.Equal(t, "swap(f6)", FormatMove(Move{Row: 5, Col: 5, Swap: true}))
	require.Equal(t, "-", FormatMove(NoMove))
}

func TestParseMove(t *testing.T) {
	t.Run("valid notation", func(t *testing.T) {
		for notation, want := range map[string]Move{
			"a1":    {Row: 0, Col: 0},
			"K11":   {Row: 10, Col: 10},
			" c2\n": {Row: 1, Col: 2},
			"Swap":  {Swap: true},
		} {
			got, err := ParseMove(notation, 11)
			require.NoError(t, err, "%q should parse", notation)
			require.Equal(t, want, got, "%q", notation)
		}
	})

	t.Run("malformed notation", func(t *testing.T) {
		for _, notation := range []string{"", "a", "11", "ab", "a1x", "?3"} {
			_, err := ParseMove(notation, 11)
			require.ErrorIs(t, err, ErrInvalidNotation, "%q should be rejected", notation)
		}
	})

	t.Run("outside the board", func(t *testing.T) {
		for _, notation := range []string{"a0", "a12", "l1", "z26"} {
			_, err := ParseMove(notation, 11)
			require.ErrorIs(t, err, ErrOutOfBounds, "%q is not on an 11x11 board", notation)
		}
	})

	t.Run("format then parse", func(t *testing.T) {
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				m := Move{Row: r, Col: c}
				got, err := ParseMove(FormatMove(m), 5)
				require.NoError(t, err)
				require.Equal(t, m, got)
			}
		}
	})
}

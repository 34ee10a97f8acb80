package config

import (
	"os"
	"path/filepath"
	"testing"

	"hex/meta"
	"hex/searcher"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Setup("", Flags())

		require.NoError(t, err)
		require.Equal(t, meta.DEFAULT_BOARD_SIZE, cfg.BoardSize)
		require.Equal(t, PlayerVsAI, cfg.Mode)
		require.Equal(t, searcher.BFSBackend, cfg.Backend)
		require.True(t, cfg.Swap)
		require.Equal(t, meta.MEDIUM_DEPTH, cfg.SearchDepth())
	})

	t.Run("flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hex.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board_size: 7\ndifficulty: hard\nmode: ava\nswap: false\n"), 0644))
		flags := Flags()
		require.NoError(t, flags.Parse([]string{"--board-size=9", "--backend=unionfind"}))

		cfg, err := Setup(path, flags)

		require.NoError(t, err)
		require.Equal(t, 9, cfg.BoardSize, "Explicit flag should win over the file")
		require.Equal(t, AIVsAI, cfg.Mode, "File should win over flag defaults")
		require.False(t, cfg.Swap)
		require.Equal(t, searcher.UnionFindBackend, cfg.Backend)
		require.Equal(t, meta.HARD_DEPTH, cfg.SearchDepth())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("HEX_DEPTH", "4")
		t.Setenv("HEX_MODE", "tournament")

		cfg, err := Setup("", Flags())

		require.NoError(t, err)
		require.Equal(t, 4, cfg.SearchDepth(), "Explicit depth should override difficulty")
		require.Equal(t, Tournament, cfg.Mode)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		flags := Flags()
		require.NoError(t, flags.Parse([]string{"--board-size=40"}))
		_, err := Setup("", flags)
		require.ErrorIs(t, err, ErrInvalidBoardSize)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{BoardSize: 11, Difficulty: "easy", Mode: PlayerVsAI, Backend: searcher.BFSBackend, HumanPlayer: "a"}
	require.NoError(t, valid.Validate())

	for name, tc := range map[string]struct {
		mutate func(c *Config)
		err    error
	}{
		"board too small": {func(c *Config) { c.BoardSize = 1 }, ErrInvalidBoardSize},
		"unknown mode":    {func(c *Config) { c.Mode = "online" }, ErrUnknownMode},
		"unknown backend": {func(c *Config) { c.Backend = "gpu" }, searcher.ErrUnknownBackend},
		"unknown level":   {func(c *Config) { c.Difficulty = "insane" }, ErrUnknownDifficulty},
		"unknown player":  {func(c *Config) { c.HumanPlayer = "c" }, ErrUnknownPlayer},
	} {
		t.Run(name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), tc.err)
		})
	}

	t.Run("explicit depth skips the difficulty", func(t *testing.T) {
		c := valid
		c.Difficulty = "insane"
		c.Depth = 2
		require.NoError(t, c.Validate())
		require.Equal(t, 2, c.SearchDepth())
	})
}
